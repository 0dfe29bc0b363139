// ABOUTME: Cost breakdown math for workload credit consumption
// ABOUTME: Daily figures are averaged over the full week, not active days

package calc

// AnnualDays is the day count used for annual projections
const AnnualDays = 365.0

// DefaultMonthlyDays is the average days-per-month constant
const DefaultMonthlyDays = 30.44

// Pricing holds display-level cost configuration. CreditPrice of 0
// disables currency conversion; credit figures are unaffected either
// way.
type Pricing struct {
	MonthlyDays float64
	CreditPrice float64
}

// DefaultPricing returns pricing with the average-month constant and
// no currency conversion
func DefaultPricing() Pricing {
	return Pricing{MonthlyDays: DefaultMonthlyDays}
}

// CostBreakdown is the derived credit cost of one workload or of the
// whole session. Currency fields are zero unless a credit price is
// configured.
type CostBreakdown struct {
	DailyCredits   float64 `json:"daily_credits"`
	MonthlyCredits float64 `json:"monthly_credits"`
	AnnualCredits  float64 `json:"annual_credits"`
	DailyCost      float64 `json:"daily_cost,omitempty"`
	MonthlyCost    float64 `json:"monthly_cost,omitempty"`
	AnnualCost     float64 `json:"annual_cost,omitempty"`
}

// Add returns the element-wise sum of two breakdowns
func (b CostBreakdown) Add(other CostBreakdown) CostBreakdown {
	return CostBreakdown{
		DailyCredits:   b.DailyCredits + other.DailyCredits,
		MonthlyCredits: b.MonthlyCredits + other.MonthlyCredits,
		AnnualCredits:  b.AnnualCredits + other.AnnualCredits,
		DailyCost:      b.DailyCost + other.DailyCost,
		MonthlyCost:    b.MonthlyCost + other.MonthlyCost,
		AnnualCost:     b.AnnualCost + other.AnnualCost,
	}
}

// Breakdown computes the credit cost of a single workload.
//
// Uptime is specified per active day but active days vary per week, so
// the daily figure is normalized by days/7. That keeps daily, monthly,
// and annual figures mutually consistent: monthly = daily * monthly
// days, annual = daily * 365.
func Breakdown(w *WorkloadProfile, rates RateTable, pricing Pricing) CostBreakdown {
	daily := rates.Rate(w.Size) * float64(w.Count) * w.UptimeHours * (w.DaysPerWeek / 7.0)

	monthlyDays := pricing.MonthlyDays
	if monthlyDays <= 0 {
		monthlyDays = DefaultMonthlyDays
	}

	b := CostBreakdown{
		DailyCredits:   daily,
		MonthlyCredits: daily * monthlyDays,
		AnnualCredits:  daily * AnnualDays,
	}
	if pricing.CreditPrice > 0 {
		b.DailyCost = b.DailyCredits * pricing.CreditPrice
		b.MonthlyCost = b.MonthlyCredits * pricing.CreditPrice
		b.AnnualCost = b.AnnualCredits * pricing.CreditPrice
	}
	return b
}
