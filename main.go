// ABOUTME: Entry point for snowcalc CLI
// ABOUTME: Interactive Snowflake warehouse credit-cost estimator

package main

import (
	"fmt"
	"os"

	"github.com/markalston/snowflake-workload-calculator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
