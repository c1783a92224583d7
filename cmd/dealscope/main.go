package main

import (
	"errors"
	"fmt"
	"os"
)

// exitError carries a recommendation-derived exit code through cobra.
type exitError struct{ code int }

func (e exitError) Error() string { return "" }

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
