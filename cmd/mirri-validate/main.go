// Package main is the mirri-validate command. It validates MIRRI culture
// collection workbooks from the command line and prints the Error Log.
//
// Exit status is 0 for a clean workbook, 1 when the Error Log has findings
// and 2 for any other failure.
package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	exitFindings = 1
	exitFailure  = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(exitFindings)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitFailure)
	}
}
