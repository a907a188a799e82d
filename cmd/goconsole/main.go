// Package main provides the goconsole binary entry point: a terminal client
// for the role-gated admin console backend, driving login, navigation
// checks, and the resource screens from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
