// SPDX-License-Identifier: MIT

// braidnf prints the left-greedy normal form of a braid together with its
// complexity measures, or summarizes a YAML factorization.
//
//	braidnf -n 5 --artin 1,2,-1,-2
//	braidnf -n 5 --band 2:1,4:3 --invert
//	braidnf --braid "[5] D^(-1) * [4, 1, 0, 2, 3]" --power 3
//	braidnf --file factorization.yaml --twist 1 --twist -2
//	braidnf -n 6 --random 20 --seed 7
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/garside/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(cli.ExitFailure)
	}
}

func run() error {
	return cli.Run(os.Args[1:], os.Stdout, os.Stderr)
}
