// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// shash explores the four-parameter sinh-arcsinh distribution from
// the command line: it prints random draws, tabulates the density,
// and describes samples read from stdin.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/distreg/shash/dist"
)

func main() {
	root := &cobra.Command{
		Use:          "shash",
		Short:        "explore the sinh-arcsinh distribution",
		SilenceUsage: true,
	}
	root.AddCommand(initSampleCMD(), initDensityCMD(), initSummaryCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// distFlags declares the four distribution parameter flags on cmd and
// returns a constructor that validates them.
func distFlags(cmd *cobra.Command) func() (dist.SinhArcsinh, error) {
	mu := cmd.Flags().Float64("mu", 0, "location parameter")
	sigma := cmd.Flags().Float64("sigma", 1, "scale parameter, > 0")
	eps := cmd.Flags().Float64("eps", 0, "skewness parameter")
	delta := cmd.Flags().Float64("delta", 1, "tail-weight parameter, > 0")
	return func() (dist.SinhArcsinh, error) {
		return dist.New(*mu, *sigma, *eps, *delta)
	}
}
