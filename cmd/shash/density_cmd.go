// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initDensityCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "density",
		Short: "tabulate the density over the bulk of the support",
	}
	newDist := distFlags(cmd)
	points := cmd.Flags().Int("points", 51, "number of grid points")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := newDist()
		if err != nil {
			return err
		}
		if *points < 2 {
			return fmt.Errorf("points = %d, need at least 2", *points)
		}

		lo, hi := d.Bounds()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%12s %12s %12s %12s\n", "x", "pdf", "logpdf", "cdf")
		for i := 0; i < *points; i++ {
			x := lo + (hi-lo)*float64(i)/float64(*points-1)
			fmt.Fprintf(w, "%12.6g %12.6g %12.6g %12.6g\n",
				x, d.PDF(x), d.LogProb(x), d.CDF(x))
		}
		return nil
	}
	return cmd
}
