// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/distreg/shash/dist"
)

func initSummaryCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "read newline-separated numbers from stdin and describe their distribution",
	}
	points := cmd.Flags().Int("points", 21, "number of density estimate grid points")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		xs, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			return fmt.Errorf("no input values")
		}
		if *points < 2 {
			return fmt.Errorf("points = %d, need at least 2", *points)
		}
		sort.Float64s(xs)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g  std dev %.6g  variance %.6g\n",
			len(xs), floats.Sum(xs), stat.Mean(xs, nil), stat.StdDev(xs, nil), stat.Variance(xs, nil))
		fmt.Fprintln(w)

		labels := map[int]string{0: "min", 50: "median", 100: "max"}
		for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
			label, ok := labels[p]
			if !ok {
				label = fmt.Sprintf("%d%%ile", p)
			}
			var q float64
			switch p {
			case 0:
				q = floats.Min(xs)
			case 100:
				q = floats.Max(xs)
			default:
				q = stat.Quantile(float64(p)/100, stat.Empirical, xs, nil)
			}
			fmt.Fprintf(w, "%8s %.6g\n", label, q)
		}
		fmt.Fprintln(w)

		// Kernel density estimate over the sample.
		kde := dist.KDE{}.From(dist.Sample{Xs: xs, Sorted: true})
		lo, hi := kde.Bounds()
		fmt.Fprintf(w, "%12s %12s\n", "x", "pdf")
		for i := 0; i < *points; i++ {
			x := lo + (hi-lo)*float64(i)/float64(*points-1)
			fmt.Fprintf(w, "%12.6g %12.6g\n", x, kde.PDF(x))
		}
		return nil
	}
	return cmd
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
