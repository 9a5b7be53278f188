// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func initSampleCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "print independent random draws from the distribution",
	}
	newDist := distFlags(cmd)
	n := cmd.Flags().Int("n", 10, "number of draws")
	seed := cmd.Flags().Uint64("seed", 1, "random seed")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		d, err := newDist()
		if err != nil {
			return err
		}
		d.Src = rand.NewSource(*seed)
		w := cmd.OutOrStdout()
		for _, y := range d.RandN(*n) {
			fmt.Fprintf(w, "%.6g\n", y)
		}
		return nil
	}
	return cmd
}
