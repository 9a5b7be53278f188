// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package family

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Draws holds posterior draws of the four distributional parameters
// for a single observation: one column per parameter, one row per
// draw. Rows are independent parameter tuples; nothing is shared
// between them.
type Draws struct {
	Mu, Sigma, Epsilon, Delta []float64
}

// Len returns the number of draws.
func (d Draws) Len() int { return len(d.Mu) }

func (d Draws) validate() error {
	n := len(d.Mu)
	if len(d.Sigma) != n || len(d.Epsilon) != n || len(d.Delta) != n {
		return fmt.Errorf("draws columns have mismatched lengths %d, %d, %d, %d",
			len(d.Mu), len(d.Sigma), len(d.Epsilon), len(d.Delta))
	}
	return nil
}

// PointwiseLogLik evaluates the family's log likelihood of
// observation y under each draws-row and returns one log density per
// row. A parameter tuple outside the family's domain stops evaluation
// and returns the row's error.
func PointwiseLogLik(f Family, d Draws, y float64) ([]float64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	res := make([]float64, d.Len())
	for i := range res {
		ll, err := f.LogLik(y, d.Mu[i], d.Sigma[i], d.Epsilon[i], d.Delta[i])
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		res[i] = ll
	}
	return res, nil
}

// PosteriorPredictive draws one outcome per draws-row from the
// family, consuming variates from src, and returns one sampled value
// per row.
func PosteriorPredictive(f Family, d Draws, src rand.Source) ([]float64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	res := make([]float64, d.Len())
	for i := range res {
		y, err := f.Sample(src, d.Mu[i], d.Sigma[i], d.Epsilon[i], d.Delta[i])
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		res[i] = y
	}
	return res, nil
}
