// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
)

// Sample is a collection of possibly weighted values.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all samples have weight 1. Weights must have the same
	// length as Xs and all weights must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in increasing order.
	Sorted bool
}

// Weight returns the total weight of the sample, or the number of
// samples if the sample is unweighted.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	var w float64
	for _, wi := range s.Weights {
		w += wi
	}
	return w
}

// Sum returns the weighted sum of the sample values.
func (s Sample) Sum() float64 {
	var sum float64
	if s.Weights == nil {
		for _, x := range s.Xs {
			sum += x
		}
	} else {
		for i, x := range s.Xs {
			sum += x * s.Weights[i]
		}
	}
	return sum
}

// Mean returns the weighted mean of the sample, or NaN if the sample
// is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / s.Weight()
}

// Variance returns the sample variance. For unweighted samples this
// applies Bessel's correction; for weighted samples it is the
// weighted population variance.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	} else if len(s.Xs) == 1 {
		return 0
	}
	mean := s.Mean()
	var ss float64
	if s.Weights == nil {
		for _, x := range s.Xs {
			d := x - mean
			ss += d * d
		}
		return ss / float64(len(s.Xs)-1)
	}
	for i, x := range s.Xs {
		d := x - mean
		ss += s.Weights[i] * d * d
	}
	return ss / s.Weight()
}

// StdDev returns the sample standard deviation.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Bounds returns the minimum and maximum values of the sample, or
// NaNs if the sample is empty.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, max = inf, -inf
	for _, x := range s.Xs {
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	return
}

// Copy returns a copy of the sample whose slices can be modified
// without affecting s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	var weights []float64
	if s.Weights != nil {
		weights = make([]float64, len(s.Weights))
		copy(weights, s.Weights)
	}
	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the sample in place by value and returns s for method
// chaining. Weights, if any, stay attached to their values.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		s.Sorted = true
		return s
	}
	if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Sort(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs, weights []float64
}

func (p *sampleSorter) Len() int           { return len(p.xs) }
func (p *sampleSorter) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// Quantile returns the q'th sample quantile for q in [0, 1]. Values
// of q outside [0, 1] are clamped. For unweighted samples it linearly
// interpolates between order statistics; for weighted samples it
// returns the smallest value whose cumulative weight reaches q times
// the total weight. It returns NaN on an empty sample.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if q <= 0 {
		return s.Xs[0]
	} else if q >= 1 {
		return s.Xs[len(s.Xs)-1]
	}

	if s.Weights == nil {
		h := q * float64(len(s.Xs)-1)
		lo := math.Floor(h)
		i := int(lo)
		if i == len(s.Xs)-1 {
			return s.Xs[i]
		}
		return s.Xs[i] + (h-lo)*(s.Xs[i+1]-s.Xs[i])
	}

	target := q * s.Weight()
	var cum float64
	for i, x := range s.Xs {
		cum += s.Weights[i]
		if cum >= target {
			return x
		}
	}
	return s.Xs[len(s.Xs)-1]
}
