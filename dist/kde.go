// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate: a smooth, non-parametric estimate ƒ̂(x) of an unknown
// density ƒ(x) given a sample from that distribution.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using a default bandwidth estimator
	// (currently BandwidthScott).
	Bandwidth float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and a robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		// Silverman's Rule of Thumb.
		return hScale * stdDev
	}
	// IQR/1.349 is a robust estimator of the standard deviation
	// of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns the distribution of the kernel density estimate for
// the sample s. It panics if s is empty or if s has weights of a
// different length than its values.
func (k KDE) From(s Sample) Dist {
	if len(s.Xs) == 0 {
		panic("cannot construct KDE from empty sample")
	}
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}

	return &kdeDist{
		xs:      s.Xs,
		weights: s.Weights,
		weight:  s.Weight(),
		kernel:  distuv.Normal{Mu: 0, Sigma: h},
	}
}

type kdeDist struct {
	xs, weights []float64
	weight      float64
	kernel      distuv.Normal
}

// each evaluates the kernel function f shifted to each sample point,
// all at x, and returns the weighted average.
func (kde *kdeDist) each(f func(float64) float64, x float64) float64 {
	var sum float64
	if kde.weights == nil {
		for _, xi := range kde.xs {
			sum += f(x - xi)
		}
	} else {
		for i, xi := range kde.xs {
			sum += kde.weights[i] * f(x-xi)
		}
	}
	return sum / kde.weight
}

func (kde *kdeDist) PDF(x float64) float64 {
	return kde.each(kde.kernel.Prob, x)
}

func (kde *kdeDist) PDFEach(xs []float64) []float64 {
	return eachFloat64(kde.PDF, xs)
}

func (kde *kdeDist) CDF(x float64) float64 {
	return kde.each(kde.kernel.CDF, x)
}

func (kde *kdeDist) CDFEach(xs []float64) []float64 {
	return eachFloat64(kde.CDF, xs)
}

func (kde *kdeDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		panic("p out of range [0, 1]")
	} else if p == 0 {
		return -inf
	} else if p == 1 {
		return inf
	}

	// Bracket the root, expanding beyond the sample range if the
	// requested quantile lies in a kernel tail.
	lo, hi := kde.Bounds()
	for kde.CDF(lo) > p {
		lo -= hi - lo
	}
	for kde.CDF(hi) < p {
		hi += hi - lo
	}
	return bisect(func(x float64) float64 { return kde.CDF(x) - p }, lo, hi, 1e-9*(hi-lo))
}

func (kde *kdeDist) InvCDFEach(ps []float64) []float64 {
	return eachFloat64(kde.InvCDF, ps)
}

func (kde *kdeDist) Bounds() (float64, float64) {
	lo, hi := Sample{Xs: kde.xs, Weights: kde.weights}.Bounds()
	// Four kernel standard deviations leave a negligible tail
	// beyond the extreme samples.
	return lo - 4*kde.kernel.Sigma, hi + 4*kde.kernel.Sigma
}

// bisect returns x in [lo, hi] with f(x) ≈ 0, to within tol. f must
// be monotonically increasing on [lo, hi] with f(lo) <= 0 <= f(hi).
func bisect(f func(float64) float64, lo, hi, tol float64) float64 {
	for hi-lo > tol {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
