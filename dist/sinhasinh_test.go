// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSinhArcsinhLogProb(t *testing.T) {
	// At eps=0, delta=1 the family is Normal(0, 1), so the log
	// density at 0 is -log(sqrt(2*pi)).
	d := SinhArcsinh{Mu: 0, Sigma: 1, Epsilon: 0, Delta: 1}
	if got := d.LogProb(0); !aeq(-0.9189385332046727, got) {
		t.Errorf("%+v.LogProb(0) = %v, want %v", d, got, -0.9189385332046727)
	}

	// At eps=1, delta=1 and y=0 the standardized value is
	// sinh(1), giving -sinh(1)²/2 + log(cosh(1)) - log(sqrt(2*pi)).
	d = SinhArcsinh{Mu: 0, Sigma: 1, Epsilon: 1, Delta: 1}
	s := math.Sinh(1)
	want := -0.5*s*s + math.Log(math.Cosh(1)) - 0.9189385332046727
	if !aeq(-1.1757066, want) {
		t.Fatalf("inconsistent reference value: %v", want)
	}
	if got := d.LogProb(0); !aeq(want, got) {
		t.Errorf("%+v.LogProb(0) = %v, want %v", d, got, want)
	}

	d = SinhArcsinh{Mu: -1, Sigma: 2, Epsilon: -0.5, Delta: 1.5}
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF, map[float64]float64{
		-1000: 0,
		1000:  0,
	})
}

func TestSinhArcsinhNormalReduction(t *testing.T) {
	// With eps=0 and delta=1 the log density must equal the
	// normal log density with mean mu and standard deviation
	// sigma.
	for _, mu := range []float64{-2, 0, 1.5} {
		for _, sigma := range []float64{0.5, 1, 3} {
			d := SinhArcsinh{Mu: mu, Sigma: sigma, Epsilon: 0, Delta: 1}
			for y := -4.0; y <= 4; y += 0.25 {
				z := (y - mu) / sigma
				want := -0.5*z*z - math.Log(sigma) - 0.5*math.Log(2*math.Pi)
				got := d.LogProb(y)
				if !aeqTol(want, got, 1e-9) {
					t.Errorf("%+v.LogProb(%v) = %v, want normal log density %v", d, y, got, want)
				}
			}
		}
	}
}

func TestSinhArcsinhFinite(t *testing.T) {
	// The log density of finite observations under valid finite
	// parameters is finite or -Inf, never NaN or +Inf.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		d := SinhArcsinh{
			Mu:      rng.Float64()*10 - 5,
			Sigma:   rng.Float64()*10 + 0.01,
			Epsilon: rng.Float64()*6 - 3,
			Delta:   rng.Float64()*3 + 0.05,
		}
		y := rng.Float64()*200 - 100
		lp := d.LogProb(y)
		if math.IsNaN(lp) || math.IsInf(lp, 1) {
			t.Fatalf("%+v.LogProb(%v) = %v", d, y, lp)
		}
	}

	// Extreme tail-weight combinations overflow the sinh; the log
	// density must degrade to -Inf rather than NaN.
	d := SinhArcsinh{Mu: 0, Sigma: 1, Epsilon: 0, Delta: 50}
	if got := d.LogProb(1e300); !math.IsInf(got, -1) {
		t.Errorf("%+v.LogProb(1e300) = %v, want -Inf", d, got)
	}
	if got := d.LogProb(math.Inf(1)); !math.IsInf(got, -1) {
		t.Errorf("%+v.LogProb(+Inf) = %v, want -Inf", d, got)
	}
}

func TestSinhArcsinhDomain(t *testing.T) {
	bad := []struct{ mu, sigma, eps, delta float64 }{
		{0, 0, 0, 1},
		{0, -1, 0, 1},
		{0, 1, 0, 0},
		{0, 1, 0, -2},
		{0, math.NaN(), 0, 1},
		{0, 1, 0, math.NaN()},
		{math.NaN(), 1, 0, 1},
		{0, 1, math.NaN(), 1},
		{math.Inf(1), 1, 0, 1},
		{0, math.Inf(1), 0, 1},
	}
	for _, p := range bad {
		_, err := New(p.mu, p.sigma, p.eps, p.delta)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("New(%v, %v, %v, %v) error = %v, want ErrDomain", p.mu, p.sigma, p.eps, p.delta, err)
		}
	}

	if _, err := New(0, 1, 0, 1); err != nil {
		t.Errorf("New(0, 1, 0, 1) error = %v, want nil", err)
	}

	// Methods on an invalid literal must not silently produce
	// NaNs.
	defer func() {
		if recover() == nil {
			t.Errorf("LogProb on invalid parameters did not panic")
		}
	}()
	SinhArcsinh{Mu: 0, Sigma: -1, Epsilon: 0, Delta: 1}.LogProb(0)
}

func TestSinhArcsinhCDF(t *testing.T) {
	dists := []SinhArcsinh{
		{Mu: 0, Sigma: 1, Epsilon: 0, Delta: 1},
		{Mu: 2, Sigma: 0.5, Epsilon: 1, Delta: 0.8},
		{Mu: -3, Sigma: 4, Epsilon: -0.7, Delta: 2},
	}
	for _, d := range dists {
		// The CDF at the closed-form median is one half.
		if got := d.CDF(d.Median()); !aeq(0.5, got) {
			t.Errorf("%+v.CDF(Median) = %v, want 0.5", d, got)
		}

		// InvCDF inverts CDF up to rounding.
		for y := -10.0; y <= 10; y += 0.5 {
			p := d.CDF(y)
			if p < 1e-9 || p > 1-1e-9 {
				// Tail quantiles lose precision in the
				// normal quantile function.
				continue
			}
			got := d.InvCDF(p)
			if !aeqTol(y, got, 1e-6*(1+math.Abs(y))) {
				t.Errorf("%+v.InvCDF(CDF(%v)) = %v", d, y, got)
			}
		}

		// The CDF is the integral of the PDF: compare against
		// trapezoidal integration over the bulk of the support.
		lo, hi := d.Bounds()
		const n = 20000
		w := (hi - lo) / n
		integral := d.CDF(lo)
		for i := 0; i < n; i++ {
			x0, x1 := lo+float64(i)*w, lo+float64(i+1)*w
			integral += (d.PDF(x0) + d.PDF(x1)) / 2 * w
			if i%1000 == 999 {
				if got := d.CDF(x1); !aeqTol(integral, got, 1e-4) {
					t.Fatalf("%+v.CDF(%v) = %v, want integral %v", d, x1, got, integral)
				}
			}
		}
	}
}

func TestSinhArcsinhRand(t *testing.T) {
	dists := []SinhArcsinh{
		{Mu: 0, Sigma: 1, Epsilon: 0, Delta: 1},
		{Mu: 1, Sigma: 2, Epsilon: 0.5, Delta: 0.7},
		{Mu: -2, Sigma: 0.5, Epsilon: -1, Delta: 1.6},
	}
	for i, d := range dists {
		d.Src = rand.NewSource(uint64(42 + i))
		const n = 100000
		xs := d.RandN(n)

		// One-sample Kolmogorov-Smirnov check of the draws
		// against the closed-form CDF. 1.95/sqrt(n) is the
		// critical value at significance level 0.001.
		sort.Float64s(xs)
		var ks float64
		for j, x := range xs {
			p := d.CDF(x)
			lo, hi := float64(j)/n, float64(j+1)/n
			ks = math.Max(ks, math.Max(p-lo, hi-p))
		}
		if ks*math.Sqrt(n) > 1.95 {
			t.Errorf("%+v: KS statistic %v exceeds the 0.1%% critical value", d, ks)
		}

		med := Sample{Xs: xs, Sorted: true}.Quantile(0.5)
		if !aeqTol(d.Median(), med, 0.05*(1+math.Abs(d.Median()))) {
			t.Errorf("%+v: sample median %v, want ≅ %v", d, med, d.Median())
		}
	}
}

func TestSinhArcsinhBounds(t *testing.T) {
	d := SinhArcsinh{Mu: 3, Sigma: 2, Epsilon: 0.4, Delta: 1.2}
	lo, hi := d.Bounds()
	if !(lo < d.Median() && d.Median() < hi) {
		t.Errorf("Bounds() = (%v, %v) does not bracket the median %v", lo, hi, d.Median())
	}
	if got := d.CDF(hi) - d.CDF(lo); !aeqTol(0.998, got, 1e-6) {
		t.Errorf("weight within Bounds = %v, want 0.998", got)
	}
}
