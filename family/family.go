// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package family describes distribution families to distributional
// regression code: every parameter of the outcome distribution, not
// just its mean, is modeled as a function of covariates, so a family
// carries one link per parameter alongside its log-likelihood
// evaluator and posterior-predictive sampler.
//
// A Family is a plain value built by a constructor and passed
// explicitly to whatever fitting or prediction code consumes it.
// There is no global registry and no name-convention dispatch.
package family // import "github.com/distreg/shash/family"

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/distreg/shash/dist"
)

// A Param describes one distributional parameter: its name and the
// link function mapping it to the unconstrained scale of a linear
// predictor.
type Param struct {
	Name string
	Link Link
}

// Support describes the support of a family's outcome distribution as
// an interval.
type Support struct {
	Lower, Upper float64
}

// RealLine is the support of distributions over all reals.
var RealLine = Support{math.Inf(-1), math.Inf(1)}

// A Family is the capability contract a distribution family offers to
// regression code: named, ordered, linked parameters, the outcome
// support, a pointwise log-likelihood evaluator and a sampler. The
// first parameter is the primary location parameter that the
// regression outcome's linear predictor targets.
type Family struct {
	// Name identifies the family, e.g. in fit summaries.
	Name string

	// Params lists the distributional parameters in the order the
	// evaluators take them.
	Params []Param

	// Support is the support of the outcome distribution.
	Support Support

	// LogLik returns the log density of observation y under one
	// set of parameter values. It validates the parameters and
	// returns an error wrapping dist.ErrDomain for values outside
	// the parameter domain.
	LogLik func(y, mu, sigma, eps, delta float64) (float64, error)

	// Sample returns one draw from the distribution under one set
	// of parameter values, consuming variates from src. A nil src
	// uses the global random source. It validates the parameters
	// the same way LogLik does.
	Sample func(src rand.Source, mu, sigma, eps, delta float64) (float64, error)
}

// SinhArcsinh returns the four-parameter sinh-arcsinh family of Jones
// and Pewsey (2009). Location mu and skewness eps are unconstrained
// with identity links; scale sigma and tail weight delta are strictly
// positive with log links.
func SinhArcsinh() Family {
	return Family{
		Name: "sinhasinh",
		Params: []Param{
			{Name: "mu", Link: Identity},
			{Name: "sigma", Link: Log},
			{Name: "eps", Link: Identity},
			{Name: "delta", Link: Log},
		},
		Support: RealLine,
		LogLik: func(y, mu, sigma, eps, delta float64) (float64, error) {
			d, err := dist.New(mu, sigma, eps, delta)
			if err != nil {
				return 0, err
			}
			return d.LogProb(y), nil
		},
		Sample: func(src rand.Source, mu, sigma, eps, delta float64) (float64, error) {
			d, err := dist.New(mu, sigma, eps, delta)
			if err != nil {
				return 0, err
			}
			d.Src = src
			return d.Rand(), nil
		},
	}
}
