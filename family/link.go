// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package family

import "math"

// A Link is a monotonic transform between a distributional
// parameter's constrained domain and the unconstrained scale a linear
// predictor lives on. Links are explicit values; regression code
// receives them as part of a Family rather than resolving them by
// name.
type Link struct {
	name       string
	apply      func(float64) float64
	invert     func(float64) float64
	lowerBound float64
}

// Name returns the link's conventional identifier, such as "identity"
// or "log".
func (l Link) Name() string { return l.name }

// Apply maps a parameter value from its constrained domain to the
// unconstrained scale.
func (l Link) Apply(x float64) float64 { return l.apply(x) }

// Invert maps an unconstrained linear predictor value back to the
// parameter's constrained domain.
func (l Link) Invert(eta float64) float64 { return l.invert(eta) }

// LowerBound returns the exclusive lower bound of the parameter
// domain this link maps from: -Inf for an unconstrained parameter, 0
// for a strictly positive one.
func (l Link) LowerBound() float64 { return l.lowerBound }

func ident(x float64) float64 { return x }

// Identity is the identity link for unconstrained parameters.
var Identity = Link{
	name:       "identity",
	apply:      ident,
	invert:     ident,
	lowerBound: math.Inf(-1),
}

// Log is the log link for strictly positive parameters.
var Log = Link{
	name:       "log",
	apply:      math.Log,
	invert:     math.Exp,
	lowerBound: 0,
}
