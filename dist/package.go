// Copyright 2025 The Shash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements the four-parameter sinh-arcsinh distribution
// of Jones and Pewsey (2009), along with the sampling and density
// estimation support needed to check it.
package dist // import "github.com/distreg/shash/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
