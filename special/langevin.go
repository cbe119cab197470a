// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package special implements special functions used by constitutive models
package special

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	SMALL     = 1e-2  // below this, series expansions are used
	NEWTONTOL = 1e-14 // tolerance on the residual of the inverse Langevin function
	NEWTONMAX = 100   // maximum number of Newton iterations
)

// Langevin computes ℒ(x) = coth(x) - 1/x
func Langevin(x float64) float64 {
	if math.Abs(x) < SMALL {
		x2 := x * x
		return x * (1.0/3.0 - x2/45.0 + 2.0*x2*x2/945.0)
	}
	return 1.0/math.Tanh(x) - 1.0/x
}

// LangevinDerivative computes ℒ'(x) = 1/x² - 1/sinh²(x)
func LangevinDerivative(x float64) float64 {
	if math.Abs(x) < SMALL {
		x2 := x * x
		return 1.0/3.0 - x2/15.0 + 2.0*x2*x2/189.0
	}
	s := math.Sinh(x)
	return 1.0/(x*x) - 1.0/(s*s)
}

// InverseLangevin computes x such that ℒ(x) = y for -1 < y < 1
//  Note: it panics if |y| ≥ 1
func InverseLangevin(y float64) float64 {
	if math.Abs(y) >= 1 {
		chk.Panic("inverse Langevin function is undefined for |y| ≥ 1. y = %v", y)
	}
	if y == 0 {
		return 0
	}
	if y < 0 {
		return -InverseLangevin(-y)
	}

	x, ok := newton(y, NEWTONMAX)
	if !ok {
		chk.Panic("inverse Langevin function did not converge after %d iterations. y = %v", NEWTONMAX, y)
	}
	return x
}

// newton solves ℒ(x) = y for 0 < y < 1 starting from the Jedynak rational approximation
func newton(y float64, maxit int) (x float64, converged bool) {
	y2 := y * y
	y4 := y2 * y2
	x = y * (3 - 1.00651*y2 - 0.962251*y4 + 1.47353*y4*y2 - 0.48953*y4*y4) / ((1 - y) * (1 + 1.01524*y))
	for it := 0; it < maxit; it++ {
		res := Langevin(x) - y
		if math.Abs(res) < NEWTONTOL {
			return x, true
		}
		x -= res / LangevinDerivative(x)
	}
	return x, math.Abs(Langevin(x)-y) < NEWTONTOL
}
