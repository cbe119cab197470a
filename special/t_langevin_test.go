// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package special

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_langevin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("langevin01")

	// exact values
	chk.Float64(tst, "ℒ(0)", 1e-17, Langevin(0), 0)
	chk.Float64(tst, "ℒ'(0)", 1e-17, LangevinDerivative(0), 1.0/3.0)
	chk.Float64(tst, "ℒ(1)", 1e-15, Langevin(1), 1.0/math.Tanh(1)-1)
	chk.Float64(tst, "ℒ(-2)", 1e-15, Langevin(-2), -Langevin(2))

	// continuity across the series switch
	for _, x := range []float64{SMALL * (1 - 1e-9), SMALL * (1 + 1e-9)} {
		chk.Float64(tst, io.Sf("ℒ(%g)", x), 1e-13, Langevin(x), x/3-x*x*x/45+2*math.Pow(x, 5)/945)
	}

	// derivative versus central differences
	for _, x := range []float64{-5, -0.5, -1e-3, 0, 1e-3, 0.2, 1, 3, 10} {
		num := fd.Derivative(Langevin, x, &fd.Settings{Formula: fd.Central, Step: 1e-6})
		chk.Float64(tst, io.Sf("ℒ'(%g)", x), 1e-9, LangevinDerivative(x), num)
	}
}

func Test_langevin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("langevin02")

	chk.Float64(tst, "ℒ⁻¹(0)", 1e-17, InverseLangevin(0), 0)
	for _, y := range []float64{-0.99, -0.5, -1e-5, 1e-5, 0.1, 0.3535533905932738, 0.5, 0.9, 0.99, 0.999} {
		x := InverseLangevin(y)
		io.Pforan("y = %8.5f  ℒ⁻¹(y) = %v\n", y, x)
		chk.Float64(tst, io.Sf("ℒ(ℒ⁻¹(%g))", y), 1e-13, Langevin(x), y)
		chk.Float64(tst, io.Sf("ℒ⁻¹(-%g)", y), 1e-15, InverseLangevin(-y), -x)
	}
	for _, x := range []float64{0.01, 0.5, 2, 7, 30} {
		chk.Float64(tst, io.Sf("ℒ⁻¹(ℒ(%g))", x), 1e-9*math.Max(1, x), InverseLangevin(Langevin(x)), x)
	}
}

func Test_langevin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("langevin03")

	for _, y := range []float64{1, -1, 1.5} {
		func() {
			defer func() {
				if err := recover(); err == nil {
					tst.Errorf("ℒ⁻¹(%g) should panic\n", y)
				}
			}()
			InverseLangevin(y)
		}()
	}
}

func Test_langevin04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("langevin04")

	// Newton's method reports whether it converged
	for _, y := range []float64{1e-5, 0.5, 0.999} {
		x, ok := newton(y, NEWTONMAX)
		if !ok {
			tst.Errorf("Newton's method should converge for y = %g\n", y)
		}
		chk.Float64(tst, io.Sf("ℒ(x(%g))", y), 1e-13, Langevin(x), y)
	}
	if _, ok := newton(0.9, 0); ok {
		tst.Errorf("Newton's method without iterations should not converge for y = 0.9\n")
	}
}
