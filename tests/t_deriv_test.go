// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_deriv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deriv01")

	// y(t) = (t², t³, 5) is evaluated once per stencil point
	ncalls := 0
	d, err := deriv(0.7, 3, func(t float64) ([]float64, error) {
		ncalls++
		return []float64{t * t, t * t * t, 5}, nil
	})
	if err != nil {
		tst.Errorf("deriv failed: %v\n", err)
		return
	}
	chk.Float64(tst, "d(t²)/dt", 1e-9, d[0], 1.4)
	chk.Float64(tst, "d(t³)/dt", 1e-9, d[1], 3*0.49)
	chk.Float64(tst, "d(5)/dt", 1e-17, d[2], 0)
	if ncalls != 2 {
		tst.Errorf("y should be called twice; it was called %d times\n", ncalls)
	}

	// errors are reported
	_, err = deriv(0, 1, func(t float64) ([]float64, error) {
		return nil, chk.Err("cannot evaluate at %g", t)
	})
	if err == nil {
		tst.Errorf("deriv should return the error of y\n")
	}
}

func Test_deriv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deriv02")

	// ∂(½ X:X)/∂X = X
	X := DeformationGradient()
	DerivScaTen2(tst, "∂(½X:X)/∂X", TOL, X, X, func(X tensor.Ten2[tensor.Current, tensor.Reference]) (float64, error) {
		return X.FullContraction(X) / 2, nil
	})

	// ∂X/∂X = δ_ik δ_JL
	var I4 tensor.Ten4[tensor.Current, tensor.Reference, tensor.Current, tensor.Reference]
	for i := 0; i < tensor.D; i++ {
		for J := 0; J < tensor.D; J++ {
			I4[i][J][i][J] = 1
		}
	}
	DerivTen2Ten2(tst, "∂X/∂X", TOL, I4, X, func(X tensor.Ten2[tensor.Current, tensor.Reference]) (tensor.Ten2[tensor.Current, tensor.Reference], error) {
		return X, nil
	})

	// ∂(A x)/∂x = A
	A := RotationCurrent()
	x := tensor.Vec[tensor.Current]{0.3, -1, 2}
	DerivVecVec(tst, "∂(Ax)/∂x", TOL, A, x, A.MulVec)

	// nodal: f_a = 2 x_a + x_0 gives K_ab = 2 δ_ab δ + δ_b0 δ
	xs := tensor.VecList[tensor.Current]{{0, 0, 0}, {1, 0.1, 0}, {0.2, 1.1, 0.05}}
	δ := tensor.Identity[tensor.Current, tensor.Current]()
	K := make([][]tensor.Ten2[tensor.Current, tensor.Current], len(xs))
	for a := range K {
		K[a] = make([]tensor.Ten2[tensor.Current, tensor.Current], len(xs))
		K[a][a] = δ.Scale(2)
		K[a][0] = K[a][0].Add(δ)
	}
	DerivNodalNodal(tst, "∂f/∂x", TOL, K, xs, func(y tensor.VecList[tensor.Current]) (f tensor.VecList[tensor.Current], err error) {
		f = make(tensor.VecList[tensor.Current], len(y))
		for a := range y {
			f[a] = y[a].Scale(2).Add(y[0])
		}
		return
	})

	// ∂(½ Σ x_a·x_a)/∂x_a = x_a
	DerivScaNodal(tst, "∂(½x·x)/∂x", TOL, xs, xs, func(y tensor.VecList[tensor.Current]) (res float64, err error) {
		for _, v := range y {
			res += v.Dot(v) / 2
		}
		return
	})
}
