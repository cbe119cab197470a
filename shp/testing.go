// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes and sum up to 1.0 @ integration points
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {
		S := shape.CalcS(shape.Vertex(n))
		if verbose {
			io.Pf("S = %v\n", S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(S[m] - 1.0)
			} else {
				errS += math.Abs(S[m])
			}
		}
	}

	// partition of unity
	for _, r := range shape.Ips {
		sum := 0.0
		for _, s := range shape.CalcS(r) {
			sum += s
		}
		errS += math.Abs(sum - 1.0)
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckProj checks that the projection basis sums up to 1.0 @ vertices and integration points
func CheckProj(tst *testing.T, shape *Shape, tol float64, verbose bool) {
	errχ := 0.0
	points := shape.Ips
	for n := 0; n < shape.Nverts; n++ {
		points = append(points[:len(points):len(points)], shape.Vertex(n))
	}
	for _, r := range points {
		χ := shape.CalcProj(r)
		if verbose {
			io.Pf("χ(%v) = %v\n", r, χ)
		}
		sum := 0.0
		for _, v := range χ {
			sum += v
		}
		errχ += math.Abs(sum - 1.0)
	}
	if errχ > tol {
		tst.Errorf("%s projection basis failed with err = %g\n", shape.Type, errχ)
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	h := 1e-5
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)
	S := make([]float64, shape.Nverts)
	dSdR := make([][]float64, shape.Nverts)
	for n := range dSdR {
		dSdR[n] = make([]float64, GNDIM)
	}

	// analytical
	shape.Func(S, dSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < GNDIM; i++ {
			dSndRi := fd.Derivative(func(t float64) float64 {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				return S_tmp[n]
			}, r[i], &fd.Settings{Formula: fd.Central, Step: h})
			if verbose {
				io.Pforan("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, dSdR[n][i], dSndRi)
			}
			if math.Abs(dSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(dSdR[n][i]-dSndRi))
				return
			}
		}
	}
}
