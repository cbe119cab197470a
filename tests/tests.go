// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements finite-difference and invariance checkers used by tests of other packages
package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// constants
const (
	STEP = 1e-6 // finite difference step
	TOL  = 1e-6 // default relative tolerance
)

// Close returns whether |a - b| ≤ tol max(1, |b|)
func Close(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b))
}

// Float64 checks a against the reference value b
func Float64(tst *testing.T, msg string, tol, a, b float64) {
	if !Close(a, b, tol) {
		tst.Errorf("%s failed: %v != %v (diff = %g)\n", msg, a, b, math.Abs(a-b))
		return
	}
	if testing.Verbose() && io.Verbose {
		io.Pf("%s OK\n", msg)
	}
}

// Vec checks vectors component-wise
func Vec[I tensor.Config](tst *testing.T, msg string, tol float64, a, b tensor.Vec[I]) {
	for i := 0; i < tensor.D; i++ {
		if !Close(a[i], b[i], tol) {
			tst.Errorf("%s[%d] failed: %v != %v\n", msg, i, a[i], b[i])
			return
		}
	}
}

// VecList checks lists of vectors component-wise
func VecList[I tensor.Config](tst *testing.T, msg string, tol float64, a, b tensor.VecList[I]) {
	if len(a) != len(b) {
		tst.Errorf("%s failed: lengths differ: %d != %d\n", msg, len(a), len(b))
		return
	}
	for n := range a {
		Vec(tst, io.Sf("%s[%d]", msg, n), tol, a[n], b[n])
	}
}

// Ten2 checks rank-2 tensors component-wise
func Ten2[I, J tensor.Config](tst *testing.T, msg string, tol float64, a, b tensor.Ten2[I, J]) {
	for i := 0; i < tensor.D; i++ {
		for j := 0; j < tensor.D; j++ {
			if !Close(a[i][j], b[i][j], tol) {
				tst.Errorf("%s[%d][%d] failed: %v != %v\n", msg, i, j, a[i][j], b[i][j])
				return
			}
		}
	}
}

// Ten3 checks rank-3 tensors component-wise
func Ten3[I, J, K tensor.Config](tst *testing.T, msg string, tol float64, a, b tensor.Ten3[I, J, K]) {
	for i := 0; i < tensor.D; i++ {
		for j := 0; j < tensor.D; j++ {
			for k := 0; k < tensor.D; k++ {
				if !Close(a[i][j][k], b[i][j][k], tol) {
					tst.Errorf("%s[%d][%d][%d] failed: %v != %v\n", msg, i, j, k, a[i][j][k], b[i][j][k])
					return
				}
			}
		}
	}
}

// Ten4 checks rank-4 tensors component-wise
func Ten4[I, J, K, L tensor.Config](tst *testing.T, msg string, tol float64, a, b tensor.Ten4[I, J, K, L]) {
	for i := 0; i < tensor.D; i++ {
		for j := 0; j < tensor.D; j++ {
			for k := 0; k < tensor.D; k++ {
				for l := 0; l < tensor.D; l++ {
					if !Close(a[i][j][k][l], b[i][j][k][l], tol) {
						tst.Errorf("%s[%d][%d][%d][%d] failed: %v != %v\n", msg, i, j, k, l, a[i][j][k][l], b[i][j][k][l])
						return
					}
				}
			}
		}
	}
}

// Nodal checks lists of lists of rank-2 tensors; e.g. nodal stiffnesses
func Nodal[I, J tensor.Config](tst *testing.T, msg string, tol float64, a, b [][]tensor.Ten2[I, J]) {
	if len(a) != len(b) {
		tst.Errorf("%s failed: lengths differ: %d != %d\n", msg, len(a), len(b))
		return
	}
	for m := range a {
		for n := range a[m] {
			Ten2(tst, io.Sf("%s[%d][%d]", msg, m, n), tol, a[m][n], b[m][n])
		}
	}
}
