// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
	"gonum.org/v1/gonum/diff/fd"
)

// central holds the settings of the central differences; points are at t ± STEP/2
var central = &fd.Settings{Formula: fd.Central, Step: STEP / 2}

// deriv computes dy_m/dt at t for the n components of y using central differences.
// y is evaluated once per stencil point
func deriv(t float64, n int, y func(t float64) ([]float64, error)) (dydt []float64, err error) {
	cache := make(map[float64][]float64, 2)
	component := func(m int) func(s float64) float64 {
		return func(s float64) float64 {
			v, ok := cache[s]
			if !ok {
				var e error
				if v, e = y(s); e != nil {
					if err == nil {
						err = e
					}
					v = make([]float64, n)
				}
				cache[s] = v
			}
			return v[m]
		}
	}
	dydt = make([]float64, n)
	for m := 0; m < n; m++ {
		dydt[m] = fd.Derivative(component(m), t, central)
	}
	return
}

// flat2 returns the components of a second order tensor in row-major order
func flat2[I, J tensor.Config](a tensor.Ten2[I, J]) []float64 {
	v := make([]float64, 0, tensor.D*tensor.D)
	for i := 0; i < tensor.D; i++ {
		v = append(v, a[i][:]...)
	}
	return v
}

// flatList returns the components of a list of vectors
func flatList[I tensor.Config](a tensor.VecList[I]) []float64 {
	v := make([]float64, 0, tensor.D*len(a))
	for _, x := range a {
		v = append(v, x[:]...)
	}
	return v
}

// DerivScaTen2 checks ana = ∂f/∂X at X using central differences
func DerivScaTen2[K, L tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.Ten2[K, L], X tensor.Ten2[K, L], f func(X tensor.Ten2[K, L]) (float64, error)) {
	var num tensor.Ten2[K, L]
	for k := 0; k < tensor.D; k++ {
		for l := 0; l < tensor.D; l++ {
			d, err := deriv(X[k][l], 1, func(t float64) ([]float64, error) {
				Xt := X
				Xt[k][l] = t
				res, err := f(Xt)
				return []float64{res}, err
			})
			if err != nil {
				tst.Errorf("%s failed: %v\n", msg, err)
				return
			}
			num[k][l] = d[0]
		}
	}
	Ten2(tst, msg, tol, ana, num)
}

// DerivTen2Ten2 checks ana = ∂f/∂X at X using central differences
func DerivTen2Ten2[I, J, K, L tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.Ten4[I, J, K, L], X tensor.Ten2[K, L], f func(X tensor.Ten2[K, L]) (tensor.Ten2[I, J], error)) {
	var num tensor.Ten4[I, J, K, L]
	for k := 0; k < tensor.D; k++ {
		for l := 0; l < tensor.D; l++ {
			d, err := deriv(X[k][l], tensor.D*tensor.D, func(t float64) ([]float64, error) {
				Xt := X
				Xt[k][l] = t
				res, err := f(Xt)
				return flat2(res), err
			})
			if err != nil {
				tst.Errorf("%s failed: %v\n", msg, err)
				return
			}
			for i := 0; i < tensor.D; i++ {
				for j := 0; j < tensor.D; j++ {
					num[i][j][k][l] = d[tensor.D*i+j]
				}
			}
		}
	}
	Ten4(tst, msg, tol, ana, num)
}

// DerivVecVec checks ana[i][k] = ∂f_i/∂x_k at x using central differences
func DerivVecVec[I, K tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.Ten2[I, K], x tensor.Vec[K], f func(x tensor.Vec[K]) tensor.Vec[I]) {
	var num tensor.Ten2[I, K]
	for k := 0; k < tensor.D; k++ {
		d, _ := deriv(x[k], tensor.D, func(t float64) ([]float64, error) {
			xt := x
			xt[k] = t
			res := f(xt)
			return res[:], nil
		})
		for i := 0; i < tensor.D; i++ {
			num[i][k] = d[i]
		}
	}
	Ten2(tst, msg, tol, ana, num)
}

// DerivTen2Vec checks ana[i][j][k] = ∂f_ij/∂x_k at x using central differences
func DerivTen2Vec[I, J, K tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.Ten3[I, J, K], x tensor.Vec[K], f func(x tensor.Vec[K]) tensor.Ten2[I, J]) {
	var num tensor.Ten3[I, J, K]
	for k := 0; k < tensor.D; k++ {
		d, _ := deriv(x[k], tensor.D*tensor.D, func(t float64) ([]float64, error) {
			xt := x
			xt[k] = t
			return flat2(f(xt)), nil
		})
		for i := 0; i < tensor.D; i++ {
			for j := 0; j < tensor.D; j++ {
				num[i][j][k] = d[tensor.D*i+j]
			}
		}
	}
	Ten3(tst, msg, tol, ana, num)
}

// DerivScaNodal checks ana[a][k] = ∂f/∂x_a^k at nodal coordinates x using central differences
func DerivScaNodal[I tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.VecList[I], x tensor.VecList[I], f func(x tensor.VecList[I]) (float64, error)) {
	num := make(tensor.VecList[I], len(x))
	for a := range x {
		for k := 0; k < tensor.D; k++ {
			d, err := deriv(x[a][k], 1, func(t float64) ([]float64, error) {
				xt := x.Clone()
				xt[a][k] = t
				res, err := f(xt)
				return []float64{res}, err
			})
			if err != nil {
				tst.Errorf("%s failed: %v\n", msg, err)
				return
			}
			num[a][k] = d[0]
		}
	}
	VecList(tst, msg, tol, ana, num)
}

// DerivNodalNodal checks ana[a][b][k][l] = ∂f_a^k/∂x_b^l at nodal coordinates x using central differences
func DerivNodalNodal[I tensor.Config](tst *testing.T, msg string, tol float64, ana [][]tensor.Ten2[I, I], x tensor.VecList[I], f func(x tensor.VecList[I]) (tensor.VecList[I], error)) {
	n := len(x)
	num := make([][]tensor.Ten2[I, I], n)
	for a := 0; a < n; a++ {
		num[a] = make([]tensor.Ten2[I, I], n)
	}
	for b := 0; b < n; b++ {
		for l := 0; l < tensor.D; l++ {
			d, err := deriv(x[b][l], tensor.D*n, func(t float64) ([]float64, error) {
				xt := x.Clone()
				xt[b][l] = t
				res, err := f(xt)
				return flatList(res), err
			})
			if err != nil {
				tst.Errorf("%s failed: %v\n", msg, err)
				return
			}
			for a := 0; a < n; a++ {
				for k := 0; k < tensor.D; k++ {
					num[a][b][k][l] = d[tensor.D*a+k]
				}
			}
		}
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			Ten2(tst, io.Sf("%s[%d][%d]", msg, a, b), tol, ana[a][b], num[a][b])
		}
	}
}

// DerivVecSca checks ana = df/dt at t using central differences
func DerivVecSca[I tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.Vec[I], t float64, f func(t float64) tensor.Vec[I]) {
	d, _ := deriv(t, tensor.D, func(t float64) ([]float64, error) {
		res := f(t)
		return res[:], nil
	})
	Vec(tst, msg, tol, ana, tensor.Vec[I](d))
}

// DerivTen2Sca checks ana = df/dt at t using central differences
func DerivTen2Sca[I, J tensor.Config](tst *testing.T, msg string, tol float64, ana tensor.Ten2[I, J], t float64, f func(t float64) tensor.Ten2[I, J]) {
	d, _ := deriv(t, tensor.D*tensor.D, func(t float64) ([]float64, error) {
		return flat2(f(t)), nil
	})
	var num tensor.Ten2[I, J]
	for i := 0; i < tensor.D; i++ {
		for j := 0; j < tensor.D; j++ {
			num[i][j] = d[tensor.D*i+j]
		}
	}
	Ten2(tst, msg, tol, ana, num)
}
