// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/tensor"
	"github.com/mrbuche/flavio-sub000/tests"
)

func sampleTriangle() Triangle[Current] {
	return Triangle[Current]{{0.1, -0.2, 0.3}, {1.2, 0.1, 0.2}, {0.3, 0.9, 0.6}}
}

func Test_triangle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triangle01")

	x := sampleTriangle()
	e, d := x.Basis(), x.DualBasis()
	for m := 0; m < GNDIM; m++ {
		for n := 0; n < GNDIM; n++ {
			δ := 0.0
			if m == n {
				δ = 1
			}
			chk.Float64(tst, "e·E", 1e-14, e[m].Dot(d[n]), δ)
		}
	}

	// normal
	n := x.Normal()
	chk.Float64(tst, "|n|", 1e-15, n.Norm(), 1)
	chk.Float64(tst, "n·e0", 1e-15, n.Dot(e[0]), 0)
	chk.Float64(tst, "n·e1", 1e-15, n.Dot(e[1]), 0)
	chk.Float64(tst, "area", 1e-15, x.Area(), e[0].Cross(e[1]).Norm()/2)

	// Σ x_a ⊗ G_a = δ - n ⊗ n
	G := x.GradientVectors()
	var A tensor.Ten2[Current, Current]
	for a := 0; a < 3; a++ {
		A = A.Add(tensor.Dyad(x[a], G[a]))
	}
	tests.Ten2(tst, "Σ x⊗G", 1e-14, A, tensor.Identity[Current, Current]().Sub(tensor.Dyad(n, n)))
}

func Test_triangle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triangle02")

	x := sampleTriangle()
	g := x.NormalGradients()
	h := x.NormalTangents()
	for a := 0; a < 3; a++ {
		tests.DerivVecVec(tst, "∂n/∂x", tests.TOL, g[a], x[a], func(y tensor.Vec[Current]) tensor.Vec[Current] {
			z := x
			z[a] = y
			return z.Normal()
		})
		for b := 0; b < 3; b++ {
			tests.DerivTen2Vec(tst, "∂²n/∂x∂x", tests.TOL, h[a][b], x[b], func(y tensor.Vec[Current]) tensor.Ten2[Current, Current] {
				z := x
				z[b] = y
				return z.NormalGradients()[a]
			})

			// symmetry in (a,k) <-> (b,l)
			for i := 0; i < tensor.D; i++ {
				for k := 0; k < tensor.D; k++ {
					for l := 0; l < tensor.D; l++ {
						if !tests.Close(h[a][b][i][k][l], h[b][a][i][l][k], 1e-13) {
							tst.Errorf("normal tangents are not symmetric\n")
							return
						}
					}
				}
			}
		}
	}
}

func Test_triangle03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triangle03")

	x := sampleTriangle()
	v := Triangle[Current]{{0.3, 0.1, -0.2}, {-0.1, 0.4, 0.2}, {0.2, -0.3, 0.1}}
	tests.DerivVecSca(tst, "dn/dt", tests.TOL, x.NormalRate(v), 0, func(t float64) tensor.Vec[Current] {
		var xt Triangle[Current]
		for a := 0; a < 3; a++ {
			xt[a] = x[a].Add(v[a].Scale(t))
		}
		return xt.Normal()
	})

	// translation invariance
	t := tensor.Vec[Current]{3, -2, 1}
	var y Triangle[Current]
	for a := 0; a < 3; a++ {
		y[a] = x[a].Add(t)
	}
	tests.Vec(tst, "n(x+t)", 1e-14, y.Normal(), x.Normal())

	// objectivity
	R := tests.RotationCurrent()
	Rt := R.Transpose()
	for a := 0; a < 3; a++ {
		y[a] = R.MulVec(x[a])
	}
	chk.Float64(tst, "A(Rx)", 1e-14, y.Area(), x.Area())
	tests.Vec(tst, "n(Rx)", 1e-14, y.Normal(), R.MulVec(x.Normal()))
	e, eR := x.Basis(), y.Basis()
	d, dR := x.DualBasis(), y.DualBasis()
	for i := 0; i < GNDIM; i++ {
		tests.Vec(tst, "e(Rx)", 1e-14, eR[i], R.MulVec(e[i]))
		tests.Vec(tst, "E(Rx)", 1e-14, dR[i], R.MulVec(d[i]))
	}
	g, gR := x.NormalGradients(), y.NormalGradients()
	h, hR := x.NormalTangents(), y.NormalTangents()
	for a := 0; a < 3; a++ {
		tests.Ten2(tst, "∂n/∂x(Rx)", 1e-13, gR[a], tensor.Dot(tensor.Dot(R, g[a]), Rt))
		for b := 0; b < 3; b++ {
			var rotated tensor.Ten3[Current, Current, Current]
			for i := 0; i < tensor.D; i++ {
				for k := 0; k < tensor.D; k++ {
					for l := 0; l < tensor.D; l++ {
						for m := 0; m < tensor.D; m++ {
							for n := 0; n < tensor.D; n++ {
								for p := 0; p < tensor.D; p++ {
									rotated[i][k][l] += R[i][m] * R[k][n] * R[l][p] * h[a][b][m][n][p]
								}
							}
						}
					}
				}
			}
			tests.Ten3(tst, "∂²n/∂x∂x(Rx)", 1e-12, hR[a][b], rotated)
		}
	}
}
