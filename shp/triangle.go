// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// Triangle holds the vertex coordinates of a flat linear triangle
type Triangle[C tensor.Config] [3]tensor.Vec[C]

// Basis computes the covariant basis e_m = Σ_a x_a GradOp[a][m]
func (x Triangle[C]) Basis() (e [GNDIM]tensor.Vec[C]) {
	for m := 0; m < GNDIM; m++ {
		for a := 0; a < 3; a++ {
			e[m] = e[m].Add(x[a].Scale(GradOp[a][m]))
		}
	}
	return
}

// DualBasis computes the contravariant basis E^m = G^mn e_n with G_mn = e_m · e_n
func (x Triangle[C]) DualBasis() (d [GNDIM]tensor.Vec[C]) {
	e := x.Basis()
	g00, g01, g11 := e[0].Dot(e[0]), e[0].Dot(e[1]), e[1].Dot(e[1])
	det := g00*g11 - g01*g01
	if det == 0 {
		chk.Panic("cannot compute dual basis of degenerate triangle %v", x)
	}
	d[0] = e[0].Scale(g11 / det).Sub(e[1].Scale(g01 / det))
	d[1] = e[1].Scale(g00 / det).Sub(e[0].Scale(g01 / det))
	return
}

// GradientVectors computes G_a = Σ_m GradOp[a][m] E^m such that Σ_a x_a ⊗ G_a projects onto the plane
func (x Triangle[C]) GradientVectors() (g [3]tensor.Vec[C]) {
	d := x.DualBasis()
	for a := 0; a < 3; a++ {
		g[a] = d[0].Scale(GradOp[a][0]).Add(d[1].Scale(GradOp[a][1]))
	}
	return
}

// Area returns the area of the triangle
func (x Triangle[C]) Area() float64 {
	e := x.Basis()
	return e[0].Cross(e[1]).Norm() / 2.0
}

// Normal computes the unit normal n = s/|s| with s = e_1 × e_2
func (x Triangle[C]) Normal() tensor.Vec[C] {
	e := x.Basis()
	return e[0].Cross(e[1]).Normalized()
}

// NormalGradients computes g[a][i][k] = ∂n_i/∂x_a^k
func (x Triangle[C]) NormalGradients() (g [3]tensor.Ten2[C, C]) {
	n, r, u := x.normalData()
	P := projector(n)
	for a := 0; a < 3; a++ {
		for k := 0; k < tensor.D; k++ {
			for i := 0; i < tensor.D; i++ {
				for j := 0; j < tensor.D; j++ {
					g[a][i][k] += P[i][j] * u[a][k][j] / r
				}
			}
		}
	}
	return
}

// NormalTangents computes h[a][b][i][k][l] = ∂²n_i/∂x_a^k∂x_b^l
func (x Triangle[C]) NormalTangents() (h [3][3]tensor.Ten3[C, C, C]) {
	n, r, u := x.normalData()
	P := projector(n)
	g := x.NormalGradients()
	ε := tensor.LeviCivita()
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			c := GradOp[a][0]*GradOp[b][1] - GradOp[a][1]*GradOp[b][0]
			for k := 0; k < tensor.D; k++ {
				for l := 0; l < tensor.D; l++ {
					// ∂s/∂x_a^k = u[a][k] and ∂²s_i/∂x_a^k∂x_b^l = c ε_ikl
					nα, nβ := column(g[a], k), column(g[b], l)
					nuα, nuβ := n.Dot(u[a][k]), n.Dot(u[b][l])
					nβuα := nβ.Dot(u[a][k])
					for i := 0; i < tensor.D; i++ {
						var Pss float64
						for j := 0; j < tensor.D; j++ {
							Pss += P[i][j] * c * ε[j][k][l]
						}
						h[a][b][i][k][l] = (Pss - n[i]*nβuα - nβ[i]*nuα - nα[i]*nuβ) / r
					}
				}
			}
		}
	}
	return
}

// NormalRate computes dn/dt = Σ_a ∂n/∂x_a · v_a
func (x Triangle[C]) NormalRate(v Triangle[C]) (ndot tensor.Vec[C]) {
	g := x.NormalGradients()
	for a := 0; a < 3; a++ {
		ndot = ndot.Add(g[a].MulVec(v[a]))
	}
	return
}

// normalData computes n, r = |e_1 × e_2| and u[a][k] = ∂s/∂x_a^k = ê_k × c_a with c_a = D_a1 e_2 - D_a2 e_1
func (x Triangle[C]) normalData() (n tensor.Vec[C], r float64, u [3][tensor.D]tensor.Vec[C]) {
	e := x.Basis()
	s := e[0].Cross(e[1])
	r = s.Norm()
	if r == 0 {
		chk.Panic("cannot compute normal of degenerate triangle %v", x)
	}
	n = s.Scale(1.0 / r)
	for a := 0; a < 3; a++ {
		ca := e[1].Scale(GradOp[a][0]).Sub(e[0].Scale(GradOp[a][1]))
		for k := 0; k < tensor.D; k++ {
			var ek tensor.Vec[C]
			ek[k] = 1
			u[a][k] = ek.Cross(ca)
		}
	}
	return
}

// projector computes P = δ - n ⊗ n
func projector[C tensor.Config](n tensor.Vec[C]) tensor.Ten2[C, C] {
	return tensor.Identity[C, C]().Sub(tensor.Dyad(n, n))
}

// column returns a[:][k]
func column[C tensor.Config](a tensor.Ten2[C, C], k int) (c tensor.Vec[C]) {
	for i := 0; i < tensor.D; i++ {
		c[i] = a[i][k]
	}
	return
}
