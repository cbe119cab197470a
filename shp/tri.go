// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// add shapes to factory
func init() {

	// tri3: one linear sub-triangle and one integration point
	factory["tri3"] = &Shape{
		Type:     "tri3",
		Func:     Tri3,
		ProjFunc: ProjConst,
		Nverts:   3,
		Nproj:    1,
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
		Subs: [][]int{{0, 1, 2}},
		Ips:  [][]float64{{1.0 / 3.0, 1.0 / 3.0}},
	}

	// tri6: four linear sub-triangles and a linear projection basis
	factory["tri6"] = &Shape{
		Type:     "tri6",
		Func:     Tri6,
		ProjFunc: ProjLinear,
		Nverts:   6,
		Nproj:    3,
		NatCoords: [][]float64{
			{0, 1, 0, 0.5, 0.5, 0},
			{0, 0, 1, 0, 0.5, 0.5},
		},
		Subs: [][]int{{0, 3, 5}, {3, 1, 4}, {5, 4, 2}, {3, 4, 5}},
		Ips: [][]float64{
			{1.0 / 6.0, 1.0 / 6.0},
			{2.0 / 3.0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0},
		},
	}
}

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
func Tri3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	/*
	    s
	    |
	    2, (0,1)
	    | ',
	    |   ',
	    |     ',
	    |       ',
	    0-----------1-- r
	   (0,0)      (1,0)
	*/
	rr, ss := r[0], r[1]
	S[0] = 1.0 - rr - ss
	S[1] = rr
	S[2] = ss

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// Tri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
func Tri6(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	/*
	    s
	    |
	    2, (0,1)
	    | ',
	    |   ',
	    5     4,
	    |       ',
	    |         ',
	    0-----3-----1-- r
	   (0,0)       (1,0)
	*/
	l1, l2 := r[0], r[1]
	l0 := 1.0 - l1 - l2
	S[0] = l0 * (2.0*l0 - 1.0)
	S[1] = l1 * (2.0*l1 - 1.0)
	S[2] = l2 * (2.0*l2 - 1.0)
	S[3] = 4.0 * l0 * l1
	S[4] = 4.0 * l1 * l2
	S[5] = 4.0 * l2 * l0

	if !derivs {
		return
	}

	dSdR[0][0], dSdR[0][1] = 1.0-4.0*l0, 1.0-4.0*l0
	dSdR[1][0], dSdR[1][1] = 4.0*l1-1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 4.0*l2-1.0
	dSdR[3][0], dSdR[3][1] = 4.0*(l0-l1), -4.0*l1
	dSdR[4][0], dSdR[4][1] = 4.0*l2, 4.0*l1
	dSdR[5][0], dSdR[5][1] = -4.0*l2, 4.0*(l0-l2)
}

// ProjConst computes the constant projection basis χ = {1}
func ProjConst(χ []float64, r []float64) {
	χ[0] = 1.0
}

// ProjLinear computes the linear projection basis χ = {1 - r - s, r, s}
func ProjLinear(χ []float64, r []float64) {
	χ[0] = 1.0 - r[0] - r[1]
	χ[1] = r[0]
	χ[2] = r[1]
}
