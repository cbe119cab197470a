// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Square is a dense n×n matrix without configuration tags; e.g. projection matrices
type Square [][]float64

// NewSquare allocates an n×n zero matrix
func NewSquare(n int) (a Square) {
	a = make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	return
}

// IdentitySquare returns the n×n identity
func IdentitySquare(n int) (a Square) {
	a = NewSquare(n)
	for i := 0; i < n; i++ {
		a[i][i] = 1
	}
	return
}

// Mul returns a · b
func (a Square) Mul(b Square) (c Square) {
	n := len(a)
	c = NewSquare(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				c[i][k] += a[i][j] * b[j][k]
			}
		}
	}
	return
}

// Determinant returns det(a); closed form up to n = 4 and LU factorisation otherwise
func (a Square) Determinant() float64 {
	switch len(a) {
	case 0:
		return 1
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	case 3:
		return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
			a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
			a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	case 4:
		s, c := minors4(a)
		return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	}
	var lu mat.LU
	lu.Factorize(a.dense())
	return lu.Det()
}

// Inverse returns a⁻¹. It panics if a is singular
func (a Square) Inverse() (b Square) {
	n := len(a)
	det := a.Determinant()
	if det == 0 {
		chk.Panic("cannot invert singular %d×%d matrix", n, n)
	}
	b = NewSquare(n)
	switch n {
	case 0:
	case 1:
		b[0][0] = 1.0 / a[0][0]
	case 2:
		b[0][0], b[0][1] = a[1][1]/det, -a[0][1]/det
		b[1][0], b[1][1] = -a[1][0]/det, a[0][0]/det
	case 3:
		b[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
		b[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
		b[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
		b[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
		b[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
		b[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
		b[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
		b[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
		b[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	case 4:
		s, c := minors4(a)
		b[0][0] = (a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]) / det
		b[0][1] = (-a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]) / det
		b[0][2] = (a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]) / det
		b[0][3] = (-a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]) / det
		b[1][0] = (-a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]) / det
		b[1][1] = (a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]) / det
		b[1][2] = (-a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]) / det
		b[1][3] = (a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]) / det
		b[2][0] = (a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]) / det
		b[2][1] = (-a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]) / det
		b[2][2] = (a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]) / det
		b[2][3] = (-a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]) / det
		b[3][0] = (-a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]) / det
		b[3][1] = (a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]) / det
		b[3][2] = (-a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]) / det
		b[3][3] = (a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]) / det
	default:
		var lu mat.LU
		lu.Factorize(a.dense())
		var inv mat.Dense
		if err := lu.SolveTo(&inv, false, eye(n)); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				chk.Panic("LU solve failed: %v", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				b[i][j] = inv.At(i, j)
			}
		}
	}
	return
}

// minors4 returns the 2×2 minors of the top (s) and bottom (c) row pairs of a 4×4 matrix
func minors4(a Square) (s, c [6]float64) {
	s[0] = a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s[1] = a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s[2] = a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s[3] = a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s[4] = a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s[5] = a[0][2]*a[1][3] - a[1][2]*a[0][3]
	c[5] = a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c[4] = a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c[3] = a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c[2] = a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c[1] = a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c[0] = a[2][0]*a[3][1] - a[3][0]*a[2][1]
	return
}

// dense copies a into a gonum matrix
func (a Square) dense() *mat.Dense {
	n := len(a)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, a[i][j])
		}
	}
	return m
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
