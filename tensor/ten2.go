// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ten2 is a rank-2 tensor with components a[i][j]
type Ten2[I, J Config] [D][D]float64

// Identity returns the rank-2 identity δ_ij
func Identity[I, J Config]() (a Ten2[I, J]) {
	a[0][0], a[1][1], a[2][2] = 1, 1, 1
	return
}

// Dyad returns the dyadic product a ⊗ b
func Dyad[I, J Config](a Vec[I], b Vec[J]) (c Ten2[I, J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			c[i][j] = a[i] * b[j]
		}
	}
	return
}

// Dot returns the single contraction c_ik = a_ij b_jk
func Dot[I, J, K Config](a Ten2[I, J], b Ten2[J, K]) (c Ten2[I, K]) {
	for i := 0; i < D; i++ {
		for k := 0; k < D; k++ {
			for j := 0; j < D; j++ {
				c[i][k] += a[i][j] * b[j][k]
			}
		}
	}
	return
}

// Add returns a + b
func (a Ten2[I, J]) Add(b Ten2[I, J]) (c Ten2[I, J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Sub returns a - b
func (a Ten2[I, J]) Sub(b Ten2[I, J]) (c Ten2[I, J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			c[i][j] = a[i][j] - b[i][j]
		}
	}
	return
}

// Scale returns α * a
func (a Ten2[I, J]) Scale(α float64) (c Ten2[I, J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			c[i][j] = α * a[i][j]
		}
	}
	return
}

// MulVec returns a · v
func (a Ten2[I, J]) MulVec(v Vec[J]) (w Vec[I]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			w[i] += a[i][j] * v[j]
		}
	}
	return
}

// VecMul returns v · a
func (a Ten2[I, J]) VecMul(v Vec[I]) (w Vec[J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			w[j] += v[i] * a[i][j]
		}
	}
	return
}

// Transpose returns aᵀ
func (a Ten2[I, J]) Transpose() (c Ten2[J, I]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			c[j][i] = a[i][j]
		}
	}
	return
}

// Trace returns a_ii
func (a Ten2[I, J]) Trace() float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Determinant returns det(a)
func (a Ten2[I, J]) Determinant() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inverse returns a⁻¹. It panics if a is singular
func (a Ten2[I, J]) Inverse() (c Ten2[J, I]) {
	c, _ = a.InverseAndDeterminant()
	return
}

// InverseAndDeterminant returns a⁻¹ and det(a). It panics if a is singular
func (a Ten2[I, J]) InverseAndDeterminant() (c Ten2[J, I], det float64) {
	det = a.Determinant()
	if det == 0 {
		chk.Panic("cannot invert singular rank-2 tensor:\n%v", a)
	}
	c[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	c[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	c[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	c[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	c[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	c[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	c[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	c[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	c[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}

// InverseTranspose returns a⁻ᵀ
func (a Ten2[I, J]) InverseTranspose() Ten2[I, J] {
	return a.Inverse().Transpose()
}

// Deviatoric returns a - tr(a)/3 δ
func (a Ten2[I, J]) Deviatoric() Ten2[I, J] {
	dev, _ := a.DeviatoricAndTrace()
	return dev
}

// DeviatoricAndTrace returns the deviatoric part and the trace
func (a Ten2[I, J]) DeviatoricAndTrace() (dev Ten2[I, J], tr float64) {
	tr = a.Trace()
	dev = a
	for i := 0; i < D; i++ {
		dev[i][i] -= tr / 3.0
	}
	return
}

// FullContraction returns a_ij b_ij
func (a Ten2[I, J]) FullContraction(b Ten2[I, J]) (res float64) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// Norm returns the Frobenius norm
func (a Ten2[I, J]) Norm() float64 {
	return math.Sqrt(a.FullContraction(a))
}

// Symmetric returns (a + aᵀ)/2; the configurations of both indices must coincide
func Symmetric[I Config](a Ten2[I, I]) (c Ten2[I, I]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			c[i][j] = (a[i][j] + a[j][i]) / 2.0
		}
	}
	return
}
