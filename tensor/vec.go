// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "math"

// Vec is a rank-1 tensor
type Vec[I Config] [D]float64

// VecList is a list of rank-1 tensors; e.g. nodal coordinates
type VecList[I Config] []Vec[I]

// NewVecList allocates a list of n zero vectors
func NewVecList[I Config](n int) VecList[I] {
	return make(VecList[I], n)
}

// Add returns a + b
func (a Vec[I]) Add(b Vec[I]) (c Vec[I]) {
	for i := 0; i < D; i++ {
		c[i] = a[i] + b[i]
	}
	return
}

// Sub returns a - b
func (a Vec[I]) Sub(b Vec[I]) (c Vec[I]) {
	for i := 0; i < D; i++ {
		c[i] = a[i] - b[i]
	}
	return
}

// Scale returns α * a
func (a Vec[I]) Scale(α float64) (c Vec[I]) {
	for i := 0; i < D; i++ {
		c[i] = α * a[i]
	}
	return
}

// Dot returns a · b
func (a Vec[I]) Dot(b Vec[I]) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a × b
func (a Vec[I]) Cross(b Vec[I]) (c Vec[I]) {
	c[0] = a[1]*b[2] - a[2]*b[1]
	c[1] = a[2]*b[0] - a[0]*b[2]
	c[2] = a[0]*b[1] - a[1]*b[0]
	return
}

// Norm returns the Euclidean norm
func (a Vec[I]) Norm() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalized returns a / ||a||
func (a Vec[I]) Normalized() Vec[I] {
	return a.Scale(1.0 / a.Norm())
}

// Clone returns a copy of this list
func (o VecList[I]) Clone() VecList[I] {
	c := make(VecList[I], len(o))
	copy(c, o)
	return c
}

// Add returns o + b
func (o VecList[I]) Add(b VecList[I]) VecList[I] {
	c := make(VecList[I], len(o))
	for a := range o {
		c[a] = o[a].Add(b[a])
	}
	return c
}

// Scale returns α * o
func (o VecList[I]) Scale(α float64) VecList[I] {
	c := make(VecList[I], len(o))
	for a := range o {
		c[a] = o[a].Scale(α)
	}
	return c
}
