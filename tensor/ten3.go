// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Ten3 is a rank-3 tensor with components a[i][j][k]
type Ten3[I, J, K Config] [D][D][D]float64

// Add returns a + b
func (a Ten3[I, J, K]) Add(b Ten3[I, J, K]) (c Ten3[I, J, K]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				c[i][j][k] = a[i][j][k] + b[i][j][k]
			}
		}
	}
	return
}

// Scale returns α * a
func (a Ten3[I, J, K]) Scale(α float64) (c Ten3[I, J, K]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				c[i][j][k] = α * a[i][j][k]
			}
		}
	}
	return
}

// LeviCivita returns the permutation symbol ε_ijk
func LeviCivita() (ε [D][D][D]float64) {
	ε[0][1][2], ε[1][2][0], ε[2][0][1] = 1, 1, 1
	ε[0][2][1], ε[2][1][0], ε[1][0][2] = -1, -1, -1
	return
}
