// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Ten4 is a rank-4 tensor with components a[i][j][k][l]
type Ten4[I, J, K, L Config] [D][D][D][D]float64

// DyadIJKL returns c_ijkl = a_ij b_kl
func DyadIJKL[I, J, K, L Config](a Ten2[I, J], b Ten2[K, L]) (c Ten4[I, J, K, L]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					c[i][j][k][l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return
}

// DyadIKJL returns c_ijkl = a_ik b_jl
func DyadIKJL[I, J, K, L Config](a Ten2[I, K], b Ten2[J, L]) (c Ten4[I, J, K, L]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					c[i][j][k][l] = a[i][k] * b[j][l]
				}
			}
		}
	}
	return
}

// DyadILJK returns c_ijkl = a_il b_jk
func DyadILJK[I, J, K, L Config](a Ten2[I, L], b Ten2[J, K]) (c Ten4[I, J, K, L]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					c[i][j][k][l] = a[i][l] * b[j][k]
				}
			}
		}
	}
	return
}

// ContractAllIndicesWithFirstIndicesOf returns c_ijkl = t_mnop a_mi b_nj c_ok d_pl
func ContractAllIndicesWithFirstIndicesOf[I, J, K, L, E, F, G, H Config](t Ten4[I, J, K, L], a Ten2[I, E], b Ten2[J, F], c Ten2[K, G], d Ten2[L, H]) (res Ten4[E, F, G, H]) {
	var tmp1, tmp2 Ten4[E, F, G, H]
	// contract the first two indices then the last two
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for o := 0; o < D; o++ {
				for p := 0; p < D; p++ {
					for m := 0; m < D; m++ {
						tmp1[i][j][o][p] += a[m][i] * t[m][j][o][p]
					}
				}
			}
		}
	}
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for o := 0; o < D; o++ {
				for p := 0; p < D; p++ {
					for n := 0; n < D; n++ {
						tmp2[i][j][o][p] += b[n][j] * tmp1[i][n][o][p]
					}
				}
			}
		}
	}
	tmp1 = Ten4[E, F, G, H]{}
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for p := 0; p < D; p++ {
					for o := 0; o < D; o++ {
						tmp1[i][j][k][p] += c[o][k] * tmp2[i][j][o][p]
					}
				}
			}
		}
	}
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					for p := 0; p < D; p++ {
						res[i][j][k][l] += d[p][l] * tmp1[i][j][k][p]
					}
				}
			}
		}
	}
	return
}

// Add returns a + b
func (a Ten4[I, J, K, L]) Add(b Ten4[I, J, K, L]) (c Ten4[I, J, K, L]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					c[i][j][k][l] = a[i][j][k][l] + b[i][j][k][l]
				}
			}
		}
	}
	return
}

// Sub returns a - b
func (a Ten4[I, J, K, L]) Sub(b Ten4[I, J, K, L]) (c Ten4[I, J, K, L]) {
	return a.Add(b.Scale(-1))
}

// Scale returns α * a
func (a Ten4[I, J, K, L]) Scale(α float64) (c Ten4[I, J, K, L]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					c[i][j][k][l] = α * a[i][j][k][l]
				}
			}
		}
	}
	return
}

// ContractTen2 returns c_ij = a_ijkl b_kl
func (a Ten4[I, J, K, L]) ContractTen2(b Ten2[K, L]) (c Ten2[I, J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					c[i][j] += a[i][j][k][l] * b[k][l]
				}
			}
		}
	}
	return
}
