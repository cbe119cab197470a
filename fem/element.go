// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/msolid"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// base holds the kinematics and one model per integration point
type base[M msolid.Solid] struct {
	Kin  Kinematics        // kinematics
	Prms msolid.Parameters // material parameters
	Mdls []M               // models [nip]
}

// init allocates models at all integration points
//  alloc -- allocates one model from its parameters; e.g. msolid.NewNeoHookean
func (o *base[M]) init(kin Kinematics, prms msolid.Parameters, alloc func(prms msolid.Parameters) (M, error)) (err error) {
	if kin == nil {
		return chk.Err("kinematics must not be nil")
	}
	if alloc == nil {
		return chk.Err("model allocator must not be nil")
	}
	o.Kin = kin
	o.Prms = prms
	o.Mdls = make([]M, kin.Npoints())
	for idx := range o.Mdls {
		o.Mdls[idx], err = alloc(prms)
		if err != nil {
			return
		}
	}
	return
}

// Nnodes returns the number of nodes
func (o *base[M]) Nnodes() int { return o.Kin.Nnodes() }

// forces computes f_a = Σ_g w_g P_g : ∂F_g/∂x_a
func (o *base[M]) forces(dF [][]tensor.Ten3[Current, Reference, Current], P []msolid.FirstPiolaKirchhoffStress) (f Forces) {
	f = tensor.NewVecList[Current](o.Kin.Nnodes())
	for idx, w := range o.Kin.Weights() {
		for a := range f {
			for i := 0; i < tensor.D; i++ {
				for j := 0; j < tensor.D; j++ {
					for k := 0; k < tensor.D; k++ {
						f[a][k] += w * P[idx][i][j] * dF[idx][a][i][j][k]
					}
				}
			}
		}
	}
	return
}

// stiffnesses computes K_ab = Σ_g w_g ∂F_g/∂x_a : 𝒞_g : ∂F_g/∂x_b
func (o *base[M]) stiffnesses(dF [][]tensor.Ten3[Current, Reference, Current], C []msolid.FirstPiolaKirchhoffTangentStiffness) (K Stiffnesses) {
	nnodes := o.Kin.Nnodes()
	K = newStiffnesses(nnodes)
	for idx, w := range o.Kin.Weights() {

		// CdF[b][i][j][l] = 𝒞_ijmn ∂F_mn/∂x_b^l
		CdF := make([]tensor.Ten3[Current, Reference, Current], nnodes)
		for b := 0; b < nnodes; b++ {
			for i := 0; i < tensor.D; i++ {
				for j := 0; j < tensor.D; j++ {
					for l := 0; l < tensor.D; l++ {
						for m := 0; m < tensor.D; m++ {
							for n := 0; n < tensor.D; n++ {
								CdF[b][i][j][l] += C[idx][i][j][m][n] * dF[idx][b][m][n][l]
							}
						}
					}
				}
			}
		}

		// K[a][b][k][l] += w ∂F_ij/∂x_a^k CdF[b][i][j][l]
		for a := 0; a < nnodes; a++ {
			for b := 0; b < nnodes; b++ {
				for i := 0; i < tensor.D; i++ {
					for j := 0; j < tensor.D; j++ {
						for k := 0; k < tensor.D; k++ {
							for l := 0; l < tensor.D; l++ {
								K[a][b][k][l] += w * dF[idx][a][i][j][k] * CdF[b][i][j][l]
							}
						}
					}
				}
			}
		}
	}
	return
}

// integrate computes Σ_g w_g d_g
func (o *base[M]) integrate(density func(idx int) (float64, error)) (res float64, err error) {
	for idx, w := range o.Kin.Weights() {
		d, err := density(idx)
		if err != nil {
			return 0, err
		}
		res += w * d
	}
	return
}

// newStiffnesses allocates a zero nodal stiffness structure
func newStiffnesses(nnodes int) (K Stiffnesses) {
	K = make(Stiffnesses, nnodes)
	for a := 0; a < nnodes; a++ {
		K[a] = make([]tensor.Ten2[Current, Current], nnodes)
	}
	return
}

// addStiffnesses adds B to A
func addStiffnesses(A, B Stiffnesses) {
	for a := range A {
		for b := range A[a] {
			A[a][b] = A[a][b].Add(B[a][b])
		}
	}
}
