// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/mrbuche/flavio-sub000/msolid"

// Elastic implements elements with elastic models
type Elastic[M msolid.Elastic] struct {
	base[M]
}

// NewElastic returns a new elastic element
func NewElastic[M msolid.Elastic](kin Kinematics, prms msolid.Parameters, alloc func(prms msolid.Parameters) (M, error)) (o *Elastic[M], err error) {
	o = new(Elastic[M])
	if err = o.init(kin, prms, alloc); err != nil {
		return nil, err
	}
	return
}

// Stresses computes the first Piola-Kirchhoff stresses at all integration points
func (o *Elastic[M]) Stresses(x CurrentCoordinates) (P []msolid.FirstPiolaKirchhoffStress, err error) {
	F := o.Kin.DeformationGradients(x)
	P = make([]msolid.FirstPiolaKirchhoffStress, len(F))
	for idx, mdl := range o.Mdls {
		if P[idx], err = mdl.FirstPiolaKirchhoffStress(F[idx]); err != nil {
			return nil, err
		}
	}
	return
}

// NodalForces computes the nodal forces
func (o *Elastic[M]) NodalForces(x CurrentCoordinates) (f Forces, err error) {
	P, err := o.Stresses(x)
	if err != nil {
		return
	}
	return o.forces(o.Kin.GradientOperators(x), P), nil
}

// NodalStiffnesses computes the nodal stiffnesses including the geometric term
func (o *Elastic[M]) NodalStiffnesses(x CurrentCoordinates) (K Stiffnesses, err error) {
	F := o.Kin.DeformationGradients(x)
	P := make([]msolid.FirstPiolaKirchhoffStress, len(F))
	C := make([]msolid.FirstPiolaKirchhoffTangentStiffness, len(F))
	for idx, mdl := range o.Mdls {
		if P[idx], err = mdl.FirstPiolaKirchhoffStress(F[idx]); err != nil {
			return
		}
		if C[idx], err = mdl.FirstPiolaKirchhoffTangentStiffness(F[idx]); err != nil {
			return
		}
	}
	K = o.stiffnesses(o.Kin.GradientOperators(x), C)
	addStiffnesses(K, o.Kin.GeometricContraction(x, P))
	return
}

// Hyperelastic implements elements with hyperelastic models
type Hyperelastic[M msolid.Hyperelastic] struct {
	Elastic[M]
}

// NewHyperelastic returns a new hyperelastic element
func NewHyperelastic[M msolid.Hyperelastic](kin Kinematics, prms msolid.Parameters, alloc func(prms msolid.Parameters) (M, error)) (o *Hyperelastic[M], err error) {
	o = new(Hyperelastic[M])
	if err = o.init(kin, prms, alloc); err != nil {
		return nil, err
	}
	return
}

// HelmholtzFreeEnergy computes Σ_g w_g a(F_g)
func (o *Hyperelastic[M]) HelmholtzFreeEnergy(x CurrentCoordinates) (float64, error) {
	F := o.Kin.DeformationGradients(x)
	return o.integrate(func(idx int) (float64, error) {
		return o.Mdls[idx].HelmholtzFreeEnergyDensity(F[idx])
	})
}
