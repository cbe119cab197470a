// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/mrbuche/flavio-sub000/msolid"

// Viscoelastic implements elements with viscoelastic models
type Viscoelastic[M msolid.Viscoelastic] struct {
	base[M]
}

// NewViscoelastic returns a new viscoelastic element
func NewViscoelastic[M msolid.Viscoelastic](kin Kinematics, prms msolid.Parameters, alloc func(prms msolid.Parameters) (M, error)) (o *Viscoelastic[M], err error) {
	o = new(Viscoelastic[M])
	if err = o.init(kin, prms, alloc); err != nil {
		return nil, err
	}
	return
}

// Stresses computes the first Piola-Kirchhoff stresses at all integration points
func (o *Viscoelastic[M]) Stresses(x CurrentCoordinates, v Velocities) (P []msolid.FirstPiolaKirchhoffStress, err error) {
	F, Fdot := o.Kin.DeformationGradients(x), o.Kin.DeformationGradientRates(x, v)
	P = make([]msolid.FirstPiolaKirchhoffStress, len(F))
	for idx, mdl := range o.Mdls {
		if P[idx], err = mdl.FirstPiolaKirchhoffStress(F[idx], Fdot[idx]); err != nil {
			return nil, err
		}
	}
	return
}

// NodalForces computes the nodal forces
func (o *Viscoelastic[M]) NodalForces(x CurrentCoordinates, v Velocities) (f Forces, err error) {
	P, err := o.Stresses(x, v)
	if err != nil {
		return
	}
	return o.forces(o.Kin.GradientOperators(x), P), nil
}

// NodalStiffnesses computes the nodal stiffnesses with respect to velocities; i.e. ∂f/∂v
func (o *Viscoelastic[M]) NodalStiffnesses(x CurrentCoordinates, v Velocities) (K Stiffnesses, err error) {
	F, Fdot := o.Kin.DeformationGradients(x), o.Kin.DeformationGradientRates(x, v)
	C := make([]msolid.FirstPiolaKirchhoffRateTangentStiffness, len(F))
	for idx, mdl := range o.Mdls {
		if C[idx], err = mdl.FirstPiolaKirchhoffRateTangentStiffness(F[idx], Fdot[idx]); err != nil {
			return
		}
	}
	return o.stiffnesses(o.Kin.GradientOperators(x), C), nil
}

// ElasticHyperviscous implements elements with elastic-hyperviscous models
type ElasticHyperviscous[M msolid.ElasticHyperviscous] struct {
	Viscoelastic[M]
}

// NewElasticHyperviscous returns a new elastic-hyperviscous element
func NewElasticHyperviscous[M msolid.ElasticHyperviscous](kin Kinematics, prms msolid.Parameters, alloc func(prms msolid.Parameters) (M, error)) (o *ElasticHyperviscous[M], err error) {
	o = new(ElasticHyperviscous[M])
	if err = o.init(kin, prms, alloc); err != nil {
		return nil, err
	}
	return
}

// ViscousDissipation computes Σ_g w_g φ(F_g, dF_g/dt)
func (o *ElasticHyperviscous[M]) ViscousDissipation(x CurrentCoordinates, v Velocities) (float64, error) {
	F, Fdot := o.Kin.DeformationGradients(x), o.Kin.DeformationGradientRates(x, v)
	return o.integrate(func(idx int) (float64, error) {
		return o.Mdls[idx].ViscousDissipation(F[idx], Fdot[idx])
	})
}

// DissipationPotential computes Σ_g w_g Φ(F_g, dF_g/dt); its derivative with respect to v gives the nodal forces
func (o *ElasticHyperviscous[M]) DissipationPotential(x CurrentCoordinates, v Velocities) (float64, error) {
	F, Fdot := o.Kin.DeformationGradients(x), o.Kin.DeformationGradientRates(x, v)
	return o.integrate(func(idx int) (float64, error) {
		return o.Mdls[idx].DissipationPotential(F[idx], Fdot[idx])
	})
}

// Hyperviscoelastic implements elements with hyperviscoelastic models
type Hyperviscoelastic[M msolid.Hyperviscoelastic] struct {
	ElasticHyperviscous[M]
}

// NewHyperviscoelastic returns a new hyperviscoelastic element
func NewHyperviscoelastic[M msolid.Hyperviscoelastic](kin Kinematics, prms msolid.Parameters, alloc func(prms msolid.Parameters) (M, error)) (o *Hyperviscoelastic[M], err error) {
	o = new(Hyperviscoelastic[M])
	if err = o.init(kin, prms, alloc); err != nil {
		return nil, err
	}
	return
}

// HelmholtzFreeEnergy computes Σ_g w_g a(F_g)
func (o *Hyperviscoelastic[M]) HelmholtzFreeEnergy(x CurrentCoordinates) (float64, error) {
	F := o.Kin.DeformationGradients(x)
	return o.integrate(func(idx int) (float64, error) {
		return o.Mdls[idx].HelmholtzFreeEnergyDensity(F[idx])
	})
}
