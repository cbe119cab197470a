// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the response of a material point for a given deformation
type State struct {

	// kinematics
	F DeformationGradient // deformation gradient

	// stresses
	Sig CauchyStress              // σ: Cauchy stress
	P   FirstPiolaKirchhoffStress // first Piola-Kirchhoff stress

	// energy
	HasPsi bool    // model has a free energy
	Psi    float64 // a: Helmholtz free energy density
}

// NewState allocates a state at rest
func NewState() *State {
	var state State
	state.F[0][0], state.F[1][1], state.F[2][2] = 1, 1, 1
	return &state
}

// Set copies states
func (o *State) Set(other *State) {
	*o = *other
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}

// Update computes stresses and energy of an elastic model for a new deformation gradient
func (o *State) Update(mdl Elastic, F DeformationGradient) (err error) {
	o.F = F
	if o.Sig, err = mdl.CauchyStress(F); err != nil {
		return
	}
	if o.P, err = mdl.FirstPiolaKirchhoffStress(F); err != nil {
		return
	}
	if hyp, ok := mdl.(Hyperelastic); ok {
		o.HasPsi = true
		o.Psi, err = hyp.HelmholtzFreeEnergyDensity(F)
	}
	return
}
