// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// SaintVenantKirchhoff implements the Saint Venant-Kirchhoff hyperelastic model
//  E = (FᵀF - δ)/2    S = 2 μ dev(E) + κ tr(E) δ    a(F) = μ dev(E):dev(E) + κ/2 tr(E)²
type SaintVenantKirchhoff struct {
	fromSecondPiolaKirchhoff

	// parameters
	κ float64 // bulk modulus
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["saint-venant-kirchhoff"] = allocator(NewSaintVenantKirchhoff)
}

// NewSaintVenantKirchhoff returns a new model for parameters {κ, μ}
func NewSaintVenantKirchhoff(prms Parameters) (o *SaintVenantKirchhoff, err error) {
	if err = checkPrms("SaintVenantKirchhoff", prms, "κ", "μ"); err != nil {
		return
	}
	o = &SaintVenantKirchhoff{κ: prms[0], μ: prms[1]}
	o.fromSecondPiolaKirchhoff = fromSecondPiolaKirchhoff{o.SecondPiolaKirchhoffStress, o.secondAndTangent}
	return
}

// GetPrms gets (an example) of parameters
func (o SaintVenantKirchhoff) GetPrms() Parameters {
	return Parameters{13, 3}
}

// BulkModulus returns κ
func (o *SaintVenantKirchhoff) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *SaintVenantKirchhoff) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *SaintVenantKirchhoff) String() string {
	return io.Sf("SaintVenantKirchhoff{κ=%g, μ=%g}", o.κ, o.μ)
}

// SecondPiolaKirchhoffStress computes S
func (o *SaintVenantKirchhoff) SecondPiolaKirchhoffStress(F DeformationGradient) (S SecondPiolaKirchhoffStress, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	return svkStress(F, o.κ, o.μ), nil
}

// SecondPiolaKirchhoffTangentStiffness computes 𝒢 = ∂S/∂F
func (o *SaintVenantKirchhoff) SecondPiolaKirchhoffTangentStiffness(F DeformationGradient) (G SecondPiolaKirchhoffTangentStiffness, err error) {
	_, G, err = o.secondAndTangent(F)
	return
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *SaintVenantKirchhoff) HelmholtzFreeEnergyDensity(F DeformationGradient) (a float64, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	dev, tr := greenLagrange(F).DeviatoricAndTrace()
	return o.μ*dev.FullContraction(dev) + o.κ/2.0*tr*tr, nil
}

func (o *SaintVenantKirchhoff) secondAndTangent(F DeformationGradient) (S SecondPiolaKirchhoffStress, G SecondPiolaKirchhoffTangentStiffness, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	return svkStress(F, o.κ, o.μ), svkTangent(F, o.μ, o.κ-2.0*o.μ/3.0), nil
}

// greenLagrange computes E = (FᵀF - δ)/2
func greenLagrange(F DeformationGradient) tensor.Ten2[Reference, Reference] {
	return tensor.Dot(F.Transpose(), F).Sub(tensor.Identity[Reference, Reference]()).Scale(0.5)
}

// svkStress computes S = 2 μ dev(E) + κ tr(E) δ
func svkStress(F DeformationGradient, κ, μ float64) SecondPiolaKirchhoffStress {
	dev, tr := greenLagrange(F).DeviatoricAndTrace()
	return dev.Scale(2.0 * μ).Add(tensor.Identity[Reference, Reference]().Scale(κ * tr))
}

// svkTangent computes 𝒢_IJkL = a (δ_IL F_kJ + F_kI δ_JL) + b δ_IJ F_kL
func svkTangent(F DeformationGradient, a, b float64) SecondPiolaKirchhoffTangentStiffness {
	δ := tensor.Identity[Reference, Reference]()
	Ft := F.Transpose()
	G := tensor.DyadIKJL(Ft, δ).Add(tensor.DyadILJK(δ, Ft)).Scale(a)
	return G.Add(tensor.DyadIJKL(δ, F).Scale(b))
}
