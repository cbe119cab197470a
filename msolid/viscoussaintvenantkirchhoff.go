// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// ViscousSaintVenantKirchhoff implements the Saint Venant-Kirchhoff model plus a viscous stress
//  dE/dt = sym(Fᵀ dF/dt)    S = Se(F) + 2η dev(dE/dt) + ζ tr(dE/dt) δ
//  φ = η dev(dE/dt):dev(dE/dt) + ζ/2 tr(dE/dt)²    Φ = Pe(F):dF/dt + φ
type ViscousSaintVenantKirchhoff struct {
	fromSecondPiolaKirchhoffRate
	elastic *SaintVenantKirchhoff

	// parameters
	κ float64 // bulk modulus
	μ float64 // shear modulus
	ζ float64 // bulk viscosity
	η float64 // shear viscosity
}

// add model to factory
func init() {
	allocators["viscous-saint-venant-kirchhoff"] = allocator(NewViscousSaintVenantKirchhoff)
}

// NewViscousSaintVenantKirchhoff returns a new model for parameters {κ, μ, ζ, η}
func NewViscousSaintVenantKirchhoff(prms Parameters) (o *ViscousSaintVenantKirchhoff, err error) {
	if err = checkPrms("ViscousSaintVenantKirchhoff", prms, "κ", "μ", "ζ", "η"); err != nil {
		return
	}
	o = &ViscousSaintVenantKirchhoff{κ: prms[0], μ: prms[1], ζ: prms[2], η: prms[3]}
	if o.elastic, err = NewSaintVenantKirchhoff(prms[:2]); err != nil {
		return nil, chk.Err("cannot allocate elastic part:\n%v", err)
	}
	o.fromSecondPiolaKirchhoffRate = fromSecondPiolaKirchhoffRate{o.SecondPiolaKirchhoffStress, o.SecondPiolaKirchhoffRateTangentStiffness}
	return
}

// GetPrms gets (an example) of parameters
func (o ViscousSaintVenantKirchhoff) GetPrms() Parameters {
	return Parameters{13, 3, 11, 1}
}

// BulkModulus returns κ
func (o *ViscousSaintVenantKirchhoff) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *ViscousSaintVenantKirchhoff) ShearModulus() float64 { return o.μ }

// BulkViscosity returns ζ
func (o *ViscousSaintVenantKirchhoff) BulkViscosity() float64 { return o.ζ }

// ShearViscosity returns η
func (o *ViscousSaintVenantKirchhoff) ShearViscosity() float64 { return o.η }

// String returns the model description
func (o *ViscousSaintVenantKirchhoff) String() string {
	return io.Sf("ViscousSaintVenantKirchhoff{κ=%g, μ=%g, ζ=%g, η=%g}", o.κ, o.μ, o.ζ, o.η)
}

// SecondPiolaKirchhoffStress computes S
func (o *ViscousSaintVenantKirchhoff) SecondPiolaKirchhoffStress(F DeformationGradient, Fdot DeformationGradientRate) (S SecondPiolaKirchhoffStress, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	dev, tr := greenLagrangeRate(F, Fdot).DeviatoricAndTrace()
	S = svkStress(F, o.κ, o.μ)
	return S.Add(dev.Scale(2.0 * o.η)).Add(tensor.Identity[Reference, Reference]().Scale(o.ζ * tr)), nil
}

// SecondPiolaKirchhoffRateTangentStiffness computes ∂S_IJ/∂Ḟ_kL = η (δ_IL F_kJ + F_kI δ_JL) + (ζ - 2η/3) δ_IJ F_kL
func (o *ViscousSaintVenantKirchhoff) SecondPiolaKirchhoffRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (W SecondPiolaKirchhoffRateTangentStiffness, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	return svkTangent(F, o.η, o.ζ-2.0*o.η/3.0), nil
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *ViscousSaintVenantKirchhoff) HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error) {
	return o.elastic.HelmholtzFreeEnergyDensity(F)
}

// ViscousDissipation computes φ
func (o *ViscousSaintVenantKirchhoff) ViscousDissipation(F DeformationGradient, Fdot DeformationGradientRate) (φ float64, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	dev, tr := greenLagrangeRate(F, Fdot).DeviatoricAndTrace()
	return o.η*dev.FullContraction(dev) + o.ζ/2.0*tr*tr, nil
}

// DissipationPotential computes Φ
func (o *ViscousSaintVenantKirchhoff) DissipationPotential(F DeformationGradient, Fdot DeformationGradientRate) (Φ float64, err error) {
	P, err := o.elastic.FirstPiolaKirchhoffStress(F)
	if err != nil {
		return
	}
	φ, err := o.ViscousDissipation(F, Fdot)
	if err != nil {
		return
	}
	return P.FullContraction(Fdot) + φ, nil
}

// greenLagrangeRate computes dE/dt = sym(Fᵀ dF/dt)
func greenLagrangeRate(F DeformationGradient, Fdot DeformationGradientRate) tensor.Ten2[Reference, Reference] {
	return tensor.Symmetric(tensor.Dot(F.Transpose(), Fdot))
}
