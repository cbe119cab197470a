// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// ViscousAlmansiHamel implements the Almansi-Hamel model plus a Newtonian viscous stress
//  D = sym(dF/dt F⁻¹)    σ = σe(F) + 2η dev(D) + ζ tr(D) δ
//  φ = J [η dev(D):dev(D) + ζ/2 tr(D)²]    Φ = Pe(F):dF/dt + φ
type ViscousAlmansiHamel struct {
	fromCauchyRate
	elastic *AlmansiHamel

	// parameters
	κ float64 // bulk modulus
	μ float64 // shear modulus
	ζ float64 // bulk viscosity
	η float64 // shear viscosity
}

// add model to factory
func init() {
	allocators["viscous-almansi-hamel"] = allocator(NewViscousAlmansiHamel)
}

// NewViscousAlmansiHamel returns a new model for parameters {κ, μ, ζ, η}
func NewViscousAlmansiHamel(prms Parameters) (o *ViscousAlmansiHamel, err error) {
	if err = checkPrms("ViscousAlmansiHamel", prms, "κ", "μ", "ζ", "η"); err != nil {
		return
	}
	o = &ViscousAlmansiHamel{κ: prms[0], μ: prms[1], ζ: prms[2], η: prms[3]}
	if o.elastic, err = NewAlmansiHamel(prms[:2]); err != nil {
		return nil, chk.Err("cannot allocate elastic part:\n%v", err)
	}
	o.fromCauchyRate = fromCauchyRate{o.CauchyStress, o.CauchyRateTangentStiffness}
	return
}

// GetPrms gets (an example) of parameters
func (o ViscousAlmansiHamel) GetPrms() Parameters {
	return Parameters{13, 3, 11, 1}
}

// BulkModulus returns κ
func (o *ViscousAlmansiHamel) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *ViscousAlmansiHamel) ShearModulus() float64 { return o.μ }

// BulkViscosity returns ζ
func (o *ViscousAlmansiHamel) BulkViscosity() float64 { return o.ζ }

// ShearViscosity returns η
func (o *ViscousAlmansiHamel) ShearViscosity() float64 { return o.η }

// String returns the model description
func (o *ViscousAlmansiHamel) String() string {
	return io.Sf("ViscousAlmansiHamel{κ=%g, μ=%g, ζ=%g, η=%g}", o.κ, o.μ, o.ζ, o.η)
}

// CauchyStress computes σ
func (o *ViscousAlmansiHamel) CauchyStress(F DeformationGradient, Fdot DeformationGradientRate) (σ CauchyStress, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	dev, tr := rateOfDeformation(F, Fdot).DeviatoricAndTrace()
	σ = almansiHamelStress(F, J, o.κ, o.μ)
	return σ.Add(dev.Scale(2.0 * o.η)).Add(tensor.Identity[Current, Current]().Scale(o.ζ * tr)), nil
}

// CauchyRateTangentStiffness computes ∂σ_ij/∂Ḟ_kL = η (δ_ik F⁻ᵀ_jL + δ_jk F⁻ᵀ_iL) + (ζ - 2η/3) δ_ij F⁻ᵀ_kL
func (o *ViscousAlmansiHamel) CauchyRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (U CauchyRateTangentStiffness, err error) {
	if _, err = jacobian(F, o); err != nil {
		return
	}
	δ := tensor.Identity[Current, Current]()
	Finvt := F.InverseTranspose()
	U = tensor.DyadIKJL(δ, Finvt).Add(tensor.DyadILJK(Finvt, δ)).Scale(o.η)
	return U.Add(tensor.DyadIJKL(δ, Finvt).Scale(o.ζ - 2.0*o.η/3.0)), nil
}

// ViscousDissipation computes φ
func (o *ViscousAlmansiHamel) ViscousDissipation(F DeformationGradient, Fdot DeformationGradientRate) (φ float64, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	dev, tr := rateOfDeformation(F, Fdot).DeviatoricAndTrace()
	return J * (o.η*dev.FullContraction(dev) + o.ζ/2.0*tr*tr), nil
}

// DissipationPotential computes Φ
func (o *ViscousAlmansiHamel) DissipationPotential(F DeformationGradient, Fdot DeformationGradientRate) (Φ float64, err error) {
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

// rateOfDeformation computes D = sym(dF/dt F⁻¹)
func rateOfDeformation(F DeformationGradient, Fdot DeformationGradientRate) tensor.Ten2[Current, Current] {
	return tensor.Symmetric(tensor.Dot(Fdot, F.Inverse()))
}
