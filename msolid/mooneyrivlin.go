// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// MooneyRivlin implements the compressible Mooney-Rivlin hyperelastic model
//  a(F) = (μ - μm)/2 (tr(B*) - 3) + μm/2 (tr(B*⁻¹) - 3) + U(J)
type MooneyRivlin struct {
	fromCauchy

	// parameters
	κ  float64 // bulk modulus
	μ  float64 // shear modulus
	μm float64 // extra modulus
}

// add model to factory
func init() {
	allocators["mooney-rivlin"] = allocator(NewMooneyRivlin)
}

// NewMooneyRivlin returns a new model for parameters {κ, μ, μm}
func NewMooneyRivlin(prms Parameters) (o *MooneyRivlin, err error) {
	if err = checkPrms("MooneyRivlin", prms, "κ", "μ", "μm"); err != nil {
		return
	}
	o = &MooneyRivlin{κ: prms[0], μ: prms[1], μm: prms[2]}
	o.fromCauchy = fromCauchy{o.CauchyStress, o.cauchyAndTangent}
	return
}

// GetPrms gets (an example) of parameters
func (o MooneyRivlin) GetPrms() Parameters {
	return Parameters{13, 3, 1}
}

// BulkModulus returns κ
func (o *MooneyRivlin) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *MooneyRivlin) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *MooneyRivlin) String() string {
	return io.Sf("MooneyRivlin{κ=%g, μ=%g, μm=%g}", o.κ, o.μ, o.μm)
}

// CauchyStress computes σ = (μ - μm)/J dev(B*) - μm/J dev(B*⁻¹) + p δ
func (o *MooneyRivlin) CauchyStress(F DeformationGradient) (σ CauchyStress, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	iso := newIsochoric(F, J)
	return iso.cauchy(o.κ, o.μ-o.μm).Sub(iso.B.Inverse().Deviatoric().Scale(o.μm / J)), nil
}

// CauchyTangentStiffness computes ∂σ/∂F
func (o *MooneyRivlin) CauchyTangentStiffness(F DeformationGradient) (T CauchyTangentStiffness, err error) {
	_, T, err = o.cauchyAndTangent(F)
	return
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *MooneyRivlin) HelmholtzFreeEnergyDensity(F DeformationGradient) (a float64, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	iso := newIsochoric(F, J)
	U, _, _ := volumetric(o.κ, J)
	return (o.μ-o.μm)/2.0*(iso.I1-3.0) + o.μm/2.0*(iso.B.Inverse().Trace()-3.0) + U, nil
}

func (o *MooneyRivlin) cauchyAndTangent(F DeformationGradient) (σ CauchyStress, T CauchyTangentStiffness, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	iso := newIsochoric(F, J)
	Binv := iso.B.Inverse()
	BinvFinvt := tensor.Dot(Binv, iso.Finvt)
	δ := tensor.Identity[Current, Current]()
	σ = iso.cauchy(o.κ, o.μ-o.μm).Sub(Binv.Deviatoric().Scale(o.μm / J))
	T = iso.tangent(F, o.κ, o.μ-o.μm, 0)
	T2 := tensor.DyadIJKL(Binv.Deviatoric(), iso.Finvt).Scale(1.0 / 3.0)
	T2 = T2.Add(tensor.DyadILJK(iso.Finvt, Binv)).Add(tensor.DyadIKJL(Binv, iso.Finvt))
	T2 = T2.Sub(tensor.DyadIJKL(δ, BinvFinvt).Scale(2.0 / 3.0))
	T = T.Add(T2.Scale(o.μm / J))
	return
}
