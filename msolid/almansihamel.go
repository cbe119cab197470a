// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// AlmansiHamel implements an elastic (non-hyperelastic) model based on the Euler-Almansi strain
//  e = (δ - B⁻¹)/2    σ = 2μ/J dev(e) + κ/J tr(e) δ
type AlmansiHamel struct {
	fromCauchy

	// parameters
	κ float64 // bulk modulus
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["almansi-hamel"] = allocator(NewAlmansiHamel)
}

// NewAlmansiHamel returns a new model for parameters {κ, μ}
func NewAlmansiHamel(prms Parameters) (o *AlmansiHamel, err error) {
	if err = checkPrms("AlmansiHamel", prms, "κ", "μ"); err != nil {
		return
	}
	o = &AlmansiHamel{κ: prms[0], μ: prms[1]}
	o.fromCauchy = fromCauchy{o.CauchyStress, o.cauchyAndTangent}
	return
}

// GetPrms gets (an example) of parameters
func (o AlmansiHamel) GetPrms() Parameters {
	return Parameters{13, 3}
}

// BulkModulus returns κ
func (o *AlmansiHamel) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *AlmansiHamel) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *AlmansiHamel) String() string {
	return io.Sf("AlmansiHamel{κ=%g, μ=%g}", o.κ, o.μ)
}

// CauchyStress computes σ
func (o *AlmansiHamel) CauchyStress(F DeformationGradient) (σ CauchyStress, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	return almansiHamelStress(F, J, o.κ, o.μ), nil
}

// CauchyTangentStiffness computes ∂σ/∂F
func (o *AlmansiHamel) CauchyTangentStiffness(F DeformationGradient) (T CauchyTangentStiffness, err error) {
	_, T, err = o.cauchyAndTangent(F)
	return
}

func (o *AlmansiHamel) cauchyAndTangent(F DeformationGradient) (σ CauchyStress, T CauchyTangentStiffness, err error) {
	J, err := jacobian(F, o)
	if err != nil {
		return
	}
	σ = almansiHamelStress(F, J, o.κ, o.μ)
	Finvt := F.InverseTranspose()
	Binv := tensor.Dot(Finvt, F.Inverse())
	BinvFinvt := tensor.Dot(Binv, Finvt)
	δ := tensor.Identity[Current, Current]()
	T = tensor.DyadILJK(Finvt, Binv).Add(tensor.DyadIKJL(Binv, Finvt)).Scale(o.μ / J)
	T = T.Add(tensor.DyadIJKL(δ, BinvFinvt).Scale((o.κ - 2.0*o.μ/3.0) / J))
	T = T.Sub(tensor.DyadIJKL(σ, Finvt))
	return
}

// almansiHamelStress computes σ = 2μ/J dev(e) + κ/J tr(e) δ
func almansiHamelStress(F DeformationGradient, J, κ, μ float64) CauchyStress {
	δ := tensor.Identity[Current, Current]()
	Binv := tensor.Dot(F.InverseTranspose(), F.Inverse())
	dev, tr := δ.Sub(Binv).Scale(0.5).DeviatoricAndTrace()
	return dev.Scale(2.0 * μ / J).Add(δ.Scale(κ * tr / J))
}
