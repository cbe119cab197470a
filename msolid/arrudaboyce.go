// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/special"
)

// ArrudaBoyce implements the eight-chain hyperelastic model of Arruda and Boyce
//  γ = sqrt(tr(B*)/(3 Nb))    η = ℒ⁻¹(γ)    γ0 = sqrt(1/Nb)    η0 = ℒ⁻¹(γ0)
//  a(F) = 3 μ Nb γ0/η0 [γ η - γ0 η0 + ln(η sinh(η0) / (η0 sinh(η)))] + U(J)
type ArrudaBoyce struct {
	firstInvariant

	// parameters
	κ  float64 // bulk modulus
	μ  float64 // shear modulus
	Nb float64 // number of links per chain

	// derived
	γ0 float64 // stretch at rest
	η0 float64 // ℒ⁻¹(γ0)
}

// add model to factory
func init() {
	allocators["arruda-boyce"] = allocator(NewArrudaBoyce)
}

// NewArrudaBoyce returns a new model for parameters {κ, μ, Nb}
func NewArrudaBoyce(prms Parameters) (o *ArrudaBoyce, err error) {
	if err = checkPrms("ArrudaBoyce", prms, "κ", "μ", "Nb"); err != nil {
		return
	}
	if prms[2] <= 1 {
		return nil, chk.Err("ArrudaBoyce: number of links Nb = %v must be greater than 1", prms[2])
	}
	o = &ArrudaBoyce{κ: prms[0], μ: prms[1], Nb: prms[2]}
	o.γ0 = math.Sqrt(1.0 / o.Nb)
	o.η0 = special.InverseLangevin(o.γ0)
	o.init(o, o.κ, o.response)
	return
}

// GetPrms gets (an example) of parameters
func (o ArrudaBoyce) GetPrms() Parameters {
	return Parameters{13, 3, 8}
}

// BulkModulus returns κ
func (o *ArrudaBoyce) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *ArrudaBoyce) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *ArrudaBoyce) String() string {
	return io.Sf("ArrudaBoyce{κ=%g, μ=%g, Nb=%g}", o.κ, o.μ, o.Nb)
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *ArrudaBoyce) HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error) {
	return o.energy(F, func(I1 float64) (float64, error) {
		γ := math.Sqrt(I1 / (3.0 * o.Nb))
		if γ >= 1 {
			return 0, &CustomError{MAXEXTENSIBILITY, F, o.String()}
		}
		η := special.InverseLangevin(γ)
		c := 3.0 * o.μ * o.Nb * o.γ0 / o.η0
		return c * (γ*η - o.γ0*o.η0 + math.Log(η/math.Sinh(η)) - math.Log(o.η0/math.Sinh(o.η0))), nil
	})
}

// response computes g = μ (γ0/η0) (η/γ) and dg/dI1
func (o *ArrudaBoyce) response(F DeformationGradient, I1 float64) (g, dg float64, err error) {
	γ := math.Sqrt(I1 / (3.0 * o.Nb))
	if γ >= 1 {
		return 0, 0, &CustomError{MAXEXTENSIBILITY, F, o.String()}
	}
	η := special.InverseLangevin(γ)
	c := o.μ * o.γ0 / o.η0
	g = c * η / γ
	dg = c * (γ/special.LangevinDerivative(η) - η) / (γ * γ) / (6.0 * o.Nb * γ)
	return
}
