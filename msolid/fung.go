// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Fung implements the exponential hyperelastic model of Fung
//  a(F) = (μ - μm)/2 (tr(B*) - 3) + μm/(2c) (exp(c (tr(B*) - 3)) - 1) + U(J)
type Fung struct {
	firstInvariant

	// parameters
	κ  float64 // bulk modulus
	μ  float64 // shear modulus
	μm float64 // extra modulus
	c  float64 // exponent
}

// add model to factory
func init() {
	allocators["fung"] = allocator(NewFung)
}

// NewFung returns a new model for parameters {κ, μ, μm, c}
func NewFung(prms Parameters) (o *Fung, err error) {
	if err = checkPrms("Fung", prms, "κ", "μ", "μm", "c"); err != nil {
		return
	}
	o = &Fung{κ: prms[0], μ: prms[1], μm: prms[2], c: prms[3]}
	o.init(o, o.κ, func(F DeformationGradient, I1 float64) (float64, float64, error) {
		e := math.Exp(o.c * (I1 - 3.0))
		return o.μ + o.μm*(e-1.0), o.μm * o.c * e, nil
	})
	return
}

// GetPrms gets (an example) of parameters
func (o Fung) GetPrms() Parameters {
	return Parameters{13, 3, 1.2, 1.1}
}

// BulkModulus returns κ
func (o *Fung) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *Fung) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *Fung) String() string {
	return io.Sf("Fung{κ=%g, μ=%g, μm=%g, c=%g}", o.κ, o.μ, o.μm, o.c)
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *Fung) HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error) {
	return o.energy(F, func(I1 float64) (float64, error) {
		x := I1 - 3.0
		return (o.μ-o.μm)/2.0*x + o.μm/(2.0*o.c)*(math.Exp(o.c*x)-1.0), nil
	})
}
