// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Gent implements the Gent hyperelastic model with limiting chain extensibility
//  a(F) = -μ Jm/2 ln(1 - (tr(B*) - 3)/Jm) + U(J)
type Gent struct {
	firstInvariant

	// parameters
	κ  float64 // bulk modulus
	μ  float64 // shear modulus
	Jm float64 // extensibility
}

// add model to factory
func init() {
	allocators["gent"] = allocator(NewGent)
}

// NewGent returns a new model for parameters {κ, μ, Jm}
func NewGent(prms Parameters) (o *Gent, err error) {
	if err = checkPrms("Gent", prms, "κ", "μ", "Jm"); err != nil {
		return
	}
	o = &Gent{κ: prms[0], μ: prms[1], Jm: prms[2]}
	o.init(o, o.κ, o.response)
	return
}

// GetPrms gets (an example) of parameters
func (o Gent) GetPrms() Parameters {
	return Parameters{13, 3, 23}
}

// BulkModulus returns κ
func (o *Gent) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *Gent) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *Gent) String() string {
	return io.Sf("Gent{κ=%g, μ=%g, Jm=%g}", o.κ, o.μ, o.Jm)
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *Gent) HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error) {
	return o.energy(F, func(I1 float64) (float64, error) {
		x := (I1 - 3.0) / o.Jm
		if x >= 1 {
			return 0, &CustomError{MAXEXTENSIBILITY, F, o.String()}
		}
		return -o.μ * o.Jm / 2.0 * math.Log(1.0-x), nil
	})
}

// response computes g = μ/(1 - x) with x = (I1 - 3)/Jm
func (o *Gent) response(F DeformationGradient, I1 float64) (g, dg float64, err error) {
	d := 1.0 - (I1-3.0)/o.Jm
	if d <= 0 {
		return 0, 0, &CustomError{MAXEXTENSIBILITY, F, o.String()}
	}
	g = o.μ / d
	dg = o.μ / (o.Jm * d * d)
	return
}
