// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/io"

// NeoHookean implements the compressible Neo-Hookean hyperelastic model
//  a(F) = μ/2 (tr(B*) - 3) + U(J)
type NeoHookean struct {
	firstInvariant

	// parameters
	κ float64 // bulk modulus
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["neo-hookean"] = allocator(NewNeoHookean)
}

// NewNeoHookean returns a new model for parameters {κ, μ}
func NewNeoHookean(prms Parameters) (o *NeoHookean, err error) {
	if err = checkPrms("NeoHookean", prms, "κ", "μ"); err != nil {
		return
	}
	o = &NeoHookean{κ: prms[0], μ: prms[1]}
	o.init(o, o.κ, func(F DeformationGradient, I1 float64) (float64, float64, error) {
		return o.μ, 0, nil
	})
	return
}

// GetPrms gets (an example) of parameters
func (o NeoHookean) GetPrms() Parameters {
	return Parameters{13, 3}
}

// BulkModulus returns κ
func (o *NeoHookean) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *NeoHookean) ShearModulus() float64 { return o.μ }

// String returns the model description
func (o *NeoHookean) String() string {
	return io.Sf("NeoHookean{κ=%g, μ=%g}", o.κ, o.μ)
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *NeoHookean) HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error) {
	return o.energy(F, func(I1 float64) (float64, error) {
		return o.μ / 2.0 * (I1 - 3.0), nil
	})
}
