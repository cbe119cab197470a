// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Yeoh implements the Yeoh hyperelastic model
//  a(F) = Σ_n μn/2 (tr(B*) - 3)ⁿ + U(J)    with μ1 = μ
type Yeoh struct {
	firstInvariant

	// parameters
	κ  float64   // bulk modulus
	μs []float64 // moduli {μ, μ2, μ3, ...}
}

// add model to factory
func init() {
	allocators["yeoh"] = allocator(NewYeoh)
}

// NewYeoh returns a new model for parameters {κ, μ, μ2, ..., μn}
func NewYeoh(prms Parameters) (o *Yeoh, err error) {
	if len(prms) < 2 {
		return nil, chk.Err("Yeoh requires at least 2 parameters {κ, μ, μ2, ...}. %d were given", len(prms))
	}
	if err = checkPrms("Yeoh", prms[:2], "κ", "μ"); err != nil {
		return
	}
	o = &Yeoh{κ: prms[0], μs: append([]float64{}, prms[1:]...)}
	o.init(o, o.κ, func(F DeformationGradient, I1 float64) (g, dg float64, err error) {
		x := I1 - 3.0
		for i, μn := range o.μs {
			n := float64(i + 1)
			g += n * μn * math.Pow(x, n-1)
			if i > 0 {
				dg += n * (n - 1) * μn * math.Pow(x, n-2)
			}
		}
		return
	})
	return
}

// GetPrms gets (an example) of parameters
func (o Yeoh) GetPrms() Parameters {
	return Parameters{13, 3, 0.5, 0.1, 0.01}
}

// BulkModulus returns κ
func (o *Yeoh) BulkModulus() float64 { return o.κ }

// ShearModulus returns μ
func (o *Yeoh) ShearModulus() float64 { return o.μs[0] }

// String returns the model description
func (o *Yeoh) String() string {
	l := make([]string, len(o.μs)-1)
	for i, μn := range o.μs[1:] {
		l[i] = io.Sf("%g", μn)
	}
	return io.Sf("Yeoh{κ=%g, μ=%g, μn=[%s]}", o.κ, o.μs[0], strings.Join(l, ", "))
}

// HelmholtzFreeEnergyDensity computes a(F)
func (o *Yeoh) HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error) {
	return o.energy(F, func(I1 float64) (a float64, err error) {
		x := I1 - 3.0
		for i, μn := range o.μs {
			a += μn / 2.0 * math.Pow(x, float64(i+1))
		}
		return
	})
}
