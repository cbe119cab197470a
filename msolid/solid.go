// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for solids undergoing finite deformations
/*
 *                  |  given        |  returns
 *  =========================================================================
 *    Elastic       |  F            |  σ, P, S and ∂/∂F of each
 *    Hyperelastic  |  F            |  same as Elastic plus a(F)
 *  -------------------------------------------------------------------------
 *    Viscoelastic  |  F, dF/dt     |  σ, P, S and ∂/∂(dF/dt) of each
 *    ElasticHyper- |  F, dF/dt     |  same as Viscoelastic plus φ(F,dF/dt)
 *      viscous     |               |  and Φ(F,dF/dt)
 *    Hypervisco-   |  F, dF/dt     |  same as ElasticHyperviscous plus a(F)
 *      elastic     |               |
 *
 *  σ: Cauchy stress, P: first Piola-Kirchhoff stress, S: second Piola-Kirchhoff
 *  stress, a: Helmholtz free energy density, φ: viscous dissipation, Φ:
 *  dissipation potential. All densities are per unit reference volume except φ for
 *  models given in terms of the rate of deformation which is J times the spatial one.
 */
package msolid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// configurations
type (
	Reference = tensor.Reference
	Current   = tensor.Current
)

// kinematics
type (
	DeformationGradient     = tensor.Ten2[Current, Reference] // F
	DeformationGradientRate = tensor.Ten2[Current, Reference] // dF/dt
)

// stresses
type (
	CauchyStress               = tensor.Ten2[Current, Current]     // σ
	FirstPiolaKirchhoffStress  = tensor.Ten2[Current, Reference]   // P = J σ F⁻ᵀ
	SecondPiolaKirchhoffStress = tensor.Ten2[Reference, Reference] // S = F⁻¹ P
)

// tangents with respect to F
type (
	CauchyTangentStiffness               = tensor.Ten4[Current, Current, Current, Reference]     // ∂σ_ij/∂F_kL
	FirstPiolaKirchhoffTangentStiffness  = tensor.Ten4[Current, Reference, Current, Reference]   // ∂P_iJ/∂F_kL
	SecondPiolaKirchhoffTangentStiffness = tensor.Ten4[Reference, Reference, Current, Reference] // ∂S_IJ/∂F_kL
)

// tangents with respect to dF/dt
type (
	CauchyRateTangentStiffness               = tensor.Ten4[Current, Current, Current, Reference]
	FirstPiolaKirchhoffRateTangentStiffness  = tensor.Ten4[Current, Reference, Current, Reference]
	SecondPiolaKirchhoffRateTangentStiffness = tensor.Ten4[Reference, Reference, Current, Reference]
)

// Parameters holds the material constants of a model in positional order; e.g. {κ, μ, ...}
type Parameters []float64

// Solid defines what all solid models implement
type Solid interface {
	BulkModulus() float64  // κ: small-strain bulk modulus
	ShearModulus() float64 // μ: small-strain shear modulus
	GetPrms() Parameters   // returns (an example) of parameters
	String() string        // returns the name of the model and its parameters
}

// Elastic defines models whose stress depends only on the deformation gradient
type Elastic interface {
	Solid
	CauchyStress(F DeformationGradient) (CauchyStress, error)
	CauchyTangentStiffness(F DeformationGradient) (CauchyTangentStiffness, error)
	FirstPiolaKirchhoffStress(F DeformationGradient) (FirstPiolaKirchhoffStress, error)
	FirstPiolaKirchhoffTangentStiffness(F DeformationGradient) (FirstPiolaKirchhoffTangentStiffness, error)
	SecondPiolaKirchhoffStress(F DeformationGradient) (SecondPiolaKirchhoffStress, error)
	SecondPiolaKirchhoffTangentStiffness(F DeformationGradient) (SecondPiolaKirchhoffTangentStiffness, error)
}

// Hyperelastic defines elastic models derived from a free energy density
type Hyperelastic interface {
	Elastic
	HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error)
}

// Viscoelastic defines models whose stress depends on the deformation gradient and its rate
type Viscoelastic interface {
	Solid
	CauchyStress(F DeformationGradient, Fdot DeformationGradientRate) (CauchyStress, error)
	CauchyRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (CauchyRateTangentStiffness, error)
	FirstPiolaKirchhoffStress(F DeformationGradient, Fdot DeformationGradientRate) (FirstPiolaKirchhoffStress, error)
	FirstPiolaKirchhoffRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (FirstPiolaKirchhoffRateTangentStiffness, error)
	SecondPiolaKirchhoffStress(F DeformationGradient, Fdot DeformationGradientRate) (SecondPiolaKirchhoffStress, error)
	SecondPiolaKirchhoffRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (SecondPiolaKirchhoffRateTangentStiffness, error)
}

// ElasticHyperviscous defines viscoelastic models with a viscous dissipation function
type ElasticHyperviscous interface {
	Viscoelastic
	ViscousDissipation(F DeformationGradient, Fdot DeformationGradientRate) (float64, error)   // φ
	DissipationPotential(F DeformationGradient, Fdot DeformationGradientRate) (float64, error) // Φ; P = ∂Φ/∂(dF/dt)
}

// Hyperviscoelastic defines elastic-hyperviscous models with a free energy density
type Hyperviscoelastic interface {
	ElasticHyperviscous
	HelmholtzFreeEnergyDensity(F DeformationGradient) (float64, error)
}

// New returns a new solid model
func New(name string, prms Parameters) (model Solid, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(prms)
}

// Names returns the sorted names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func(prms Parameters) (Solid, error){}

// allocator wraps a constructor so that errors do not yield typed nil models
func allocator[M Solid](constructor func(prms Parameters) (M, error)) func(prms Parameters) (Solid, error) {
	return func(prms Parameters) (Solid, error) {
		model, err := constructor(prms)
		if err != nil {
			return nil, err
		}
		return model, nil
	}
}
