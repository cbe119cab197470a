// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements surface and localization elements assembling nodal forces and stiffnesses
/*
 *  At each integration point g with weight w_g:
 *
 *     f_a = Σ_g w_g P_g : ∂F_g/∂x_a
 *     K_ab = Σ_g w_g (∂F_g/∂x_a : 𝒞_g : ∂F_g/∂x_b + P_g : ∂²F_g/∂x_a∂x_b)
 *
 *  where P = P(F) or P(F, dF/dt) and 𝒞 = ∂P/∂F. Viscous elements assemble
 *  ∂f/∂v instead, with ∂(dF/dt)/∂v = ∂F/∂x and 𝒞 = ∂P/∂(dF/dt).
 */
package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/shp"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// configurations
type (
	Reference = tensor.Reference
	Current   = tensor.Current
)

// nodal quantities
type (
	ReferenceCoordinates = tensor.VecList[Reference]         // [nnodes]
	CurrentCoordinates   = tensor.VecList[Current]           // [nnodes]
	Velocities           = tensor.VecList[Current]           // [nnodes]
	Forces               = tensor.VecList[Current]           // [nnodes]
	Stiffnesses          = [][]tensor.Ten2[Current, Current] // [nnodes][nnodes]; K[a][b][k][l] = ∂f_a^k/∂x_b^l
)

// Kinematics computes deformation gradients and their derivatives at integration points
type Kinematics interface {
	Nnodes() int        // number of nodes
	Npoints() int       // number of integration points
	Weights() []float64 // integration weights [nip]

	// F [nip] and dF/dt [nip]
	DeformationGradients(x CurrentCoordinates) []tensor.Ten2[Current, Reference]
	DeformationGradientRates(x CurrentCoordinates, v Velocities) []tensor.Ten2[Current, Reference]

	// ∂F/∂x [nip][nnodes] and Σ_g w_g P_g : ∂²F_g/∂x∂x [nnodes][nnodes]
	GradientOperators(x CurrentCoordinates) [][]tensor.Ten3[Current, Reference, Current]
	GeometricContraction(x CurrentCoordinates, P []tensor.Ten2[Current, Reference]) [][]tensor.Ten2[Current, Current]
}

// kinematics allocators
var kinallocators = map[string]func(shape *shp.Shape, X ReferenceCoordinates, h float64) (Kinematics, error){
	"surface": func(shape *shp.Shape, X ReferenceCoordinates, h float64) (Kinematics, error) {
		return NewSurfaceKinematics(shape, X, h)
	},
	"localization": func(shape *shp.Shape, X ReferenceCoordinates, h float64) (Kinematics, error) {
		return NewLocalizationKinematics(shape, X, h)
	},
}

// NewSurfaceKinematics returns the kinematics of surface elements
func NewSurfaceKinematics(shape *shp.Shape, X ReferenceCoordinates, h float64) (*shp.Surface, error) {
	return shp.NewSurface(shape, X, h)
}

// NewLocalizationKinematics returns the kinematics of localization elements
func NewLocalizationKinematics(shape *shp.Shape, X ReferenceCoordinates, h float64) (*shp.Localization, error) {
	return shp.NewLocalization(shape, X, h)
}

// NewKinematics allocates kinematics by kind ("surface" or "localization") and shape name
func NewKinematics(kind, shapeName string, X ReferenceCoordinates, h float64) (Kinematics, error) {
	allocator, ok := kinallocators[kind]
	if !ok {
		return nil, chk.Err("cannot find kinematics named %q. available: %v", kind, KinematicsKinds())
	}
	shape := shp.Get(shapeName)
	if shape == nil {
		return nil, chk.Err("cannot find shape named %q. available: %v", shapeName, shp.Names())
	}
	return allocator(shape, X, h)
}

// KinematicsKinds returns the sorted kinds of kinematics
func KinematicsKinds() (kinds []string) {
	for kind := range kinallocators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return
}
