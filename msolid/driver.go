// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// path kinds
const (
	UNIAXIAL    = "uniaxial"    // F = diag(λ, λt, λt) with σ22 = σ33 = 0
	EQUIBIAXIAL = "equibiaxial" // F = diag(λ, λ, λt) with σ33 = 0
	SHEAR       = "shear"       // F = δ + γ e1 ⊗ e2
	VOLUMETRIC  = "volumetric"  // F = λ δ
)

// Path holds a homogeneous deformation path
type Path struct {
	Kind  string  `json:"kind"`  // kind of path; e.g. "uniaxial"
	Max   float64 `json:"max"`   // final stretch λ; or amount of shear γ for "shear"
	Nincs int     `json:"nincs"` // number of increments
}

// Check checks the path data
func (o *Path) Check() (err error) {
	switch o.Kind {
	case UNIAXIAL, EQUIBIAXIAL, VOLUMETRIC:
		if o.Max <= 0 {
			return chk.Err("final stretch must be positive. Max = %v is invalid", o.Max)
		}
	case SHEAR:
	default:
		return chk.Err("path kind %q is not available", o.Kind)
	}
	if o.Nincs < 1 {
		return chk.Err("number of increments must be at least 1. Nincs = %d is invalid", o.Nincs)
	}
	return
}

// Values returns the stretches (or amounts of shear) along the path, including the state at rest
func (o *Path) Values() []float64 {
	if o.Kind == SHEAR {
		return utl.LinSpace(0, o.Max, o.Nincs+1)
	}
	return utl.LinSpace(1, o.Max, o.Nincs+1)
}

// Driver runs homogeneous deformation paths with elastic models
type Driver struct {

	// input
	Mdl Elastic // elastic model

	// settings
	Tol    float64 // tolerance on the traction-free stress components
	MaxIt  int     // maximum number of Newton iterations
	Silent bool    // do not show messages

	// results
	Res []*State  // results
	Lam []float64 // stretches or amounts of shear
}

// Init initialises driver
func (o *Driver) Init(mdl Elastic) {
	o.Mdl = mdl
	o.Tol = 1e-10
	o.MaxIt = 20
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {

	// check
	if err = pth.Check(); err != nil {
		return
	}

	// allocate results arrays
	o.Lam = pth.Values()
	o.Res = make([]*State, len(o.Lam))

	// update states
	state := NewState()
	λt := 1.0
	for i, λ := range o.Lam {
		var F DeformationGradient
		switch pth.Kind {
		case UNIAXIAL, EQUIBIAXIAL:
			if λt, err = o.lateral(pth.Kind, λ, λt); err != nil {
				return chk.Err("%s path failed at λ = %g:\n%v", pth.Kind, λ, err)
			}
			F = stretches(pth.Kind, λ, λt)
		case SHEAR:
			F[0][0], F[1][1], F[2][2] = 1, 1, 1
			F[0][1] = λ
		case VOLUMETRIC:
			F[0][0], F[1][1], F[2][2] = λ, λ, λ
		}
		if err = state.Update(o.Mdl, F); err != nil {
			return
		}
		o.Res[i] = state.GetCopy()
		if !o.Silent {
			io.Pf("%4d : λ = %10.6f  σ11 = %13.6e  P11 = %13.6e\n", i, λ, o.Res[i].Sig[0][0], o.Res[i].P[0][0])
		}
	}
	return
}

// lateral finds the lateral stretch λt yielding traction-free lateral faces using Newton's method
func (o *Driver) lateral(kind string, λ, λt float64) (float64, error) {
	for it := 0; it < o.MaxIt; it++ {
		F := stretches(kind, λ, λt)
		σ, err := o.Mdl.CauchyStress(F)
		if err != nil {
			return λt, err
		}
		var r float64
		if kind == UNIAXIAL {
			r = σ[1][1]
		} else {
			r = σ[2][2]
		}
		if math.Abs(r) < o.Tol*math.Max(1, math.Abs(σ[0][0])) {
			return λt, nil
		}
		T, err := o.Mdl.CauchyTangentStiffness(F)
		if err != nil {
			return λt, err
		}
		var drdλt float64
		if kind == UNIAXIAL {
			drdλt = T[1][1][1][1] + T[1][1][2][2]
		} else {
			drdλt = T[2][2][2][2]
		}
		λt -= r / drdλt
	}
	return λt, chk.Err("Newton's method did not converge after %d iterations", o.MaxIt)
}

// stretches returns the deformation gradient of uniaxial or equibiaxial paths
func stretches(kind string, λ, λt float64) (F DeformationGradient) {
	if kind == UNIAXIAL {
		F[0][0], F[1][1], F[2][2] = λ, λt, λt
		return
	}
	F[0][0], F[1][1], F[2][2] = λ, λ, λt
	return
}
