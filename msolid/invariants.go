// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/mrbuche/flavio-sub000/tensor"
)

// isochoric holds the isochoric left Cauchy-Green tensor B* = J^(-2/3) F Fᵀ and related data
type isochoric struct {
	J     float64                       // det(F)
	Jm23  float64                       // J^(-2/3)
	Finvt DeformationGradient           // F⁻ᵀ
	B     tensor.Ten2[Current, Current] // B*
	DevB  tensor.Ten2[Current, Current] // dev(B*)
	I1    float64                       // tr(B*)
}

// newIsochoric computes B* and its invariants
func newIsochoric(F DeformationGradient, J float64) (o isochoric) {
	o.J = J
	o.Jm23 = math.Pow(J, -2.0/3.0)
	o.Finvt = F.InverseTranspose()
	o.B = tensor.Dot(F, F.Transpose()).Scale(o.Jm23)
	o.DevB, o.I1 = o.B.DeviatoricAndTrace()
	return
}

// cauchy computes σ = (g/J) dev(B*) + p(J) δ
func (o isochoric) cauchy(κ, g float64) CauchyStress {
	_, p, _ := volumetric(κ, o.J)
	return o.DevB.Scale(g / o.J).Add(tensor.Identity[Current, Current]().Scale(p))
}

// tangent computes ∂σ/∂F for σ = (g(I1)/J) dev(B*) + p(J) δ. dg = dg/dI1
func (o isochoric) tangent(F DeformationGradient, κ, g, dg float64) (T CauchyTangentStiffness) {
	δ := tensor.Identity[Current, Current]()
	_, _, dp := volumetric(κ, o.J)
	T = tensor.DyadIKJL(δ, F).Add(tensor.DyadILJK(F, δ)).Sub(tensor.DyadIJKL(δ, F).Scale(2.0 / 3.0)).Scale(g * o.Jm23 / o.J)
	T = T.Add(tensor.DyadIJKL(o.DevB, o.Finvt).Scale(-5.0 / 3.0 * g / o.J))
	if dg != 0 {
		dI1 := F.Scale(2.0 * o.Jm23).Sub(o.Finvt.Scale(2.0 / 3.0 * o.I1))
		T = T.Add(tensor.DyadIJKL(o.DevB, dI1).Scale(dg / o.J))
	}
	return T.Add(tensor.DyadIJKL(δ, o.Finvt).Scale(dp))
}

// firstInvariant implements elastic models with σ = (g(I1)/J) dev(B*) + p(J) δ
type firstInvariant struct {
	fromCauchy
	model Solid   // model owning this struct; for error messages
	κ     float64 // bulk modulus

	// g computes the response function g(I1) and its derivative
	g func(F DeformationGradient, I1 float64) (g, dg float64, err error)
}

// init sets the owner and response function
func (o *firstInvariant) init(model Solid, κ float64, g func(F DeformationGradient, I1 float64) (float64, float64, error)) {
	o.model = model
	o.κ = κ
	o.g = g
	o.fromCauchy = fromCauchy{o.CauchyStress, o.cauchyAndTangent}
}

// CauchyStress computes σ
func (o *firstInvariant) CauchyStress(F DeformationGradient) (σ CauchyStress, err error) {
	J, err := jacobian(F, o.model)
	if err != nil {
		return
	}
	iso := newIsochoric(F, J)
	g, _, err := o.g(F, iso.I1)
	if err != nil {
		return
	}
	return iso.cauchy(o.κ, g), nil
}

// CauchyTangentStiffness computes ∂σ/∂F
func (o *firstInvariant) CauchyTangentStiffness(F DeformationGradient) (T CauchyTangentStiffness, err error) {
	_, T, err = o.cauchyAndTangent(F)
	return
}

func (o *firstInvariant) cauchyAndTangent(F DeformationGradient) (σ CauchyStress, T CauchyTangentStiffness, err error) {
	J, err := jacobian(F, o.model)
	if err != nil {
		return
	}
	iso := newIsochoric(F, J)
	g, dg, err := o.g(F, iso.I1)
	if err != nil {
		return
	}
	return iso.cauchy(o.κ, g), iso.tangent(F, o.κ, g, dg), nil
}

// energy computes W̄(I1) + U(J) for given isochoric energy W̄
func (o *firstInvariant) energy(F DeformationGradient, W func(I1 float64) (float64, error)) (a float64, err error) {
	J, err := jacobian(F, o.model)
	if err != nil {
		return
	}
	iso := newIsochoric(F, J)
	a, err = W(iso.I1)
	if err != nil {
		return
	}
	U, _, _ := volumetric(o.κ, J)
	return a + U, nil
}
