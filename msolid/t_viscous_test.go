// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
	"github.com/mrbuche/flavio-sub000/tests"
)

func Test_viscous01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscous01")

	nvisc := 0
	for _, name := range Names() {
		mdl, _ := New(name, examplePrms[name])
		vis, ok := mdl.(Viscoelastic)
		if !ok {
			continue
		}
		nvisc++
		io.Pfyel("%v\n", mdl)
		checkViscoelastic(tst, name, vis)
		if ehv, ok := mdl.(ElasticHyperviscous); ok {
			checkElasticHyperviscous(tst, name, ehv)
		}
		if hve, ok := mdl.(Hyperviscoelastic); ok {
			checkHyperviscoelastic(tst, name, hve)
		}
	}
	if nvisc != 2 {
		tst.Errorf("there should be 2 viscoelastic models. %d were found\n", nvisc)
	}
}

func Test_viscous02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscous02")

	// recovery of viscosities
	ε := 1e-6
	for _, name := range []string{"viscous-almansi-hamel", "viscous-saint-venant-kirchhoff"} {
		mdl, _ := New(name, examplePrms[name])
		vis := mdl.(Viscoelastic)
		ζ, η := examplePrms[name][2], examplePrms[name][3]
		Fdot := identity().Scale(ε)
		P, err := vis.FirstPiolaKirchhoffStress(identity(), Fdot)
		if err != nil {
			tst.Errorf("%s failed: %v\n", name, err)
			return
		}
		if r := math.Abs(9*ε*ζ/P.Trace() - 1); r > 3*ε {
			tst.Errorf("%s: bulk viscosity is not recovered: |9εζ/tr(P) - 1| = %g\n", name, r)
		}
		Fdot = DeformationGradientRate{}
		Fdot[0][1] = ε
		P, _ = vis.FirstPiolaKirchhoffStress(identity(), Fdot)
		if r := math.Abs(ε*η/P[0][1] - 1); r > ε {
			tst.Errorf("%s: shear viscosity is not recovered: |εη/P01 - 1| = %g\n", name, r)
		}

		// invalid Jacobian
		F := DeformationGradient{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		var jerr *InvalidJacobianError
		if _, err = vis.CauchyStress(F, Fdot); !errors.As(err, &jerr) {
			tst.Errorf("%s: should fail with invalid Jacobian. err = %v\n", name, err)
		}
		if _, err = vis.SecondPiolaKirchhoffRateTangentStiffness(F, Fdot); !errors.As(err, &jerr) {
			tst.Errorf("%s: should fail with invalid Jacobian. err = %v\n", name, err)
		}
	}
}

// checkViscoelastic checks the stresses and rate tangents of viscoelastic models
func checkViscoelastic(tst *testing.T, name string, mdl Viscoelastic) {

	// at rest
	var rest DeformationGradientRate
	σ, err := mdl.CauchyStress(identity(), rest)
	if err != nil {
		tst.Errorf("%s failed: %v\n", name, err)
		return
	}
	tests.Ten2(tst, name+": σ(δ,0)", 1e-14, σ, CauchyStress{})

	// relations between stress measures
	F := tests.DeformationGradient()
	Fdot := tests.DeformationGradientRate()
	J := F.Determinant()
	σ, _ = mdl.CauchyStress(F, Fdot)
	P, _ := mdl.FirstPiolaKirchhoffStress(F, Fdot)
	S, _ := mdl.SecondPiolaKirchhoffStress(F, Fdot)
	tests.Ten2(tst, name+": P = JσF⁻ᵀ", 1e-13, P, tensor.Dot(σ, F.InverseTranspose()).Scale(J))
	tests.Ten2(tst, name+": S = F⁻¹P", 1e-13, S, tensor.Dot(F.Inverse(), P))
	tests.Ten2(tst, name+": σ = σᵀ", 1e-13, σ, σ.Transpose())

	// rate tangents
	U, err := mdl.CauchyRateTangentStiffness(F, Fdot)
	if err != nil {
		tst.Errorf("%s failed: %v\n", name, err)
		return
	}
	V, _ := mdl.FirstPiolaKirchhoffRateTangentStiffness(F, Fdot)
	W, _ := mdl.SecondPiolaKirchhoffRateTangentStiffness(F, Fdot)
	tests.DerivTen2Ten2(tst, name+": ∂σ/∂Ḟ", tests.TOL, U, Fdot, func(X DeformationGradientRate) (CauchyStress, error) {
		return mdl.CauchyStress(F, X)
	})
	tests.DerivTen2Ten2(tst, name+": ∂P/∂Ḟ", tests.TOL, V, Fdot, func(X DeformationGradientRate) (FirstPiolaKirchhoffStress, error) {
		return mdl.FirstPiolaKirchhoffStress(F, X)
	})
	tests.DerivTen2Ten2(tst, name+": ∂S/∂Ḟ", tests.TOL, W, Fdot, func(X DeformationGradientRate) (SecondPiolaKirchhoffStress, error) {
		return mdl.SecondPiolaKirchhoffStress(F, X)
	})

	// objectivity
	Q := tests.RotationCurrent()
	Qt := Q.Transpose()
	δ := tensor.Identity[Reference, Reference]()
	QF := tensor.Dot(Q, F)
	QFdot := tensor.Dot(Q, Fdot)
	σQ, _ := mdl.CauchyStress(QF, QFdot)
	PQ, _ := mdl.FirstPiolaKirchhoffStress(QF, QFdot)
	SQ, _ := mdl.SecondPiolaKirchhoffStress(QF, QFdot)
	UQ, _ := mdl.CauchyRateTangentStiffness(QF, QFdot)
	VQ, _ := mdl.FirstPiolaKirchhoffRateTangentStiffness(QF, QFdot)
	WQ, _ := mdl.SecondPiolaKirchhoffRateTangentStiffness(QF, QFdot)
	tests.Ten2(tst, name+": σ(QF,QḞ) = QσQᵀ", 1e-13, σQ, tensor.Dot(tensor.Dot(Q, σ), Qt))
	tests.Ten2(tst, name+": P(QF,QḞ) = QP", 1e-13, PQ, tensor.Dot(Q, P))
	tests.Ten2(tst, name+": S(QF,QḞ) = S", 1e-13, SQ, S)
	tests.Ten4(tst, name+": ∂σ/∂Ḟ(QF,QḞ)", 1e-12, UQ, tensor.ContractAllIndicesWithFirstIndicesOf(U, Qt, Qt, Qt, δ))
	tests.Ten4(tst, name+": ∂P/∂Ḟ(QF,QḞ)", 1e-12, VQ, tensor.ContractAllIndicesWithFirstIndicesOf(V, Qt, δ, Qt, δ))
	tests.Ten4(tst, name+": ∂S/∂Ḟ(QF,QḞ)", 1e-12, WQ, tensor.ContractAllIndicesWithFirstIndicesOf(W, δ, δ, Qt, δ))

	// rotation of the reference configuration
	Q0 := tests.RotationReference()
	Q0t := Q0.Transpose()
	δc := tensor.Identity[Current, Current]()
	FQ0, FdotQ0 := tensor.Dot(F, Q0t), tensor.Dot(Fdot, Q0t)
	σQ0, _ := mdl.CauchyStress(FQ0, FdotQ0)
	PQ0, _ := mdl.FirstPiolaKirchhoffStress(FQ0, FdotQ0)
	SQ0, _ := mdl.SecondPiolaKirchhoffStress(FQ0, FdotQ0)
	VQ0, _ := mdl.FirstPiolaKirchhoffRateTangentStiffness(FQ0, FdotQ0)
	tests.Ten2(tst, name+": σ(FQ0ᵀ,ḞQ0ᵀ) = σ", 1e-13, σQ0, σ)
	tests.Ten2(tst, name+": P(FQ0ᵀ,ḞQ0ᵀ) = PQ0ᵀ", 1e-13, PQ0, tensor.Dot(P, Q0t))
	tests.Ten2(tst, name+": S(FQ0ᵀ,ḞQ0ᵀ) = Q0SQ0ᵀ", 1e-13, SQ0, tensor.Dot(tensor.Dot(Q0, S), Q0t))
	tests.Ten4(tst, name+": ∂P/∂Ḟ(FQ0ᵀ,ḞQ0ᵀ)", 1e-12, VQ0, tensor.ContractAllIndicesWithFirstIndicesOf(V, δc, Q0t, δc, Q0t))
}

// checkElasticHyperviscous checks the dissipation of elastic-hyperviscous models
func checkElasticHyperviscous(tst *testing.T, name string, mdl ElasticHyperviscous) {

	// no dissipation at rest
	F := tests.DeformationGradient()
	var rest DeformationGradientRate
	φ0, err := mdl.ViscousDissipation(F, rest)
	if err != nil {
		tst.Errorf("%s failed: %v\n", name, err)
		return
	}
	chk.Float64(tst, name+": φ(F,0)", 1e-15, φ0, 0)

	// P = ∂Φ/∂Ḟ and P - P(F,0) = ∂φ/∂Ḟ
	Fdot := tests.DeformationGradientRate()
	P, _ := mdl.FirstPiolaKirchhoffStress(F, Fdot)
	Pe, _ := mdl.FirstPiolaKirchhoffStress(F, rest)
	tests.DerivScaTen2(tst, name+": P = ∂Φ/∂Ḟ", tests.TOL, P, Fdot, func(X DeformationGradientRate) (float64, error) {
		return mdl.DissipationPotential(F, X)
	})
	tests.DerivScaTen2(tst, name+": Pv = ∂φ/∂Ḟ", tests.TOL, P.Sub(Pe), Fdot, func(X DeformationGradientRate) (float64, error) {
		return mdl.ViscousDissipation(F, X)
	})

	// objectivity
	φ, _ := mdl.ViscousDissipation(F, Fdot)
	Q := tests.RotationCurrent()
	φQ, _ := mdl.ViscousDissipation(tensor.Dot(Q, F), tensor.Dot(Q, Fdot))
	tests.Float64(tst, name+": φ(QF,QḞ) = φ(F,Ḟ)", 1e-13, φQ, φ)
	Q0t := tests.RotationReference().Transpose()
	φQ0, _ := mdl.ViscousDissipation(tensor.Dot(F, Q0t), tensor.Dot(Fdot, Q0t))
	tests.Float64(tst, name+": φ(FQ0ᵀ,ḞQ0ᵀ) = φ(F,Ḟ)", 1e-13, φQ0, φ)

	// Φ(F,X) - P(F,Ḟ):X is minimal at X = Ḟ
	checkMinimum(tst, name+": Φ - P:Ḟ", Fdot, func(X DeformationGradientRate) (float64, error) {
		ΦX, err := mdl.DissipationPotential(F, X)
		return ΦX - P.FullContraction(X), err
	})

	// minimum at rest
	for _, δFdot := range tests.Perturbations() {
		for _, s := range tests.Steps() {
			φs, err := mdl.ViscousDissipation(F, δFdot.Scale(s))
			if err != nil {
				tst.Errorf("%s failed: %v\n", name, err)
				return
			}
			if !(φs > φ0) {
				tst.Errorf("%s: φ(F, %g δḞ) = %g is not greater than φ(F,0) = %g\n", name, s, φs, φ0)
			}
		}
	}
}

// checkHyperviscoelastic checks the free energy of hyperviscoelastic models
func checkHyperviscoelastic(tst *testing.T, name string, mdl Hyperviscoelastic) {
	a0, err := mdl.HelmholtzFreeEnergyDensity(identity())
	if err != nil {
		tst.Errorf("%s failed: %v\n", name, err)
		return
	}
	chk.Float64(tst, name+": a(δ)", 1e-14, a0, 0)
	F := tests.DeformationGradient()
	var rest DeformationGradientRate
	P, _ := mdl.FirstPiolaKirchhoffStress(F, rest)
	tests.DerivScaTen2(tst, name+": P(F,0) = ∂a/∂F", tests.TOL, P, F, mdl.HelmholtzFreeEnergyDensity)

	// a(X) - P(F,0):X is minimal at X = F
	checkMinimum(tst, name+": a - P:F", F, func(X DeformationGradient) (float64, error) {
		aX, err := mdl.HelmholtzFreeEnergyDensity(X)
		return aX - P.FullContraction(X), err
	})
}
