// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/tensor"
)

const D = tensor.D

// checkPrms checks the number of parameters and that the listed ones are positive
func checkPrms(model string, prms Parameters, names ...string) (err error) {
	if len(prms) != len(names) {
		return chk.Err("%s requires %d parameters %v. %d were given", model, len(names), names, len(prms))
	}
	for i, name := range names {
		if prms[i] <= 0 || math.IsNaN(prms[i]) || math.IsInf(prms[i], 0) {
			return chk.Err("%s: parameter %s = %v must be positive", model, name, prms[i])
		}
	}
	return
}

// jacobian returns det(F) or an error if it is not positive
func jacobian(F DeformationGradient, model Solid) (J float64, err error) {
	J = F.Determinant()
	if !(J > 0) {
		return J, &InvalidJacobianError{J, F, model.String()}
	}
	return
}

// volumetric computes U(J) = κ/2 [(J²-1)/2 - ln(J)], p = dU/dJ and J d(p)/dJ + p
func volumetric(κ, J float64) (U, p, dp float64) {
	U = κ / 2.0 * ((J*J-1.0)/2.0 - math.Log(J))
	p = κ / 2.0 * (J - 1.0/J)
	dp = κ / 2.0 * (J + 1.0/J)
	return
}

// fromCauchy implements the Piola-Kirchhoff measures of elastic models given in terms of σ(F)
type fromCauchy struct {
	cauchy  func(F DeformationGradient) (CauchyStress, error)
	tangent func(F DeformationGradient) (CauchyStress, CauchyTangentStiffness, error)
}

// FirstPiolaKirchhoffStress computes P = J σ F⁻ᵀ
func (o fromCauchy) FirstPiolaKirchhoffStress(F DeformationGradient) (P FirstPiolaKirchhoffStress, err error) {
	σ, err := o.cauchy(F)
	if err != nil {
		return
	}
	return tensor.Dot(σ, F.InverseTranspose()).Scale(F.Determinant()), nil
}

// FirstPiolaKirchhoffTangentStiffness computes 𝒞_iJkL = J 𝒯_ijkL F⁻ᵀ_jJ + P_iJ F⁻ᵀ_kL - P_iL F⁻ᵀ_kJ
func (o fromCauchy) FirstPiolaKirchhoffTangentStiffness(F DeformationGradient) (C FirstPiolaKirchhoffTangentStiffness, err error) {
	σ, T, err := o.tangent(F)
	if err != nil {
		return
	}
	C = cauchyToFirstPiolaKirchhoffTangent(F, σ, T)
	return
}

// SecondPiolaKirchhoffStress computes S = J F⁻¹ σ F⁻ᵀ
func (o fromCauchy) SecondPiolaKirchhoffStress(F DeformationGradient) (S SecondPiolaKirchhoffStress, err error) {
	P, err := o.FirstPiolaKirchhoffStress(F)
	if err != nil {
		return
	}
	return tensor.Dot(F.Inverse(), P), nil
}

// SecondPiolaKirchhoffTangentStiffness computes 𝒢_IJkL = F⁻¹_Ii 𝒞_iJkL - F⁻ᵀ_kI S_LJ
func (o fromCauchy) SecondPiolaKirchhoffTangentStiffness(F DeformationGradient) (G SecondPiolaKirchhoffTangentStiffness, err error) {
	σ, T, err := o.tangent(F)
	if err != nil {
		return
	}
	Finv := F.Inverse()
	Finvt := Finv.Transpose()
	P := tensor.Dot(σ, Finvt).Scale(F.Determinant())
	S := tensor.Dot(Finv, P)
	C := cauchyToFirstPiolaKirchhoffTangent(F, σ, T)
	for I := 0; I < D; I++ {
		for J := 0; J < D; J++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					G[I][J][k][L] = -Finvt[k][I] * S[L][J]
					for i := 0; i < D; i++ {
						G[I][J][k][L] += Finv[I][i] * C[i][J][k][L]
					}
				}
			}
		}
	}
	return
}

func cauchyToFirstPiolaKirchhoffTangent(F DeformationGradient, σ CauchyStress, T CauchyTangentStiffness) (C FirstPiolaKirchhoffTangentStiffness) {
	J := F.Determinant()
	Finvt := F.InverseTranspose()
	P := tensor.Dot(σ, Finvt).Scale(J)
	for i := 0; i < D; i++ {
		for jj := 0; jj < D; jj++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					C[i][jj][k][L] = P[i][jj]*Finvt[k][L] - P[i][L]*Finvt[k][jj]
					for j := 0; j < D; j++ {
						C[i][jj][k][L] += J * T[i][j][k][L] * Finvt[j][jj]
					}
				}
			}
		}
	}
	return
}

// fromSecondPiolaKirchhoff implements σ and P of elastic models given in terms of S(F)
type fromSecondPiolaKirchhoff struct {
	second  func(F DeformationGradient) (SecondPiolaKirchhoffStress, error)
	tangent func(F DeformationGradient) (SecondPiolaKirchhoffStress, SecondPiolaKirchhoffTangentStiffness, error)
}

// CauchyStress computes σ = F S Fᵀ / J
func (o fromSecondPiolaKirchhoff) CauchyStress(F DeformationGradient) (σ CauchyStress, err error) {
	P, err := o.FirstPiolaKirchhoffStress(F)
	if err != nil {
		return
	}
	return tensor.Dot(P, F.Transpose()).Scale(1.0 / F.Determinant()), nil
}

// CauchyTangentStiffness computes 𝒯_ijkL = (𝒞_iJkL F_jJ + P_iL δ_jk)/J - σ_ij F⁻ᵀ_kL
func (o fromSecondPiolaKirchhoff) CauchyTangentStiffness(F DeformationGradient) (T CauchyTangentStiffness, err error) {
	S, G, err := o.tangent(F)
	if err != nil {
		return
	}
	J := F.Determinant()
	Finvt := F.InverseTranspose()
	P := tensor.Dot(F, S)
	σ := tensor.Dot(P, F.Transpose()).Scale(1.0 / J)
	C := secondToFirstPiolaKirchhoffTangent(F, S, G)
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					T[i][j][k][L] = -σ[i][j] * Finvt[k][L]
					if j == k {
						T[i][j][k][L] += P[i][L] / J
					}
					for jj := 0; jj < D; jj++ {
						T[i][j][k][L] += C[i][jj][k][L] * F[j][jj] / J
					}
				}
			}
		}
	}
	return
}

// FirstPiolaKirchhoffStress computes P = F S
func (o fromSecondPiolaKirchhoff) FirstPiolaKirchhoffStress(F DeformationGradient) (P FirstPiolaKirchhoffStress, err error) {
	S, err := o.second(F)
	if err != nil {
		return
	}
	return tensor.Dot(F, S), nil
}

// FirstPiolaKirchhoffTangentStiffness computes 𝒞_iJkL = δ_ik S_LJ + F_iI 𝒢_IJkL
func (o fromSecondPiolaKirchhoff) FirstPiolaKirchhoffTangentStiffness(F DeformationGradient) (C FirstPiolaKirchhoffTangentStiffness, err error) {
	S, G, err := o.tangent(F)
	if err != nil {
		return
	}
	return secondToFirstPiolaKirchhoffTangent(F, S, G), nil
}

func secondToFirstPiolaKirchhoffTangent(F DeformationGradient, S SecondPiolaKirchhoffStress, G SecondPiolaKirchhoffTangentStiffness) (C FirstPiolaKirchhoffTangentStiffness) {
	for i := 0; i < D; i++ {
		for J := 0; J < D; J++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					if i == k {
						C[i][J][k][L] = S[L][J]
					}
					for I := 0; I < D; I++ {
						C[i][J][k][L] += F[i][I] * G[I][J][k][L]
					}
				}
			}
		}
	}
	return
}

// fromCauchyRate implements the Piola-Kirchhoff measures of viscoelastic models given in terms of σ(F, dF/dt)
type fromCauchyRate struct {
	cauchy  func(F DeformationGradient, Fdot DeformationGradientRate) (CauchyStress, error)
	tangent func(F DeformationGradient, Fdot DeformationGradientRate) (CauchyRateTangentStiffness, error)
}

// FirstPiolaKirchhoffStress computes P = J σ F⁻ᵀ
func (o fromCauchyRate) FirstPiolaKirchhoffStress(F DeformationGradient, Fdot DeformationGradientRate) (P FirstPiolaKirchhoffStress, err error) {
	σ, err := o.cauchy(F, Fdot)
	if err != nil {
		return
	}
	return tensor.Dot(σ, F.InverseTranspose()).Scale(F.Determinant()), nil
}

// FirstPiolaKirchhoffRateTangentStiffness computes ∂P_iJ/∂Ḟ_kL = J 𝒰_ijkL F⁻ᵀ_jJ
func (o fromCauchyRate) FirstPiolaKirchhoffRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (V FirstPiolaKirchhoffRateTangentStiffness, err error) {
	U, err := o.tangent(F, Fdot)
	if err != nil {
		return
	}
	return cauchyToFirstPiolaKirchhoffRateTangent(F, U), nil
}

// SecondPiolaKirchhoffStress computes S = F⁻¹ P
func (o fromCauchyRate) SecondPiolaKirchhoffStress(F DeformationGradient, Fdot DeformationGradientRate) (S SecondPiolaKirchhoffStress, err error) {
	P, err := o.FirstPiolaKirchhoffStress(F, Fdot)
	if err != nil {
		return
	}
	return tensor.Dot(F.Inverse(), P), nil
}

// SecondPiolaKirchhoffRateTangentStiffness computes ∂S_IJ/∂Ḟ_kL = F⁻¹_Ii ∂P_iJ/∂Ḟ_kL
func (o fromCauchyRate) SecondPiolaKirchhoffRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (W SecondPiolaKirchhoffRateTangentStiffness, err error) {
	U, err := o.tangent(F, Fdot)
	if err != nil {
		return
	}
	V := cauchyToFirstPiolaKirchhoffRateTangent(F, U)
	Finv := F.Inverse()
	for I := 0; I < D; I++ {
		for J := 0; J < D; J++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					for i := 0; i < D; i++ {
						W[I][J][k][L] += Finv[I][i] * V[i][J][k][L]
					}
				}
			}
		}
	}
	return
}

func cauchyToFirstPiolaKirchhoffRateTangent(F DeformationGradient, U CauchyRateTangentStiffness) (V FirstPiolaKirchhoffRateTangentStiffness) {
	J := F.Determinant()
	Finvt := F.InverseTranspose()
	for i := 0; i < D; i++ {
		for jj := 0; jj < D; jj++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					for j := 0; j < D; j++ {
						V[i][jj][k][L] += J * U[i][j][k][L] * Finvt[j][jj]
					}
				}
			}
		}
	}
	return
}

// fromSecondPiolaKirchhoffRate implements σ and P of viscoelastic models given in terms of S(F, dF/dt)
type fromSecondPiolaKirchhoffRate struct {
	second  func(F DeformationGradient, Fdot DeformationGradientRate) (SecondPiolaKirchhoffStress, error)
	tangent func(F DeformationGradient, Fdot DeformationGradientRate) (SecondPiolaKirchhoffRateTangentStiffness, error)
}

// CauchyStress computes σ = F S Fᵀ / J
func (o fromSecondPiolaKirchhoffRate) CauchyStress(F DeformationGradient, Fdot DeformationGradientRate) (σ CauchyStress, err error) {
	P, err := o.FirstPiolaKirchhoffStress(F, Fdot)
	if err != nil {
		return
	}
	return tensor.Dot(P, F.Transpose()).Scale(1.0 / F.Determinant()), nil
}

// CauchyRateTangentStiffness computes ∂σ_ij/∂Ḟ_kL = ∂P_iJ/∂Ḟ_kL F_jJ / J
func (o fromSecondPiolaKirchhoffRate) CauchyRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (U CauchyRateTangentStiffness, err error) {
	W, err := o.tangent(F, Fdot)
	if err != nil {
		return
	}
	J := F.Determinant()
	V := secondToFirstPiolaKirchhoffRateTangent(F, W)
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					for jj := 0; jj < D; jj++ {
						U[i][j][k][L] += V[i][jj][k][L] * F[j][jj] / J
					}
				}
			}
		}
	}
	return
}

// FirstPiolaKirchhoffStress computes P = F S
func (o fromSecondPiolaKirchhoffRate) FirstPiolaKirchhoffStress(F DeformationGradient, Fdot DeformationGradientRate) (P FirstPiolaKirchhoffStress, err error) {
	S, err := o.second(F, Fdot)
	if err != nil {
		return
	}
	return tensor.Dot(F, S), nil
}

// FirstPiolaKirchhoffRateTangentStiffness computes ∂P_iJ/∂Ḟ_kL = F_iI ∂S_IJ/∂Ḟ_kL
func (o fromSecondPiolaKirchhoffRate) FirstPiolaKirchhoffRateTangentStiffness(F DeformationGradient, Fdot DeformationGradientRate) (V FirstPiolaKirchhoffRateTangentStiffness, err error) {
	W, err := o.tangent(F, Fdot)
	if err != nil {
		return
	}
	return secondToFirstPiolaKirchhoffRateTangent(F, W), nil
}

func secondToFirstPiolaKirchhoffRateTangent(F DeformationGradient, W SecondPiolaKirchhoffRateTangentStiffness) (V FirstPiolaKirchhoffRateTangentStiffness) {
	for i := 0; i < D; i++ {
		for J := 0; J < D; J++ {
			for k := 0; k < D; k++ {
				for L := 0; L < D; L++ {
					for I := 0; I < D; I++ {
						V[i][J][k][L] += F[i][I] * W[I][J][k][L]
					}
				}
			}
		}
	}
	return
}
