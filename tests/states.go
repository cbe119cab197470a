// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"math"

	"github.com/mrbuche/flavio-sub000/tensor"
)

// DeformationGradient returns a generic deformation gradient with det(F) > 0
func DeformationGradient() tensor.Ten2[tensor.Current, tensor.Reference] {
	return tensor.Ten2[tensor.Current, tensor.Reference]{
		{1.2, 0.1, -0.05},
		{0.05, 0.9, 0.08},
		{-0.1, 0.02, 1.1},
	}
}

// DeformationGradientRate returns a generic rate of deformation gradient
func DeformationGradientRate() tensor.Ten2[tensor.Current, tensor.Reference] {
	return tensor.Ten2[tensor.Current, tensor.Reference]{
		{0.1, -0.2, 0.05},
		{0.3, 0.05, -0.1},
		{0.02, 0.1, -0.15},
	}
}

// Rotation returns the proper rotation by θ about the axis n
func Rotation[I, J tensor.Config](n [3]float64, θ float64) (R tensor.Ten2[I, J]) {
	axis := tensor.Vec[I](n).Normalized()
	c, s := math.Cos(θ), math.Sin(θ)
	ε := tensor.LeviCivita()
	for i := 0; i < tensor.D; i++ {
		for j := 0; j < tensor.D; j++ {
			R[i][j] = (1 - c) * axis[i] * axis[j]
			if i == j {
				R[i][j] += c
			}
			for k := 0; k < tensor.D; k++ {
				R[i][j] -= s * ε[i][j][k] * axis[k]
			}
		}
	}
	return
}

// RotationCurrent returns a fixed rotation of the current configuration
func RotationCurrent() tensor.Ten2[tensor.Current, tensor.Current] {
	return Rotation[tensor.Current, tensor.Current]([3]float64{1, 2, 2}, 0.7)
}

// RotationReference returns a fixed rotation of the reference configuration
func RotationReference() tensor.Ten2[tensor.Reference, tensor.Reference] {
	return Rotation[tensor.Reference, tensor.Reference]([3]float64{-1, 0.5, 3}, 1.3)
}

// Perturbations returns a list of symmetric directions used for minimization checks
func Perturbations() (list []tensor.Ten2[tensor.Current, tensor.Reference]) {
	for k := 0; k < tensor.D; k++ {
		for l := k; l < tensor.D; l++ {
			var δF tensor.Ten2[tensor.Current, tensor.Reference]
			δF[k][l] += 0.5
			δF[l][k] += 0.5
			list = append(list, δF)
		}
	}
	var sym tensor.Ten2[tensor.Current, tensor.Reference]
	Fdot := DeformationGradientRate()
	for k := 0; k < tensor.D; k++ {
		for l := 0; l < tensor.D; l++ {
			sym[k][l] = (Fdot[k][l] + Fdot[l][k]) / 2
		}
	}
	return append(list, sym)
}

// Directions returns the unit directions e_k ⊗ e_l
func Directions() (list []tensor.Ten2[tensor.Current, tensor.Reference]) {
	for k := 0; k < tensor.D; k++ {
		for l := 0; l < tensor.D; l++ {
			var δF tensor.Ten2[tensor.Current, tensor.Reference]
			δF[k][l] = 1
			list = append(list, δF)
		}
	}
	return
}

// Steps returns the amplitudes used for minimization checks (both signs)
func Steps() []float64 {
	return []float64{1e-2, -1e-2, 1e-3, -1e-3, 1e-4, -1e-4}
}

// Deform maps reference coordinates through F and adds a translation
func Deform[I tensor.Config](F tensor.Ten2[tensor.Current, I], X tensor.VecList[I], t tensor.Vec[tensor.Current]) (x tensor.VecList[tensor.Current]) {
	x = make(tensor.VecList[tensor.Current], len(X))
	for a := range X {
		x[a] = F.MulVec(X[a]).Add(t)
	}
	return
}

// Perturb adds a deterministic non-homogeneous perturbation of size α to nodal coordinates
func Perturb[I tensor.Config](x tensor.VecList[I], α float64) (y tensor.VecList[I]) {
	y = x.Clone()
	for a := range y {
		for k := 0; k < tensor.D; k++ {
			y[a][k] += α * math.Sin(1.3*float64(a)+2.1*float64(k)+0.4)
		}
	}
	return
}

// Rotate applies the rotation R to a list of vectors
func Rotate[I tensor.Config](R tensor.Ten2[I, I], x tensor.VecList[I]) (y tensor.VecList[I]) {
	y = make(tensor.VecList[I], len(x))
	for a := range x {
		y[a] = R.MulVec(x[a])
	}
	return
}
