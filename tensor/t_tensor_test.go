// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func checkTen2[I, J Config](tst *testing.T, msg string, tol float64, a, b Ten2[I, J]) {
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			chk.Float64(tst, io.Sf("%s[%d][%d]", msg, i, j), tol, a[i][j], b[i][j])
		}
	}
}

func sample() Ten2[Current, Reference] {
	return Ten2[Current, Reference]{
		{1.2, 0.1, -0.05},
		{0.05, 0.9, 0.08},
		{-0.1, 0.02, 1.1},
	}
}

func Test_ten2_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ten2_01")

	F := sample()
	Finv := F.Inverse()
	checkTen2(tst, "F⋅F⁻¹", 1e-15, Dot(F, Finv), Identity[Current, Current]())
	checkTen2(tst, "F⁻¹⋅F", 1e-15, Dot(Finv, F), Identity[Reference, Reference]())
	checkTen2(tst, "F⁻ᵀ", 1e-15, F.InverseTranspose(), Finv.Transpose())
	Finv2, J := F.InverseAndDeterminant()
	checkTen2(tst, "F⁻¹", 1e-15, Finv2, Finv)
	chk.Float64(tst, "J", 1e-15, J, F.Determinant())

	// det(AB) = det(A) det(B)
	C := Dot(F.Transpose(), F)
	chk.Float64(tst, "det(FᵀF)", 1e-14, C.Determinant(), math.Pow(F.Determinant(), 2))
	chk.Float64(tst, "det(F⁻¹)", 1e-14, Finv.Determinant(), 1.0/F.Determinant())

	// deviatoric part is traceless
	dev, tr := C.DeviatoricAndTrace()
	chk.Float64(tst, "tr(dev)", 1e-15, dev.Trace(), 0)
	chk.Float64(tst, "tr", 1e-15, tr, C.Trace())
	checkTen2(tst, "dev+tr/3δ", 1e-15, dev.Add(Identity[Reference, Reference]().Scale(tr/3)), C)

	// norms and contractions
	chk.Float64(tst, "||F||²", 1e-15, F.Norm()*F.Norm(), F.FullContraction(F))
	chk.Float64(tst, "F:F = tr(FᵀF)", 1e-15, F.FullContraction(F), C.Trace())

	// dyads
	a := Vec[Current]{1, 2, 3}
	b := Vec[Reference]{-1, 0.5, 2}
	ab := Dyad(a, b)
	chk.Float64(tst, "a⊗b:F", 1e-15, ab.FullContraction(F), a.Dot(F.MulVec(b)))
	chk.Float64(tst, "v⋅F", 1e-15, F.VecMul(a).Dot(b), a.Dot(F.MulVec(b)))
	chk.Float64(tst, "|a×a|", 1e-15, a.Cross(a).Norm(), 0)
	chk.Float64(tst, "(a×c)⋅a", 1e-15, a.Cross(Vec[Current]{0, 1, 0}).Dot(a), 0)
}

func Test_ten2_02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ten2_02")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("inverse of singular tensor should panic\n")
		}
	}()
	var Z Ten2[Current, Current]
	Z.Inverse()
}

func Test_ten4_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ten4_01")

	F := sample()
	δ := Identity[Current, Current]()
	A := Dot(F, F.Transpose())

	// (δ_ik δ_jl) : X = X
	X := Ten2[Current, Current]{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	checkTen2(tst, "II:X", 1e-15, DyadIKJL[Current, Current, Current, Current](δ, δ).ContractTen2(X), X)
	checkTen2(tst, "IᵀI:X", 1e-15, DyadILJK[Current, Current, Current, Current](δ, δ).ContractTen2(X), X.Transpose())
	checkTen2(tst, "δ⊗δ:X", 1e-15, DyadIJKL(δ, δ).ContractTen2(X), δ.Scale(X.Trace()))
	checkTen2(tst, "A⊗δ:X", 1e-14, DyadIJKL(A, δ).ContractTen2(X), A.Scale(X.Trace()))

	// rotating indices of a dyad
	R := rotation()
	T := DyadIJKL(A, Ten2[Current, Reference](F))
	Tr := ContractAllIndicesWithFirstIndicesOf(T, R.Transpose(), R.Transpose(), R.Transpose(), Identity[Reference, Reference]())
	RA := Dot(Dot(R, A), R.Transpose())
	RF := Dot(R, F)
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				for l := 0; l < D; l++ {
					chk.Float64(tst, "QᵀQᵀQᵀ:T", 1e-14, Tr[i][j][k][l], RA[i][j]*RF[k][l])
				}
			}
		}
	}
}

func Test_levicivita01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("levicivita01")

	// ε_ijk ε_imn = δ_jm δ_kn - δ_jn δ_km
	ε := LeviCivita()
	δ := func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	}
	for j := 0; j < D; j++ {
		for k := 0; k < D; k++ {
			for m := 0; m < D; m++ {
				for n := 0; n < D; n++ {
					var res float64
					for i := 0; i < D; i++ {
						res += ε[i][j][k] * ε[i][m][n]
					}
					chk.Float64(tst, "εε", 1e-17, res, δ(j, m)*δ(k, n)-δ(j, n)*δ(k, m))
				}
			}
		}
	}

	// a × b = ε_ijk a_j b_k
	a := Vec[Reference]{1, -2, 0.5}
	b := Vec[Reference]{0.3, 4, -1}
	c := a.Cross(b)
	for i := 0; i < D; i++ {
		var res float64
		for j := 0; j < D; j++ {
			for k := 0; k < D; k++ {
				res += ε[i][j][k] * a[j] * b[k]
			}
		}
		chk.Float64(tst, "a×b", 1e-15, res, c[i])
	}
}

func Test_square01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("square01")

	for n := 1; n <= 7; n++ {
		a := NewSquare(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a[i][j] = 1.0 / float64(i+j+1)
				if i == j {
					a[i][j] += 2
				}
			}
		}
		io.Pforan("n = %d  det = %v\n", n, a.Determinant())
		res := a.Mul(a.Inverse())
		I := IdentitySquare(n)
		for i := 0; i < n; i++ {
			chk.Array(tst, io.Sf("A⋅A⁻¹ (n=%d)", n), 1e-13, res[i], I[i])
		}
	}

	// closed form against LU
	a := Square{
		{4, 1, 0, 2},
		{1, 3, 1, 0},
		{0, 1, 5, 1},
		{2, 0, 1, 6},
	}
	var ref float64
	b := NewSquare(5)
	b[4][4] = 1
	for i := 0; i < 4; i++ {
		copy(b[i], a[i])
	}
	ref = b.Determinant()
	chk.Float64(tst, "det4 vs LU", 1e-12, a.Determinant(), ref)
}

func Test_square02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("square02")

	for n := 1; n <= 6; n++ {
		func() {
			defer func() {
				if err := recover(); err == nil {
					tst.Errorf("inverse of singular %d×%d matrix should panic\n", n, n)
				}
			}()
			NewSquare(n).Inverse()
		}()
	}
}

// rotation returns a rotation about an oblique axis
func rotation() Ten2[Current, Current] {
	θ := 0.7
	n := Vec[Current]{1, 2, 2}.Normalized()
	c, s := math.Cos(θ), math.Sin(θ)
	var R Ten2[Current, Current]
	ε := LeviCivita()
	for i := 0; i < D; i++ {
		for j := 0; j < D; j++ {
			R[i][j] = (1 - c) * n[i] * n[j]
			if i == j {
				R[i][j] += c
			}
			for k := 0; k < D; k++ {
				R[i][j] -= s * ε[i][j][k] * n[k]
			}
		}
	}
	return R
}
