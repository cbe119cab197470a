// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// configurations
type (
	Reference = tensor.Reference
	Current   = tensor.Current
)

// Surface implements the assumed-strain kinematics of thin composite triangular elements
/*
 *  The gradient of each linear sub-triangle s is projected onto the basis χ:
 *
 *     M_pq = Σ_s ∫_s χ_p χ_q          T_ps = ∫_s χ_p = A_s χ_p(c_s)
 *     c_gs = Σ_q χ_q(ξ_g) Σ_p M⁻¹_qp T_ps
 *
 *  yielding the projected gradient vectors and scaled reference normals
 *
 *     Γ_ga = Σ_s c_gs G_a^s           N_gs = c_gs N_s
 *
 *  such that F_g = Σ_a x_a ⊗ Γ_ga + Σ_s n_s ⊗ N_gs and F_g = δ at the reference configuration.
 */
type Surface struct {

	// input
	Shp       *Shape                    // shape structure
	X         tensor.VecList[Reference] // reference coordinates [nverts]
	Thickness float64                   // reference thickness h

	// reference geometry
	RefAreas   []float64               // reference areas of sub-triangles [nsubs]
	RefNormals []tensor.Vec[Reference] // reference normals of sub-triangles [nsubs]
	Minv       tensor.Square           // inverse projection matrix [nproj][nproj]

	// operators
	Pgv [][]tensor.Vec[Reference] // projected gradient vectors [nip][nverts]
	Srn [][]tensor.Vec[Reference] // scaled reference normals [nip][nsubs]
	W   []float64                 // integration weights [nip]
}

// NewSurface returns a new surface kinematics structure
func NewSurface(shape *Shape, X tensor.VecList[Reference], thickness float64) (o *Surface, err error) {

	// check
	if shape == nil {
		return nil, chk.Err("shape must not be nil")
	}
	if len(X) != shape.Nverts {
		return nil, chk.Err("%s surface requires %d nodes. %d were given", shape.Type, shape.Nverts, len(X))
	}
	if !(thickness > 0) {
		return nil, chk.Err("thickness must be positive. h = %v is invalid", thickness)
	}

	// input
	o = new(Surface)
	o.Shp = shape
	o.X = X.Clone()
	o.Thickness = thickness

	// reference geometry of sub-triangles
	nsubs, nproj, nip := shape.Nsubs(), shape.Nproj, shape.Nip()
	o.RefAreas = make([]float64, nsubs)
	o.RefNormals = make([]tensor.Vec[Reference], nsubs)
	gvecs := make([][3]tensor.Vec[Reference], nsubs)
	var total float64
	for s := 0; s < nsubs; s++ {
		tri := subTriangle(shape, X, s)
		o.RefAreas[s] = tri.Area()
		if o.RefAreas[s] < MINAREA {
			return nil, chk.Err("sub-triangle %d of %s surface is degenerate: area = %g", s, shape.Type, o.RefAreas[s])
		}
		o.RefNormals[s] = tri.Normal()
		gvecs[s] = tri.GradientVectors()
		total += o.RefAreas[s]
	}

	// projection matrix and integrals of projection basis
	M := tensor.NewSquare(nproj)
	T := make([][]float64, nproj)
	for p := 0; p < nproj; p++ {
		T[p] = make([]float64, nsubs)
	}
	for s := 0; s < nsubs; s++ {
		χv := make([][]float64, 3)
		sum := make([]float64, nproj)
		for v, m := range shape.Subs[s] {
			χv[v] = shape.CalcProj(shape.Vertex(m))
			for p := 0; p < nproj; p++ {
				sum[p] += χv[v][p]
			}
		}
		for p := 0; p < nproj; p++ {
			for q := 0; q < nproj; q++ {
				var vv float64
				for v := 0; v < 3; v++ {
					vv += χv[v][p] * χv[v][q]
				}
				M[p][q] += o.RefAreas[s] / 12.0 * (vv + sum[p]*sum[q])
			}
		}
		χc := shape.CalcProj(shape.SubCentroid(s))
		for p := 0; p < nproj; p++ {
			T[p][s] = o.RefAreas[s] * χc[p]
		}
	}
	o.Minv = M.Inverse()

	// operators
	o.Pgv = make([][]tensor.Vec[Reference], nip)
	o.Srn = make([][]tensor.Vec[Reference], nip)
	o.W = make([]float64, nip)
	for g := 0; g < nip; g++ {
		χ := shape.CalcProj(shape.Ips[g])
		o.Pgv[g] = make([]tensor.Vec[Reference], shape.Nverts)
		o.Srn[g] = make([]tensor.Vec[Reference], nsubs)
		for s := 0; s < nsubs; s++ {
			var c float64
			for q := 0; q < nproj; q++ {
				for p := 0; p < nproj; p++ {
					c += χ[q] * o.Minv[q][p] * T[p][s]
				}
			}
			for a, m := range shape.Subs[s] {
				o.Pgv[g][m] = o.Pgv[g][m].Add(gvecs[s][a].Scale(c))
			}
			o.Srn[g][s] = o.RefNormals[s].Scale(c)
		}
		o.W[g] = thickness * total / float64(nip)
	}
	return
}

// Nnodes returns the number of nodes
func (o *Surface) Nnodes() int { return o.Shp.Nverts }

// Npoints returns the number of integration points
func (o *Surface) Npoints() int { return len(o.W) }

// Weights returns the integration weights
func (o *Surface) Weights() []float64 { return o.W }

// ProjectedGradientVectors returns Γ [nip][nverts]
func (o *Surface) ProjectedGradientVectors() [][]tensor.Vec[Reference] { return o.Pgv }

// ScaledReferenceNormals returns N [nip][nsubs]
func (o *Surface) ScaledReferenceNormals() [][]tensor.Vec[Reference] { return o.Srn }

// ReferenceNormals returns the reference normals of sub-triangles [nsubs]
func (o *Surface) ReferenceNormals() []tensor.Vec[Reference] { return o.RefNormals }

// Bases computes the covariant bases of sub-triangles [nsubs]
func (o *Surface) Bases(x tensor.VecList[Current]) (e [][GNDIM]tensor.Vec[Current]) {
	o.check(x)
	e = make([][GNDIM]tensor.Vec[Current], o.Shp.Nsubs())
	for s := range e {
		e[s] = subTriangle(o.Shp, x, s).Basis()
	}
	return
}

// DualBases computes the contravariant bases of sub-triangles [nsubs]
func (o *Surface) DualBases(x tensor.VecList[Current]) (d [][GNDIM]tensor.Vec[Current]) {
	o.check(x)
	d = make([][GNDIM]tensor.Vec[Current], o.Shp.Nsubs())
	for s := range d {
		d[s] = subTriangle(o.Shp, x, s).DualBasis()
	}
	return
}

// Normals computes the unit normals of sub-triangles [nsubs]
func (o *Surface) Normals(x tensor.VecList[Current]) (n []tensor.Vec[Current]) {
	o.check(x)
	n = make([]tensor.Vec[Current], o.Shp.Nsubs())
	for s := range n {
		n[s] = subTriangle(o.Shp, x, s).Normal()
	}
	return
}

// NormalGradients computes g[s][a][i][k] = ∂n^s_i/∂x_a^k [nsubs][nverts]; zero for nodes not in s
func (o *Surface) NormalGradients(x tensor.VecList[Current]) (g [][]tensor.Ten2[Current, Current]) {
	o.check(x)
	g = make([][]tensor.Ten2[Current, Current], o.Shp.Nsubs())
	for s := range g {
		g[s] = make([]tensor.Ten2[Current, Current], o.Shp.Nverts)
		gs := subTriangle(o.Shp, x, s).NormalGradients()
		for a, m := range o.Shp.Subs[s] {
			g[s][m] = gs[a]
		}
	}
	return
}

// NormalTangents computes h[s][a][b][i][k][l] = ∂²n^s_i/∂x_a^k∂x_b^l [nsubs][nverts][nverts]
func (o *Surface) NormalTangents(x tensor.VecList[Current]) (h [][][]tensor.Ten3[Current, Current, Current]) {
	o.check(x)
	nverts := o.Shp.Nverts
	h = make([][][]tensor.Ten3[Current, Current, Current], o.Shp.Nsubs())
	for s := range h {
		h[s] = make([][]tensor.Ten3[Current, Current, Current], nverts)
		for m := 0; m < nverts; m++ {
			h[s][m] = make([]tensor.Ten3[Current, Current, Current], nverts)
		}
		hs := subTriangle(o.Shp, x, s).NormalTangents()
		for a, m := range o.Shp.Subs[s] {
			for b, n := range o.Shp.Subs[s] {
				h[s][m][n] = hs[a][b]
			}
		}
	}
	return
}

// NormalRates computes dn^s/dt [nsubs]
func (o *Surface) NormalRates(x, v tensor.VecList[Current]) (ndot []tensor.Vec[Current]) {
	o.check(x)
	o.check(v)
	ndot = make([]tensor.Vec[Current], o.Shp.Nsubs())
	for s := range ndot {
		ndot[s] = subTriangle(o.Shp, x, s).NormalRate(subTriangle(o.Shp, v, s))
	}
	return
}

// DeformationGradients computes F_g = Σ_a x_a ⊗ Γ_ga + Σ_s n_s ⊗ N_gs [nip]
func (o *Surface) DeformationGradients(x tensor.VecList[Current]) (F []tensor.Ten2[Current, Reference]) {
	return o.combine(x, o.Normals(x))
}

// DeformationGradientRates computes dF_g/dt = Σ_a v_a ⊗ Γ_ga + Σ_s dn_s/dt ⊗ N_gs [nip]
func (o *Surface) DeformationGradientRates(x, v tensor.VecList[Current]) (Fdot []tensor.Ten2[Current, Reference]) {
	return o.combine(v, o.NormalRates(x, v))
}

// GradientOperators computes dF[g][a][i][j][k] = ∂F^g_ij/∂x_a^k [nip][nverts]
func (o *Surface) GradientOperators(x tensor.VecList[Current]) (dF [][]tensor.Ten3[Current, Reference, Current]) {
	ng := o.NormalGradients(x)
	nverts := o.Shp.Nverts
	dF = make([][]tensor.Ten3[Current, Reference, Current], len(o.W))
	for g := range dF {
		dF[g] = make([]tensor.Ten3[Current, Reference, Current], nverts)
		for a := 0; a < nverts; a++ {
			for i := 0; i < tensor.D; i++ {
				for j := 0; j < tensor.D; j++ {
					dF[g][a][i][j][i] = o.Pgv[g][a][j]
					for s := range ng {
						for k := 0; k < tensor.D; k++ {
							dF[g][a][i][j][k] += ng[s][a][i][k] * o.Srn[g][s][j]
						}
					}
				}
			}
		}
	}
	return
}

// GeometricContraction computes K[a][b][k][l] = Σ_g w_g Σ_s (P_g N_gs)_i ∂²n^s_i/∂x_a^k∂x_b^l
func (o *Surface) GeometricContraction(x tensor.VecList[Current], P []tensor.Ten2[Current, Reference]) (K [][]tensor.Ten2[Current, Current]) {
	nverts := o.Shp.Nverts
	K = make([][]tensor.Ten2[Current, Current], nverts)
	for a := 0; a < nverts; a++ {
		K[a] = make([]tensor.Ten2[Current, Current], nverts)
	}
	if len(P) != len(o.W) {
		chk.Panic("number of stresses (%d) must equal the number of integration points (%d)", len(P), len(o.W))
	}
	for s := 0; s < o.Shp.Nsubs(); s++ {
		var t tensor.Vec[Current]
		for g, w := range o.W {
			t = t.Add(P[g].MulVec(o.Srn[g][s]).Scale(w))
		}
		hs := subTriangle(o.Shp, x, s).NormalTangents()
		for a, m := range o.Shp.Subs[s] {
			for b, n := range o.Shp.Subs[s] {
				for k := 0; k < tensor.D; k++ {
					for l := 0; l < tensor.D; l++ {
						for i := 0; i < tensor.D; i++ {
							K[m][n][k][l] += t[i] * hs[a][b][i][k][l]
						}
					}
				}
			}
		}
	}
	return
}

// combine computes Σ_a y_a ⊗ Γ_ga + Σ_s z_s ⊗ N_gs
func (o *Surface) combine(y tensor.VecList[Current], z []tensor.Vec[Current]) (F []tensor.Ten2[Current, Reference]) {
	F = make([]tensor.Ten2[Current, Reference], len(o.W))
	for g := range F {
		for a := range y {
			F[g] = F[g].Add(tensor.Dyad(y[a], o.Pgv[g][a]))
		}
		for s := range z {
			F[g] = F[g].Add(tensor.Dyad(z[s], o.Srn[g][s]))
		}
	}
	return
}

// subTriangle returns the coordinates of sub-triangle s
func subTriangle[C tensor.Config](shape *Shape, x tensor.VecList[C], s int) (t Triangle[C]) {
	for a, m := range shape.Subs[s] {
		t[a] = x[m]
	}
	return
}

// check panics if the number of nodes is incorrect
func (o *Surface) check(x tensor.VecList[Current]) {
	if len(x) != o.Shp.Nverts {
		chk.Panic("%s surface requires %d nodes. %d were given", o.Shp.Type, o.Shp.Nverts, len(x))
	}
}
