// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// Localization implements the kinematics of cohesive (embedded discontinuity) elements
/*
 *  Nodes are ordered as bottom [0, nverts) and top [nverts, 2 nverts):
 *
 *     x̄_a = (x_a + x_{a+nverts}) / 2              midplane
 *     j_g = Σ_a S_a(ξ_g) (x_{a+nverts} - x_a)      jump
 *     F_g = F̄_g(x̄) + (j_g / h) ⊗ N̄_g              N̄_g = Σ_s N_gs
 */
type Localization struct {
	Mid   *Surface                // midplane surface kinematics
	Sjump [][]float64             // shape functions at integration points [nip][nverts]
	Nbar  []tensor.Vec[Reference] // sum of scaled reference normals [nip]
}

// NewLocalization returns a new localization kinematics structure
//  X -- reference coordinates of bottom and top nodes [2 nverts]
//  h -- characteristic thickness of the interface
func NewLocalization(shape *Shape, X tensor.VecList[Reference], thickness float64) (o *Localization, err error) {
	if shape == nil {
		return nil, chk.Err("shape must not be nil")
	}
	if len(X) != 2*shape.Nverts {
		return nil, chk.Err("%s localization requires %d nodes. %d were given", shape.Type, 2*shape.Nverts, len(X))
	}
	o = new(Localization)
	if o.Mid, err = NewSurface(shape, midplane(X, shape.Nverts), thickness); err != nil {
		return nil, err
	}
	nip := shape.Nip()
	o.Sjump = make([][]float64, nip)
	o.Nbar = make([]tensor.Vec[Reference], nip)
	for g := 0; g < nip; g++ {
		o.Sjump[g] = shape.CalcS(shape.Ips[g])
		for _, N := range o.Mid.Srn[g] {
			o.Nbar[g] = o.Nbar[g].Add(N)
		}
	}
	return
}

// Nnodes returns the number of nodes
func (o *Localization) Nnodes() int { return 2 * o.Mid.Nnodes() }

// Npoints returns the number of integration points
func (o *Localization) Npoints() int { return o.Mid.Npoints() }

// Weights returns the integration weights
func (o *Localization) Weights() []float64 { return o.Mid.W }

// Midplane computes the midplane coordinates
func (o *Localization) Midplane(x tensor.VecList[Current]) tensor.VecList[Current] {
	o.check(x)
	return midplane(x, o.Mid.Nnodes())
}

// Jumps computes the jumps at integration points [nip]
func (o *Localization) Jumps(x tensor.VecList[Current]) (j []tensor.Vec[Current]) {
	o.check(x)
	n := o.Mid.Nnodes()
	j = make([]tensor.Vec[Current], len(o.Sjump))
	for g, S := range o.Sjump {
		for a := 0; a < n; a++ {
			j[g] = j[g].Add(x[a+n].Sub(x[a]).Scale(S[a]))
		}
	}
	return
}

// Normals computes the unit normals of midplane sub-triangles [nsubs]
func (o *Localization) Normals(x tensor.VecList[Current]) []tensor.Vec[Current] {
	return o.Mid.Normals(o.Midplane(x))
}

// Bases computes the covariant bases of midplane sub-triangles [nsubs]
func (o *Localization) Bases(x tensor.VecList[Current]) [][GNDIM]tensor.Vec[Current] {
	return o.Mid.Bases(o.Midplane(x))
}

// DualBases computes the contravariant bases of midplane sub-triangles [nsubs]
func (o *Localization) DualBases(x tensor.VecList[Current]) [][GNDIM]tensor.Vec[Current] {
	return o.Mid.DualBases(o.Midplane(x))
}

// NormalGradients computes ∂n^s/∂x_a for all 2 nverts nodes [nsubs][2 nverts]
func (o *Localization) NormalGradients(x tensor.VecList[Current]) (g [][]tensor.Ten2[Current, Current]) {
	n := o.Mid.Nnodes()
	gm := o.Mid.NormalGradients(o.Midplane(x))
	g = make([][]tensor.Ten2[Current, Current], len(gm))
	for s := range gm {
		g[s] = make([]tensor.Ten2[Current, Current], 2*n)
		for a := 0; a < n; a++ {
			g[s][a] = gm[s][a].Scale(0.5)
			g[s][a+n] = g[s][a]
		}
	}
	return
}

// NormalTangents computes ∂²n^s/∂x_a∂x_b for all 2 nverts nodes [nsubs][2 nverts][2 nverts]
func (o *Localization) NormalTangents(x tensor.VecList[Current]) (h [][][]tensor.Ten3[Current, Current, Current]) {
	n := o.Mid.Nnodes()
	hm := o.Mid.NormalTangents(o.Midplane(x))
	h = make([][][]tensor.Ten3[Current, Current, Current], len(hm))
	for s := range hm {
		h[s] = make([][]tensor.Ten3[Current, Current, Current], 2*n)
		for a := 0; a < 2*n; a++ {
			h[s][a] = make([]tensor.Ten3[Current, Current, Current], 2*n)
			for b := 0; b < 2*n; b++ {
				h[s][a][b] = hm[s][a%n][b%n].Scale(0.25)
			}
		}
	}
	return
}

// NormalRates computes dn^s/dt of midplane sub-triangles [nsubs]
func (o *Localization) NormalRates(x, v tensor.VecList[Current]) []tensor.Vec[Current] {
	return o.Mid.NormalRates(o.Midplane(x), o.Midplane(v))
}

// DeformationGradients computes F_g = F̄_g + (j_g / h) ⊗ N̄_g [nip]
func (o *Localization) DeformationGradients(x tensor.VecList[Current]) (F []tensor.Ten2[Current, Reference]) {
	F = o.Mid.DeformationGradients(o.Midplane(x))
	o.addJumps(F, o.Jumps(x))
	return
}

// DeformationGradientRates computes dF_g/dt = dF̄_g/dt + (dj_g/dt / h) ⊗ N̄_g [nip]
func (o *Localization) DeformationGradientRates(x, v tensor.VecList[Current]) (Fdot []tensor.Ten2[Current, Reference]) {
	Fdot = o.Mid.DeformationGradientRates(o.Midplane(x), o.Midplane(v))
	o.addJumps(Fdot, o.Jumps(v))
	return
}

// GradientOperators computes dF[g][a][i][j][k] = ∂F^g_ij/∂x_a^k for all 2 nverts nodes [nip][2 nverts]
func (o *Localization) GradientOperators(x tensor.VecList[Current]) (dF [][]tensor.Ten3[Current, Reference, Current]) {
	n := o.Mid.Nnodes()
	dm := o.Mid.GradientOperators(o.Midplane(x))
	dF = make([][]tensor.Ten3[Current, Reference, Current], len(dm))
	for g := range dm {
		dF[g] = make([]tensor.Ten3[Current, Reference, Current], 2*n)
		for a := 0; a < n; a++ {
			bot := dm[g][a].Scale(0.5)
			top := bot
			c := o.Sjump[g][a] / o.Mid.Thickness
			for i := 0; i < tensor.D; i++ {
				for j := 0; j < tensor.D; j++ {
					bot[i][j][i] -= c * o.Nbar[g][j]
					top[i][j][i] += c * o.Nbar[g][j]
				}
			}
			dF[g][a], dF[g][a+n] = bot, top
		}
	}
	return
}

// GeometricContraction computes K[a][b][k][l] = Σ_g w_g P_g : ∂²F_g/∂x_a^k∂x_b^l for all 2 nverts nodes
func (o *Localization) GeometricContraction(x tensor.VecList[Current], P []tensor.Ten2[Current, Reference]) (K [][]tensor.Ten2[Current, Current]) {
	n := o.Mid.Nnodes()
	km := o.Mid.GeometricContraction(o.Midplane(x), P)
	K = make([][]tensor.Ten2[Current, Current], 2*n)
	for a := 0; a < 2*n; a++ {
		K[a] = make([]tensor.Ten2[Current, Current], 2*n)
		for b := 0; b < 2*n; b++ {
			K[a][b] = km[a%n][b%n].Scale(0.25)
		}
	}
	return
}

// addJumps adds (j_g / h) ⊗ N̄_g to F
func (o *Localization) addJumps(F []tensor.Ten2[Current, Reference], j []tensor.Vec[Current]) {
	for g := range F {
		F[g] = F[g].Add(tensor.Dyad(j[g].Scale(1.0/o.Mid.Thickness), o.Nbar[g]))
	}
}

// check panics if the number of nodes is incorrect
func (o *Localization) check(x tensor.VecList[Current]) {
	if len(x) != o.Nnodes() {
		chk.Panic("%s localization requires %d nodes. %d were given", o.Mid.Shp.Type, o.Nnodes(), len(x))
	}
}

// midplane returns the average of bottom and top nodes
func midplane[C tensor.Config](x tensor.VecList[C], n int) (m tensor.VecList[C]) {
	m = tensor.NewVecList[C](n)
	for a := 0; a < n; a++ {
		m[a] = x[a].Add(x[a+n]).Scale(0.5)
	}
	return
}
