// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for composite triangular surface elements
package shp

import "sort"

// constants
const (
	GNDIM   = 2       // dimension of the natural space
	MINAREA = 1.0e-14 // minimum area allowed for reference sub-triangles
)

// GradOp holds the natural derivatives of linear triangle functions [3][GNDIM]
var GradOp = [3][GNDIM]float64{
	{-1, -1},
	{1, 0},
	{0, 1},
}

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// ProjFunc is the projection basis callback function
type ProjFunc func(χ []float64, r []float64)

// Shape holds geometry data
//  Note: shapes are shared and must not be modified after registration
type Shape struct {
	Type      string      // name; e.g. "tri6"
	Func      ShpFunc     // shape/derivs function callback function
	ProjFunc  ProjFunc    // projection basis functions callback function
	Nverts    int         // number of vertices in cell; e.g. "tri6" => 6
	Nproj     int         // number of projection basis functions
	NatCoords [][]float64 // natural coordinates [GNDIM][nverts]
	Subs      [][]int     // local vertices of linear sub-triangles [nsubs][3]
	Ips       [][]float64 // natural coordinates of integration points [nip][GNDIM]
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: returns nil on errors
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// Names returns the sorted names of all available shapes
func Names() (names []string) {
	for name := range factory {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Nsubs returns the number of sub-triangles
func (o *Shape) Nsubs() int { return len(o.Subs) }

// Nip returns the number of integration points
func (o *Shape) Nip() int { return len(o.Ips) }

// Vertex returns the natural coordinates of vertex m
func (o *Shape) Vertex(m int) []float64 {
	return []float64{o.NatCoords[0][m], o.NatCoords[1][m]}
}

// SubCentroid returns the natural coordinates of the centroid of sub-triangle s
func (o *Shape) SubCentroid(s int) (r []float64) {
	r = make([]float64, GNDIM)
	for _, m := range o.Subs[s] {
		for i := 0; i < GNDIM; i++ {
			r[i] += o.NatCoords[i][m] / 3.0
		}
	}
	return
}

// CalcS evaluates the shape functions at r using newly allocated arrays
func (o *Shape) CalcS(r []float64) (S []float64) {
	S = make([]float64, o.Nverts)
	o.Func(S, nil, r, false)
	return
}

// CalcProj evaluates the projection basis at r using a newly allocated array
func (o *Shape) CalcProj(r []float64) (χ []float64) {
	χ = make([]float64, o.Nproj)
	o.ProjFunc(χ, r)
	return
}
