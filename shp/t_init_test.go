// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/tensor"
	"github.com/mrbuche/flavio-sub000/tests"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// refCoords returns slightly curved reference coordinates of a surface element
func refCoords(name string) tensor.VecList[Reference] {
	switch name {
	case "tri3":
		return tensor.VecList[Reference]{{0, 0, 0}, {1, 0.1, 0}, {0.2, 1.1, 0.05}}
	case "tri6":
		return tensor.VecList[Reference]{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{0.5, 0, 0.02}, {0.5, 0.5, 0.03}, {0, 0.5, -0.01},
		}
	}
	chk.Panic("no coordinates for %q", name)
	return nil
}

// curCoords returns current coordinates obtained by a non-homogeneous deformation
func curCoords(X tensor.VecList[Reference]) tensor.VecList[Current] {
	return tests.Perturb(tests.Deform(tests.DeformationGradient(), X, tensor.Vec[Current]{0.3, -0.2, 0.1}), 0.05)
}

// curVelocities returns nodal velocities
func curVelocities(X tensor.VecList[Reference]) tensor.VecList[Current] {
	return tests.Perturb(tests.Deform(tests.DeformationGradientRate(), X, tensor.Vec[Current]{0.1, 0.2, -0.3}), 0.02)
}

// replace returns a copy of x with node a replaced by y
func replace(x tensor.VecList[Current], a int, y tensor.Vec[Current]) tensor.VecList[Current] {
	z := x.Clone()
	z[a] = y
	return z
}

// at returns x advanced by dt along v
func at(x, v tensor.VecList[Current], dt float64) tensor.VecList[Current] {
	return x.Add(v.Scale(dt))
}
