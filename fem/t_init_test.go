// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

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

// thicknesses used in tests
var thickness = map[string]float64{"surface": 0.1, "localization": 0.5}

// refCoords returns reference coordinates of elements
func refCoords(kind, shape string) (X ReferenceCoordinates) {
	switch shape {
	case "tri3":
		X = ReferenceCoordinates{{0, 0, 0}, {1, 0.1, 0}, {0.2, 1.1, 0.05}}
	case "tri6":
		X = ReferenceCoordinates{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{0.5, 0, 0.02}, {0.5, 0.5, 0.03}, {0, 0.5, -0.01},
		}
	default:
		chk.Panic("no coordinates for %q", shape)
	}
	if kind == "localization" {
		X = append(X.Clone(), X...)
	}
	return
}

// reference returns the reference coordinates as current coordinates
func reference(X ReferenceCoordinates) (x CurrentCoordinates) {
	x = make(CurrentCoordinates, len(X))
	for a := range X {
		x[a] = tensor.Vec[Current](X[a])
	}
	return
}

// curCoords returns current coordinates obtained by a non-homogeneous deformation
func curCoords(X ReferenceCoordinates) CurrentCoordinates {
	return tests.Perturb(tests.Deform(tests.DeformationGradient(), X, tensor.Vec[Current]{0.3, -0.2, 0.1}), 0.02)
}

// curVelocities returns nodal velocities
func curVelocities(X ReferenceCoordinates) Velocities {
	return tests.Perturb(tests.Deform(tests.DeformationGradientRate(), X, tensor.Vec[Current]{0.1, 0.2, -0.3}), 0.02)
}

// rigid applies x ↦ R x + t
func rigid(R tensor.Ten2[Current, Current], x CurrentCoordinates) (y CurrentCoordinates) {
	y = tests.Rotate(R, x)
	for a := range y {
		y[a] = y[a].Add(tensor.Vec[Current]{1, -2, 3})
	}
	return
}

// newKinematics allocates kinematics for tests
func newKinematics(tst *testing.T, kind, shape string) (kin Kinematics, X ReferenceCoordinates) {
	X = refCoords(kind, shape)
	kin, err := NewKinematics(kind, shape, X, thickness[kind])
	if err != nil {
		tst.Fatalf("NewKinematics failed: %v\n", err)
	}
	return
}

// checkSymmetric checks K[a][b][k][l] = K[b][a][l][k]
func checkSymmetric(tst *testing.T, msg string, tol float64, K Stiffnesses) {
	for a := range K {
		for b := range K[a] {
			for k := 0; k < tensor.D; k++ {
				for l := 0; l < tensor.D; l++ {
					if !tests.Close(K[a][b][k][l], K[b][a][l][k], tol) {
						tst.Errorf("%s: stiffness is not symmetric: K[%d][%d][%d][%d] = %v != %v\n", msg, a, b, k, l, K[a][b][k][l], K[b][a][l][k])
						return
					}
				}
			}
		}
	}
}

// kinds and shapes used in tests
var kinds = []string{"surface", "localization"}
var shapes = []string{"tri3", "tri6"}
