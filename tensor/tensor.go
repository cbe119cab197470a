// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor implements configuration-tracked tensors of rank 1 to 4
/*
 *  Each index of a tensor lives in one kinematic configuration:
 *
 *     Reference    : undeformed body (X, N, dA)
 *     Current      : deformed body (x, n, da)
 *     Intermediate : stress-free configuration of multiplicative splits
 *
 *  The configurations are type parameters only. Composition is checked by the
 *  compiler; e.g. Dot(A Ten2[Current,Intermediate], B Ten2[Intermediate,Reference])
 *  yields Ten2[Current,Reference] and Dot(A, A) does not compile.
 */
package tensor

// D is the space dimension
const D = 3

// Reference labels indices in the reference (undeformed) configuration
type Reference struct{}

// Current labels indices in the current (deformed) configuration
type Current struct{}

// Intermediate labels indices in an intermediate configuration
type Intermediate struct{}

// Config is the set of configurations
type Config interface {
	Reference | Current | Intermediate
}

