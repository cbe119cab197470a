// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/io"

// InvalidJacobianError is returned when det(F) ≤ 0
type InvalidJacobianError struct {
	J     float64             // det(F)
	F     DeformationGradient // offending deformation gradient
	Model string              // description of the model
}

// Error implements error
func (o *InvalidJacobianError) Error() string {
	return io.Sf("invalid Jacobian J = %g from the deformation gradient\n%v\nin the constitutive model %s", o.J, o.F, o.Model)
}

// CustomError is returned when a model cannot evaluate its response; e.g. beyond maximum extensibility
type CustomError struct {
	Message string
	F       DeformationGradient
	Model   string
}

// Error implements error
func (o *CustomError) Error() string {
	return io.Sf("%s\nFrom deformation gradient\n%v\nin the constitutive model %s", o.Message, o.F, o.Model)
}

// MAXEXTENSIBILITY is the message of CustomError when the chains cannot stretch further
const MAXEXTENSIBILITY = "Maximum extensibility reached."
