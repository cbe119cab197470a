// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
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

// examplePrms holds parameters of all models in the factory
var examplePrms = map[string]Parameters{
	"almansi-hamel":                  {13, 3},
	"saint-venant-kirchhoff":         {13, 3},
	"neo-hookean":                    {13, 3},
	"mooney-rivlin":                  {13, 3, 1},
	"gent":                           {13, 3, 23},
	"arruda-boyce":                   {13, 3, 8},
	"fung":                           {13, 3, 1.2, 1.1},
	"yeoh":                           {13, 3, 0.5, 0.1, 0.01},
	"viscous-almansi-hamel":          {13, 3, 11, 1},
	"viscous-saint-venant-kirchhoff": {13, 3, 11, 1},
}

// identity returns F = δ
func identity() DeformationGradient {
	return DeformationGradient{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}
