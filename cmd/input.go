// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ghodss/yaml"
	"github.com/mrbuche/flavio-sub000/msolid"
)

// PointInput holds the input data of material point simulations
type PointInput struct {
	Model      string            `json:"model"`      // model name; e.g. "neo-hookean"
	Parameters msolid.Parameters `json:"parameters"` // model parameters; e.g. [13, 3]
	Path       msolid.Path       `json:"path"`       // deformation path
}

// Parse parses YAML data
func (o *PointInput) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, o); err != nil {
		return chk.Err("cannot parse point input:\n%v", err)
	}
	if o.Model == "" {
		return chk.Err("model name must be given")
	}
	return o.Path.Check()
}

func (o PointInput) String() (l string) {
	l += io.Sf("model      = %s\n", o.Model)
	l += io.Sf("parameters = %v\n", o.Parameters)
	l += io.Sf("path       = %s to %g in %d increments\n", o.Path.Kind, o.Path.Max, o.Path.Nincs)
	return
}

// ElementInput holds the input data of element evaluations
type ElementInput struct {
	Model       string            `json:"model"`       // model name; e.g. "neo-hookean"
	Parameters  msolid.Parameters `json:"parameters"`  // model parameters
	Kind        string            `json:"kind"`        // "surface" or "localization"
	Shape       string            `json:"shape"`       // shape name; e.g. "tri6"
	Thickness   float64           `json:"thickness"`   // reference thickness
	Coords      [][3]float64      `json:"coords"`      // reference coordinates [nverts]; duplicated for localization elements
	Deformation [3][3]float64     `json:"deformation"` // homogeneous deformation gradient applied to nodes
	Rate        [3][3]float64     `json:"rate"`        // rate of deformation gradient giving nodal velocities (viscous models)
	Opening     [3]float64        `json:"opening"`     // displacement of top nodes (localization elements)
}

// Parse parses YAML data
func (o *ElementInput) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, o); err != nil {
		return chk.Err("cannot parse element input:\n%v", err)
	}
	if o.Model == "" {
		return chk.Err("model name must be given")
	}
	if o.Kind == "" {
		o.Kind = "surface"
	}
	if o.Thickness == 0 {
		o.Thickness = 1
	}
	if o.Deformation == [3][3]float64{} {
		o.Deformation = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}
	return
}

func (o ElementInput) String() (l string) {
	l += io.Sf("model      = %s\n", o.Model)
	l += io.Sf("parameters = %v\n", o.Parameters)
	l += io.Sf("element    = %s %s (h = %g)\n", o.Kind, o.Shape, o.Thickness)
	l += io.Sf("F          = %v\n", o.Deformation)
	return
}

// readInput reads the file named by the flag "input" into parser
func readInput(fn string, parser interface{ Parse([]byte) error }) (err error) {
	if fn == "" {
		return chk.Err("input file must be given (-I, --input)")
	}
	b, err := io.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot read %s:\n%v", fn, err)
	}
	return parser.Parse(b)
}
