// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/fem"
	"github.com/mrbuche/flavio-sub000/msolid"
	"github.com/mrbuche/flavio-sub000/tensor"
	"github.com/spf13/cobra"
)

// elementCmd evaluates surface and localization elements
var elementCmd = &cobra.Command{
	Use:   "element",
	Short: "Evaluates nodal forces of a surface or localization element",
	Long: `
Evaluates nodal forces of a surface or localization element deformed homogeneously.
Example input:

model: neo-hookean
parameters: [13, 3]
kind: surface # or localization
shape: tri3
thickness: 0.1
coords: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
deformation: [[1.1, 0, 0], [0, 1, 0], [0, 0, 1]]
`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		fn, _ := cmd.Flags().GetString("input")
		var in ElementInput
		if err = readInput(fn, &in); err != nil {
			return
		}
		io.Pf("%v\n", in)
		res, err := RunElement(&in)
		if err != nil {
			return
		}
		io.Pf("%v", res)
		return
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
	elementCmd.Flags().StringP("input", "I", "", "YAML file with model, parameters, element and deformation")
}

// ElementResult holds the results of element evaluations
type ElementResult struct {
	X              fem.CurrentCoordinates // current coordinates
	Forces         fem.Forces             // nodal forces
	HasEnergy      bool                   // model has a free energy
	Energy         float64                // Helmholtz free energy
	HasDissipation bool                   // model has a dissipation function
	Dissipation    float64                // viscous dissipation
}

func (o ElementResult) String() (l string) {
	l += io.Sf("%6s%14s%14s%14s%14s%14s%14s\n", "node", "x", "y", "z", "fx", "fy", "fz")
	for a, f := range o.Forces {
		l += io.Sf("%6d%14.6g%14.6g%14.6g%14.6g%14.6g%14.6g\n", a, o.X[a][0], o.X[a][1], o.X[a][2], f[0], f[1], f[2])
	}
	if o.HasEnergy {
		l += io.Sf("free energy = %g\n", o.Energy)
	}
	if o.HasDissipation {
		l += io.Sf("dissipation = %g\n", o.Dissipation)
	}
	return
}

// RunElement allocates the element and computes nodal forces at the deformed configuration
func RunElement(in *ElementInput) (res *ElementResult, err error) {

	// reference coordinates
	X := make(fem.ReferenceCoordinates, len(in.Coords))
	for a, c := range in.Coords {
		X[a] = tensor.Vec[fem.Reference](c)
	}
	nverts := len(X)
	if in.Kind == "localization" && nverts > 0 {
		X = append(X.Clone(), X...)
	}

	// kinematics
	kin, err := fem.NewKinematics(in.Kind, in.Shape, X, in.Thickness)
	if err != nil {
		return
	}

	// current coordinates and velocities
	F := tensor.Ten2[fem.Current, fem.Reference](in.Deformation)
	Fdot := tensor.Ten2[fem.Current, fem.Reference](in.Rate)
	res = new(ElementResult)
	res.X = make(fem.CurrentCoordinates, len(X))
	v := make(fem.Velocities, len(X))
	for a := range X {
		res.X[a] = F.MulVec(X[a])
		v[a] = Fdot.MulVec(X[a])
		if in.Kind == "localization" && a >= nverts {
			res.X[a] = res.X[a].Add(in.Opening)
		}
	}

	// element
	mdl, err := msolid.New(in.Model, in.Parameters)
	if err != nil {
		return nil, err
	}
	switch mdl.(type) {
	case msolid.Hyperviscoelastic:
		ele, err := fem.NewHyperviscoelastic(kin, in.Parameters, allocAs[msolid.Hyperviscoelastic](in.Model))
		if err != nil {
			return nil, err
		}
		if res.Energy, err = ele.HelmholtzFreeEnergy(res.X); err != nil {
			return nil, err
		}
		res.HasEnergy = true
		return viscous(res, &ele.ElasticHyperviscous, v)
	case msolid.ElasticHyperviscous:
		ele, err := fem.NewElasticHyperviscous(kin, in.Parameters, allocAs[msolid.ElasticHyperviscous](in.Model))
		if err != nil {
			return nil, err
		}
		return viscous(res, ele, v)
	case msolid.Viscoelastic:
		ele, err := fem.NewViscoelastic(kin, in.Parameters, allocAs[msolid.Viscoelastic](in.Model))
		if err != nil {
			return nil, err
		}
		if res.Forces, err = ele.NodalForces(res.X, v); err != nil {
			return nil, err
		}
	case msolid.Hyperelastic:
		ele, err := fem.NewHyperelastic(kin, in.Parameters, allocAs[msolid.Hyperelastic](in.Model))
		if err != nil {
			return nil, err
		}
		if res.Energy, err = ele.HelmholtzFreeEnergy(res.X); err != nil {
			return nil, err
		}
		res.HasEnergy = true
		if res.Forces, err = ele.NodalForces(res.X); err != nil {
			return nil, err
		}
	case msolid.Elastic:
		ele, err := fem.NewElastic(kin, in.Parameters, allocAs[msolid.Elastic](in.Model))
		if err != nil {
			return nil, err
		}
		if res.Forces, err = ele.NodalForces(res.X); err != nil {
			return nil, err
		}
	default:
		return nil, chk.Err("model %v cannot be used in elements", mdl)
	}
	return
}

// viscous computes forces and dissipation of elastic-hyperviscous elements
func viscous[M msolid.ElasticHyperviscous](res *ElementResult, ele *fem.ElasticHyperviscous[M], v fem.Velocities) (*ElementResult, error) {
	var err error
	if res.Forces, err = ele.NodalForces(res.X, v); err != nil {
		return nil, err
	}
	if res.Dissipation, err = ele.ViscousDissipation(res.X, v); err != nil {
		return nil, err
	}
	res.HasDissipation = true
	return res, nil
}

// allocAs returns an allocator of models by name with capability M
func allocAs[M msolid.Solid](name string) func(prms msolid.Parameters) (M, error) {
	return func(prms msolid.Parameters) (mdl M, err error) {
		solid, err := msolid.New(name, prms)
		if err != nil {
			return
		}
		mdl, ok := solid.(M)
		if !ok {
			return mdl, chk.Err("model %v does not have the required capability", solid)
		}
		return
	}
}
