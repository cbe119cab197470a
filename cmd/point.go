// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/msolid"
	"github.com/spf13/cobra"
)

// pointCmd runs material point simulations
var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Runs a homogeneous deformation path with a constitutive model",
	Long: `
Runs a homogeneous deformation path with a constitutive model. Example input:

model: neo-hookean
parameters: [13, 3]
path:
  kind: uniaxial # or equibiaxial, shear, volumetric
  max: 1.5
  nincs: 10
`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		fn, _ := cmd.Flags().GetString("input")
		var in PointInput
		if err = readInput(fn, &in); err != nil {
			return
		}
		io.Pf("%v\n", in)
		drv, err := RunPoint(&in)
		if err != nil {
			return
		}
		io.Pf("%s", PointTable(drv))
		return
	},
}

func init() {
	rootCmd.AddCommand(pointCmd)
	pointCmd.Flags().StringP("input", "I", "", "YAML file with model, parameters and path")
}

// RunPoint allocates the model and runs the driver
func RunPoint(in *PointInput) (drv *msolid.Driver, err error) {
	mdl, err := msolid.New(in.Model, in.Parameters)
	if err != nil {
		return
	}
	ela, ok := mdl.(msolid.Elastic)
	if !ok {
		return nil, chk.Err("material point driver requires an elastic model. %v is not", mdl)
	}
	drv = new(msolid.Driver)
	drv.Init(ela)
	drv.Silent = !io.Verbose
	err = drv.Run(&in.Path)
	return
}

// PointTable formats the results of a driver run
func PointTable(drv *msolid.Driver) (l string) {
	l += io.Sf("%12s%12s%12s%12s%12s%12s%12s\n", "λ", "F11", "F22", "σ11", "σ22", "σ12", "a")
	for i, res := range drv.Res {
		a := "-"
		if res.HasPsi {
			a = io.Sf("%.5g", res.Psi)
		}
		l += io.Sf("%12.5g%12.5g%12.5g%12.5g%12.5g%12.5g%12s\n", drv.Lam[i], res.F[0][0], res.F[1][1], res.Sig[0][0], res.Sig[1][1], res.Sig[0][1], a)
	}
	return
}
