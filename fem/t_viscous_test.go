// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mrbuche/flavio-sub000/msolid"
	"github.com/mrbuche/flavio-sub000/tensor"
	"github.com/mrbuche/flavio-sub000/tests"
)

// checkViscous checks viscous forces and stiffnesses against the dissipation potential
func checkViscous[M msolid.ElasticHyperviscous](tst *testing.T, msg string, ele *ElasticHyperviscous[M], X ReferenceCoordinates) {

	// zero forces at rest
	zero := tensor.NewVecList[Current](len(X))
	f, err := ele.NodalForces(reference(X), zero)
	if err != nil {
		tst.Errorf("%s: NodalForces failed: %v\n", msg, err)
		return
	}
	tests.VecList(tst, msg+": f(X, 0)", 1e-13, f, zero)

	// forces from dissipation potential: f = ∂Φ/∂v
	x, v := curCoords(X), curVelocities(X)
	f, err = ele.NodalForces(x, v)
	if err != nil {
		tst.Errorf("%s: NodalForces failed: %v\n", msg, err)
		return
	}
	tests.DerivScaNodal(tst, msg+": f = ∂Φ/∂v", tests.TOL, f, v, func(v Velocities) (float64, error) {
		return ele.DissipationPotential(x, v)
	})

	// stiffnesses: K = ∂f/∂v
	K, err := ele.NodalStiffnesses(x, v)
	if err != nil {
		tst.Errorf("%s: NodalStiffnesses failed: %v\n", msg, err)
		return
	}
	tests.DerivNodalNodal(tst, msg+": K = ∂f/∂v", tests.TOL, K, v, func(v Velocities) (Forces, error) {
		return ele.NodalForces(x, v)
	})
	checkSymmetric(tst, msg, 1e-12, K)

	// dissipation is non-negative and vanishes at rest
	φ, err := ele.ViscousDissipation(x, v)
	if err != nil {
		tst.Errorf("%s: ViscousDissipation failed: %v\n", msg, err)
		return
	}
	if φ < 0 {
		tst.Errorf("%s: dissipation must be non-negative. φ = %v\n", msg, φ)
	}
	φ0, _ := ele.ViscousDissipation(x, zero)
	chk.Float64(tst, msg+": φ(x, 0)", 1e-15, φ0, 0)
}

func Test_viscous01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscous01")

	prms := msolid.Parameters{13, 3, 11, 1}
	for _, kind := range kinds {
		for _, shape := range shapes {
			msg := io.Sf("%s/%s/viscous-almansi-hamel", kind, shape)
			io.Pfyel("%s\n", msg)
			kin, X := newKinematics(tst, kind, shape)
			ele, err := NewElasticHyperviscous(kin, prms, msolid.NewViscousAlmansiHamel)
			if err != nil {
				tst.Errorf("NewElasticHyperviscous failed: %v\n", err)
				return
			}
			checkViscous(tst, msg, ele, X)
		}
	}
}

func Test_viscous02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscous02")

	prms := msolid.Parameters{13, 3, 11, 1}
	for _, kind := range kinds {
		for _, shape := range shapes {
			msg := io.Sf("%s/%s/viscous-saint-venant-kirchhoff", kind, shape)
			io.Pfyel("%s\n", msg)
			kin, X := newKinematics(tst, kind, shape)
			ele, err := NewHyperviscoelastic(kin, prms, msolid.NewViscousSaintVenantKirchhoff)
			if err != nil {
				tst.Errorf("NewHyperviscoelastic failed: %v\n", err)
				return
			}
			checkViscous(tst, msg, &ele.ElasticHyperviscous, X)

			// energy
			a0, err := ele.HelmholtzFreeEnergy(reference(X))
			if err != nil {
				tst.Errorf("%s: HelmholtzFreeEnergy failed: %v\n", msg, err)
				return
			}
			chk.Float64(tst, msg+": A(X)", 1e-14, a0, 0)

			// at rest, forces derive from the free energy
			x := curCoords(X)
			zero := tensor.NewVecList[Current](len(X))
			f, _ := ele.NodalForces(x, zero)
			tests.DerivScaNodal(tst, msg+": f(x, 0) = ∂A/∂x", tests.TOL, f, x, ele.HelmholtzFreeEnergy)
		}
	}
}

func Test_viscous03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viscous03")

	// generic viscoelastic element
	kin, X := newKinematics(tst, "surface", "tri6")
	ele, err := NewViscoelastic(kin, msolid.Parameters{13, 3, 11, 1}, msolid.NewViscousAlmansiHamel)
	if err != nil {
		tst.Errorf("NewViscoelastic failed: %v\n", err)
		return
	}
	x, v := curCoords(X), curVelocities(X)
	K, err := ele.NodalStiffnesses(x, v)
	if err != nil {
		tst.Errorf("NodalStiffnesses failed: %v\n", err)
		return
	}
	tests.DerivNodalNodal(tst, "K = ∂f/∂v", tests.TOL, K, v, func(v Velocities) (Forces, error) {
		return ele.NodalForces(x, v)
	})
	if _, err = NewViscoelastic(kin, msolid.Parameters{13, 3, -11, 1}, msolid.NewViscousAlmansiHamel); err == nil {
		tst.Errorf("negative viscosity must fail\n")
	}
}
