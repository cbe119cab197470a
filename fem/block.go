// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"github.com/mrbuche/flavio-sub000/tensor"
)

// Element defines what elements assembled in blocks must calculate
type Element interface {
	Nnodes() int                                                // number of nodes
	NodalForces(x CurrentCoordinates) (Forces, error)           // nodal forces
	NodalStiffnesses(x CurrentCoordinates) (Stiffnesses, error) // nodal stiffnesses
}

// Block holds a set of elements sharing global nodes
type Block struct {
	Elems  []Element // elements
	Conn   [][]int   // connectivity: global node ids of local nodes [nelems][nnodes of element]
	Nnodes int       // number of global nodes
	Nproc  int       // number of concurrent workers; defaults to runtime.NumCPU()
}

// NewBlock returns a new block of elements
func NewBlock(elems []Element, conn [][]int, nnodes int) (o *Block, err error) {
	if len(elems) != len(conn) {
		return nil, chk.Err("number of elements (%d) and connectivity lists (%d) must be equal", len(elems), len(conn))
	}
	for e, elem := range elems {
		if len(conn[e]) != elem.Nnodes() {
			return nil, chk.Err("element %d requires %d nodes. %d were given", e, elem.Nnodes(), len(conn[e]))
		}
		for _, m := range conn[e] {
			if m < 0 || m >= nnodes {
				return nil, chk.Err("node %d of element %d is out of range [0, %d)", m, e, nnodes)
			}
		}
	}
	return &Block{Elems: elems, Conn: conn, Nnodes: nnodes, Nproc: runtime.NumCPU()}, nil
}

// Neq returns the number of equations
func (o *Block) Neq() int { return tensor.D * o.Nnodes }

// NodalForces computes the global nodal forces
func (o *Block) NodalForces(x CurrentCoordinates) (f Forces, err error) {
	o.check(x)
	locals := make([]Forces, len(o.Elems))
	err = o.run(func(e int) (err error) {
		locals[e], err = o.Elems[e].NodalForces(o.gather(e, x))
		return
	})
	if err != nil {
		return
	}
	f = tensor.NewVecList[Current](o.Nnodes)
	for e, fe := range locals {
		for a, m := range o.Conn[e] {
			f[m] = f[m].Add(fe[a])
		}
	}
	return
}

// NodalStiffnesses computes the global stiffness matrix; K[D*m+k][D*n+l] = ∂f_m^k/∂x_n^l
func (o *Block) NodalStiffnesses(x CurrentCoordinates) (K *sparse.CSR, err error) {
	o.check(x)
	locals := make([]Stiffnesses, len(o.Elems))
	err = o.run(func(e int) (err error) {
		locals[e], err = o.Elems[e].NodalStiffnesses(o.gather(e, x))
		return
	})
	if err != nil {
		return
	}
	neq := o.Neq()
	dok := sparse.NewDOK(neq, neq)
	for e, Ke := range locals {
		for a, m := range o.Conn[e] {
			for b, n := range o.Conn[e] {
				for k := 0; k < tensor.D; k++ {
					for l := 0; l < tensor.D; l++ {
						r, c := tensor.D*m+k, tensor.D*n+l
						dok.Set(r, c, dok.At(r, c)+Ke[a][b][k][l])
					}
				}
			}
		}
	}
	return dok.ToCSR(), nil
}

// run calls fcn for all elements using Nproc workers and returns the error of the first failed element
func (o *Block) run(fcn func(e int) error) error {
	nelems := len(o.Elems)
	np := o.Nproc
	if np < 1 {
		np = 1
	}
	if np > nelems {
		np = nelems
	}
	errs := make([]error, nelems)
	wg := sync.WaitGroup{}
	for p := 0; p < np; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for e := p; e < nelems; e += np {
				errs[e] = fcn(e)
			}
		}(p)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// gather returns the coordinates of nodes of element e
func (o *Block) gather(e int, x CurrentCoordinates) (xe CurrentCoordinates) {
	xe = make(CurrentCoordinates, len(o.Conn[e]))
	for a, m := range o.Conn[e] {
		xe[a] = x[m]
	}
	return
}

// check panics if the number of global nodes is incorrect
func (o *Block) check(x CurrentCoordinates) {
	if len(x) != o.Nnodes {
		chk.Panic("block requires %d nodes. %d were given", o.Nnodes, len(x))
	}
}
