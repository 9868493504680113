// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/cpmech/gosl/chk"
)

// Driver runs a sequence of volume-variables updates over a set of degrees of
// freedom, reusing each dof's previously converged state as the warm start of
// the next step — the same hint mechanism the outer nonlinear solver would
// provide. It implements HintStore.
type Driver struct {

	// input
	Mdl  *Model  // volume-variables model
	Prob Problem // problem description

	// results
	Res [][]*VolumeVariables // converged volume variables [step][dof]

	// auxiliary
	prev []*VolumeVariables // hint source for the current step
}

// Init initialises driver
func (o *Driver) Init(mdl *Model, prob Problem) (err error) {
	if mdl == nil || prob == nil {
		return chk.Err("driver needs non-nil model and problem")
	}
	o.Mdl = mdl
	o.Prob = prob
	return
}

// Hint returns the previously converged state for one dof; nil on the first
// step and for dofs the previous step did not have
func (o *Driver) Hint(dof, timeIdx int) *VolumeVariables {
	if dof >= len(o.prev) {
		return nil
	}
	return o.prev[dof]
}

// Run updates all dofs for every step of primary variables
//
//	Input:
//	 U -- primary variables [step][dof][eq]
func (o *Driver) Run(U [][][]float64) (err error) {
	nsteps := len(U)
	o.Res = make([][]*VolumeVariables, nsteps)
	o.prev = nil
	for step := 0; step < nsteps; step++ {
		ndof := len(U[step])
		ctx := &Context{Prob: o.Prob, U: [][][]float64{U[step]}, Hints: o}
		o.Res[step] = make([]*VolumeVariables, ndof)
		for dof := 0; dof < ndof; dof++ {
			v := NewVolumeVariables(o.Mdl.Sys.Nc())
			if err = o.Mdl.Update(v, ctx, dof, 0); err != nil {
				return // surface flash failures untouched
			}
			o.Res[step][dof] = v
		}
		o.prev = o.Res[step]
	}
	return
}
