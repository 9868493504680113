// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/plgbrts/opm-models/mdl/fluid"
)

// Extension computes optional derived quantities from a converged fluid
// state. Extensions are composed onto the volume variables at configuration
// time; the updater iterates them without knowing their field layout, and each
// extension stores its output as named fields on the VolumeVariables.
type Extension interface {
	Name() string
	Update(mdl *Model, v *VolumeVariables, cch *fluid.ParameterCache, ctx *Context, dof, timeIdx int) error
}

// EnergyExtension additionally controls the temperature of the update: the
// temperature is fixed before the flash solve and must not be clobbered by
// warm starts
type EnergyExtension interface {
	Extension
	Temperature(ctx *Context, dof, timeIdx int) float64
}

// Noop is a disabled extension: it contributes no fields and no work
type Noop struct {
	Tag string // name of the disabled concern
}

// Name returns the tag
func (o Noop) Name() string { return o.Tag }

// Update does nothing
func (o Noop) Update(mdl *Model, v *VolumeVariables, cch *fluid.ParameterCache, ctx *Context, dof, timeIdx int) error {
	return nil
}

// Darcy is the velocity extension for Darcy flow. The Darcy velocity is a
// face quantity assembled from pressure gradients by the flux module; it
// needs no per-volume fields beyond the mobilities and the intrinsic
// permeability which the updater stores anyway.
type Darcy struct{}

// Name returns "darcy"
func (o Darcy) Name() string { return "darcy" }

// Update does nothing at the volume level
func (o Darcy) Update(mdl *Model, v *VolumeVariables, cch *fluid.ParameterCache, ctx *Context, dof, timeIdx int) error {
	return nil
}
