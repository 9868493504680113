// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/plgbrts/opm-models/mdl/retention"
)

// Problem supplies the spatially varying quantities of a concrete simulation
// problem. All methods are pure queries at a given (dof, timeIdx) location.
// Concrete problems embed Base and override the methods they support; a
// method left unimplemented aborts the run at first use.
type Problem interface {
	Porosity(dof, timeIdx int) float64                  // porosity [-]
	IntrinsicPermeability(dof, timeIdx int) [][]float64 // intrinsic permeability tensor [m²]
	MaterialLaw(dof, timeIdx int) retention.Model       // retention model with parameters at this location
	Temperature() float64                               // constant temperature for isothermal runs [K]
}

// Base panics on every Problem method; using an unimplemented method is a
// programming error that must abort visibly during development
type Base struct{}

// Porosity panics
func (o Base) Porosity(dof, timeIdx int) float64 {
	chk.Panic("problem does not implement Porosity")
	return 0
}

// IntrinsicPermeability panics
func (o Base) IntrinsicPermeability(dof, timeIdx int) [][]float64 {
	chk.Panic("problem does not implement IntrinsicPermeability")
	return nil
}

// MaterialLaw panics
func (o Base) MaterialLaw(dof, timeIdx int) retention.Model {
	chk.Panic("problem does not implement MaterialLaw")
	return nil
}

// Temperature panics
func (o Base) Temperature() float64 {
	chk.Panic("problem does not implement Temperature")
	return 0
}

// Homogeneous implements a problem with uniform porosity, permeability,
// temperature and material law over all degrees of freedom
type Homogeneous struct {
	Base

	// data
	Phi0 float64         // porosity
	Temp float64         // temperature [K]
	Lrm  retention.Model // retention model

	// derived
	kap [][]float64 // intrinsic permeability tensor
}

// Init initialises this problem for ndim dimensions. The material law must be
// supplied explicitly; there is no default
func (o *Homogeneous) Init(prms utl.Params, lrm retention.Model, ndim int) (err error) {

	// material law
	if lrm == nil {
		return chk.Err("homogeneous problem: a retention model must be supplied")
	}
	o.Lrm = lrm

	// defaults
	o.Temp = 298.15

	// permeability
	var kx, ky, kz float64
	kValues, kFound := prms.GetValues([]string{"kx", "ky", "kz"})
	if utl.AllTrue(kFound) {
		kx, ky, kz = kValues[0], kValues[1], kValues[2]
	} else {
		p := prms.Find("k")
		if p == nil {
			return chk.Err("homogeneous problem: either 'k' (isotropic) or ['kx', 'ky', 'kz'] must be given in database of material parameters")
		}
		kx, ky, kz = p.V, p.V, p.V
	}

	// other parameters
	prms.Connect(&o.Phi0, "phi", "homogeneous problem")
	if p := prms.Find("temp"); p != nil {
		o.Temp = p.V
	}

	// check
	if o.Phi0 < 1e-3 || o.Phi0 > 1 {
		return chk.Err("homogeneous problem: porosity phi = %g is invalid", o.Phi0)
	}

	// derived
	o.kap = utl.Alloc(ndim, ndim)
	o.kap[0][0] = kx
	if ndim > 1 {
		o.kap[1][1] = ky
	}
	if ndim > 2 {
		o.kap[2][2] = kz
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Homogeneous) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "phi", V: 0.3},
			&utl.P{N: "k", V: 1e-12},
			&utl.P{N: "temp", V: 298.15},
		}
	}
	return utl.Params{
		&utl.P{N: "phi", V: o.Phi0},
		&utl.P{N: "k", V: o.kap[0][0]},
		&utl.P{N: "temp", V: o.Temp},
	}
}

// Porosity returns the uniform porosity
func (o *Homogeneous) Porosity(dof, timeIdx int) float64 {
	return o.Phi0
}

// IntrinsicPermeability returns the uniform permeability tensor
func (o *Homogeneous) IntrinsicPermeability(dof, timeIdx int) [][]float64 {
	return o.kap
}

// MaterialLaw returns the uniform retention model
func (o *Homogeneous) MaterialLaw(dof, timeIdx int) retention.Model {
	return o.Lrm
}

// Temperature returns the uniform temperature
func (o *Homogeneous) Temperature() float64 {
	return o.Temp
}
