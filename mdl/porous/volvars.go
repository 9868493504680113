// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous implements the flash-based compositional volume-variables
// update for two-phase porous media: the per-dof closure relating the total
// molar densities of all components (the primary variables) to phase
// pressures, saturations, compositions and transport coefficients
package porous

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/plgbrts/opm-models/mdl/conduct"
	"github.com/plgbrts/opm-models/mdl/flash"
	"github.com/plgbrts/opm-models/mdl/fluid"
)

// Context bundles the external collaborators of one assembly pass: the
// problem description, the primary variables and the (optional) store of
// previously converged states used as warm starts. The hint store is owned by
// the caller and is treated as read-only; hints are only valid for the
// duration of the current pass.
type Context struct {
	Prob  Problem       // problem description callbacks
	U     [][][]float64 // primary variables [timeIdx][dof][eq]
	Hints HintStore     // previously converged states; may be nil
}

// PriVars returns the primary variables at one (dof, timeIdx) pair
func (o *Context) PriVars(dof, timeIdx int) []float64 {
	return o.U[timeIdx][dof]
}

// hint returns the warm-start candidate for one (dof, timeIdx) pair, or nil
func (o *Context) hint(dof, timeIdx int) *VolumeVariables {
	if o.Hints == nil {
		return nil
	}
	return o.Hints.Hint(dof, timeIdx)
}

// HintStore gives access to previously converged volume variables for the
// same degree of freedom (previous timestep or previous outer iteration).
// Implementations must never hand out states from a different dof.
type HintStore interface {
	Hint(dof, timeIdx int) *VolumeVariables
}

// VolumeVariables holds the quantities which are constant within one control
// volume: the converged fluid state plus the derived transport coefficients.
// Each instance is exclusively owned by one (dof, timeIdx) pair.
type VolumeVariables struct {
	Sta   *fluid.State         // converged fluid state
	Phi   float64              // porosity
	Kap   [][]float64          // intrinsic permeability tensor [m²]
	Krel  [fluid.Nph]float64   // relative permeability per phase
	Extra map[string][]float64 // named fields owned by extension modules
}

// NewVolumeVariables allocates volume variables for ncp components
func NewVolumeVariables(ncp int) *VolumeVariables {
	return &VolumeVariables{Sta: fluid.NewState(ncp), Extra: make(map[string][]float64)}
}

// FluidState returns the converged fluid state
func (o *VolumeVariables) FluidState() *fluid.State {
	return o.Sta
}

// Mobility returns krel/μ for one phase. It is recomputed on every call
// rather than stored, so it can never go stale with respect to its inputs
func (o *VolumeVariables) Mobility(phase int) float64 {
	return o.Krel[phase] / o.Sta.Mu[phase]
}

// SetExtra stores a named field produced by an extension module
func (o *VolumeVariables) SetExtra(name string, vals []float64) {
	o.Extra[name] = vals
}

// reset performs the generic bookkeeping at the start of an update
func (o *VolumeVariables) reset(ncp int) {
	if o.Sta == nil || len(o.Sta.X[fluid.Liq]) != ncp {
		o.Sta = fluid.NewState(ncp)
	}
	for α := 0; α < fluid.Nph; α++ {
		o.Krel[α] = 0
	}
	o.Extra = make(map[string][]float64)
}

// Model orchestrates the volume-variables update: it owns the fluid system,
// the flash solver, the conductivity model and the extension modules, and is
// configured once per simulation. Update calls are independent across degrees
// of freedom and may run concurrently.
type Model struct {

	// constants
	CTot0Idx int     // offset of the first total molar density within the primary variables
	FlashTol float64 // explicit flash tolerance; non-positive means derive from OuterEps
	OuterEps float64 // perturbation magnitude of the outer solver's Jacobian approximation

	// auxiliary models
	Sys *fluid.System // fluid system
	Fls *flash.Solver // flash solver
	Cnd conduct.Model // liquid-gas conductivity model

	// extensions
	Vel    Extension       // velocity extension
	Energy EnergyExtension // energy extension; drives the temperature
	Dif    Extension       // diffusion extension
}

// Init initialises this structure
func (o *Model) Init(prms utl.Params, sys *fluid.System, cnd conduct.Model) (err error) {

	// constants
	o.CTot0Idx = 0
	o.FlashTol = 0
	o.OuterEps = 1e-8

	// read optional constants
	nmaxit := 0
	for _, p := range prms {
		switch p.N {
		case "cTot0Idx":
			o.CTot0Idx = int(p.V)
		case "flashTol":
			o.FlashTol = p.V
		case "outerEps":
			if p.V > 0 {
				o.OuterEps = p.V
			}
		case "nmaxit":
			nmaxit = int(p.V)
		}
	}

	// auxiliary models
	if sys == nil || cnd == nil {
		return chk.Err("fluid system and conductivity model must be both non-nil")
	}
	o.Sys = sys
	o.Cnd = cnd
	o.Fls = flash.NewSolver(sys)
	if nmaxit > 0 {
		o.Fls.NmaxIt = nmaxit
	}

	// extensions default to disabled
	o.Vel = Darcy{}
	o.Energy = Isothermal{}
	o.Dif = Noop{Tag: "diffusion"}
	return
}

// Tolerance resolves the flash tolerance: an explicit positive value wins;
// otherwise the tolerance is tied to the outer solver's perturbation scale so
// that derivative information stays consistent:
//
//	tol = outerEps / (100・M_water)
func (o *Model) Tolerance() float64 {
	if o.FlashTol > 0 {
		return o.FlashTol
	}
	return o.OuterEps / (100.0 * fluid.WaterMolarMass)
}

// Update produces fully populated volume variables for one (dof, timeIdx)
// pair. A flash convergence failure propagates unchanged to the caller; the
// outer nonlinear solver is expected to shrink its step and retry.
func (o *Model) Update(v *VolumeVariables, ctx *Context, dof, timeIdx int) (err error) {

	// generic bookkeeping
	nc := o.Sys.Nc()
	v.reset(nc)

	// temperature
	T := o.Energy.Temperature(ctx, dof, timeIdx)
	v.Sta.Temp = T

	// total molar densities of the components
	pv := ctx.PriVars(dof, timeIdx)
	cTot := make([]float64, nc)
	for c := 0; c < nc; c++ {
		cTot[c] = pv[o.CTot0Idx+c]
	}

	// initial guess: warm start from the hint, keeping the current temperature
	var cch fluid.ParameterCache
	if hint := ctx.hint(dof, timeIdx); hint != nil {
		v.Sta.Set(hint.FluidState())
		v.Sta.SetTemperature(T)
	} else {
		o.Fls.GuessInitial(v.Sta, &cch, cTot)
	}

	// phase compositions, densities and pressures
	lrm := ctx.Prob.MaterialLaw(dof, timeIdx)
	if lrm == nil {
		return chk.Err("material law is not configured for dof %d", dof)
	}
	if _, err = o.Fls.Solve(v.Sta, &cch, lrm, cTot, o.Tolerance()); err != nil {
		return
	}

	// phase viscosities
	for α := 0; α < fluid.Nph; α++ {
		v.Sta.Mu[α] = o.Sys.Viscosity(&cch, v.Sta, α)
	}

	// relative permeabilities
	v.Krel[fluid.Liq] = o.Cnd.Klr(v.Sta.S[fluid.Liq])
	v.Krel[fluid.Gas] = o.Cnd.Kgr(v.Sta.S[fluid.Gas])

	// porosity and intrinsic permeability
	v.Phi = ctx.Prob.Porosity(dof, timeIdx)
	v.Kap = ctx.Prob.IntrinsicPermeability(dof, timeIdx)

	// extensions
	if err = o.Vel.Update(o, v, &cch, ctx, dof, timeIdx); err != nil {
		return
	}
	if err = o.Energy.Update(o, v, &cch, ctx, dof, timeIdx); err != nil {
		return
	}
	return o.Dif.Update(o, v, &cch, ctx, dof, timeIdx)
}
