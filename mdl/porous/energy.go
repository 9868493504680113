// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/plgbrts/opm-models/mdl/fluid"
)

// Isothermal is the disabled energy extension: the temperature is a constant
// supplied by the problem and no energy fields are produced
type Isothermal struct{}

// Name returns "isothermal"
func (o Isothermal) Name() string { return "isothermal" }

// Temperature returns the problem's constant temperature
func (o Isothermal) Temperature(ctx *Context, dof, timeIdx int) float64 {
	return ctx.Prob.Temperature()
}

// Update does nothing
func (o Isothermal) Update(mdl *Model, v *VolumeVariables, cch *fluid.ParameterCache, ctx *Context, dof, timeIdx int) error {
	return nil
}

// Energy is the enabled energy extension: the temperature becomes a primary
// variable and the extension fills per-phase enthalpies, the effective
// thermal conductivity of the fluid-filled medium and the solid heat storage
type Energy struct {

	// configuration
	TempIdx int // index of temperature within primary variables

	// parameters
	LamL float64 // liquid thermal conductivity [W/(m·K)]
	LamG float64 // gas thermal conductivity [W/(m·K)]
	LamS float64 // solid grain thermal conductivity [W/(m·K)]
	RhoS float64 // solid grain density [kg/m³]
	CpS  float64 // solid grain heat capacity [J/(kg·K)]
}

// Init initialises the extension. tempIdx locates the temperature among the
// primary variables (right after the total molar densities)
func (o *Energy) Init(prms utl.Params, tempIdx int) {
	o.TempIdx = tempIdx
	o.LamL, o.LamG, o.LamS = 0.6, 0.025, 2.8
	o.RhoS, o.CpS = 2700.0, 790.0
	for _, p := range prms {
		switch p.N {
		case "lamL":
			o.LamL = p.V
		case "lamG":
			o.LamG = p.V
		case "lamS":
			o.LamS = p.V
		case "rhoS":
			o.RhoS = p.V
		case "cpS":
			o.CpS = p.V
		}
	}
}

// Name returns "energy"
func (o *Energy) Name() string { return "energy" }

// Temperature reads the temperature from the primary variables
func (o *Energy) Temperature(ctx *Context, dof, timeIdx int) float64 {
	return ctx.PriVars(dof, timeIdx)[o.TempIdx]
}

// Update fills enthalpies and conduction fields from the converged state.
// The effective conductivity uses a saturation-weighted geometric-arithmetic
// blend of the phase conductivities with the solid
func (o *Energy) Update(mdl *Model, v *VolumeVariables, cch *fluid.ParameterCache, ctx *Context, dof, timeIdx int) error {
	for α := 0; α < fluid.Nph; α++ {
		v.Sta.H[α] = mdl.Sys.Enthalpy(v.Sta, α)
	}
	φ := v.Phi
	sl := v.Sta.S[fluid.Liq]
	sg := v.Sta.S[fluid.Gas]
	lamFluid := sl*o.LamL + sg*o.LamG
	lamEff := math.Pow(o.LamS, 1.0-φ) * math.Pow(lamFluid, φ)
	v.SetExtra("lambda_eff", []float64{lamEff})
	v.SetExtra("heatcap_solid", []float64{(1.0 - φ) * o.RhoS * o.CpS})
	return nil
}
