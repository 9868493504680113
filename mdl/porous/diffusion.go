// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/plgbrts/opm-models/mdl/fluid"
)

// Diffusion is the enabled molecular diffusion extension: it computes
// effective diffusion coefficients per phase and component from the converged
// saturations using the Millington-Quirk tortuosity
//
//	τ_α  = (φ・S_α)^(7/3) / φ²
//	Deff = φ・S_α・τ_α・D
type Diffusion struct {
	DL []float64 // binary diffusion coefficients in the liquid [m²/s], one per component
	DG []float64 // binary diffusion coefficients in the gas [m²/s], one per component
}

// Init initialises the extension with per-component diffusion coefficients
func (o *Diffusion) Init(dL, dG []float64) (err error) {
	if len(dL) != len(dG) || len(dL) == 0 {
		return chk.Err("diffusion extension: dL and dG must have the same (nonzero) number of components")
	}
	o.DL = dL
	o.DG = dG
	return
}

// Name returns "diffusion"
func (o *Diffusion) Name() string { return "diffusion" }

// Update fills the effective diffusion coefficients
func (o *Diffusion) Update(mdl *Model, v *VolumeVariables, cch *fluid.ParameterCache, ctx *Context, dof, timeIdx int) error {
	nc := len(o.DL)
	effL := make([]float64, nc)
	effG := make([]float64, nc)
	φ := v.Phi
	if φ > 0 {
		τl := math.Pow(φ*v.Sta.S[fluid.Liq], 7.0/3.0) / (φ * φ)
		τg := math.Pow(φ*v.Sta.S[fluid.Gas], 7.0/3.0) / (φ * φ)
		for c := 0; c < nc; c++ {
			effL[c] = φ * v.Sta.S[fluid.Liq] * τl * o.DL[c]
			effG[c] = φ * v.Sta.S[fluid.Gas] * τg * o.DG[c]
		}
	}
	v.SetExtra("Deff_liq", effL)
	v.SetExtra("Deff_gas", effG)
	return nil
}
