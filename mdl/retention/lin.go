// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Lin implements a linear retention model: sl(pc) := slmax - λ・(pc - pcae)
type Lin struct {

	// parameters
	λ     float64 // slope coefficient [1/Pa]
	pcae  float64 // air-entry pressure [Pa]
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation

	// derived
	pcres float64 // residual pc corresponding to slmin
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms utl.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		o.λ = 0
		o.pcres = math.MaxFloat64
	} else {
		o.pcres = o.pcae + (o.slmax-o.slmin)/o.λ
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "lam", V: 1e-4},
		&utl.P{N: "pcae", V: 1e3},
		&utl.P{N: "slmin", V: 0.1},
		&utl.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o Lin) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o Lin) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o Lin) Sl(pc float64) float64 {
	if pc <= o.pcae {
		return o.slmax
	}
	if pc >= o.pcres {
		return o.slmin
	}
	return o.slmax - o.λ*(pc-o.pcae)
}

// Pc computes pc from sl
func (o Lin) Pc(sl float64) float64 {
	if o.λ == 0 || sl >= o.slmax {
		return o.pcae
	}
	if sl <= o.slmin {
		return o.pcres
	}
	return o.pcae + (o.slmax-sl)/o.λ
}

// DpcDsl computes ∂pc/∂sl
func (o Lin) DpcDsl(sl float64) float64 {
	if o.λ == 0 || sl >= o.slmax || sl <= o.slmin {
		return 0
	}
	return -1.0 / o.λ
}
