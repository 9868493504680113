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

// BrooksCorey implements Brooks and Corey's model
//
//	sl(pc) = slmin + (slmax - slmin)・(pcae/pc)^λ     for pc > pcae
//	pc(sl) = pcae・se^(-1/λ)   with   se = (sl - slmin)/(slmax - slmin)
type BrooksCorey struct {

	// parameters
	λ     float64 // slope coefficient
	pcae  float64 // air-entry pressure [Pa]
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation

	// constants
	seMin float64 // minimum effective saturation to avoid singular pc
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms utl.Params) (err error) {
	o.slmax = 1.0
	o.seMin = 1e-8
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
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		return chk.Err("bc: λ = %g is invalid", o.λ)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "lam", V: 2.0},
		&utl.P{N: "pcae", V: 1e3},
		&utl.P{N: "slmin", V: 0.05},
		&utl.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o BrooksCorey) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o BrooksCorey) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o BrooksCorey) Sl(pc float64) float64 {
	if pc <= o.pcae {
		return o.slmax
	}
	return o.slmin + (o.slmax-o.slmin)*math.Pow(o.pcae/pc, o.λ)
}

// Pc computes pc from sl
func (o BrooksCorey) Pc(sl float64) float64 {
	se := o.se(sl)
	return o.pcae * math.Pow(se, -1.0/o.λ)
}

// DpcDsl computes ∂pc/∂sl
func (o BrooksCorey) DpcDsl(sl float64) float64 {
	se := o.se(sl)
	if se <= o.seMin {
		return 0
	}
	return -o.pcae * math.Pow(se, -1.0/o.λ-1.0) / (o.λ * (o.slmax - o.slmin))
}

// se computes the effective saturation, clipped away from zero
func (o BrooksCorey) se(sl float64) float64 {
	se := (sl - o.slmin) / (o.slmax - o.slmin)
	if se < o.seMin {
		return o.seMin
	}
	if se > 1 {
		return 1
	}
	return se
}
