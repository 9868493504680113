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

// VanGen implements van Genuchten's model
//
//	se(pc) = [1 + (α・pc)^n]^(-m)
//	pc(se) = (se^(-1/m) - 1)^(1/n) / α
type VanGen struct {

	// parameters
	α, m, n float64 // parameters
	slmin   float64 // minimum sl
	slmax   float64 // maximum saturation
	pcmin   float64 // pc limit to consider zero slope [Pa]

	// constants
	seMin float64 // minimum effective saturation to avoid singular pc
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms utl.Params) (err error) {
	o.pcmin, o.slmax = 1e-3, 1.0
	o.seMin = 1e-8
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		case "pcmin":
			o.pcmin = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α < 1e-13 || o.m < 1e-13 || o.n < 1e-13 {
		return chk.Err("vg: parameters α=%g, m=%g and n=%g must all be positive", o.α, o.m, o.n)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "alp", V: 5e-4},
		&utl.P{N: "m", V: 0.5},
		&utl.P{N: "n", V: 2.0},
		&utl.P{N: "slmin", V: 0.01},
		&utl.P{N: "slmax", V: 1.0},
		&utl.P{N: "pcmin", V: 1e-3},
	}
}

// SlMin returns sl_min
func (o VanGen) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o VanGen) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o VanGen) Sl(pc float64) float64 {
	if pc <= o.pcmin {
		return o.slmax
	}
	c := math.Pow(o.α*pc, o.n)
	return o.slmin + (o.slmax-o.slmin)*math.Pow(1.0+c, -o.m)
}

// Pc computes pc from sl
func (o VanGen) Pc(sl float64) float64 {
	se := o.se(sl)
	if se >= 1 {
		return o.pcmin
	}
	return math.Pow(math.Pow(se, -1.0/o.m)-1.0, 1.0/o.n) / o.α
}

// DpcDsl computes ∂pc/∂sl
func (o VanGen) DpcDsl(sl float64) float64 {
	se := o.se(sl)
	if se <= o.seMin || se >= 1 {
		return 0
	}
	u := math.Pow(se, -1.0/o.m) - 1.0
	dudse := -math.Pow(se, -1.0/o.m-1.0) / o.m
	return math.Pow(u, 1.0/o.n-1.0) * dudse / (o.n * o.α * (o.slmax - o.slmin))
}

// se computes the effective saturation, clipped away from zero
func (o VanGen) se(sl float64) float64 {
	se := (sl - o.slmin) / (o.slmax - o.slmin)
	if se < o.seMin {
		return o.seMin
	}
	if se > 1 {
		return 1
	}
	return se
}
