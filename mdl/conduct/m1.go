// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// M1 implements power-law (Corey-type) relative conductivity curves
//
//	klr(sl) = se^nl          se = (sl - slrl)/(1 - slrl - slrg)
//	kgr(sg) = (1 - se)^ng
type M1 struct {

	// parameters
	nl, ng float64 // exponents
	slrl   float64 // residual liquid saturation
	slrg   float64 // residual gas saturation
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises this structure
func (o *M1) Init(prms utl.Params) (err error) {
	o.nl, o.ng = 3.0, 3.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nl":
			o.nl = p.V
		case "ng":
			o.ng = p.V
		case "slrl":
			o.slrl = p.V
		case "slrg":
			o.slrg = p.V
		default:
			return chk.Err("m1: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.slrl+o.slrg >= 1 {
		return chk.Err("m1: residual saturations slrl=%g and slrg=%g must add to less than one", o.slrl, o.slrg)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o M1) GetPrms(example bool) utl.Params {
	return utl.Params{
		&utl.P{N: "nl", V: 3},
		&utl.P{N: "ng", V: 3},
		&utl.P{N: "slrl", V: 0.0},
		&utl.P{N: "slrg", V: 0.0},
	}
}

// Klr returns klr
func (o M1) Klr(sl float64) float64 {
	return math.Pow(o.se(sl), o.nl)
}

// Kgr returns kgr
func (o M1) Kgr(sg float64) float64 {
	return math.Pow(1.0-o.se(1.0-sg), o.ng)
}

// DklrDsl returns ∂klr/∂sl
func (o M1) DklrDsl(sl float64) float64 {
	se := o.se(sl)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.nl * math.Pow(se, o.nl-1.0) / (1.0 - o.slrl - o.slrg)
}

// DkgrDsg returns ∂kgr/∂sg
func (o M1) DkgrDsg(sg float64) float64 {
	se := o.se(1.0 - sg)
	if se <= 0 || se >= 1 {
		return 0
	}
	return o.ng * math.Pow(1.0-se, o.ng-1.0) / (1.0 - o.slrl - o.slrg)
}

// se computes the effective saturation, clipped to [0,1]
func (o M1) se(sl float64) float64 {
	se := (sl - o.slrl) / (1.0 - o.slrl - o.slrg)
	if se < 0 {
		return 0
	}
	if se > 1 {
		return 1
	}
	return se
}
