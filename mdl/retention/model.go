// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements liquid retention curves (capillary
// pressure-saturation relationships) for porous media
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model implements a liquid retention model (LRM) relating the liquid
// saturation sl to the capillary pressure pc = pg - pl. Both directions are
// needed: Sl(pc) for initialisation and Pc(sl) for the capillary closure of
// the flash solve, together with the slope DpcDsl used by derivative checks.
type Model interface {
	Init(prms utl.Params) error      // initialises retention model
	GetPrms(example bool) utl.Params // gets (an example) of parameters
	SlMin() float64                  // returns sl_min
	SlMax() float64                  // returns sl_max
	Sl(pc float64) float64           // computes sl for given pc
	Pc(sl float64) float64           // computes pc for given sl
	DpcDsl(sl float64) float64       // computes ∂pc/∂sl
}

// New returns a new liquid retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
