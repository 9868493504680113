// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid phases and compositional mixtures
// in porous media
package fluid

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/plgbrts/opm-models/ana"
)

// Model implements a model to compute pressure (p) and intrinsic mass density (R)
// of a single fluid phase. The model is:
//
//	R(p) = R0 + C・(p - p0)   thus   dR/dp = C
type Model struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0 [kg/m³]
	P0  float64 // pressure corresponding to R0 [Pa]
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ) [kg/(m³・Pa)]
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known [m]
	Grav float64 // gravity acceleration (positive constant) [m/s²]
}

// Init initialises this structure
func (o *Model) Init(prms utl.Params, H, grav float64) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "gas":
			o.Gas = p.V > 0
		}
	}
	o.H = H
	o.Grav = grav
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns example of parameters; othewise returns current parameters
//	Note:
//	 Gas variable is used to return dry air properties instead of water;
//	 example values come from the reference properties in package ana
func (o Model) GetPrms(example bool) utl.Params {
	if example {
		if o.Gas {
			var air ana.DryAir
			air.Init()
			return utl.Params{ // dry air
				&utl.P{N: "R0", V: air.Rho},  // [kg/m³]
				&utl.P{N: "P0", V: air.Patm}, // [Pa]
				&utl.P{N: "C", V: air.C},     // [kg/(m³・Pa)]
				&utl.P{N: "gas", V: 1},       // [-]
			}
		}
		var water ana.Water
		water.Init()
		return utl.Params{ // water
			&utl.P{N: "R0", V: water.Rho}, // [kg/m³]
			&utl.P{N: "P0", V: 101325},    // [Pa]
			&utl.P{N: "C", V: water.C},    // [kg/(m³・Pa)]
			&utl.P{N: "gas", V: 0},        // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return utl.Params{
		&utl.P{N: "R0", V: o.R0},
		&utl.P{N: "P0", V: o.P0},
		&utl.P{N: "C", V: o.C},
		&utl.P{N: "gas", V: gas},
	}
}

// Density computes intrinsic mass density for a given pressure
func (o Model) Density(p float64) float64 {
	return o.R0 + o.C*(p-o.P0)
}

// Calc computes pressure and density at elevation z of a column under gravity
func (o Model) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}
