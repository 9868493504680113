// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
)

// ColumnFluidPressure computes pressure (p) and intrinsic density (R) of a
// fluid along a column with gravity (g). The analytical solution for the
// linear compressibility model is:
//
//	R    = R0 + C・(p - p0)   thus   dR/dp = C
//	p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)
type ColumnFluidPressure struct {
	R0   float64 // intrinsic density corresponding to p0 [kg/m³]
	P0   float64 // pressure corresponding to R0 [Pa]
	C    float64 // compressibility coefficient [kg/(m³・Pa)]
	Grav float64 // gravity acceleration (positive constant) [m/s²]
	H    float64 // elevation where (R0,p0) is known [m]
}

// Init initialises this structure
func (o *ColumnFluidPressure) Init(R0, p0, C, g, H float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
}

// Calc computes pressure and density at elevation z
func (o ColumnFluidPressure) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}
