// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and reference fluid properties
// used to seed models and verify computations
package ana

// Water handles the properties of water
type Water struct {
	Θ   float64 // reference temperature; default = 25°C or 298.15K
	K   float64 // bulk modulus @ reference temperature [Pa]
	Rho float64 // intrinsic density @ reference temperature [kg/m³]
	C   float64 // compressibility @ reference temperature [kg/(m³・Pa)]
}

// DryAir handles the properties of dry air
type DryAir struct {
	Θ    float64 // reference temperature; default = 25°C or 298.15K
	R    float64 // specific ideal gas constant [J/(kg・K)]
	Patm float64 // absolute atmospheric pressure [Pa]
	Rho  float64 // intrinsic density @ reference temperature [kg/m³]
	C    float64 // compressibility @ reference temperature [kg/(m³・Pa)]
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 298.15      // [K]       25°C
	o.K = 2.2e9       // [Pa]      25°C
	o.Rho = 997.0479  // [kg/m³]   25°C
	o.C = o.Rho / o.K // [kg/(m³・Pa)]
}

// Init initialises data
func (o *DryAir) Init() {
	o.Θ = 298.15                 // [K]           25°C
	o.R = 287.058                // [J/(kg・K)]   25°C
	o.Patm = 101325              // [Pa]
	o.Rho = o.Patm / (o.R * o.Θ) // [kg/m³]       25°C
	o.C = 1.0 / (o.R * o.Θ)      // [kg/(m³・Pa)]
}
