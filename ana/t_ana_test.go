// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_colpres01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("colpres01. pressure along a column")

	var water Water
	water.Init()

	var col ColumnFluidPressure
	col.Init(water.Rho, 101325, water.C, 10, 10)

	// reference values at the top
	p, R := col.Calc(10)
	chk.Float64(tst, "p(top)", 1e-12, p, 101325)
	chk.Float64(tst, "R(top)", 1e-12, R, water.Rho)

	// pressure and density grow monotonically towards the bottom
	Z := utl.LinSpace(0, 10, 11)
	pPrev, rPrev := p, R
	for i := len(Z) - 2; i >= 0; i-- {
		p, R = col.Calc(Z[i])
		if p <= pPrev || R <= rPrev {
			tst.Errorf("p or R is not monotonic at z=%g\n", Z[i])
			return
		}
		pPrev, rPrev = p, R
	}

	// the bottom pressure exceeds the incompressible estimate
	pBot, _ := col.Calc(0)
	io.Pforan("p(bottom) = %v\n", pBot)
	if pBot <= 101325+water.Rho*10*10 {
		tst.Errorf("bottom pressure %g should exceed the incompressible estimate\n", pBot)
		return
	}
}

func Test_fluids01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("fluids01. reference fluid properties")

	var water Water
	water.Init()
	chk.Float64(tst, "C water", 1e-12, water.C, water.Rho/water.K)

	var air DryAir
	air.Init()
	chk.Float64(tst, "ρ air", 1e-3, air.Rho, 1.184)
	chk.Float64(tst, "C air", 1e-12, air.C, 1.0/(air.R*air.Θ))
}
