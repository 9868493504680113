// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/plgbrts/opm-models/ana"
	"github.com/plgbrts/opm-models/mdl/conduct"
	"github.com/plgbrts/opm-models/mdl/fluid"
	"github.com/plgbrts/opm-models/mdl/retention"
)

// testSetup returns a model and a homogeneous problem for a two-component
// system whose liquid molar density is 1000 mol/m³ at atmospheric pressure
func testSetup(tst *testing.T, prms utl.Params) (*Model, *Homogeneous) {

	// fluid system
	liq := new(fluid.Model)
	liq.Init(utl.Params{
		&utl.P{N: "R0", V: 18.0},
		&utl.P{N: "P0", V: 1e5},
		&utl.P{N: "C", V: 1e-6},
	}, 0, 9.81)
	gas := new(fluid.Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), 0, 9.81)
	sys := new(fluid.System)
	if err := sys.Init([]string{"water", "gas"}, []float64{fluid.WaterMolarMass, 28.97e-3}, nil, liq, gas); err != nil {
		tst.Fatalf("system Init failed: %v\n", err)
	}

	// material law
	lrm, err := retention.New("bc")
	if err != nil {
		tst.Fatalf("retention.New failed: %v\n", err)
	}
	if err := lrm.Init(lrm.GetPrms(true)); err != nil {
		tst.Fatalf("lrm Init failed: %v\n", err)
	}

	// conductivity model
	cnd, err := conduct.New("m1")
	if err != nil {
		tst.Fatalf("conduct.New failed: %v\n", err)
	}
	if err := cnd.Init(cnd.GetPrms(true)); err != nil {
		tst.Fatalf("cnd Init failed: %v\n", err)
	}

	// problem
	prob := new(Homogeneous)
	if err := prob.Init(prob.GetPrms(true), lrm, 3); err != nil {
		tst.Fatalf("problem Init failed: %v\n", err)
	}

	// model
	mdl := new(Model)
	if err := mdl.Init(prms, sys, cnd); err != nil {
		tst.Fatalf("model Init failed: %v\n", err)
	}
	return mdl, prob
}

func Test_tol01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("tol01. flash tolerance resolution")

	mdl, _ := testSetup(tst, nil)

	// derived from the outer perturbation scale by default
	chk.Float64(tst, "outerEps", 1e-17, mdl.OuterEps, 1e-8)
	chk.Float64(tst, "tol derived", 1e-22, mdl.Tolerance(), 1e-8/(100.0*fluid.WaterMolarMass))
	chk.Float64(tst, "tol value", 1e-15, mdl.Tolerance(), 5.555555555555556e-9)

	// a sharper outer perturbation sharpens the flash tolerance
	mdl2, _ := testSetup(tst, utl.Params{&utl.P{N: "outerEps", V: 1e-10}})
	chk.Float64(tst, "tol sharper", 1e-22, mdl2.Tolerance(), 1e-10/(100.0*fluid.WaterMolarMass))

	// an explicit tolerance wins over the derived one
	mdl3, _ := testSetup(tst, utl.Params{&utl.P{N: "flashTol", V: 1e-10}})
	chk.Float64(tst, "tol explicit", 1e-22, mdl3.Tolerance(), 1e-10)

	// the flash iteration budget is configurable
	mdl4, _ := testSetup(tst, utl.Params{&utl.P{N: "nmaxit", V: 7}})
	chk.IntAssert(mdl4.Fls.NmaxIt, 7)
	chk.IntAssert(mdl.Fls.NmaxIt, 100)
}

func Test_vv01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("vv01. volume-variables update")

	mdl, prob := testSetup(tst, nil)
	ctx := &Context{Prob: prob, U: [][][]float64{{{1000.0, 0.01}}}}

	v := NewVolumeVariables(mdl.Sys.Nc())
	if err := mdl.Update(v, ctx, 0, 0); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}

	// temperature comes from the problem (isothermal by default)
	chk.Float64(tst, "T", 1e-15, v.Sta.Temp, prob.Temperature())

	// the liquid fills the volume; relative permeabilities follow
	chk.Float64(tst, "sl", 1e-7, v.Sta.S[fluid.Liq], 1.0)
	chk.Float64(tst, "krl", 1e-6, v.Krel[fluid.Liq], 1.0)
	chk.Float64(tst, "krg", 1e-6, v.Krel[fluid.Gas], 0.0)

	// viscosities are filled from the fluid system
	chk.Float64(tst, "μl", 1e-15, v.Sta.Mu[fluid.Liq], mdl.Sys.MuL)
	chk.Float64(tst, "μg", 1e-15, v.Sta.Mu[fluid.Gas], mdl.Sys.MuG)

	// mobility is the quotient of the stored quantities
	chk.Float64(tst, "λl", 1e-17, v.Mobility(fluid.Liq), v.Krel[fluid.Liq]/v.Sta.Mu[fluid.Liq])
	chk.Float64(tst, "λg", 1e-17, v.Mobility(fluid.Gas), v.Krel[fluid.Gas]/v.Sta.Mu[fluid.Gas])

	// porosity and permeability pass through from the problem
	chk.Float64(tst, "φ", 1e-15, v.Phi, 0.3)
	chk.Float64(tst, "kxx", 1e-25, v.Kap[0][0], 1e-12)

	// densities are consistent
	for α := 0; α < fluid.Nph; α++ {
		chk.Float64(tst, io.Sf("ρ phase %d", α), 1e-10, v.Sta.Rho[α], v.Sta.RhoM[α]*mdl.Sys.MeanMolarMass(v.Sta, α))
	}
}

// singleHint hands out the same volume variables for every dof
type singleHint struct {
	v *VolumeVariables
}

func (o singleHint) Hint(dof, timeIdx int) *VolumeVariables { return o.v }

func Test_hint01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hint01. warm start keeps the current temperature")

	mdl, prob := testSetup(tst, nil)
	U := [][][]float64{{{1000.0, 0.01}}}

	// converge once without hints
	ctx := &Context{Prob: prob, U: U}
	a := NewVolumeVariables(mdl.Sys.Nc())
	if err := mdl.Update(a, ctx, 0, 0); err != nil {
		tst.Errorf("first Update failed: %v\n", err)
		return
	}

	// update again at a different problem temperature, seeded by the hint
	slHint := a.Sta.S[fluid.Liq]
	prob.Temp = 310.0
	ctx2 := &Context{Prob: prob, U: U, Hints: singleHint{a}}
	b := NewVolumeVariables(mdl.Sys.Nc())
	if err := mdl.Update(b, ctx2, 0, 0); err != nil {
		tst.Errorf("warm Update failed: %v\n", err)
		return
	}

	// the hint's temperature must not leak into the new state
	chk.Float64(tst, "T new", 1e-15, b.Sta.Temp, 310.0)
	chk.Float64(tst, "T hint untouched", 1e-15, a.Sta.Temp, 298.15)

	// the update never writes through the hint
	chk.Float64(tst, "hint sl untouched", 1e-17, a.Sta.S[fluid.Liq], slHint)
}

func Test_ext01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("ext01. energy and diffusion extensions")

	mdl, prob := testSetup(tst, nil)

	// enable energy (temperature right after the totals) and diffusion
	energy := new(Energy)
	energy.Init(nil, 2)
	mdl.Energy = energy
	dif := new(Diffusion)
	if err := dif.Init([]float64{1e-9, 2e-9}, []float64{1e-5, 2e-5}); err != nil {
		tst.Errorf("diffusion Init failed: %v\n", err)
		return
	}
	mdl.Dif = dif

	ctx := &Context{Prob: prob, U: [][][]float64{{{1000.0, 0.01, 320.0}}}}
	v := NewVolumeVariables(mdl.Sys.Nc())
	if err := mdl.Update(v, ctx, 0, 0); err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}

	// temperature is a primary variable now
	chk.Float64(tst, "T", 1e-15, v.Sta.Temp, 320.0)

	// enthalpies from the converged state
	chk.Float64(tst, "hl", 1e-10, v.Sta.H[fluid.Liq], mdl.Sys.CpL*(320.0-mdl.Sys.Tref))
	chk.Float64(tst, "hg", 1e-10, v.Sta.H[fluid.Gas], mdl.Sys.CpG*(320.0-mdl.Sys.Tref))

	// conduction fields
	lam, ok := v.Extra["lambda_eff"]
	if !ok || len(lam) != 1 {
		tst.Errorf("lambda_eff field is missing\n")
		return
	}
	if lam[0] <= 0 {
		tst.Errorf("lambda_eff = %g must be positive\n", lam[0])
		return
	}
	hc, ok := v.Extra["heatcap_solid"]
	if !ok || len(hc) != 1 {
		tst.Errorf("heatcap_solid field is missing\n")
		return
	}
	chk.Float64(tst, "heatcap_solid", 1e-6, hc[0], (1.0-0.3)*2700.0*790.0)

	// effective diffusion: Millington-Quirk in the liquid-filled pore space
	φ, sl := 0.3, v.Sta.S[fluid.Liq]
	τl := math.Pow(φ*sl, 7.0/3.0) / (φ * φ)
	effL, ok := v.Extra["Deff_liq"]
	if !ok || len(effL) != 2 {
		tst.Errorf("Deff_liq field is missing\n")
		return
	}
	chk.Float64(tst, "Deff_liq[0]", 1e-15, effL[0], φ*sl*τl*1e-9)
	chk.Float64(tst, "Deff_liq[1]", 1e-15, effL[1], φ*sl*τl*2e-9)

	// the gas phase is absent; its effective diffusion vanishes
	effG := v.Extra["Deff_gas"]
	if effG[0] > 1e-12 {
		tst.Errorf("Deff_gas[0] = %g should vanish for an absent gas phase\n", effG[0])
		return
	}
}

func Test_drv01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("drv01. driver with step-to-step warm starts")

	mdl, prob := testSetup(tst, nil)

	var drv Driver
	if err := drv.Init(mdl, prob); err != nil {
		tst.Errorf("driver Init failed: %v\n", err)
		return
	}

	U := [][][]float64{
		{{1000.0, 0.01}, {999.0, 0.02}},   // step 0
		{{1000.5, 0.015}, {999.5, 0.025}}, // step 1
	}
	if err := drv.Run(U); err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// all results present and physically meaningful
	chk.IntAssert(len(drv.Res), 2)
	for step := 0; step < 2; step++ {
		chk.IntAssert(len(drv.Res[step]), 2)
		for dof := 0; dof < 2; dof++ {
			v := drv.Res[step][dof]
			if v == nil {
				tst.Errorf("missing result at step %d dof %d\n", step, dof)
				return
			}
			sl := v.Sta.S[fluid.Liq]
			if sl < 0 || sl > 1 {
				tst.Errorf("sl = %g out of range at step %d dof %d\n", sl, step, dof)
				return
			}
		}
	}

	// invalid primary variables abort the run with an error
	if err := drv.Run([][][]float64{{{-1.0, 0.01}}}); err == nil {
		tst.Errorf("Run should have failed with negative totals\n")
		return
	}

	// a step may introduce dofs the previous step did not have
	grown := [][][]float64{
		{{1000.0, 0.01}},
		{{1000.0, 0.01}, {999.0, 0.02}},
	}
	if err := drv.Run(grown); err != nil {
		tst.Errorf("Run with growing dof count failed: %v\n", err)
		return
	}
	chk.IntAssert(len(drv.Res[1]), 2)
}

func Test_col01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("col01. column pressures vs analytical solution")

	// fluid system with reference water/dry-air properties
	H, grav := 10.0, 10.0
	liq := new(fluid.Model)
	liq.Init(liq.GetPrms(true), H, grav)
	gas := new(fluid.Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), H, grav)
	sys := new(fluid.System)
	if err := sys.Init([]string{"water", "gas"}, []float64{fluid.WaterMolarMass, 28.97e-3}, nil, liq, gas); err != nil {
		tst.Fatalf("system Init failed: %v\n", err)
	}
	lrm, _ := retention.New("bc")
	if err := lrm.Init(lrm.GetPrms(true)); err != nil {
		tst.Fatalf("lrm Init failed: %v\n", err)
	}
	cnd, _ := conduct.New("m1")
	if err := cnd.Init(cnd.GetPrms(true)); err != nil {
		tst.Fatalf("cnd Init failed: %v\n", err)
	}
	prob := new(Homogeneous)
	if err := prob.Init(prob.GetPrms(true), lrm, 3); err != nil {
		tst.Fatalf("problem Init failed: %v\n", err)
	}
	mdl := new(Model)
	if err := mdl.Init(nil, sys, cnd); err != nil {
		tst.Fatalf("model Init failed: %v\n", err)
	}

	// analytical column with the same constants
	var col ana.ColumnFluidPressure
	col.Init(liq.R0, liq.P0, liq.C, grav, H)

	// one dof per elevation; totals from the analytical density profile
	Z := utl.LinSpace(0, H, 5)
	step := make([][]float64, len(Z))
	for i, z := range Z {
		_, R := col.Calc(z)
		step[i] = []float64{R / fluid.WaterMolarMass, 0}
	}
	var drv Driver
	if err := drv.Init(mdl, prob); err != nil {
		tst.Errorf("driver Init failed: %v\n", err)
		return
	}
	if err := drv.Run([][][]float64{step}); err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// the flash must recover the analytical pressures
	for i, z := range Z {
		pAna, _ := col.Calc(z)
		v := drv.Res[0][i]
		chk.Float64(tst, io.Sf("sl @ z=%g", z), 1e-7, v.Sta.S[fluid.Liq], 1.0)
		chk.Float64(tst, io.Sf("pl @ z=%g", z), 50.0, v.Sta.P[fluid.Liq], pAna)
	}
}

func Test_prob01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("prob01. unimplemented problem methods abort")

	defer func() {
		if recover() == nil {
			tst.Errorf("Base methods must panic\n")
		}
	}()
	var b Base
	b.Porosity(0, 0)
}
