// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of simulation data from YAML files
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/ghodss/yaml"

	"github.com/plgbrts/opm-models/mdl/conduct"
	"github.com/plgbrts/opm-models/mdl/fluid"
	"github.com/plgbrts/opm-models/mdl/porous"
	"github.com/plgbrts/opm-models/mdl/retention"
)

// Prm holds one named model parameter
type Prm struct {
	N string  `json:"n"` // name of parameter
	V float64 `json:"v"` // value of parameter
}

// Material holds material data
type Material struct {
	Name  string `json:"name"`  // name of material
	Type  string `json:"type"`  // type of material; e.g. "reten", "conduct", "porous"
	Model string `json:"model"` // name of model; e.g. "bc", "vg", "m1"
	Prms  []*Prm `json:"prms"`  // all model parameters
}

// Params converts the material parameters to a parameters database
func (o *Material) Params() utl.Params {
	prms := make(utl.Params, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = &utl.P{N: p.N, V: p.V}
	}
	return prms
}

// Simulation holds all simulation data read from a YAML input file, plus the
// model stack assembled from it
type Simulation struct {

	// input
	Title     string      `json:"title"`     // simulation title
	Ndim      int         `json:"ndim"`      // space dimension
	OuterEps  float64     `json:"outerEps"`  // outer solver perturbation magnitude
	FlashTol  float64     `json:"flashTol"`  // explicit flash tolerance; 0 means adaptive
	Energy    bool        `json:"energy"`    // enable energy extension
	Diffusion bool        `json:"diffusion"` // enable diffusion extension
	Materials []*Material `json:"materials"` // all materials

	// derived
	Sys  *fluid.System       // fluid system
	Lrm  retention.Model     // retention model
	Cnd  conduct.Model       // conductivity model
	Mdl  *porous.Model       // volume-variables model
	Prob *porous.Homogeneous // problem description
}

// FindMat returns the first material of the given type, or nil
func (o *Simulation) FindMat(matType string) *Material {
	for _, m := range o.Materials {
		if m.Type == matType {
			return m
		}
	}
	return nil
}

// ReadSim reads a simulation from dir/fn and assembles the model stack
func ReadSim(dir, fn string) (sim *Simulation, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %v", fn, err)
	}

	// decode
	sim = new(Simulation)
	if err = yaml.Unmarshal(b, sim); err != nil {
		return nil, chk.Err("cannot parse simulation file %q: %v", fn, err)
	}
	if sim.Ndim == 0 {
		sim.Ndim = 3
	}

	// assemble models
	err = sim.Build()
	return
}

// Build assembles the model stack from the materials database
func (o *Simulation) Build() (err error) {

	// retention model
	mat := o.FindMat("reten")
	if mat == nil {
		return chk.Err("simulation needs a material with type 'reten'")
	}
	if o.Lrm, err = retention.New(mat.Model); err != nil {
		return
	}
	if err = o.Lrm.Init(mat.Params()); err != nil {
		return
	}

	// conductivity model
	mat = o.FindMat("conduct")
	if mat == nil {
		return chk.Err("simulation needs a material with type 'conduct'")
	}
	if o.Cnd, err = conduct.New(mat.Model); err != nil {
		return
	}
	if err = o.Cnd.Init(mat.Params()); err != nil {
		return
	}

	// fluid system
	var sysPrms utl.Params
	if mat = o.FindMat("system"); mat != nil {
		sysPrms = mat.Params()
	}
	if o.Sys, err = fluid.NewWaterGas(sysPrms); err != nil {
		return
	}
	if mat = o.FindMat("fluid-liq"); mat != nil {
		o.Sys.Liq.Init(mat.Params(), 0, 9.81)
	}
	if mat = o.FindMat("fluid-gas"); mat != nil {
		o.Sys.Gas.Gas = true
		o.Sys.Gas.Init(mat.Params(), 0, 9.81)
	}

	// volume-variables model
	var porPrms utl.Params
	if mat = o.FindMat("porous"); mat != nil {
		porPrms = mat.Params()
	}
	porPrms = append(porPrms,
		&utl.P{N: "outerEps", V: o.OuterEps},
		&utl.P{N: "flashTol", V: o.FlashTol},
	)
	o.Mdl = new(porous.Model)
	if err = o.Mdl.Init(porPrms, o.Sys, o.Cnd); err != nil {
		return
	}

	// extensions
	if o.Energy {
		ene := new(porous.Energy)
		var enePrms utl.Params
		if mat = o.FindMat("energy"); mat != nil {
			enePrms = mat.Params()
		}
		ene.Init(enePrms, o.Mdl.CTot0Idx+o.Sys.Nc())
		o.Mdl.Energy = ene
	}
	if o.Diffusion {
		dif := new(porous.Diffusion)
		dL, dG := 2e-9, 2e-5
		if mat = o.FindMat("diffusion"); mat != nil {
			prms := mat.Params()
			if p := prms.Find("dL"); p != nil {
				dL = p.V
			}
			if p := prms.Find("dG"); p != nil {
				dG = p.V
			}
		}
		nc := o.Sys.Nc()
		vl, vg := make([]float64, nc), make([]float64, nc)
		for c := 0; c < nc; c++ {
			vl[c], vg[c] = dL, dG
		}
		if err = dif.Init(vl, vg); err != nil {
			return
		}
		o.Mdl.Dif = dif
	}

	// problem description
	mat = o.FindMat("problem")
	if mat == nil {
		return chk.Err("simulation needs a material with type 'problem'")
	}
	o.Prob = new(porous.Homogeneous)
	return o.Prob.Init(mat.Params(), o.Lrm, o.Ndim)
}
