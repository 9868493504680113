// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/spf13/cobra"

	"github.com/plgbrts/opm-models/inp"
	"github.com/plgbrts/opm-models/mdl/fluid"
	"github.com/plgbrts/opm-models/mdl/porous"
	"github.com/plgbrts/opm-models/out"
)

// columnCmd runs the volume-variables update over a 1-D column of dofs with
// a growing gas inventory, reusing converged states as warm starts
var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Run a column scenario with growing gas inventory",
	Run: func(cmd *cobra.Command, args []string) {
		fn, _ := cmd.Flags().GetString("simFile")
		ndof, _ := cmd.Flags().GetInt("ndof")
		nsteps, _ := cmd.Flags().GetInt("steps")
		ctotW, _ := cmd.Flags().GetFloat64("ctotWater")
		ctotG, _ := cmd.Flags().GetFloat64("ctotGasMax")
		dirout, _ := cmd.Flags().GetString("outDir")
		if fn == "" {
			io.PfRed("error: a simulation file (-I, --simFile) must be supplied\n")
			os.Exit(1)
		}
		runColumn(fn, ndof, nsteps, ctotW, ctotG, dirout)
	},
}

func init() {
	rootCmd.AddCommand(columnCmd)
	columnCmd.Flags().StringP("simFile", "I", "", "YAML simulation input file")
	columnCmd.Flags().IntP("ndof", "n", 11, "number of degrees of freedom along the column")
	columnCmd.Flags().IntP("steps", "s", 10, "number of steps")
	columnCmd.Flags().Float64P("ctotWater", "w", 55600.0, "total molar density of water [mol/m³]")
	columnCmd.Flags().Float64P("ctotGasMax", "g", 1.0, "total molar density of gas at the last step [mol/m³]")
	columnCmd.Flags().StringP("outDir", "o", "/tmp/opm-models", "output directory for VTK files")
}

// runColumn builds the model stack, runs the driver and writes results
func runColumn(fn string, ndof, nsteps int, ctotW, ctotG float64, dirout string) {

	// input
	sim, err := inp.ReadSim("", fn)
	if err != nil {
		io.PfRed("cannot read simulation: %v\n", err)
		os.Exit(1)
	}
	io.Pf("%s\n", sim.Title)

	// primary variables: water inventory fixed, gas inventory growing per step
	nc := sim.Sys.Nc()
	npv := sim.Mdl.CTot0Idx + nc
	if sim.Energy {
		npv++
	}
	gasLevels := utl.LinSpace(0, ctotG, nsteps)
	U := make([][][]float64, nsteps)
	for step := 0; step < nsteps; step++ {
		U[step] = make([][]float64, ndof)
		for dof := 0; dof < ndof; dof++ {
			pv := make([]float64, npv)
			pv[sim.Mdl.CTot0Idx] = ctotW
			pv[sim.Mdl.CTot0Idx+1] = gasLevels[step]
			if sim.Energy {
				pv[sim.Mdl.CTot0Idx+nc] = sim.Prob.Temp
			}
			U[step][dof] = pv
		}
	}

	// run
	drv := new(porous.Driver)
	if err = drv.Init(sim.Mdl, sim.Prob); err != nil {
		io.PfRed("driver failed: %v\n", err)
		os.Exit(1)
	}
	if err = drv.Run(U); err != nil {
		io.PfRed("run failed: %v\n", err)
		os.Exit(1)
	}

	// report final step
	last := drv.Res[nsteps-1]
	io.Pf("%6s%14s%12s%10s%10s\n", "dof", "pl", "sl", "krl", "krg")
	X := make([][]float64, ndof)
	pl := make([]float64, ndof)
	sl := make([]float64, ndof)
	krl := make([]float64, ndof)
	krg := make([]float64, ndof)
	for dof := 0; dof < ndof; dof++ {
		v := last[dof]
		X[dof] = []float64{0, 0, float64(dof)}
		pl[dof] = v.Sta.P[fluid.Liq]
		sl[dof] = v.Sta.S[fluid.Liq]
		krl[dof] = v.Krel[fluid.Liq]
		krg[dof] = v.Krel[fluid.Gas]
		io.Pf("%6d%14.6g%12.8f%10.6f%10.6f\n", dof, pl[dof], sl[dof], krl[dof], krg[dof])
	}

	// write VTK
	w := out.NewVtkWriter(sim.Title, X)
	for _, f := range []struct {
		name string
		vals []float64
	}{{"pl", pl}, {"sl", sl}, {"krl", krl}, {"krg", krg}} {
		if err = w.Scalar(f.name, f.vals); err != nil {
			io.PfRed("output failed: %v\n", err)
			os.Exit(1)
		}
	}
	if err = w.Write(dirout, "column"); err != nil {
		io.PfRed("output failed: %v\n", err)
		os.Exit(1)
	}
	io.Pf("file <%s/column.vtk> written\n", dirout)
}
