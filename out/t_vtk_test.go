// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vtk01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("vtk01. legacy VTK output")

	X := [][]float64{{0, 0, 0}, {0, 0, 0.5}, {0, 0, 1}}
	w := NewVtkWriter("column", X)

	// duplicated and ill-sized fields are rejected
	if err := w.Scalar("pl", []float64{1e5, 1.1e5, 1.2e5}); err != nil {
		tst.Errorf("Scalar failed: %v\n", err)
		return
	}
	if err := w.Scalar("pl", []float64{1, 2, 3}); err == nil {
		tst.Errorf("duplicated field should have been rejected\n")
		return
	}
	if err := w.Scalar("sl", []float64{1, 0.9}); err == nil {
		tst.Errorf("ill-sized field should have been rejected\n")
		return
	}
	if err := w.Scalar("sl", []float64{1, 0.9, 0.8}); err != nil {
		tst.Errorf("Scalar failed: %v\n", err)
		return
	}

	// write and inspect
	if err := w.Write("/tmp/opm-models", "vtk01"); err != nil {
		tst.Errorf("Write failed: %v\n", err)
		return
	}
	txt := string(io.ReadFile("/tmp/opm-models/vtk01.vtk"))
	for _, want := range []string{
		"# vtk DataFile Version 3.0",
		"column",
		"DATASET POLYDATA",
		"POINTS 3 float",
		"POINT_DATA 3",
		"SCALARS pl float 1",
		"SCALARS sl float 1",
	} {
		if !strings.Contains(txt, want) {
			tst.Errorf("output lacks %q\n", want)
			return
		}
	}

	// field order follows commit order
	if strings.Index(txt, "SCALARS pl") > strings.Index(txt, "SCALARS sl") {
		tst.Errorf("fields must be written in commit order\n")
		return
	}

	// a writer without coordinates cannot write
	if err := NewVtkWriter("empty", nil).Write("/tmp/opm-models", "vtk01b"); err == nil {
		tst.Errorf("Write should have failed without coordinates\n")
		return
	}
}
