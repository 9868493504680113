// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of named fields for visualisation
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// VtkWriter collects named scalar fields defined at the degrees of freedom
// and writes them as a legacy-format VTK file. Fields are committed in the
// order they are added and must all have one value per dof.
type VtkWriter struct {

	// input
	Title string      // dataset title
	X     [][]float64 // dof coordinates [ndof][ndim≤3]

	// committed buffers
	names  []string
	fields map[string][]float64
}

// NewVtkWriter returns a writer for dofs at coordinates X
func NewVtkWriter(title string, X [][]float64) *VtkWriter {
	return &VtkWriter{Title: title, X: X, fields: make(map[string][]float64)}
}

// Scalar commits one named scalar field
func (o *VtkWriter) Scalar(name string, vals []float64) (err error) {
	if len(vals) != len(o.X) {
		return chk.Err("vtk: field %q has %d values but there are %d dofs", name, len(vals), len(o.X))
	}
	if _, dup := o.fields[name]; dup {
		return chk.Err("vtk: field %q was committed twice", name)
	}
	o.names = append(o.names, name)
	o.fields[name] = vals
	return
}

// Write writes the collected fields to dirout/fnkey.vtk
func (o *VtkWriter) Write(dirout, fnkey string) (err error) {
	ndof := len(o.X)
	if ndof == 0 {
		return chk.Err("vtk: no dof coordinates were given")
	}

	// header and points
	var buf bytes.Buffer
	io.Ff(&buf, "# vtk DataFile Version 3.0\n")
	io.Ff(&buf, "%s\n", o.Title)
	io.Ff(&buf, "ASCII\nDATASET POLYDATA\n")
	io.Ff(&buf, "POINTS %d float\n", ndof)
	for _, x := range o.X {
		var c [3]float64
		copy(c[:], x)
		io.Ff(&buf, "%g %g %g\n", c[0], c[1], c[2])
	}

	// fields
	io.Ff(&buf, "POINT_DATA %d\n", ndof)
	for _, name := range o.names {
		io.Ff(&buf, "SCALARS %s float 1\nLOOKUP_TABLE default\n", name)
		for _, v := range o.fields[name] {
			io.Ff(&buf, "%g\n", v)
		}
	}

	// save file
	io.WriteFileD(dirout, fnkey+".vtk", &buf)
	return
}
