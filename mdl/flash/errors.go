// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flash

import (
	"github.com/cpmech/gosl/io"

	"github.com/plgbrts/opm-models/mdl/fluid"
)

// ConvergenceFailure signals that the equilibrium solve did not reach the
// requested tolerance within the iteration budget. It carries the last iterate
// and the residual norm so that the outer nonlinear solver can decide to
// shrink its step and retry. The solver never substitutes a guessed answer.
type ConvergenceFailure struct {
	Last     *fluid.State // last iterate (copy; not the caller's state)
	Residual float64      // residual norm at the last iterate
	Nit      int          // number of iterations performed
}

// Error returns the failure message
func (o *ConvergenceFailure) Error() string {
	return io.Sf("flash solve did not converge after %d iterations (residual = %g)", o.Nit, o.Residual)
}
