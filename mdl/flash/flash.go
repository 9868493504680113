// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flash implements the equilibrium (flash) solve for compositional
// two-phase mixtures in porous media: given the total molar densities of all
// components in a control volume, it computes phase pressures, saturations and
// compositions satisfying component mass balance, equal fugacities across
// coexisting phases and the capillary-pressure closure.
package flash

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/plgbrts/opm-models/mdl/fluid"
	"github.com/plgbrts/opm-models/mdl/retention"
)

// Solver solves the nonlinear complementarity (NCP) formulation of the phase
// equilibrium problem with a damped Newton scheme. The unknowns are the
// liquid pressure, the liquid saturation and the mole fractions of all
// components in both phases; gas pressure and saturation are eliminated
// through the capillary closure pg = pl + pc(sl) and sg = 1 - sl. Phase
// presence is handled by the complementarity conditions
//
//	min(S_α, 1 - Σ_c x_αc) = 0
//
// so that an absent phase has zero saturation while its composition remains
// pinned by the equilibrium conditions. The conditions enter the residual
// through the Fischer-Burmeister function
//
//	φ(a,b) = a + b - √(a² + b²)
//
// which has the same roots as min(a,b) but remains differentiable on the
// single-phase boundary, where one argument vanishes while the other does
// not; Newton then keeps full-length steps in the single-phase regime
// instead of stalling against the saturation bound.
//
// The solver carries configuration only; all scratch memory is allocated per
// call, so one Solver may be shared by concurrent per-dof updates.
type Solver struct {

	// configuration
	Sys    *fluid.System // fluid system
	NmaxIt int           // max number of Newton iterations
	NmaxLs int           // max number of line-search halvings
	ShowR  bool          // show residual values during iterations
}

// NewSolver returns a flash solver with default settings
func NewSolver(sys *fluid.System) *Solver {
	return &Solver{Sys: sys, NmaxIt: 100, NmaxLs: 8}
}

// GuessInitial synthesises a deterministic initial guess from the total molar
// densities alone: atmospheric pressure, equal phase saturations and both
// phase compositions proportional to cTot
func (o *Solver) GuessInitial(sta *fluid.State, cch *fluid.ParameterCache, cTot []float64) {
	sum := 0.0
	for _, c := range cTot {
		sum += c
	}
	for α := 0; α < fluid.Nph; α++ {
		sta.P[α] = 1e5
		sta.S[α] = 1.0 / float64(fluid.Nph)
		for c := 0; c < len(cTot); c++ {
			if sum > 0 {
				sta.X[α][c] = cTot[c] / sum
			} else {
				sta.X[α][c] = 1.0 / float64(len(cTot))
			}
		}
	}
	if cch != nil {
		cch.Invalidate()
	}
	for α := 0; α < fluid.Nph; α++ {
		sta.RhoM[α] = o.Sys.MolarDensity(cch, sta, α)
		sta.Rho[α] = sta.RhoM[α] * o.Sys.MeanMolarMass(sta, α)
	}
}

// Solve updates sta in place with the equilibrium state for the given total
// molar densities cTot, using the current content of sta as initial guess.
// Residuals are driven below tol. Viscosities are NOT set here; the caller
// evaluates them from the converged state.
//
//	Output:
//	 nit -- number of Newton iterations performed (0 if already converged)
//	Errors:
//	 invalid cTot entries (negative) yield a plain error; an all-zero cTot or
//	 a solve exceeding the iteration budget yields a *ConvergenceFailure
func (o *Solver) Solve(sta *fluid.State, cch *fluid.ParameterCache, lrm retention.Model, cTot []float64, tol float64) (nit int, err error) {

	// check input
	nc := o.Sys.Nc()
	if len(cTot) != nc {
		return 0, chk.Err("flash: cTot has %d entries but the fluid system has %d components", len(cTot), nc)
	}
	if tol <= 0 {
		return 0, chk.Err("flash: tolerance must be positive. tol = %g is invalid", tol)
	}
	cref := 0.0
	for c, v := range cTot {
		if v < 0 {
			return 0, chk.Err("flash: cTot[%d] = %g is negative; total molar densities must be non-negative", c, v)
		}
		cref = utl.Max(cref, v)
	}
	if cref == 0 {
		return 0, &ConvergenceFailure{Last: sta.GetCopy(), Residual: math.Inf(1), Nit: 0}
	}

	// scratch
	n := 2 + 2*nc
	z := make([]float64, n)
	ztrial := make([]float64, n)
	F := make([]float64, n)
	Ftrial := make([]float64, n)
	Fpert := make([]float64, n)
	trial := sta.GetCopy()
	J := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	δ := mat.NewVecDense(n, nil)

	// initial iterate from the caller's guess
	z[0] = sta.P[fluid.Liq]
	z[1] = sta.S[fluid.Liq]
	for c := 0; c < nc; c++ {
		z[2+c] = sta.X[fluid.Liq][c]
		z[2+nc+c] = sta.X[fluid.Gas][c]
	}
	o.clamp(z, nc)

	// message
	if o.ShowR {
		io.Pfyel("%6s%14s%14s%18s\n", "it", "pl", "sl", "norm(r)")
	}

	// Newton iterations
	res := o.residual(F, z, trial, cch, lrm, cTot, cref)
	var it int
	for it = 0; it < o.NmaxIt; it++ {

		// message
		if o.ShowR {
			io.Pfyel("%6d%14.6g%14.8f%18.10e\n", it, z[0], z[1], res)
		}

		// convergence check
		if res < tol {
			break
		}
		if math.IsNaN(res) {
			return it, &ConvergenceFailure{Last: o.saveIterate(trial, z, cch, lrm, nc), Residual: res, Nit: it}
		}

		// numerical Jacobian (forward differences)
		for j := 0; j < n; j++ {
			h := 1.49e-8 * (1.0 + math.Abs(z[j]))
			zj := z[j]
			z[j] = zj + h
			o.residual(Fpert, z, trial, cch, lrm, cTot, cref)
			z[j] = zj
			for i := 0; i < n; i++ {
				J.Set(i, j, (Fpert[i]-F[i])/h)
			}
		}

		// solve J・δ = F
		for i := 0; i < n; i++ {
			rhs.SetVec(i, F[i])
		}
		var lu mat.LU
		lu.Factorize(J)
		if e := lu.SolveVecTo(δ, false, rhs); e != nil {
			return it, &ConvergenceFailure{Last: o.saveIterate(trial, z, cch, lrm, nc), Residual: res, Nit: it}
		}

		// damped update with line search
		λ := 1.0
		for ls := 0; ; ls++ {
			for i := 0; i < n; i++ {
				ztrial[i] = z[i] - λ*δ.AtVec(i)
			}
			o.clamp(ztrial, nc)
			resTrial := o.residual(Ftrial, ztrial, trial, cch, lrm, cTot, cref)
			if resTrial < res || ls >= o.NmaxLs {
				copy(z, ztrial)
				copy(F, Ftrial)
				res = resTrial
				break
			}
			λ /= 2.0
		}
	}

	// check convergence
	if res >= tol {
		return it, &ConvergenceFailure{Last: o.saveIterate(trial, z, cch, lrm, nc), Residual: res, Nit: it}
	}

	// commit converged state
	o.loadState(sta, z, cch, lrm, nc)
	for α := 0; α < fluid.Nph; α++ {
		sta.RhoM[α] = o.Sys.MolarDensity(cch, sta, α)
		sta.Rho[α] = sta.RhoM[α] * o.Sys.MeanMolarMass(sta, α)
	}
	return it, nil
}

// residual evaluates the NCP residual vector at iterate z, using trial as
// scratch state, and returns the max-norm. Residual groups are scaled to be
// comparable: molar balances by the largest total molar density, fugacity
// conditions by the liquid pressure
func (o *Solver) residual(F, z []float64, trial *fluid.State, cch *fluid.ParameterCache, lrm retention.Model, cTot []float64, cref float64) (norm float64) {
	nc := len(cTot)
	o.loadState(trial, z, cch, lrm, nc)
	rhoL := o.Sys.MolarDensity(cch, trial, fluid.Liq)
	rhoG := o.Sys.MolarDensity(cch, trial, fluid.Gas)
	sl, sg := trial.S[fluid.Liq], trial.S[fluid.Gas]
	pl, pg := trial.P[fluid.Liq], trial.P[fluid.Gas]

	// component molar balances
	for c := 0; c < nc; c++ {
		F[c] = (sl*rhoL*trial.X[fluid.Liq][c] + sg*rhoG*trial.X[fluid.Gas][c] - cTot[c]) / cref
	}

	// equal fugacities
	for c := 0; c < nc; c++ {
		fl := trial.X[fluid.Liq][c] * o.Sys.FugacityCoefficient(trial, fluid.Liq, c) * pl
		fg := trial.X[fluid.Gas][c] * o.Sys.FugacityCoefficient(trial, fluid.Gas, c) * pg
		F[nc+c] = (fl - fg) / pl
	}

	// complementarity conditions (Fischer-Burmeister)
	sumL, sumG := 0.0, 0.0
	for c := 0; c < nc; c++ {
		sumL += trial.X[fluid.Liq][c]
		sumG += trial.X[fluid.Gas][c]
	}
	F[2*nc] = fb(sl, 1.0-sumL)
	F[2*nc+1] = fb(sg, 1.0-sumG)

	// norm
	for _, f := range F {
		if math.IsNaN(f) {
			return math.NaN()
		}
		norm = utl.Max(norm, math.Abs(f))
	}
	return
}

// loadState writes the iterate z into the state, applying the saturation and
// capillary closures
func (o *Solver) loadState(s *fluid.State, z []float64, cch *fluid.ParameterCache, lrm retention.Model, nc int) {
	s.P[fluid.Liq] = z[0]
	s.S[fluid.Liq] = z[1]
	s.S[fluid.Gas] = 1.0 - z[1]
	s.P[fluid.Gas] = z[0] + lrm.Pc(z[1])
	for c := 0; c < nc; c++ {
		s.X[fluid.Liq][c] = z[2+c]
		s.X[fluid.Gas][c] = z[2+nc+c]
	}
	if cch != nil {
		cch.Invalidate()
	}
}

// saveIterate returns a copy of the last iterate for failure reporting
func (o *Solver) saveIterate(trial *fluid.State, z []float64, cch *fluid.ParameterCache, lrm retention.Model, nc int) *fluid.State {
	o.loadState(trial, z, cch, lrm, nc)
	return trial.GetCopy()
}

// fb evaluates the Fischer-Burmeister function φ(a,b) = a + b - √(a²+b²);
// its roots are exactly {a ≥ 0, b ≥ 0, a·b = 0}
func fb(a, b float64) float64 {
	return a + b - math.Sqrt(a*a+b*b)
}

// clamp keeps the iterate within physically meaningful bounds
func (o *Solver) clamp(z []float64, nc int) {
	if z[0] < 100.0 {
		z[0] = 100.0
	}
	if z[1] < 0 {
		z[1] = 0
	}
	if z[1] > 1 {
		z[1] = 1
	}
	for j := 2; j < 2+2*nc; j++ {
		if z[j] < 0 {
			z[j] = 0
		}
		if z[j] > 1.5 {
			z[j] = 1.5
		}
	}
}
