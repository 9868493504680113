// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// phase indices
const (
	Liq = iota // liquid phase
	Gas        // gas phase
	Nph        // number of phases
)

// State holds the thermodynamic state of a compositional two-phase mixture at
// one degree of freedom: phase pressures, saturations, compositions, densities
// and enthalpies, plus one temperature shared by both phases. Viscosities are
// stored here but computed by the caller after equilibrium has been reached.
//
// The container performs no validation; consistency (e.g. mole fractions
// summing to one in each phase) is an invariant that the flash solver upholds
// on convergence.
type State struct {
	Temp float64        // 1 temperature [K]
	P    [Nph]float64   // 2 phase pressures [Pa]
	S    [Nph]float64   // 3 phase saturations [-]
	X    [Nph][]float64 // 4 mole fractions per phase and component [-]
	RhoM [Nph]float64   // 5 molar densities [mol/m³]
	Rho  [Nph]float64   // 6 intrinsic mass densities [kg/m³]
	Mu   [Nph]float64   // 7 viscosities [Pa·s]
	H    [Nph]float64   // 8 specific enthalpies [J/kg]
}

// NewState allocates a new state for ncp components
func NewState(ncp int) *State {
	var o State
	for i := 0; i < Nph; i++ {
		o.X[i] = make([]float64, ncp)
	}
	return &o
}

// Set sets this State with another State (full value copy, no aliasing)
func (o *State) Set(s *State) {
	o.Temp = s.Temp // 1
	for i := 0; i < Nph; i++ {
		o.P[i] = s.P[i] // 2
		o.S[i] = s.S[i] // 3
		if len(o.X[i]) != len(s.X[i]) {
			o.X[i] = make([]float64, len(s.X[i]))
		}
		copy(o.X[i], s.X[i])  // 4
		o.RhoM[i] = s.RhoM[i] // 5
		o.Rho[i] = s.Rho[i]   // 6
		o.Mu[i] = s.Mu[i]     // 7
		o.H[i] = s.H[i]       // 8
	}
}

// GetCopy returns a copy of this State
func (o *State) GetCopy() *State {
	s := NewState(len(o.X[Liq]))
	s.Set(o)
	return s
}

// SetTemperature overrides the temperature without touching the remaining
// fields; used after seeding the state from a hint
func (o *State) SetTemperature(T float64) {
	o.Temp = T
}
