// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	Rgas           = 8.3144621 // universal gas constant [J/(mol·K)]
	WaterMolarMass = 18e-3     // molar mass of water [kg/mol]
)

// System implements a compositional two-phase (liquid-gas) fluid system.
// Component 0 is the solvent (water); the remaining components are gaseous
// species dissolved in the liquid via Henry's law. The gas phase behaves as an
// ideal mixture; the liquid molar density is dominated by the solvent and
// follows the density Model of the liquid.
type System struct {

	// components
	Names []string  // component names; Names[0] is the solvent
	Mw    []float64 // molar masses [kg/mol]

	// phase density models
	Liq *Model // liquid density model
	Gas *Model // gas density model (column calculations only; the phase itself is ideal)

	// equilibrium correlations
	Psat  float64   // solvent saturation pressure at reference temperature [Pa]
	Henry []float64 // Henry coefficients per component [Pa]; entry 0 is unused

	// viscosities
	MuL float64 // liquid viscosity [Pa·s]
	MuG float64 // gas viscosity [Pa·s]

	// energy
	CpL  float64 // liquid specific heat capacity [J/(kg·K)]
	CpG  float64 // gas specific heat capacity [J/(kg·K)]
	Tref float64 // reference temperature for enthalpy [K]
}

// Init initialises the system for the given components and density models
func (o *System) Init(names []string, mw []float64, prms utl.Params, liq, gas *Model) (err error) {

	// components
	if len(names) < 2 || len(names) != len(mw) {
		return chk.Err("fluid system needs at least two components with molar masses; %d names and %d molar masses given", len(names), len(mw))
	}
	o.Names = names
	o.Mw = mw

	// defaults (water/dry-air at 25°C)
	o.Psat = 3.169e3
	o.MuL = 8.9e-4
	o.MuG = 1.84e-5
	o.CpL = 4181.0
	o.CpG = 1005.0
	o.Tref = 298.15
	o.Henry = make([]float64, len(names))
	for i := 1; i < len(names); i++ {
		o.Henry[i] = 1e9
	}

	// read optional parameters
	for _, p := range prms {
		switch p.N {
		case "psat":
			o.Psat = p.V
		case "henry":
			for i := 1; i < len(o.Henry); i++ {
				o.Henry[i] = p.V
			}
		case "muL":
			o.MuL = p.V
		case "muG":
			o.MuG = p.V
		case "cpL":
			o.CpL = p.V
		case "cpG":
			o.CpG = p.V
		case "tref":
			o.Tref = p.V
		}
	}

	// density models
	if liq == nil || gas == nil {
		return chk.Err("liquid and gas density models must be both non-nil")
	}
	o.Liq = liq
	o.Gas = gas
	return
}

// Nc returns the number of components
func (o *System) Nc() int {
	return len(o.Names)
}

// MolarDensity computes the molar density of a phase [mol/m³]. Results are
// memoised in the parameter cache for the current pressures and temperature.
func (o *System) MolarDensity(cch *ParameterCache, s *State, phase int) float64 {
	if cch != nil {
		if v, ok := cch.molarDensity(s, phase); ok {
			return v
		}
	}
	var rhoM float64
	switch phase {
	case Liq:
		rhoM = o.Liq.Density(s.P[Liq]) / o.Mw[0]
	case Gas:
		rhoM = s.P[Gas] / (Rgas * s.Temp)
	}
	if cch != nil {
		cch.setMolarDensity(s, phase, rhoM)
	}
	return rhoM
}

// Viscosity computes the viscosity of a phase [Pa·s] at the current state
func (o *System) Viscosity(cch *ParameterCache, s *State, phase int) float64 {
	if phase == Liq {
		return o.MuL
	}
	return o.MuG
}

// FugacityCoefficient computes the fugacity coefficient of a component in a
// phase: unity in the ideal gas phase; Raoult's law for the solvent and
// Henry's law for the gaseous components in the liquid phase
func (o *System) FugacityCoefficient(s *State, phase, comp int) float64 {
	if phase == Gas {
		return 1.0
	}
	if comp == 0 {
		return o.Psat / s.P[Liq]
	}
	return o.Henry[comp] / s.P[Liq]
}

// Enthalpy computes the specific enthalpy of a phase [J/kg]
func (o *System) Enthalpy(s *State, phase int) float64 {
	if phase == Liq {
		return o.CpL * (s.Temp - o.Tref)
	}
	return o.CpG * (s.Temp - o.Tref)
}

// MeanMolarMass computes the mean molar mass of a phase [kg/mol]
func (o *System) MeanMolarMass(s *State, phase int) (mm float64) {
	for i, x := range s.X[phase] {
		mm += x * o.Mw[i]
	}
	return
}

// MassFrac computes the mass fraction of a component in a phase from the mole
// fractions and molar masses
func (o *System) MassFrac(s *State, phase, comp int) float64 {
	mm := o.MeanMolarMass(s, phase)
	if mm == 0 {
		return 0
	}
	return s.X[phase][comp] * o.Mw[comp] / mm
}

// NewWaterGas returns a two-component water/gas system with dry-air-like
// properties for the gaseous component
func NewWaterGas(prms utl.Params) (sys *System, err error) {
	liq := new(Model)
	liq.Init(liq.GetPrms(true), 0, 9.81)
	gas := new(Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), 0, 9.81)
	sys = new(System)
	err = sys.Init([]string{"water", "gas"}, []float64{WaterMolarMass, 28.97e-3}, prms, liq, gas)
	return
}
