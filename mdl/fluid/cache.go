// Copyright 2016 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

// ParameterCache memoises expensive per-phase property evaluations within one
// volume-variables update. It is owned by a single update call and must not be
// shared between degrees of freedom.
type ParameterCache struct {
	valid [Nph]bool
	p     [Nph]float64 // pressure at which the entry was computed
	temp  [Nph]float64 // temperature at which the entry was computed
	rhoM  [Nph]float64 // cached molar density
}

// Invalidate clears all cached entries; must be called whenever pressures or
// temperature change
func (o *ParameterCache) Invalidate() {
	for i := 0; i < Nph; i++ {
		o.valid[i] = false
	}
}

func (o *ParameterCache) molarDensity(s *State, phase int) (float64, bool) {
	if o.valid[phase] && o.p[phase] == s.P[phase] && o.temp[phase] == s.Temp {
		return o.rhoM[phase], true
	}
	return 0, false
}

func (o *ParameterCache) setMolarDensity(s *State, phase int, rhoM float64) {
	o.valid[phase] = true
	o.p[phase] = s.P[phase]
	o.temp[phase] = s.Temp
	o.rhoM[phase] = rhoM
}
