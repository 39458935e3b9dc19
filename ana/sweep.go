// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/needleflow/inp"
	"github.com/cpmech/needleflow/mdl/rheo"
)

// Sweep holds the pressure drop and wall shear stress for a range of extrusion rates
type Sweep struct {
	Qn   []float64 // flow rates [m³/s]
	Pn   []float64 // pressure drops [Pa]
	TauW []float64 // wall shear stresses [Pa]
	Vmax []float64 // centreline velocities [m/s]
}

// NewSweep computes the solution for each flow rate in Qn
func NewSweep(needle inp.Needle, mdl rheo.Model, Qn []float64) (o *Sweep, err error) {
	o = &Sweep{Qn: Qn}
	o.Pn = make([]float64, len(Qn))
	o.TauW = make([]float64, len(Qn))
	o.Vmax = make([]float64, len(Qn))
	var flow NeedleFlow
	for i, q := range Qn {
		err = flow.Init(needle, mdl, inp.FlowRate(q))
		if err != nil {
			return nil, err
		}
		o.Pn[i] = flow.Pn
		o.TauW[i] = flow.WallShearStress()
		o.Vmax[i] = flow.Vmax()
	}
	return
}

// Table returns a CSV table with flow rates in [µL/s] and stresses in [kPa]
func (o *Sweep) Table() (l string) {
	l = "flow_rate_uL_per_s,pressure_kpa,shear_stress_kpa\n"
	for i, q := range o.Qn {
		l += io.Sf("%g,%g,%g\n", q*1e9, o.Pn[i]/1e3, o.TauW[i]/1e3)
	}
	return
}
