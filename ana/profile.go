// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/needleflow/inp"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// Grid returns the radial stations r ∈ [rmin, R]
//  Note: r = 0 is never included; see inp.GridData.Check
func Grid(R float64, g inp.GridData) (r []float64, err error) {
	err = g.Check(R)
	if err != nil {
		return
	}
	r = utl.LinSpace(g.Rmin, R, g.Npts)
	r[g.Npts-1] = R // wall station must be exact for the no-slip condition
	return
}

// Profile holds the flow quantities along the radius
type Profile struct {
	R    []float64 // radial stations [m]
	Vz   []float64 // axial velocity [m/s]
	Dvdr []float64 // dVz/dr computed with central differences; negative [1/s]
	Gd   []float64 // shear rate γ̇ = -dVz/dr [1/s]
	Tau  []float64 // shear stress magnitude [Pa]
	Eta  []float64 // apparent viscosity [Pa・s]
}

// NewProfile computes velocity, shear rate, shear stress and apparent viscosity along the radius
//  Input:
//   flow -- initialised analytical solution
//   g    -- radial grid data; g.Tol is the step of the central differences
//  Note: where the difference quotient vanishes due to round-off (very close to the axis),
//        the closed-form shear rate is used instead
func NewProfile(flow *NeedleFlow, g inp.GridData) (o *Profile, err error) {

	// stations
	o = new(Profile)
	o.R, err = Grid(flow.R, g)
	if err != nil {
		return nil, err
	}
	npts := len(o.R)
	o.Vz = make([]float64, npts)
	o.Dvdr = make([]float64, npts)
	o.Gd = make([]float64, npts)
	o.Tau = make([]float64, npts)
	o.Eta = make([]float64, npts)

	// velocity and its derivative
	settings := &fd.Settings{Formula: fd.Central, Step: g.Tol}
	vz := func(r float64) float64 { return flow.Vz(r) }
	for i, r := range o.R {
		o.Vz[i] = flow.Vz(r)
		o.Dvdr[i] = fd.Derivative(vz, r, settings)
		if !(o.Dvdr[i] < 0) {
			o.Dvdr[i] = -flow.ShearRate(r)
		}
		o.Gd[i] = -o.Dvdr[i]
	}

	// stress and viscosity
	for i, dvdr := range o.Dvdr {
		o.Tau[i] = flow.Mdl.Tau(dvdr)
		o.Eta[i] = o.Tau[i] / math.Abs(dvdr)
	}
	return
}

// Summary holds scalar results
type Summary struct {
	Pn      float64     // pressure drop [Pa]
	Qave    float64     // average volumetric flow rate [m³/s]
	Qmass   float64     // mass flow rate [kg/s]
	TauWall float64     // wall shear stress (closed form) [Pa]
	Vmax    float64     // centreline velocity [m/s]
	Vavg    float64     // average velocity [m/s]
	GdMin   float64     // min shear rate along the profile [1/s]
	GdMax   float64     // max shear rate along the profile [1/s]
	EtaMin  float64     // min apparent viscosity along the profile [Pa・s]
	EtaMax  float64     // max apparent viscosity along the profile [Pa・s]
	Diag    Diagnostics // engineering diagnostics
}

// NewSummary collects scalar results for a fluid with density rho [kg/m³]
func NewSummary(flow *NeedleFlow, prof *Profile, rho float64) (o *Summary) {
	o = new(Summary)
	o.Pn = flow.Pn
	o.Qave = flow.Qave()
	o.Qmass = flow.MassFlowRate(rho)
	o.TauWall = flow.WallShearStress()
	o.Vmax = flow.Vmax()
	o.Vavg = flow.Vavg()
	o.GdMin, o.GdMax = floats.Min(prof.Gd), floats.Max(prof.Gd)
	o.EtaMin, o.EtaMax = floats.Min(prof.Eta), floats.Max(prof.Eta)
	o.Diag = flow.Diagnostics(rho)
	return
}
