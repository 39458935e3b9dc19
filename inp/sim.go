// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
//  Note: all quantities are given in SI units; e.g. [m], [Pa], [m³/s], [kg/m³]
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/needleflow/mdl/rheo"
)

// driving modes
const (
	PressureKnown = "pressure" // pressure drop along the needle is known
	FlowRateKnown = "flowrate" // volumetric flow rate is known
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc"`     // description of simulation
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/needleflow
	RefFile  string `json:"reffile"`  // reference data (CSV) file; relative to the .sim file directory
	LineFile string `json:"linefile"` // sampled line (OpenFOAM line.xy) file; relative to the .sim file directory
	Plot     bool   `json:"plot"`     // generate figures
}

// Needle holds the geometry of the cylindrical needle
type Needle struct {
	R float64 `json:"r"` // radius [m]
	L float64 `json:"l"` // length [m]
}

// Fluid holds the fluid (bio-ink) data
type Fluid struct {

	// input
	Model string     `json:"model"` // rheology model; e.g. "pl", "newt"
	Rho   float64    `json:"rho"`   // density [kg/m³]
	Wvp   float64    `json:"wvp"`   // percent weight/volume of solute in water; if > 0, rho is computed from it
	Prms  dbf.Params `json:"prms"`  // model parameters; e.g. K and n

	// derived
	Mdl rheo.Model `json:"-"` // the rheology model
}

// Drive holds the operating condition. Only one of Pn and Qn is known
type Drive struct {
	Mode string   `json:"mode"` // "pressure" or "flowrate"
	Pn   *float64 `json:"pn"`   // pressure drop along the needle [Pa]
	Qn   *float64 `json:"qn"`   // volumetric flow rate [m³/s]
}

// GridData holds data for the radial sampling grid
type GridData struct {
	Npts int     `json:"npts"` // number of radial stations
	Rmin float64 `json:"rmin"` // smallest radius; must be positive [m]
	Tol  float64 `json:"tol"`  // step of central differences; same units as r [m]
}

// FitData holds data for the power-law curve fitting of reference data
type FitData struct {
	Skip  bool    `json:"skip"`  // do not fit reference data
	GdMin float64 `json:"gdmin"` // samples with shear rate ≤ GdMin are excluded [1/s]
	MaxIt int     `json:"maxit"` // max number of iterations
	Ftol  float64 `json:"ftol"`  // relative tolerance on the sum of squared residuals
	Xtol  float64 `json:"xtol"`  // relative tolerance on the parameters
	K0    float64 `json:"k0"`    // initial K; 0 means seed from data
	N0    float64 `json:"n0"`    // initial exponent of η = K・γ̇⁻ⁿ; used only if K0 > 0
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data     `json:"data"`   // stores global simulation data
	Needle Needle   `json:"needle"` // needle geometry
	Fluid  Fluid    `json:"fluid"`  // fluid data
	Drive  Drive    `json:"drive"`  // operating condition
	Grid   GridData `json:"grid"`   // radial grid
	Fit    FitData  `json:"fit"`    // curve fitting

	// derived
	Key      string // simulation key; e.g. needle01.sim => needle01
	DirOut   string // directory to save results
	RefPath  string // full path to the reference data file; empty if none
	LinePath string // full path to the sampled line file; empty if none
}

// SetDefault sets default values
func (o *GridData) SetDefault() {
	o.Npts = 1000
	o.Rmin = 1e-6
	o.Tol = 1e-6
}

// SetDefault sets default values
func (o *FitData) SetDefault() {
	o.GdMin = 1e-8
	o.MaxIt = 200
	o.Ftol = 1e-12
	o.Xtol = 1e-12
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o, err = DecodeSim(b)
	if err != nil {
		return nil, err
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/needleflow/" + o.Key
	}

	// reference data
	o.RefPath = resolve(dir, o.Data.RefFile)
	o.LinePath = resolve(dir, o.Data.LineFile)
	return
}

// resolve joins a file name relative to the .sim file directory
func resolve(dir, fn string) string {
	if fn == "" || filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(dir, fn)
}

// DecodeSim decodes and checks simulation data given as JSON
func DecodeSim(b []byte) (o *Simulation, err error) {

	// set default values
	o = new(Simulation)
	o.Grid.SetDefault()
	o.Fit.SetDefault()
	o.Fluid.Model = "pl"
	o.Fluid.Rho = 1000

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("DecodeSim: cannot unmarshal simulation data:\n%v", err)
	}

	// check and allocate
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess checks input data and allocates the rheology model
func (o *Simulation) PostProcess() (err error) {
	err = o.Needle.Check()
	if err != nil {
		return
	}
	err = o.Fluid.Alloc()
	if err != nil {
		return
	}
	err = o.Drive.Check()
	if err != nil {
		return
	}
	return o.Grid.Check(o.Needle.R)
}

// Check checks geometry
func (o Needle) Check() error {
	if o.R <= 0 {
		return Err(ErrInvalidGeometry, "needle radius must be positive. R = %g is invalid", o.R)
	}
	if o.L <= 0 {
		return Err(ErrInvalidGeometry, "needle length must be positive. L = %g is invalid", o.L)
	}
	return nil
}

// Alloc allocates and initialises the rheology model
func (o *Fluid) Alloc() (err error) {
	if o.Wvp > 0 {
		var water rheo.Water
		water.Init()
		o.Rho = rheo.SolutionDensity(water.Rho, o.Wvp)
	}
	if o.Rho <= 0 {
		return Err(ErrInvalidFluidModel, "density must be positive. rho = %g is invalid", o.Rho)
	}
	o.Mdl, err = rheo.New(o.Model)
	if err != nil {
		return Err(ErrInvalidFluidModel, "%v", err)
	}
	err = o.Mdl.Init(o.Prms)
	if err != nil {
		return Err(ErrInvalidFluidModel, "%v", err)
	}
	return
}

// Check checks that exactly one of Pn and Qn is given and that it matches the mode
func (o Drive) Check() error {
	if o.Pn != nil && o.Qn != nil {
		return Err(ErrInvalidOperatingCondition, "pressure drop and flow rate cannot be both given")
	}
	switch o.Mode {
	case PressureKnown:
		if o.Pn == nil {
			return Err(ErrInvalidOperatingCondition, "mode %q requires the pressure drop \"pn\"", o.Mode)
		}
		if *o.Pn <= 0 {
			return Err(ErrInvalidOperatingCondition, "pressure drop must be positive. Pn = %g is invalid", *o.Pn)
		}
	case FlowRateKnown:
		if o.Qn == nil {
			return Err(ErrInvalidOperatingCondition, "mode %q requires the flow rate \"qn\"", o.Mode)
		}
		if *o.Qn <= 0 {
			return Err(ErrInvalidOperatingCondition, "flow rate must be positive. Qn = %g is invalid", *o.Qn)
		}
	default:
		return Err(ErrInvalidOperatingCondition, "mode %q is incorrect; options are %q and %q", o.Mode, PressureKnown, FlowRateKnown)
	}
	return nil
}

// Known returns the ground-truth value of the operating condition
func (o Drive) Known() float64 {
	if o.Mode == PressureKnown {
		return *o.Pn
	}
	return *o.Qn
}

// Pressure returns an operating condition with known pressure drop
func Pressure(Pn float64) Drive {
	return Drive{Mode: PressureKnown, Pn: &Pn}
}

// FlowRate returns an operating condition with known flow rate
func FlowRate(Qn float64) Drive {
	return Drive{Mode: FlowRateKnown, Qn: &Qn}
}

// Check checks the radial grid
//  Note: the smallest radius must not be smaller than the differentiation step;
//        otherwise the central difference stencil crosses the axis r = 0
func (o GridData) Check(R float64) error {
	if o.Npts < 2 {
		return Err(ErrNumericalSingularity, "number of radial stations must be at least 2. npts = %d is invalid", o.Npts)
	}
	if o.Tol <= 0 {
		return Err(ErrNumericalSingularity, "differentiation step must be positive. tol = %g is invalid", o.Tol)
	}
	if o.Rmin <= 0 {
		return Err(ErrNumericalSingularity, "smallest radius must be positive. rmin = %g is invalid", o.Rmin)
	}
	if o.Rmin >= R {
		return Err(ErrNumericalSingularity, "smallest radius must be smaller than the needle radius. rmin = %g ≥ R = %g", o.Rmin, R)
	}
	if o.Rmin < o.Tol {
		return Err(ErrNumericalSingularity, "smallest radius must not be smaller than the differentiation step. rmin = %g < tol = %g", o.Rmin, o.Tol)
	}
	return nil
}
