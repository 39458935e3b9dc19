// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package run implements the pipeline: analytical solution, reference data and curve fitting
package run

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/needleflow/ana"
	"github.com/cpmech/needleflow/fit"
	"github.com/cpmech/needleflow/inp"
	"github.com/cpmech/needleflow/out"
)

// Main holds all data for one run
type Main struct {
	Sim     *inp.Simulation // simulation data
	Results *Results        // results of the last run
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
//  Note: invalid geometry, fluid model, operating condition or grid are returned here
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	o = &Main{ShowMsg: verbose}
	io.Verbose = verbose
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
		if o.Sim.Data.Desc != "" {
			io.Pf("> %s\n", o.Sim.Data.Desc)
		}
	}
	return
}

// Run computes the solution, prints the report, plots figures (if requested) and saves the summary
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// solve
	o.Results, err = Solve(o.Sim)
	if err != nil {
		return
	}
	res := o.Results

	// report
	if o.ShowMsg {
		out.Report(res.Summary, res.Fit, res.RefErr, res.FitErr)
		if res.LineErr != nil {
			io.PfYel("> Sampled line is not available: %v\n", res.LineErr)
		}
	}

	// figures
	if o.Sim.Data.Plot {
		fig := out.NewFigures(o.Sim.Key, res.Profile, res.Ref, res.Fit)
		fig.Line = res.Line
		fig.Draw(o.Sim.DirOut)
		if o.ShowMsg {
			io.Pf("> Figures saved in %s\n", o.Sim.DirOut)
		}
	}

	// summary file
	return res.Save(o.Sim.DirOut, o.Sim.Key)
}

// Solve computes the analytical solution and, if reference data is available, fits the
// power-law model to the reference viscosities. Missing reference data and failures of
// the fitting are recorded in Results; the analytical solution is always computed
func Solve(sim *inp.Simulation) (o *Results, err error) {

	// analytical solution
	o = new(Results)
	o.Flow = new(ana.NeedleFlow)
	err = o.Flow.Init(sim.Needle, sim.Fluid.Mdl, sim.Drive)
	if err != nil {
		return nil, err
	}
	o.Profile, err = ana.NewProfile(o.Flow, sim.Grid)
	if err != nil {
		return nil, err
	}
	o.Summary = ana.NewSummary(o.Flow, o.Profile, sim.Fluid.Rho)

	// sampled line; optional
	if sim.LinePath != "" {
		o.Line, o.LineErr = out.ReadLineXY(sim.LinePath, sim.Fluid.Rho)
	}

	// reference data
	o.Ref, o.RefErr = out.ReadReference(sim.RefPath, sim.Needle.R, sim.Fluid.Rho)
	if o.RefErr != nil || sim.Fit.Skip {
		return
	}

	// curve fitting
	o.Fit, o.FitErr = fit.PowerLaw(o.Ref.ShearRate, o.Ref.Viscosity, sim.Fit)
	return
}

// onexit shows the final message
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
