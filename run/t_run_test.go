// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/needleflow/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// alginate returns simulation data decoded from JSON; the reference file is given by path
func alginate(tst *testing.T, refpath string) *inp.Simulation {
	sim, err := inp.DecodeSim([]byte(`{
  "needle" : { "r" : 100e-6, "l" : 20e-3 },
  "fluid"  : { "prms" : [ { "n" : "K", "v" : 86.73 }, { "n" : "n", "v" : 0.365 } ] },
  "drive"  : { "mode" : "flowrate", "qn" : 1e-9 },
  "grid"   : { "npts" : 101 }
}`))
	if err != nil {
		tst.Fatalf("DecodeSim failed: %v\n", err)
	}
	sim.RefPath = refpath
	return sim
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. full pipeline")

	analysis, err := NewMain("../inp/data/needle01.sim", chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed: %v\n", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	res := analysis.Results
	if res.RefErr != nil || res.FitErr != nil {
		tst.Errorf("reference data and fitting should succeed: %v, %v\n", res.RefErr, res.FitErr)
		return
	}
	chk.Int(tst, "npts", len(res.Profile.R), 1000)
	chk.Float64(tst, "Q", 1e-22, res.Summary.Qave, 1e-9)
	chk.Int(tst, "nrows", res.Ref.Nrows, 39)
	chk.Float64(tst, "K", 1e-6*86.73, res.Fit.K, 86.73)
	chk.Float64(tst, "n", 1e-6, res.Fit.FlowIndex(), 0.365)
	if res.Line == nil || res.LineErr != nil {
		tst.Errorf("sampled line should be available: %v\n", res.LineErr)
		return
	}
	chk.Int(tst, "len(line)", len(res.Line.X), 21)
	chk.Float64(tst, "|τxy|(R)", 1e-10, res.Line.TauXY[20], 1344.9)

	// summary file
	sum, fitres, err := ReadSummary(analysis.Sim.DirOut, analysis.Sim.Key)
	if err != nil {
		tst.Errorf("ReadSummary failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pn", 1e-17, sum.Pn, res.Summary.Pn)
	chk.Float64(tst, "Re", 1e-17, sum.Diag.Re, res.Summary.Diag.Re)
	chk.Float64(tst, "K", 1e-17, fitres.K, res.Fit.K)
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. missing reference data does not stop the analytical solution")

	for _, path := range []string{"", "../inp/data/not_there.csv"} {
		res, err := Solve(alginate(tst, path))
		if err != nil {
			tst.Errorf("Solve failed: %v\n", err)
			return
		}
		if !errors.Is(res.RefErr, inp.ErrMissingReferenceData) {
			tst.Errorf("missing reference data expected. err = %v\n", res.RefErr)
		}
		if res.Ref != nil || res.Fit != nil || res.FitErr != nil {
			tst.Errorf("reference data and fitting must be absent\n")
		}
		if res.Line != nil || res.LineErr != nil {
			tst.Errorf("sampled line is not given\n")
		}
		chk.Int(tst, "npts", len(res.Profile.R), 101)
		chk.Float64(tst, "Q", 1e-22, res.Summary.Qave, 1e-9)
	}

	// pressure-driven case without reference file
	analysis, err := NewMain("../inp/data/needle02.sim", false)
	if err != nil {
		tst.Errorf("NewMain failed: %v\n", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Pn", 1e-17, analysis.Results.Summary.Pn, 800e3)
	if !errors.Is(analysis.Results.RefErr, inp.ErrMissingReferenceData) {
		tst.Errorf("missing reference data expected. err = %v\n", analysis.Results.RefErr)
	}

	// missing sampled line
	sim := alginate(tst, "../out/data/ss_data.csv")
	sim.LinePath = "../inp/data/not_there.xy"
	res, err := Solve(sim)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if res.Line != nil || !errors.Is(res.LineErr, inp.ErrMissingReferenceData) {
		tst.Errorf("missing sampled line expected. err = %v\n", res.LineErr)
	}
	if res.RefErr != nil || res.Fit == nil {
		tst.Errorf("reference data and fitting should succeed: %v, %v\n", res.RefErr, res.FitErr)
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. fit divergence does not stop the analytical solution")

	sim := alginate(tst, "../out/data/ss_data.csv")
	sim.Fit.K0, sim.Fit.N0, sim.Fit.MaxIt = 1, 0.1, 1
	res, err := Solve(sim)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if res.RefErr != nil {
		tst.Errorf("reference data should be available: %v\n", res.RefErr)
		return
	}
	if res.Fit != nil || !errors.Is(res.FitErr, inp.ErrFitDivergence) {
		tst.Errorf("fit divergence expected. err = %v\n", res.FitErr)
	}
	chk.Float64(tst, "Q", 1e-22, res.Summary.Qave, 1e-9)
	err = res.Save("/tmp/needleflow", "run03")
	if err != nil {
		tst.Errorf("Save failed: %v\n", err)
	}

	// skip fitting
	sim.Fit.Skip = true
	res, err = Solve(sim)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	if res.Ref == nil || res.Fit != nil || res.FitErr != nil {
		tst.Errorf("reference data must be read and fitting skipped\n")
	}
}

func Test_run04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run04. configuration errors are fatal")

	_, err := NewMain("../inp/data/not_there.sim", false)
	if err == nil {
		tst.Errorf("NewMain should fail with missing .sim file\n")
	}

	sim := alginate(tst, "")
	sim.Fluid.Mdl = nil
	_, err = Solve(sim)
	if !errors.Is(err, inp.ErrInvalidFluidModel) || !inp.Fatal(err) {
		tst.Errorf("invalid fluid model expected. err = %v\n", err)
	}

	sim = alginate(tst, "")
	sim.Grid.Rmin = 0
	_, err = Solve(sim)
	if !errors.Is(err, inp.ErrNumericalSingularity) || !inp.Fatal(err) {
		tst.Errorf("numerical singularity expected. err = %v\n", err)
	}
}

func Test_run05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run05. messages follow the verbose flag")

	saved := io.Verbose
	defer func() { io.Verbose = saved }()

	io.Verbose = true
	analysis, err := NewMain("../inp/data/needle01.sim", false)
	if err != nil {
		tst.Errorf("NewMain failed: %v\n", err)
		return
	}
	if io.Verbose || analysis.ShowMsg {
		tst.Errorf("messages must be off when verbose = false\n")
	}

	_, err = NewMain("../inp/data/needle01.sim", true)
	if err != nil {
		tst.Errorf("NewMain failed: %v\n", err)
		return
	}
	if !io.Verbose {
		tst.Errorf("messages must be on when verbose = true\n")
	}
}
