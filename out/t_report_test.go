// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/needleflow/ana"
	"github.com/cpmech/needleflow/fit"
	"github.com/cpmech/needleflow/inp"
	"github.com/cpmech/needleflow/mdl/rheo"
)

// solution computes the analytical profile of the alginate bio-ink
func solution(tst *testing.T, npts int) (prof *ana.Profile, sum *ana.Summary) {
	mdl := new(rheo.PowerLaw)
	err := mdl.Init(dbf.Params{&dbf.P{N: "K", V: 86.73}, &dbf.P{N: "n", V: 0.365}})
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	var flow ana.NeedleFlow
	err = flow.Init(inp.Needle{R: 100e-6, L: 20e-3}, mdl, inp.FlowRate(1e-9))
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	prof, err = ana.NewProfile(&flow, inp.GridData{Npts: npts, Rmin: 1e-6, Tol: 1e-6})
	if err != nil {
		tst.Fatalf("NewProfile failed: %v\n", err)
	}
	return prof, ana.NewSummary(&flow, prof, 1000)
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. tables")

	_, sum := solution(tst, 101)
	l := SummaryTable(sum)
	io.Pf("%s", l)
	for _, s := range []string{
		"volumetric flow rate    = 0.00100 [mL/s]",
		"mass flow rate          = 1.00000 [mg/s]",
		"pressure drop           = 537.98 [kPa]",
		"centreline velocity     = 48.85 [mm/s]",
		"average velocity        = 31.83 [mm/s]",
		"wall shear stress       = 1.3449 [kPa]",
	} {
		if !strings.Contains(l, s) {
			tst.Errorf("summary table should contain %q\n", s)
		}
	}

	res := &fit.Result{K: 86.73, N: 0.635, Cov: [][]float64{{4, 0}, {0, 1e-6}}, Nused: 10, Iter: 3}
	l = FitTable(res)
	io.Pf("%s", l)
	if !strings.Contains(l, "86.73 ± 2") || !strings.Contains(l, "n = 0.365") {
		tst.Errorf("fit table is incorrect:\n%s\n", l)
	}

	// printing only
	Report(sum, res, nil, nil)
	Report(sum, nil, inp.Err(inp.ErrMissingReferenceData, "file not found"), nil)
	Report(sum, nil, nil, inp.Err(inp.ErrFitDivergence, "did not converge"))
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. mirrored profile and fitted curve")

	X, Y := Mirror([]float64{0, 1, 2}, []float64{3, 2, 0}, 10)
	chk.Array(tst, "X", 1e-17, X, []float64{-2, -1, 0, 1, 2})
	chk.Array(tst, "Y", 1e-17, Y, []float64{0, 20, 30, 20, 0})
	X, Y = Mirror(nil, nil, 1)
	if X != nil || Y != nil {
		tst.Errorf("mirror of empty slices must be nil\n")
	}

	res := &fit.Result{K: 2, N: 0.5}
	x, y := FitCurve(res, []float64{0, 1, 100, -3}, 3)
	chk.Array(tst, "x", 1e-13, x, []float64{1, 10, 100})
	chk.Array(tst, "y", 1e-13, y, []float64{2, 2 / 3.1622776601683795, 0.2})

	chk.String(tst, GetTexLabel("eta", "[Pa]"), "$\\eta\\;\\mathrm{[Pa]}$")
	chk.String(tst, GetTexLabel("Q", ""), "$Q$")

	prof, _ := solution(tst, 51)
	ref, err := ReadReference("data/ss_data.csv", 100e-6, 1000)
	if err != nil {
		tst.Errorf("ReadReference failed: %v\n", err)
		return
	}
	fig := NewFigures("needle", prof, ref, &fit.Result{K: 86.73, N: 0.635})
	chk.Int(tst, "len(Rsym)", len(fig.Rsym), 101)
	chk.Float64(tst, "Rsym[0]", 1e-12, fig.Rsym[0], -100)
	chk.Float64(tst, "Vsym[50]", 1e-15, fig.Vsym[50], prof.Vz[0]*1e3)

	fig.Line, err = ReadLineXY("data/line.xy", 1000)
	if err != nil {
		tst.Errorf("ReadLineXY failed: %v\n", err)
		return
	}

	if chk.Verbose {
		fig.Draw("/tmp/needleflow")
	}
}

func Test_plot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot02. shear stress over the cross section")

	X, Y, Z := ContourData([]float64{0, 1, 2}, []float64{0, 1, 2}, 10)
	chk.Int(tst, "len(Z)", len(Z), 5)
	chk.Array(tst, "X[1]", 1e-17, X[1], []float64{-2, -1, 0, 1, 2})
	chk.Array(tst, "Y[:,3]", 1e-17, []float64{Y[0][3], Y[1][3], Y[2][3], Y[3][3], Y[4][3]}, []float64{-2, -1, 0, 1, 2})
	chk.Float64(tst, "Z(-R,-R)", 1e-15, Z[0][0], 2*math.Sqrt2)
	chk.Float64(tst, "Z(0,0)", 1e-17, Z[2][2], 0)
	chk.Float64(tst, "Z(-R,0)", 1e-17, Z[2][0], 2)
	chk.Float64(tst, "Z(1,-1)", 1e-15, Z[1][3], math.Sqrt2)

	// subsampling keeps the wall
	x := utl.LinSpace(0, 10, 11)
	X, _, Z = ContourData(x, x, 5)
	chk.Int(tst, "len(Z)", len(Z), 9)
	chk.Array(tst, "X[0]", 1e-15, X[0], []float64{-10, -9, -6, -3, 0, 3, 6, 9, 10})
	chk.Float64(tst, "Z(R,R)", 1e-13, Z[8][8], 10*math.Sqrt2)

	X, _, Z = ContourData(x, x, 11)
	chk.Int(tst, "len(Z)", len(Z), 21)
	X, Y, Z = ContourData(nil, nil, 11)
	if X != nil || Y != nil || Z != nil {
		tst.Errorf("contour of empty slices must be nil\n")
	}

	// alginate bio-ink
	prof, _ := solution(tst, 1000)
	_, _, Z = ContourData(prof.R, prof.Tau, 101)
	chk.Int(tst, "len(Z)", len(Z), 2*100+1)
	m := len(Z) / 2
	chk.Float64(tst, "Z(r,0)", 1e-10, Z[m][0], math.Hypot(prof.Tau[999], prof.Tau[0]))
}
