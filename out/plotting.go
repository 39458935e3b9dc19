// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/needleflow/ana"
	"github.com/cpmech/needleflow/fit"
	"gonum.org/v1/gonum/floats"
)

// Figures holds the data of all figures; lengths in [µm], velocities in [mm/s]
type Figures struct {
	Key string // filename key; e.g. needle01
	Sty Styles // styles

	// analytical solution
	Rsym []float64 // radial coordinates from -R to R [µm]
	Vsym []float64 // velocity from -R to R [mm/s]
	Rad  []float64 // radial coordinates [µm]
	Prof *ana.Profile

	// reference, fitting and sampled line; may be nil
	Ref  *Reference
	Fit  *fit.Result
	Line *LineXY
}

// NewFigures collects data for plotting
func NewFigures(key string, prof *ana.Profile, ref *Reference, res *fit.Result) (o *Figures) {
	o = &Figures{Key: key, Sty: GetDefaultStyles(), Prof: prof, Ref: ref, Fit: res}
	npts := len(prof.R)
	o.Rad = make([]float64, npts)
	for i, r := range prof.R {
		o.Rad[i] = r * 1e6
	}
	o.Rsym, o.Vsym = Mirror(o.Rad, prof.Vz, 1e3)
	return
}

// Mirror returns the symmetric profile about the axis
//  Input:
//   x -- positive coordinates in increasing order
//   y -- values
//   s -- scale factor applied to y
//  Output:
//   X = {-x[n-1] ... -x[0], x[1] ... x[n-1]}
//   Y = {s・y[n-1] ... s・y[0], s・y[1] ... s・y[n-1]}
func Mirror(x, y []float64, s float64) (X, Y []float64) {
	n := len(x)
	if n == 0 {
		return
	}
	X = make([]float64, 2*n-1)
	Y = make([]float64, 2*n-1)
	for i := 0; i < n; i++ {
		X[n-1-i], Y[n-1-i] = -x[i], s*y[i]
		X[n-1+i], Y[n-1+i] = x[i], s*y[i]
	}
	return
}

// ContourData returns the shear stress magnitude over a full cut of the needle
//  Input:
//   x    -- positive coordinates in increasing order
//   tau  -- shear stress at x
//   nmax -- max number of stations taken from x; the last one is always taken
//  Output:
//   X, Y -- meshgrid of the mirrored coordinates; X[i][j] = xs[j] and Y[i][j] = xs[i]
//   Z    -- Z[i][j] = sqrt(ts[j]² + ts[i]²) where ts is the mirrored tau
func ContourData(x, tau []float64, nmax int) (X, Y, Z [][]float64) {
	n := len(x)
	if n == 0 || nmax < 1 {
		return
	}
	step := (n + nmax - 1) / nmax
	var xsub, tsub []float64
	for i := 0; i < n; i += step {
		xsub, tsub = append(xsub, x[i]), append(tsub, tau[i])
	}
	if (n-1)%step != 0 {
		xsub, tsub = append(xsub, x[n-1]), append(tsub, tau[n-1])
	}
	xs, ts := Mirror(xsub, tsub, 1)
	m := len(xs)
	X, Y, Z = make([][]float64, m), make([][]float64, m), make([][]float64, m)
	for i := 0; i < m; i++ {
		X[i], Y[i], Z[i] = make([]float64, m), make([]float64, m), make([]float64, m)
		for j := 0; j < m; j++ {
			X[i][j], Y[i][j] = xs[j], xs[i]
			Z[i][j] = math.Hypot(ts[j], ts[i])
		}
	}
	return
}

// FitCurve returns points on the fitted viscosity curve spanning the range of gd
func FitCurve(res *fit.Result, gd []float64, npts int) (x, y []float64) {
	var pos []float64
	for _, v := range gd {
		if v > 0 && !math.IsInf(v, 0) {
			pos = append(pos, v)
		}
	}
	if len(pos) == 0 || npts < 2 {
		return
	}
	x = floats.LogSpan(make([]float64, npts), floats.Min(pos), floats.Max(pos))
	y = make([]float64, npts)
	for i, v := range x {
		y[i] = res.Eta(v)
	}
	return
}

// Draw draws and saves all figures in dirout
func (o *Figures) Draw(dirout string) {

	// velocity
	plt.Reset(false, nil)
	plt.Plot(o.Rsym, o.Vsym, &o.Sty.Ana)
	if o.Ref != nil && len(o.Ref.Umag) > 0 {
		X, Y := Mirror(o.Ref.Rad, o.Ref.Umag, 1e3)
		plt.Plot(X, Y, &o.Sty.Ref)
	}
	plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("vz", "[mm/s]"), &plt.A{LegLoc: "lower center"})
	plt.Save(dirout, o.Key+"_velocity")

	// shear rate
	plt.Reset(false, nil)
	plt.Plot(o.Rad, o.Prof.Gd, &o.Sty.Ana)
	if o.Ref != nil {
		for k := 0; k < o.Ref.NcolsRate; k++ {
			plt.Plot(o.Ref.Rad, o.Ref.RateColumn(k), &o.Sty.Ref)
		}
	}
	plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("gd", "[1/s]"), nil)
	plt.Save(dirout, o.Key+"_shearrate")

	// shear stress
	plt.Reset(false, nil)
	plt.Plot(o.Rad, o.Prof.Tau, &o.Sty.Ana)
	if o.Ref != nil && len(o.Ref.ShearStress) > 0 {
		plt.Plot(o.Ref.Rad, o.Ref.ShearStress, &o.Sty.Ref)
	}
	plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("tau", "[Pa]"), nil)
	plt.Save(dirout, o.Key+"_shearstress")

	// viscosity
	plt.Reset(false, nil)
	plt.Plot(o.Rad, o.Prof.Eta, &o.Sty.Ana)
	if o.Ref != nil {
		for k := 0; k < o.Ref.NcolsVisc; k++ {
			plt.Plot(o.Ref.Rad, o.Ref.ViscColumn(k), &o.Sty.Ref)
		}
	}
	plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("eta", "[Pa \\cdot s]"), nil)
	plt.Save(dirout, o.Key+"_viscosity")

	// flow curve
	plt.Reset(false, nil)
	plt.Plot(o.Prof.Gd, o.Prof.Eta, &o.Sty.Ana)
	if o.Ref != nil && o.Ref.NcolsRate == o.Ref.NcolsVisc {
		ref := o.Sty.Ref
		ref.Ls, ref.M = "none", "."
		plt.Plot(o.Ref.ShearRate, o.Ref.Viscosity, &ref)
		if o.Fit != nil {
			x, y := FitCurve(o.Fit, o.Ref.ShearRate, 101)
			plt.Plot(x, y, &o.Sty.Fit)
		}
	}
	plt.Gll(GetTexLabel("gd", "[1/s]"), GetTexLabel("eta", "[Pa \\cdot s]"), nil)
	plt.Save(dirout, o.Key+"_flowcurve")

	// shear stress over the cross section
	X, Y, Z := ContourData(o.Rad, o.Prof.Tau, 101)
	if len(Z) > 1 && floats.Max(o.Prof.Tau) > 0 {
		plt.Reset(false, nil)
		plt.ContourF(X, Y, Z, &plt.A{Levels: utl.LinSpace(0, floats.Max(o.Prof.Tau), 75), NoLines: true, CbarLbl: GetTexLabel("tau", "[Pa]")})
		plt.Equal()
		plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("r", "[\\mu m]"), nil)
		plt.Save(dirout, o.Key+"_contour")
	}

	// sampled line
	if o.Line != nil {
		x := make([]float64, len(o.Line.X))
		uy := make([]float64, len(o.Line.Uy))
		for i, v := range o.Line.X {
			x[i], uy[i] = v*1e6, o.Line.Uy[i]*1e3
		}
		ref := o.Sty.Ref
		ref.Ls, ref.M = "none", "o"
		plt.Reset(false, nil)
		plt.Subplot(2, 1, 1)
		X, T := Mirror(o.Rad, o.Prof.Tau, 1)
		plt.Plot(X, T, &o.Sty.Ana)
		plt.Plot(x, o.Line.TauXY, &ref)
		plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("tau", "[Pa]"), nil)
		plt.Subplot(2, 1, 2)
		plt.Plot(o.Rsym, o.Vsym, &o.Sty.Ana)
		plt.Plot(x, uy, &ref)
		plt.Gll(GetTexLabel("r", "[\\mu m]"), GetTexLabel("vz", "[mm/s]"), nil)
		plt.Save(dirout, o.Key+"_line")
	}
}
