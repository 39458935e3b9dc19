// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_pl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pl01. power-law stress and viscosity")

	mdl, err := New("pl")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "K", 1e-15, mdl.Consistency(), 86.73)
	chk.Float64(tst, "n", 1e-15, mdl.Index(), 0.365)

	// η = τ/γ̇ must agree with K・γ̇⁽ⁿ⁻¹⁾
	for _, γd := range utl.LinSpace(1e-3, 1e4, 11) {
		τ := mdl.Tau(γd)
		η := mdl.Eta(γd)
		io.Pforan("γd = %12g  τ = %12g  η = %12g\n", γd, τ, η)
		chk.AnaNum(tst, "η", 1e-12*η, η, τ/γd, chk.Verbose)
		chk.Float64(tst, "τ(-γd)", 1e-15, mdl.Tau(-γd), τ)
	}

	// current parameters
	prms := mdl.GetPrms(false)
	chk.Float64(tst, "K", 1e-15, prms.Find("K").V, 86.73)
	chk.Float64(tst, "n", 1e-15, prms.Find("n").V, 0.365)

	// singular at γ̇ = 0
	if !math.IsInf(mdl.Eta(0), 1) {
		tst.Errorf("η(0) should be +Inf for shear-thinning fluids\n")
	}
}

func Test_pl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pl02. power-law parameters")

	var mdl PowerLaw
	err := mdl.Init(dbf.Params{&dbf.P{N: "K", V: 10}, &dbf.P{N: "n", V: 0}})
	if err == nil {
		tst.Errorf("n = 0 should fail\n")
		return
	}
	io.Pforan("%v\n", err)

	err = mdl.Init(dbf.Params{&dbf.P{N: "K", V: -1}, &dbf.P{N: "n", V: 0.5}})
	if err == nil {
		tst.Errorf("K < 0 should fail\n")
		return
	}
	io.Pforan("%v\n", err)

	err = mdl.Init(dbf.Params{&dbf.P{N: "K", V: 10}, &dbf.P{N: "m", V: 0.5}})
	if err == nil {
		tst.Errorf("unknown parameter should fail\n")
		return
	}
	io.Pforan("%v\n", err)

	// dilatant fluids are only a warning
	err = mdl.Init(dbf.Params{&dbf.P{N: "K", V: 10}, &dbf.P{N: "n", V: 1.2}})
	if err != nil {
		tst.Errorf("n > 1 should not fail: %v\n", err)
	}
}

func Test_newt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newt01. Newtonian fluid")

	mdl, err := New("newt")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	var pl PowerLaw
	pl.Init(dbf.Params{&dbf.P{N: "K", V: 1.002e-3}, &dbf.P{N: "n", V: 1}})
	for _, γd := range []float64{0, 1, 10, 1000} {
		chk.Float64(tst, "η", 1e-17, mdl.Eta(γd), 1.002e-3)
		chk.Float64(tst, "η(pl)", 1e-17, pl.Eta(γd), mdl.Eta(γd))
		chk.Float64(tst, "τ(pl)", 1e-15, pl.Tau(γd), mdl.Tau(γd))
	}

	_, err = New("carreau")
	if err == nil {
		tst.Errorf("New should fail with unknown model\n")
	}
}

func Test_solvent01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solvent01. density of bio-ink solutions")

	var water Water
	water.Init()
	io.Pforan("reference temperature: Θ = %23g [K]\n", water.Θ)
	io.Pforan("intrinsic density @ Θ: ρ = %23g [kg/m³]\n", water.Rho)
	io.Pforan("viscosity @ Θ:         μ = %23g [Pa・s]\n", water.Mu)
	chk.Float64(tst, "ρ(0%)", 1e-17, SolutionDensity(water.Rho, 0), 998.23)
	chk.Float64(tst, "ρ(2%)", 1e-12, SolutionDensity(water.Rho, 2), 1018.23)
	chk.Float64(tst, "ρ(4%)", 1e-12, SolutionDensity(water.Rho, 4), 1038.23)
}
