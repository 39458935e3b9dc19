// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheo

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// PowerLaw implements the Ostwald–de Waele model
//    τ = K・|γ̇|ⁿ
//  n < 1 gives shear-thinning fluids (e.g. bio-inks), n = 1 is Newtonian and n > 1 is dilatant
type PowerLaw struct {
	K float64 // consistency index [Pa・sⁿ]
	N float64 // flow behaviour index [-]
}

// add model to factory
func init() {
	allocators["pl"] = func() Model { return new(PowerLaw) }
}

// Init initialises model
func (o *PowerLaw) Init(prms dbf.Params) (err error) {
	o.K, o.N = 0, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k":
			o.K = p.V
		case "n":
			o.N = p.V
		default:
			return chk.Err("pl: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.K <= 0 {
		return chk.Err("pl: consistency index K must be positive. K = %g is invalid\n", o.K)
	}
	if o.N <= 0 {
		return chk.Err("pl: flow behaviour index n must be positive. n = %g is invalid\n", o.N)
	}
	if o.N > 1 {
		io.PfYel("pl: flow behaviour index n = %g > 1 corresponds to a shear-thickening fluid\n", o.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PowerLaw) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // alginate-based bio-ink
			&dbf.P{N: "K", V: 86.73}, // [Pa・sⁿ]
			&dbf.P{N: "n", V: 0.365}, // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "K", V: o.K},
		&dbf.P{N: "n", V: o.N},
	}
}

// Consistency returns K
func (o PowerLaw) Consistency() float64 { return o.K }

// Index returns n
func (o PowerLaw) Index() float64 { return o.N }

// Tau computes τ = K・|γ̇|ⁿ
func (o PowerLaw) Tau(γd float64) float64 {
	return o.K * math.Pow(math.Abs(γd), o.N)
}

// Eta computes η = K・|γ̇|⁽ⁿ⁻¹⁾
//  Note: η → ∞ as γ̇ → 0 if n < 1
func (o PowerLaw) Eta(γd float64) float64 {
	return o.K * math.Pow(math.Abs(γd), o.N-1.0)
}
