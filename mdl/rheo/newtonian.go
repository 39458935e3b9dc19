// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheo

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Newtonian implements a constant viscosity fluid; i.e. the power-law model with n = 1
type Newtonian struct {
	Mu float64 // dynamic viscosity [Pa・s]
}

// add model to factory
func init() {
	allocators["newt"] = func() Model { return new(Newtonian) }
}

// Init initialises model
func (o *Newtonian) Init(prms dbf.Params) (err error) {
	o.Mu = 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "mu", "k":
			o.Mu = p.V
		default:
			return chk.Err("newt: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Mu <= 0 {
		return chk.Err("newt: viscosity must be positive. mu = %g is invalid\n", o.Mu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Newtonian) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "mu", V: 1.002e-3}, // water @ 20°C [Pa・s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// Consistency returns μ
func (o Newtonian) Consistency() float64 { return o.Mu }

// Index returns 1
func (o Newtonian) Index() float64 { return 1 }

// Tau computes τ = μ・|γ̇|
func (o Newtonian) Tau(γd float64) float64 { return o.Mu * math.Abs(γd) }

// Eta returns μ
func (o Newtonian) Eta(γd float64) float64 { return o.Mu }
