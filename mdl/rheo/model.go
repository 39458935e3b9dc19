// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rheo implements constitutive models relating shear stress and shear rate
// of inelastic (generalised Newtonian) fluids
//  References:
//   [1] Bird RB, Armstrong RC and Hassager O (1987) Dynamics of Polymeric Liquids,
//       Volume 1: Fluid Mechanics. 2nd edition, Wiley
package rheo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a generalised Newtonian fluid model written in power-law form:
//    τ = K・|γ̇|ⁿ   and   η = τ / |γ̇| = K・|γ̇|⁽ⁿ⁻¹⁾
//  Note: γ̇ denotes the magnitude of the shear rate
type Model interface {
	Init(prms dbf.Params) error      // initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Consistency() float64            // returns the consistency index K [Pa・sⁿ]
	Index() float64                  // returns the flow behaviour index n [-]
	Tau(γd float64) float64          // computes the shear stress magnitude
	Eta(γd float64) float64          // computes the apparent viscosity
}

// New returns a new rheology model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'rheo' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
