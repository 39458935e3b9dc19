// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rheo

// Water handles the properties of water used as solvent of bio-inks
type Water struct {
	Θ   float64 // reference temperature; default = 20°C or 293.15K
	Rho float64 // intrinsic density @ reference temperature
	Mu  float64 // dynamic viscosity @ reference temperature
}

// Init initialises data
func (o *Water) Init() {
	o.Θ = 293.15    // [K]      20°C
	o.Rho = 998.23  // [kg/m³]  20°C
	o.Mu = 1.002e-3 // [Pa・s]   20°C
}

// SolutionDensity computes the density of a solution with wvp percent weight/volume (% w/v)
// of solute dissolved in a solvent with density rhoSolvent [kg/m³]
//  Note: 1% w/v = 1 g/100 mL = 10 kg/m³
func SolutionDensity(rhoSolvent, wvp float64) float64 {
	return rhoSolvent + wvp*10.0
}
