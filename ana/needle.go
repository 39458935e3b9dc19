// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/needleflow/inp"
	"github.com/cpmech/needleflow/mdl/rheo"
)

// NeedleFlow implements the analytical solution of the steady, fully developed and
// axisymmetric flow of a power-law fluid through a cylindrical needle. The solution is:
//
//    τ(r)  = (Pn/L)・r/2
//    γ̇(r)  = (τ(r)/K)^(1/n)
//    Vz(r) = n/(n+1)・(Pn・R/(2K・L))^(1/n)・R・(1 - (r/R)^((n+1)/n))
//    Q     = π・R³・n/(3n+1)・(Pn・R/(2K・L))^(1/n)
//
//  where R is the needle radius, L is the needle length and Pn is the pressure drop
type NeedleFlow struct {
	R   float64    // radius [m]
	L   float64    // length [m]
	K   float64    // consistency index [Pa・sⁿ]
	N   float64    // flow behaviour index [-]
	Pn  float64    // pressure drop along the needle [Pa]
	Mdl rheo.Model // rheology model

	// auxiliary
	c float64 // (Pn・R/(2K・L))^(1/n)
}

// Init initialises this structure and resolves the pressure drop
//  Note: if the flow rate is known, the pressure drop is computed with PressureFromFlowRate
func (o *NeedleFlow) Init(needle inp.Needle, mdl rheo.Model, drive inp.Drive) (err error) {

	// check input
	err = needle.Check()
	if err != nil {
		return
	}
	if mdl == nil {
		return inp.Err(inp.ErrInvalidFluidModel, "rheology model must be allocated")
	}
	K, n := mdl.Consistency(), mdl.Index()
	if K <= 0 || n <= 0 {
		return inp.Err(inp.ErrInvalidFluidModel, "power-law parameters must be positive. K = %g and n = %g are invalid", K, n)
	}
	err = drive.Check()
	if err != nil {
		return
	}

	// data
	o.R, o.L = needle.R, needle.L
	o.K, o.N = K, n
	o.Mdl = mdl

	// pressure drop
	if drive.Mode == inp.PressureKnown {
		o.Pn = *drive.Pn
	} else {
		o.Pn = PressureFromFlowRate(*drive.Qn, o.R, o.L, o.K, o.N)
	}
	o.c = math.Pow(o.Pn*o.R/(2.0*o.K*o.L), 1.0/o.N)
	return
}

// PressureFromFlowRate computes the pressure drop corresponding to the volumetric flow rate Qn
//    Pn = (Qn/(π・R³)/(n/(3n+1)))ⁿ・2K・L/R
func PressureFromFlowRate(Qn, R, L, K, n float64) float64 {
	return math.Pow(Qn/(math.Pi*R*R*R)/(n/(3.0*n+1.0)), n) * 2.0 * K * L / R
}

// FlowRateFromPressure computes the volumetric flow rate corresponding to the pressure drop Pn
//    Q = π・R³・n/(3n+1)・(Pn・R/(2K・L))^(1/n)
func FlowRateFromPressure(Pn, R, L, K, n float64) float64 {
	return math.Pi * R * R * R * n / (3.0*n + 1.0) * math.Pow(Pn*R/(2.0*K*L), 1.0/n)
}

// Vz computes the axial velocity at radius r [m/s]
func (o NeedleFlow) Vz(r float64) float64 {
	return o.N / (o.N + 1.0) * o.c * o.R * (1.0 - math.Pow(r/o.R, (o.N+1.0)/o.N))
}

// Vmax returns the centreline velocity Vz(0) [m/s]
func (o NeedleFlow) Vmax() float64 {
	return o.N / (o.N + 1.0) * o.c * o.R
}

// Qave returns the average volumetric flow rate [m³/s]
func (o NeedleFlow) Qave() float64 {
	return math.Pi * o.R * o.R * o.R * o.N / (3.0*o.N + 1.0) * o.c
}

// MassFlowRate returns the mass flow rate [kg/s] for a fluid with density rho [kg/m³]
func (o NeedleFlow) MassFlowRate(rho float64) float64 {
	return rho * o.Qave()
}

// Vavg returns the average velocity Q/(π・R²) [m/s]
//    Vavg = (Pn/(2K・L))^(1/n)・n/(3n+1)・R^((n+1)/n)
func (o NeedleFlow) Vavg() float64 {
	return math.Pow(o.Pn/(2.0*o.K*o.L), 1.0/o.N) * o.N / (3.0*o.N + 1.0) * math.Pow(o.R, (o.N+1.0)/o.N)
}

// ShearStress computes the shear stress magnitude at radius r [Pa]
func (o NeedleFlow) ShearStress(r float64) float64 {
	return o.Pn * r / (2.0 * o.L)
}

// WallShearStress returns τ(R) = (R/2)・(Pn/L) [Pa]
func (o NeedleFlow) WallShearStress() float64 {
	return o.ShearStress(o.R)
}

// ShearRate computes the closed-form shear rate magnitude γ̇ = -dVz/dr at radius r [1/s]
func (o NeedleFlow) ShearRate(r float64) float64 {
	return math.Pow(o.Pn*r/(2.0*o.K*o.L), 1.0/o.N)
}

// Diagnostics holds secondary engineering quantities
type Diagnostics struct {
	EtaMR float64 // Metzner–Reed generalised viscosity [Pa・s]
	Re    float64 // generalised Reynolds number [-]
	Le    float64 // laminar entrance length [m]
}

// Diagnostics computes the generalised Reynolds number and the entrance length for a fluid
// with density rho [kg/m³]. With D = 2R and V = Vavg:
//
//    ηMR = K・(8V/D)^(n-1)・((3n+1)/(4n))ⁿ
//    Re  = ρ・V・D/ηMR
//    Le  = 0.06・Re・D
//
func (o NeedleFlow) Diagnostics(rho float64) (d Diagnostics) {
	D := 2.0 * o.R
	V := o.Vavg()
	d.EtaMR = o.K * math.Pow(8.0*V/D, o.N-1.0) * math.Pow((3.0*o.N+1.0)/(4.0*o.N), o.N)
	d.Re = rho * V * D / d.EtaMR
	d.Le = 0.06 * d.Re * D
	return
}
