// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fit implements curve fitting of rheological data
package fit

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/needleflow/inp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Result holds the parameters of the viscosity curve η = K・γ̇⁻ⁿ fitted to data
type Result struct {
	K     float64     // consistency index [Pa・sⁿ] for SI data
	N     float64     // exponent of the shear rate; N = 1 - n with n the flow behaviour index
	Cov   [][]float64 // [2][2] covariance matrix of (K, N)
	Nused int         // number of samples used in the fit
	Iter  int         // number of iterations
	SSR   float64     // sum of squared residuals
}

// FlowIndex returns the flow behaviour index n = 1 - N of the power-law model τ = K・γ̇ⁿ
func (o Result) FlowIndex() float64 {
	return 1.0 - o.N
}

// Eta computes the fitted viscosity
func (o Result) Eta(γd float64) float64 {
	return o.K * math.Pow(γd, -o.N)
}

// Filter returns the samples that can be used in the fit. Samples are excluded if the
// shear rate is not greater than gdMin, if the viscosity is not positive or if any
// value is not finite; the model is singular at γ̇ = 0
func Filter(gd, eta []float64, gdMin float64) (x, y []float64) {
	for i := range gd {
		if !finite(gd[i]) || !finite(eta[i]) {
			continue
		}
		if gd[i] <= gdMin || eta[i] <= 0 {
			continue
		}
		x = append(x, gd[i])
		y = append(y, eta[i])
	}
	return
}

// Seed estimates K and N from a linear regression in log-log space:
//    ln η = ln K - N・ln γ̇
//  Note: x and y must be positive
func Seed(x, y []float64) (K, N float64) {
	lx := make([]float64, len(x))
	ly := make([]float64, len(y))
	for i := range x {
		lx[i] = math.Log(x[i])
		ly[i] = math.Log(y[i])
	}
	α, β := stat.LinearRegression(lx, ly, nil, false)
	return math.Exp(α), -β
}

// PowerLaw fits η = K・γ̇⁻ⁿ to shear rate (gd) and viscosity (eta) samples using the
// Levenberg–Marquardt method on the residuals rᵢ = K・xᵢ⁻ⁿ - yᵢ
//  Input:
//   gd  -- shear rates; e.g. flattened from many columns
//   eta -- viscosities; same length as gd
//   dat -- options; see inp.FitData
//  Note: the initial values come from Seed unless dat.K0 > 0
func PowerLaw(gd, eta []float64, dat inp.FitData) (o *Result, err error) {

	// check and filter data
	if len(gd) != len(eta) {
		return nil, inp.Err(inp.ErrFitDivergence, "shear rate and viscosity arrays must have the same length. %d != %d", len(gd), len(eta))
	}
	x, y := Filter(gd, eta, dat.GdMin)
	m := len(x)
	if m < 2 {
		return nil, inp.Err(inp.ErrFitDivergence, "at least 2 samples with shear rate > %g are required. %d samples available", dat.GdMin, m)
	}
	if floats.Min(x) == floats.Max(x) {
		return nil, inp.Err(inp.ErrFitDivergence, "all %d samples have the same shear rate (%g)", m, x[0])
	}
	if dat.MaxIt < 1 {
		dat.MaxIt = 1
	}

	// initial values
	p := []float64{dat.K0, dat.N0}
	if dat.K0 <= 0 {
		p[0], p[1] = Seed(x, y)
	}
	if !finite(p[0]) || !finite(p[1]) || p[0] <= 0 {
		return nil, inp.Err(inp.ErrFitDivergence, "cannot compute initial values. K0 = %g, N0 = %g", p[0], p[1])
	}

	// auxiliary
	r := make([]float64, m)
	J := mat.NewDense(m, 2, nil)
	var A, M mat.Dense
	var g, δ mat.VecDense
	pNew := make([]float64, 2)
	ssr := residuals(r, x, y, p)
	λ := 1e-3

	// iterations
	o = new(Result)
	converged := ssr == 0
	for o.Iter = 0; o.Iter < dat.MaxIt && !converged; o.Iter++ {

		// normal equations
		jacobian(J, x, p)
		A.Mul(J.T(), J)
		g.MulVec(J.T(), mat.NewVecDense(m, r))
		if mat.Norm(&g, math.Inf(1)) == 0 {
			converged = true
			break
		}

		// search for a step reducing the residuals
		for {
			M.CloneFrom(&A)
			for k := 0; k < 2; k++ {
				M.Set(k, k, A.At(k, k)*(1.0+λ))
			}
			err = δ.SolveVec(&M, &g)
			small := false
			if err == nil {
				pNew[0] = p[0] - δ.AtVec(0)
				pNew[1] = p[1] - δ.AtVec(1)
				small = math.Hypot(δ.AtVec(0), δ.AtVec(1)) <= dat.Xtol*(math.Hypot(p[0], p[1])+dat.Xtol)
				if pNew[0] > 0 && finite(pNew[1]) {
					ssrNew := residuals(r, x, y, pNew)
					if finite(ssrNew) && ssrNew < ssr {
						converged = small || ssr-ssrNew <= dat.Ftol*ssr
						copy(p, pNew)
						ssr = ssrNew
						λ = math.Max(λ/10.0, 1e-12)
						break
					}
				}
			}
			if small {
				converged = true
				break
			}
			λ *= 10.0
			if λ > 1e16 {
				return nil, inp.Err(inp.ErrFitDivergence, "cannot reduce residuals; K = %g, N = %g, SSR = %g", p[0], p[1], ssr)
			}
		}
	}
	if !converged {
		return nil, inp.Err(inp.ErrFitDivergence, "did not converge after %d iterations; K = %g, N = %g, SSR = %g", dat.MaxIt, p[0], p[1], ssr)
	}

	// results
	o.K, o.N, o.SSR, o.Nused = p[0], p[1], ssr, m
	o.Cov, err = covariance(J, &A, x, p, ssr)
	if err != nil {
		return nil, err
	}
	if io.Verbose {
		io.Pf("fit: K = %g  N = %g  (n = %g)  SSR = %g  iterations = %d  samples = %d\n", o.K, o.N, o.FlowIndex(), o.SSR, o.Iter, o.Nused)
	}
	return
}

// residuals computes rᵢ = K・xᵢ⁻ⁿ - yᵢ and returns Σ rᵢ²
func residuals(r, x, y, p []float64) (ssr float64) {
	for i := range x {
		r[i] = p[0]*math.Pow(x[i], -p[1]) - y[i]
		ssr += r[i] * r[i]
	}
	return
}

// jacobian computes J = ∂r/∂p
func jacobian(J *mat.Dense, x, p []float64) {
	for i := range x {
		xn := math.Pow(x[i], -p[1])
		J.Set(i, 0, xn)
		J.Set(i, 1, -p[0]*xn*math.Log(x[i]))
	}
}

// covariance computes s²・(JᵀJ)⁻¹ with s² = SSR/(m-2); infinite if m = 2
func covariance(J, A *mat.Dense, x, p []float64, ssr float64) (cov [][]float64, err error) {
	jacobian(J, x, p)
	A.Mul(J.T(), J)
	var Ai mat.Dense
	err = Ai.Inverse(A)
	if err != nil {
		return nil, inp.Err(inp.ErrFitDivergence, "normal matrix is singular: %v", err)
	}
	m := len(x)
	s2 := math.Inf(1)
	if m > 2 {
		s2 = ssr / float64(m-2)
	}
	cov = [][]float64{
		{s2 * Ai.At(0, 0), s2 * Ai.At(0, 1)},
		{s2 * Ai.At(1, 0), s2 * Ai.At(1, 1)},
	}
	return
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
