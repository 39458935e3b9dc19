// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/needleflow/ana"
	"github.com/cpmech/needleflow/fit"
)

// SummaryTable returns a table with the scalar results in engineering units
func SummaryTable(sum *ana.Summary) string {
	var l string
	l += io.Sf("volumetric flow rate    = %.5f [mL/s]\n", sum.Qave*1e6)
	l += io.Sf("mass flow rate          = %.5f [mg/s]\n", sum.Qmass*1e6)
	l += io.Sf("pressure drop           = %.2f [kPa]\n", sum.Pn/1e3)
	l += io.Sf("centreline velocity     = %.2f [mm/s]\n", sum.Vmax*1e3)
	l += io.Sf("average velocity        = %.2f [mm/s]\n", sum.Vavg*1e3)
	l += io.Sf("wall shear stress       = %.4f [kPa]\n", sum.TauWall/1e3)
	l += io.Sf("shear rate (min, max)   = %g, %g [1/s]\n", sum.GdMin, sum.GdMax)
	l += io.Sf("viscosity (min, max)    = %g, %g [Pa・s]\n", sum.EtaMin, sum.EtaMax)
	l += io.Sf("Metzner-Reed viscosity  = %g [Pa・s]\n", sum.Diag.EtaMR)
	l += io.Sf("Reynolds number         = %g\n", sum.Diag.Re)
	l += io.Sf("entrance length         = %g [µm]\n", sum.Diag.Le*1e6)
	return l
}

// FitTable returns a table with the fitted parameters and their standard deviations
func FitTable(res *fit.Result) string {
	var l string
	σK, σN := math.Sqrt(res.Cov[0][0]), math.Sqrt(res.Cov[1][1])
	l += io.Sf("K (fit)                 = %g ± %g [Pa・sⁿ]\n", res.K, σK)
	l += io.Sf("N (fit)                 = %g ± %g  =>  n = %g\n", res.N, σN, res.FlowIndex())
	l += io.Sf("samples, iterations     = %d, %d\n", res.Nused, res.Iter)
	l += io.Sf("SSR                     = %g\n", res.SSR)
	return l
}

// Report prints results. A nil fit result is reported with its error
func Report(sum *ana.Summary, res *fit.Result, refErr, fitErr error) {
	io.Pf("\n")
	io.PfWhite("analytical solution\n")
	io.Pf("%s", SummaryTable(sum))
	switch {
	case refErr != nil:
		io.PfYel("\nreference data is not available; comparison and fit are skipped:\n%v\n", refErr)
	case res != nil:
		io.PfWhite("\npower-law fit of reference data\n")
		io.Pf("%s", FitTable(res))
	case fitErr != nil:
		io.PfRed("\nfitting failed:\n%v\n", fitErr)
	}
}
