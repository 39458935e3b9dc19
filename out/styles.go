// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Styles holds the styles of the analytical solution, the reference data and the fitted curve
type Styles struct {
	Ana plt.A
	Ref plt.A
	Fit plt.A
}

// GetDefaultStyles returns the default styles
func GetDefaultStyles() (sty Styles) {
	sty.Ana = plt.A{C: "r", Ls: "--", Lw: 2, L: "analytical solution"}
	sty.Ref = plt.A{C: "g", Ls: "-", Lw: 2, L: "reference data"}
	sty.Fit = plt.A{C: "b", Ls: ":", Lw: 2, L: "power-law fit"}
	return
}

// GetTexLabel returns the TeX label of a quantity
//  key  -- "r", "vz", "gd", "tau", "eta" or any other string
//  unit -- e.g. "[mm/s]"
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "r":
		l += "r"
	case "vz":
		l += "V_z"
	case "gd":
		l += "\\dot{\\gamma}"
	case "tau":
		l += "\\tau_{rz}"
	case "eta":
		l += "\\eta"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;\\mathrm{" + unit + "}"
	}
	l += "$"
	return l
}
