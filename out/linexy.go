// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/cpmech/needleflow/inp"
)

// LineXYColumns holds the column names of an OpenFOAM line.xy sample of shearStress and U
var LineXYColumns = []string{
	"x",
	"shearStress_xx", "shearStress_xy", "shearStress_xz",
	"shearStress_yy", "shearStress_yz", "shearStress_zz",
	"U_x", "U_y", "U_z",
}

// LineXY holds shear stress and axial velocity sampled across the needle
type LineXY struct {
	X     []float64 // positions along the sampled line [m]
	TauXY []float64 // absolute value of the dynamic shear stress τ_xy [Pa]
	Uy    []float64 // absolute value of the axial velocity [m/s]
}

// ReadLineXY reads a line.xy file: whitespace-separated values, one row per point, '#' comments
//  rho -- density [kg/m³]; converts kinematic stress to dynamic stress
func ReadLineXY(path string, rho float64) (o *LineXY, err error) {
	if path == "" {
		return nil, inp.Err(inp.ErrMissingReferenceData, "line.xy file is not given")
	}
	b, err := inp.ReadFile(path)
	if err != nil {
		return nil, inp.Err(inp.ErrMissingReferenceData, "cannot read line.xy file %q: %v", path, err)
	}
	return DecodeLineXY(b, rho)
}

// DecodeLineXY decodes line.xy data; see ReadLineXY
func DecodeLineXY(b []byte, rho float64) (o *LineXY, err error) {

	// convert to CSV
	var sb strings.Builder
	for i, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words := strings.Fields(line)
		if len(words) != len(LineXYColumns) {
			return nil, inp.Err(inp.ErrMissingReferenceData, "line %d of line.xy data has %d values; %d expected", i+1, len(words), len(LineXYColumns))
		}
		sb.WriteString(strings.Join(words, ","))
		sb.WriteByte('\n')
	}
	if sb.Len() == 0 {
		return nil, inp.Err(inp.ErrMissingReferenceData, "line.xy data has no rows")
	}

	// values
	fields := make([]arrow.Field, len(LineXYColumns))
	for i, name := range LineXYColumns {
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64, Nullable: true}
	}
	table, err := readColumns([]byte(sb.String()), arrow.NewSchema(fields, nil), false)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, inp.Err(inp.ErrMissingReferenceData, "line.xy data has no complete rows")
	}

	// results
	o = new(LineXY)
	o.X = make([]float64, len(table))
	o.TauXY = make([]float64, len(table))
	o.Uy = make([]float64, len(table))
	for i, row := range table {
		o.X[i] = row[0]
		o.TauXY[i] = math.Abs(row[2]) * rho
		o.Uy[i] = math.Abs(row[8])
	}
	return
}
