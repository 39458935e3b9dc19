// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reading of reference data, reporting and plotting of results
package out

import (
	"bytes"
	stdcsv "encoding/csv"
	"math"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/csv"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/needleflow/inp"
)

// column selectors; substrings of column names as written by ParaView "plot over line"
const (
	KeyShearStress = "shearStress" // kinematic stress tensor components [m²/s²]
	KeyStrainRate  = "strainRate"  // shear rate [1/s]
	KeyNu          = "nu"          // kinematic viscosity [m²/s]
	KeyVelocity    = "U:"          // velocity components [m/s]; the colon excludes grad(U)
)

// Reference holds reference data sampled along the radius (e.g. from an OpenFOAM simulation)
//  Note: ShearRate and Viscosity are flattened row by row when many columns are selected
type Reference struct {
	Nrows       int       // number of rows without missing values
	Columns     []string  // all column names
	ShearStress []float64 // magnitude of the dynamic stress tensor [Pa]; one per row
	ShearRate   []float64 // shear rates [1/s]; Nrows × NcolsRate
	Viscosity   []float64 // dynamic viscosities [Pa・s]; Nrows × NcolsVisc
	Umag        []float64 // velocity magnitude [m/s]; one per row
	NcolsRate   int       // number of strainRate columns
	NcolsVisc   int       // number of nu columns
	Rad         []float64 // radial coordinates [µm] associated with rows
}

// ReadReference reads reference data from a CSV file with a header line
//  Input:
//   path -- CSV file
//   R    -- needle radius [m]; used to build the radial coordinates
//   rho  -- density [kg/m³]; converts kinematic stress and viscosity to dynamic ones
func ReadReference(path string, R, rho float64) (o *Reference, err error) {
	if path == "" {
		return nil, inp.Err(inp.ErrMissingReferenceData, "reference data file is not given")
	}
	b, err := inp.ReadFile(path)
	if err != nil {
		return nil, inp.Err(inp.ErrMissingReferenceData, "cannot read reference data file %q: %v", path, err)
	}
	return DecodeReference(b, R, rho)
}

// DecodeReference decodes CSV reference data; see ReadReference
func DecodeReference(b []byte, R, rho float64) (o *Reference, err error) {

	// header
	columns, err := stdcsv.NewReader(bytes.NewReader(b)).Read()
	if err != nil {
		return nil, inp.Err(inp.ErrMissingReferenceData, "cannot read header of reference data: %v", err)
	}
	fields := make([]arrow.Field, len(columns))
	for i, name := range columns {
		columns[i] = strings.TrimSpace(name)
		fields[i] = arrow.Field{Name: columns[i], Type: arrow.PrimitiveTypes.Float64, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	// values
	table, err := readColumns(b, schema, true)
	if err != nil {
		return nil, err
	}

	// select columns
	o = new(Reference)
	o.Columns = columns
	var iStress, iRate, iNu, iU []int
	for j, name := range columns {
		switch {
		case strings.Contains(name, KeyShearStress):
			iStress = append(iStress, j)
		case strings.Contains(name, KeyStrainRate):
			iRate = append(iRate, j)
		case strings.Contains(name, KeyVelocity):
			iU = append(iU, j)
		}
		if strings.Contains(name, KeyNu) {
			iNu = append(iNu, j)
		}
	}
	if len(iStress)+len(iRate)+len(iNu)+len(iU) == 0 {
		return nil, inp.Err(inp.ErrMissingReferenceData, "reference data has none of the columns %q, %q, %q or %q. columns = %v", KeyShearStress, KeyStrainRate, KeyNu, KeyVelocity, columns)
	}
	o.NcolsRate, o.NcolsVisc = len(iRate), len(iNu)

	// rows
	for _, row := range table {
		if len(iStress) > 0 {
			o.ShearStress = append(o.ShearStress, magnitude(row, iStress, rho))
		}
		for _, j := range iRate {
			o.ShearRate = append(o.ShearRate, row[j])
		}
		for _, j := range iNu {
			o.Viscosity = append(o.Viscosity, row[j]*rho)
		}
		if len(iU) > 0 {
			o.Umag = append(o.Umag, magnitude(row, iU, 1))
		}
	}
	o.Nrows = len(table)
	if o.Nrows == 0 {
		return nil, inp.Err(inp.ErrMissingReferenceData, "reference data has no complete rows")
	}
	o.Rad = utl.LinSpace(1e-6, R*1e6, o.Nrows)
	return
}

// readColumns reads all values and drops rows with missing or NaN values
//  Note: every column is Float64 so that a leading 0 or nan is not taken as an integer or null column
func readColumns(b []byte, schema *arrow.Schema, header bool) (table [][]float64, err error) {
	r := csv.NewReader(bytes.NewReader(b), schema,
		csv.WithHeader(header),
		csv.WithChunk(512),
		csv.WithNullReader(true, "", "nan", "NaN", "-nan"),
	)
	defer r.Release()
	ncols := schema.NumFields()
	for r.Next() {
		rec := r.Record()
		cols := make([]*array.Float64, ncols)
		for j := 0; j < ncols; j++ {
			cols[j] = rec.Column(j).(*array.Float64)
		}
		for i := 0; i < int(rec.NumRows()); i++ {
			row := make([]float64, ncols)
			ok := true
			for j, c := range cols {
				if c.IsNull(i) || math.IsNaN(c.Value(i)) {
					ok = false
					break
				}
				row[j] = c.Value(i)
			}
			if ok {
				table = append(table, row)
			}
		}
	}
	if r.Err() != nil {
		return nil, inp.Err(inp.ErrMissingReferenceData, "cannot parse reference data: %v", r.Err())
	}
	return
}

// magnitude computes sqrt(Σ (row[j]・coef)²) over the selected columns
func magnitude(row []float64, idx []int, coef float64) (res float64) {
	for _, j := range idx {
		v := row[j] * coef
		res += v * v
	}
	return math.Sqrt(res)
}

// RateColumn returns the shear rates of column k
func (o *Reference) RateColumn(k int) []float64 {
	return column(o.ShearRate, o.NcolsRate, k)
}

// ViscColumn returns the viscosities of column k
func (o *Reference) ViscColumn(k int) []float64 {
	return column(o.Viscosity, o.NcolsVisc, k)
}

func column(flat []float64, ncols, k int) (res []float64) {
	if k < 0 || k >= ncols {
		return
	}
	res = make([]float64, len(flat)/ncols)
	for i := range res {
		res[i] = flat[i*ncols+k]
	}
	return
}
