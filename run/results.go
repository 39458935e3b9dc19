// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/needleflow/ana"
	"github.com/cpmech/needleflow/fit"
	"github.com/cpmech/needleflow/inp"
	"github.com/cpmech/needleflow/out"
)

// Results holds the results of one run
type Results struct {
	Flow    *ana.NeedleFlow // analytical solution
	Profile *ana.Profile    // profile along the radius
	Summary *ana.Summary    // scalar results
	Ref     *out.Reference  // reference data; nil if RefErr != nil
	Fit     *fit.Result     // power-law fit of reference data; nil if not computed
	Line    *out.LineXY     // sampled line; nil if not given or LineErr != nil
	RefErr  error           // reason why reference data is not available
	FitErr  error           // reason why fitting failed
	LineErr error           // reason why the sampled line is not available
}

// summaryFile is the content of the summary (.json) file
type summaryFile struct {
	Summary *ana.Summary `json:"summary"`
	Fit     *fit.Result  `json:"fit,omitempty"`
	RefErr  string       `json:"referr,omitempty"`
	FitErr  string       `json:"fiterr,omitempty"`
}

// Save saves the scalar results to dirout/fnkey.json
func (o *Results) Save(dirout, fnkey string) (err error) {
	s := summaryFile{Summary: o.Summary, Fit: o.Fit}
	if o.Fit != nil && !finite(o.Fit.Cov) {
		f := *o.Fit
		f.Cov = nil // JSON cannot hold Inf; e.g. two samples only
		s.Fit = &f
	}
	if o.RefErr != nil {
		s.RefErr = o.RefErr.Error()
	}
	if o.FitErr != nil {
		s.FitErr = o.FitErr.Error()
	}
	b, err := json.MarshalIndent(&s, "", "  ")
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return inp.WriteFile(dirout, fnkey+".json", b)
}

// ReadSummary reads the scalar results saved by Save
func ReadSummary(dirout, fnkey string) (sum *ana.Summary, res *fit.Result, err error) {
	b, err := inp.ReadFile(filepath.Join(dirout, fnkey+".json"))
	if err != nil {
		return nil, nil, chk.Err("cannot read summary:\n%v", err)
	}
	var s summaryFile
	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return s.Summary, s.Fit, nil
}

func finite(a [][]float64) bool {
	for _, row := range a {
		for _, v := range row {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}
