// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// error kinds. use errors.Is to check them
var (
	ErrInvalidGeometry           = errors.New("invalid geometry")
	ErrInvalidFluidModel         = errors.New("invalid fluid model")
	ErrInvalidOperatingCondition = errors.New("invalid operating condition")
	ErrNumericalSingularity      = errors.New("numerical singularity")
	ErrFitDivergence             = errors.New("fit divergence")
	ErrMissingReferenceData      = errors.New("missing reference data")
)

// Err returns an error of the given kind with a formatted message
func Err(kind error, msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %v", kind, chk.Err(msg, prm...))
}

// Fatal tells whether err comes from an unsound physical setup; i.e. the run cannot proceed
func Fatal(err error) bool {
	return errors.Is(err, ErrInvalidGeometry) ||
		errors.Is(err, ErrInvalidFluidModel) ||
		errors.Is(err, ErrInvalidOperatingCondition) ||
		errors.Is(err, ErrNumericalSingularity)
}
