// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadFile reads the whole file. Unlike io.ReadFile, it returns an error instead of panicking
func ReadFile(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q: %v", path, r)
		}
	}()
	b = io.ReadFile(path)
	return
}

// WriteFile writes b to dirout/fn, creating dirout if needed. It returns an error instead of panicking
func WriteFile(dirout, fn string, b []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write file %q in %q: %v", fn, dirout, r)
		}
	}()
	io.WriteBytesToFileD(dirout, fn, b)
	return
}
