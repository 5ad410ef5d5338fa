// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods used by the
// codec package tests.
package testutil

import "encoding/hex"

// MustDecodeHex must decode a hexadecimal string or else panics. Tests use
// this to spell out expected on-the-wire record bytes inline.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
