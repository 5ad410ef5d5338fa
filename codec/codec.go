// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package codec implements PosCodec: the encoder/decoder pair for each of
// the position formats this module converts between (BIN, BIN2, JPN, and
// the text-format stubs PLAIN/EPD/FEN).
//
// Each concrete codec owns one scratch bitstream and one scratch PosBuffer
// of its own type; it is stateless with respect to any other codec
// instance. Failures surface as Error values recovered at each
// public method's boundary, the same shape dsnet-compress's flate/bzip2
// packages use throughout.
package codec

import (
	"runtime"

	"github.com/dpldgr/variant-nnue-tools/posbuf"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "codec: " + string(e) }

var (
	// ErrNotImplemented is returned by the PLAIN/EPD/FEN stubs, which
	// original_source/poscodec.cpp itself leaves unfinished.
	ErrNotImplemented error = Error("format not implemented")
	// ErrBufferEmpty is returned by encode/decode calls made before a
	// scratch buffer has been attached via Buffer.
	ErrBufferEmpty error = Error("no buffer attached")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// PosCodec is the common contract every concrete format implements: a
// named, extension-tagged encoder and/or decoder that owns one scratch
// buffer of its native type.
type PosCodec interface {
	Name() string
	Ext() string
	Type() string
	IsDecoder() bool
	IsEncoder() bool

	// Buffer loads pb as the codec's current scratch buffer.
	Buffer(pb posbuf.Buffer)
	// CurrentBuffer returns the codec's current scratch buffer.
	CurrentBuffer() posbuf.Buffer
	// Copy snapshots the current scratch buffer.
	Copy() posbuf.Buffer

	// Encode writes pd into the current scratch buffer.
	Encode(pd *posn.PosData) error
	// Decode reads the current scratch buffer into pd.
	Decode(pd *posn.PosData) error
}
