// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package stream implements PosInputStream and PosOutputStream: the
// per-format framed file readers/writers that sit between raw files and
// the codec layer, enforcing each format's header/record/footer contract,
// grounded on original_source/sfen_stream.h.
package stream

import (
	"io"

	"github.com/dpldgr/variant-nnue-tools/posbuf"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "stream: " + string(e) }

var (
	// ErrHeaderMismatch is returned when a format's magic/version bytes
	// don't match.
	ErrHeaderMismatch error = Error("magic header mismatch")
	// ErrTruncation is returned when a record frame starts but its
	// payload is shorter than declared, or declares a length beyond the
	// format's maximum record size.
	ErrTruncation error = Error("truncated record")
	// ErrRecordMagicBad is returned when a BIN2 length prefix's top two
	// bits are not 00.
	ErrRecordMagicBad error = Error("bin2 record magic bits set")
	// ErrUnsupported is returned by formats explicitly shelved, such as
	// binpack.
	ErrUnsupported error = Error("format not supported")
	// ErrIllegalTransition is returned when a writer's header/footer
	// state machine is driven out of order.
	ErrIllegalTransition error = Error("illegal header/footer transition")
)

// PosInputStream reads framed records of one format from a file.
type PosInputStream interface {
	// Read returns the next record's buffer, or io.EOF when the stream is
	// exhausted.
	Read() (posbuf.Buffer, error)
	Close() error
}

// PosOutputStream writes framed records of one format to a file.
type PosOutputStream interface {
	WriteHeader() error
	Write(pb posbuf.Buffer) error
	WriteFooter() error
	Close() error
}

// filenameWithExtension appends ext (with a leading dot) to name unless
// name already ends with it, mirroring sfen_stream.h's
// filename_with_extension helper.
func filenameWithExtension(name, ext string) string {
	if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
		return name
	}
	return name + ext
}

// readFull reads exactly len(buf) bytes from r, translating a clean EOF
// with zero bytes read into io.EOF and any short read into ErrTruncation.
func readFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF && n == 0 {
		return io.EOF
	}
	if err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0) {
		return ErrTruncation
	}
	return err
}
