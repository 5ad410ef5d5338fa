// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stream

import (
	"io"

	"github.com/dpldgr/variant-nnue-tools/posbuf"
)

// BinExtension is the canonical file extension for BIN files.
const BinExtension = ".bin"

// BinInputStream reads a raw concatenation of fixed 72-byte BIN records.
// There is no header or footer to the format.
type BinInputStream struct {
	r      io.ReadCloser
	closed bool
}

// NewBinInputStream wraps r as a BIN input stream.
func NewBinInputStream(r io.ReadCloser) *BinInputStream {
	return &BinInputStream{r: r}
}

func (s *BinInputStream) Read() (posbuf.Buffer, error) {
	pb := posbuf.NewBinBuffer()
	if err := readFull(s.r, pb.Data()); err != nil {
		return nil, err
	}
	return pb, nil
}

func (s *BinInputStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.r.Close()
}

// BinOutputStream writes BIN records back to back with no framing.
type BinOutputStream struct {
	w      io.WriteCloser
	closed bool
}

// NewBinOutputStream wraps w as a BIN output stream.
func NewBinOutputStream(w io.WriteCloser) *BinOutputStream {
	return &BinOutputStream{w: w}
}

func (s *BinOutputStream) WriteHeader() error { return nil }
func (s *BinOutputStream) WriteFooter() error { return nil }

func (s *BinOutputStream) Write(pb posbuf.Buffer) error {
	_, err := pb.WriteTo(s.w)
	return err
}

func (s *BinOutputStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.w.Close()
}
