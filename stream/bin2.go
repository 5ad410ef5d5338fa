// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stream

import (
	"encoding/binary"
	"io"

	"github.com/dpldgr/variant-nnue-tools/posbuf"
)

// Bin2Extension is the canonical file extension for BIN2 files.
const Bin2Extension = ".bin2"

// bin2Magic is the 5-byte file header every BIN2 file must open with.
var bin2Magic = [5]byte{0xC2, 0x34, 0x56, 0x78, 0x20}

// bin2LengthMagicMask isolates the top two bits of a BIN2 length prefix,
// which the format reserves as a per-record "position magic" that must
// read 00.
const bin2LengthMagicMask = 0xC000

// Bin2InputStream reads BIN2's 5-byte magic header followed by
// length-prefixed records. Unlike original_source/sfen_stream.h, a
// mismatched header is mandatory to reject here: the stream reports
// ErrHeaderMismatch and yields no records.
type Bin2InputStream struct {
	r          io.ReadCloser
	closed     bool
	headerRead bool
}

// NewBin2InputStream wraps r as a BIN2 input stream.
func NewBin2InputStream(r io.ReadCloser) *Bin2InputStream {
	return &Bin2InputStream{r: r}
}

func (s *Bin2InputStream) checkHeader() error {
	if s.headerRead {
		return nil
	}
	s.headerRead = true
	var got [5]byte
	if err := readFull(s.r, got[:]); err != nil {
		if err == io.EOF {
			return ErrHeaderMismatch
		}
		return err
	}
	if got != bin2Magic {
		return ErrHeaderMismatch
	}
	return nil
}

func (s *Bin2InputStream) Read() (posbuf.Buffer, error) {
	if err := s.checkHeader(); err != nil {
		return nil, err
	}

	var lenBuf [2]byte
	if err := readFull(s.r, lenBuf[:]); err != nil {
		return nil, err
	}
	length := binary.LittleEndian.Uint16(lenBuf[:])
	if length&bin2LengthMagicMask != 0 {
		return nil, ErrRecordMagicBad
	}

	pb := posbuf.NewBin2Buffer()
	if int(length) > pb.MaxSize() {
		return nil, ErrTruncation
	}
	pb.SetSize(int(length))
	if err := readFull(s.r, pb.Data()[:length]); err != nil {
		return nil, err
	}
	return pb, nil
}

func (s *Bin2InputStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.r.Close()
}

// Bin2OutputStream writes the BIN2 magic header once, then
// length-prefixed records.
type Bin2OutputStream struct {
	w             io.WriteCloser
	closed        bool
	headerWritten bool
}

// NewBin2OutputStream wraps w as a BIN2 output stream.
func NewBin2OutputStream(w io.WriteCloser) *Bin2OutputStream {
	return &Bin2OutputStream{w: w}
}

func (s *Bin2OutputStream) WriteHeader() error {
	if s.headerWritten {
		return nil
	}
	s.headerWritten = true
	_, err := s.w.Write(bin2Magic[:])
	return err
}

func (s *Bin2OutputStream) WriteFooter() error { return nil }

func (s *Bin2OutputStream) Write(pb posbuf.Buffer) error {
	if err := s.WriteHeader(); err != nil {
		return err
	}
	size := pb.Size()
	if size&bin2LengthMagicMask != 0 {
		return Error("bin2 record too large to frame")
	}
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(size))
	if _, err := s.w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := pb.WriteTo(s.w)
	return err
}

func (s *Bin2OutputStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.w.Close()
}
