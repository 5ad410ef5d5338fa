// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package posbuf implements PosBuffer, the tagged byte container a codec
// fills and an output stream consumes. Each format owns its own concrete
// type, sized the way its wire format demands, following
// original_source/posbuffer.h's fixed/variable/text split.
package posbuf

import "io"

// Buffer is the common contract every concrete buffer satisfies: a
// clearable, sized byte container that can snapshot itself and write its
// contents to a sink. Ownership is value-based: a stream hands a Buffer to
// a codec, which produces a new Buffer via Copy() for the output stream to
// consume. Nothing is shared between the two.
type Buffer interface {
	// Clear zeroes the buffer's contents (and its size, for variable-width
	// buffers) without changing its capacity.
	Clear()
	// Data returns the buffer's storage. For a fixed-size buffer this is
	// always MaxSize() bytes; for Bin2Buffer, callers should only look at
	// Data()[:Size()].
	Data() []byte
	// Size returns the number of meaningful bytes currently held.
	Size() int
	// SetSize records how many bytes of Data() are meaningful. Fixed-size
	// buffers ignore this; Bin2Buffer enforces it against MaxSize.
	SetSize(n int)
	// MaxSize returns the buffer's capacity in bytes.
	MaxSize() int
	// Copy returns an independent snapshot of the buffer's current state.
	Copy() Buffer
	// WriteTo writes Data()[:Size()] to w.
	WriteTo(w io.Writer) (int64, error)
}

// BinBuffer is the fixed 72-byte buffer BIN records use.
type BinBuffer struct {
	data [72]byte
}

// NewBinBuffer returns a zeroed BinBuffer.
func NewBinBuffer() *BinBuffer { return &BinBuffer{} }

func (b *BinBuffer) Clear() { b.data = [72]byte{} }

func (b *BinBuffer) Data() []byte { return b.data[:] }

func (b *BinBuffer) Size() int { return len(b.data) }

func (b *BinBuffer) SetSize(int) {}

func (b *BinBuffer) MaxSize() int { return len(b.data) }

func (b *BinBuffer) Copy() Buffer {
	cp := *b
	return &cp
}

func (b *BinBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[:])
	return int64(n), err
}

// Bin2Buffer is the up-to-256-byte buffer BIN2 records use. Unlike
// BinBuffer it carries an explicit size distinct from its capacity, since
// every record's bit-packed payload is a different length.
type Bin2Buffer struct {
	size int
	data [256]byte
}

// NewBin2Buffer returns a zeroed Bin2Buffer with size 0.
func NewBin2Buffer() *Bin2Buffer { return &Bin2Buffer{} }

func (b *Bin2Buffer) Clear() {
	b.data = [256]byte{}
	b.size = 0
}

func (b *Bin2Buffer) Data() []byte { return b.data[:] }

func (b *Bin2Buffer) Size() int { return b.size }

// SetSize panics if n exceeds MaxSize, mirroring the original's assert.
func (b *Bin2Buffer) SetSize(n int) {
	if n > len(b.data) {
		panic("posbuf: bin2 size exceeds max_size")
	}
	b.size = n
}

func (b *Bin2Buffer) MaxSize() int { return len(b.data) }

func (b *Bin2Buffer) Copy() Buffer {
	cp := *b
	return &cp
}

func (b *Bin2Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[:b.size])
	return int64(n), err
}

// JpnBuffer is the unbounded UTF-8 text buffer JPN records use.
type JpnBuffer struct {
	data string
}

// NewJpnBuffer returns an empty JpnBuffer.
func NewJpnBuffer() *JpnBuffer { return &JpnBuffer{} }

// SetString replaces the buffer's contents, same role as the original's
// constructor-from-string.
func (b *JpnBuffer) SetString(s string) { b.data = s }

// String returns the buffer's text.
func (b *JpnBuffer) String() string { return b.data }

func (b *JpnBuffer) Clear() { b.data = "" }

func (b *JpnBuffer) Data() []byte { return []byte(b.data) }

func (b *JpnBuffer) Size() int { return len(b.data) }

func (b *JpnBuffer) SetSize(int) {}

// MaxSize has no real limit; we report math.MaxInt32 rather than the
// original's size_t(-1) since Go has no unsigned size_t idiom here.
func (b *JpnBuffer) MaxSize() int { return 1<<31 - 1 }

func (b *JpnBuffer) Copy() Buffer {
	cp := *b
	return &cp
}

func (b *JpnBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.data)
	return int64(n), err
}
