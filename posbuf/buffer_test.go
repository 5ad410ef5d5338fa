// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package posbuf

import (
	"bytes"
	"testing"
)

func TestBinBufferFixedSize(t *testing.T) {
	b := NewBinBuffer()
	if b.MaxSize() != 72 || b.Size() != 72 {
		t.Fatalf("BinBuffer size = %d/%d, want 72/72", b.Size(), b.MaxSize())
	}
	b.Data()[0] = 0xff
	cp := b.Copy()
	b.Data()[0] = 0
	if cp.Data()[0] != 0xff {
		t.Errorf("Copy() did not snapshot independently")
	}
}

func TestBinBufferWriteTo(t *testing.T) {
	b := NewBinBuffer()
	b.Data()[1] = 0x42
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil || n != 72 {
		t.Fatalf("WriteTo: n=%d err=%v", n, err)
	}
	if buf.Bytes()[1] != 0x42 {
		t.Errorf("written byte = %#x, want 0x42", buf.Bytes()[1])
	}
}

func TestBin2BufferSize(t *testing.T) {
	b := NewBin2Buffer()
	b.SetSize(10)
	if b.Size() != 10 {
		t.Errorf("Size() = %d, want 10", b.Size())
	}
	var buf bytes.Buffer
	n, _ := b.WriteTo(&buf)
	if n != 10 {
		t.Errorf("WriteTo wrote %d bytes, want 10", n)
	}
}

func TestBin2BufferSetSizePanicsOverCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("SetSize(257) did not panic")
		}
	}()
	b := NewBin2Buffer()
	b.SetSize(257)
}

func TestBin2BufferClearResetsSize(t *testing.T) {
	b := NewBin2Buffer()
	b.SetSize(50)
	b.Clear()
	if b.Size() != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", b.Size())
	}
}

func TestJpnBuffer(t *testing.T) {
	b := NewJpnBuffer()
	b.SetString(`{"p":[]}`)
	if b.Size() != len(`{"p":[]}`) {
		t.Errorf("Size() = %d, want %d", b.Size(), len(`{"p":[]}`))
	}
	var buf bytes.Buffer
	b.WriteTo(&buf)
	if buf.String() != `{"p":[]}` {
		t.Errorf("WriteTo wrote %q", buf.String())
	}
	cp := b.Copy().(*JpnBuffer)
	b.SetString("changed")
	if cp.String() != `{"p":[]}` {
		t.Errorf("Copy() shares state with original")
	}
}
