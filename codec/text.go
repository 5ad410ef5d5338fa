// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dpldgr/variant-nnue-tools/posbuf"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// textStub backs PlainCodec, EpdCodec, and FenCodec. original_source's
// PlainCodec::buffer/copy are themselves unfinished TODO stubs; this
// module declares all three stubs that report themselves as neither
// encoder nor decoder so the registry and conversion driver can reject a
// conversion that targets one with BadCapability rather than silently
// producing empty output.
type textStub struct {
	name string
	ext  string
	buf  *posbuf.JpnBuffer
}

func (c *textStub) Name() string    { return c.name }
func (c *textStub) Ext() string     { return c.ext }
func (c *textStub) Type() string    { return c.name }
func (c *textStub) IsDecoder() bool { return false }
func (c *textStub) IsEncoder() bool { return false }

func (c *textStub) Buffer(pb posbuf.Buffer) {
	if jb, ok := pb.(*posbuf.JpnBuffer); ok {
		c.buf = jb
	}
}

func (c *textStub) CurrentBuffer() posbuf.Buffer { return c.buf }

func (c *textStub) Copy() posbuf.Buffer {
	if c.buf == nil {
		return posbuf.NewJpnBuffer()
	}
	return c.buf.Copy()
}

func (c *textStub) Encode(pd *posn.PosData) error { return ErrNotImplemented }
func (c *textStub) Decode(pd *posn.PosData) error { return ErrNotImplemented }

// PlainCodec is the unimplemented PLAIN text format.
type PlainCodec struct{ textStub }

// NewPlainCodec returns the PLAIN stub codec.
func NewPlainCodec() *PlainCodec {
	return &PlainCodec{textStub{name: "PLAIN", ext: ".plain"}}
}

// EpdCodec is the unimplemented EPD text format.
type EpdCodec struct{ textStub }

// NewEpdCodec returns the EPD stub codec.
func NewEpdCodec() *EpdCodec {
	return &EpdCodec{textStub{name: "EPD", ext: ".epd"}}
}

// FenCodec is the unimplemented FEN text format.
type FenCodec struct{ textStub }

// NewFenCodec returns the FEN stub codec.
func NewFenCodec() *FenCodec {
	return &FenCodec{textStub{name: "FEN", ext: ".fen"}}
}
