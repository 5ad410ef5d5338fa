// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"bytes"
	"fmt"

	"github.com/dpldgr/variant-nnue-tools/piece"
	"github.com/dpldgr/variant-nnue-tools/posbuf"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// JpnCodec implements the JSON text format. Only encoding is defined by
// original_source/poscodec.cpp's JpnCodec; decoding is not defined there
// either and is intentionally unimplemented here.
type JpnCodec struct {
	buf *posbuf.JpnBuffer
}

// NewJpnCodec returns a ready-to-use JPN encoder with its own scratch
// buffer.
func NewJpnCodec() *JpnCodec {
	return &JpnCodec{buf: posbuf.NewJpnBuffer()}
}

func (c *JpnCodec) Name() string    { return "JPN" }
func (c *JpnCodec) Ext() string     { return ".jpn" }
func (c *JpnCodec) Type() string    { return "jpn" }
func (c *JpnCodec) IsDecoder() bool { return false }
func (c *JpnCodec) IsEncoder() bool { return true }

func (c *JpnCodec) Buffer(pb posbuf.Buffer) {
	jb, ok := pb.(*posbuf.JpnBuffer)
	if !ok {
		panic(Error("JPN codec given a non-JPN buffer"))
	}
	c.buf = jb
}

func (c *JpnCodec) CurrentBuffer() posbuf.Buffer { return c.buf }

func (c *JpnCodec) Copy() posbuf.Buffer { return c.buf.Copy() }

// jpnPieceHex formats a square's occupant as a hex string whose top bit
// (at piece.CodeSize()) flags occupancy, so an empty square always formats
// as "0" regardless of the color/type bits an occupied square at the same
// position would otherwise share (a white king's color+type bits are all
// zero, which would otherwise be indistinguishable from empty).
func jpnPieceHex(pos posn.Position, pc posn.Piece, kingType piece.Type) string {
	if pc.IsEmpty() {
		return "0"
	}
	bits := piece.CodeSize()
	var typeIdx int
	if kingType != piece.NoPieceType && pc.Type == kingType {
		typeIdx = 0
	} else {
		typeIdx = pos.VariantInfo().PieceIndex(pc.Type)
	}
	colorBit := 0
	if pc.Color == piece.Black {
		colorBit = 1
	}
	v := (1 << uint(bits)) | (colorBit << uint(bits-1)) | typeIdx
	return fmt.Sprintf("%x", v)
}

// Encode renders pd as a single JSON object into the scratch buffer.
func (c *JpnCodec) Encode(pd *posn.PosData) (err error) {
	defer errRecover(&err)

	if c.buf == nil {
		return ErrBufferEmpty
	}
	pos := pd.Pos
	piece.CalcCodeSize(pos.PieceTypesCount())
	kingType := pos.NNUEKing()

	var b bytes.Buffer
	b.WriteString(`{"p":[`)
	maxSq := pos.ToVariantSquare(pos.MaxSquare())
	for i := posn.Square(0); i <= maxSq; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		sq := pos.FromVariantSquare(i)
		fmt.Fprintf(&b, `"%s"`, jpnPieceHex(pos, pos.PieceOn(sq), kingType))
	}
	b.WriteString(`],"m":`)
	fmt.Fprintf(&b, "%d", pos.PlyFromStart())

	if n := pos.Rule50Count(); n != 0 {
		fmt.Fprintf(&b, `,"n":%d`, n)
	}

	if pos.VariantInfo().FreeDrops() {
		b.WriteString(`,"d":[`)
		first := true
		for _, col := range [2]piece.Color{piece.White, piece.Black} {
			for _, t := range pos.VariantInfo().PieceTypes() {
				if !first {
					b.WriteByte(',')
				}
				first = false
				fmt.Fprintf(&b, "%d", pos.CountInHand(col, t))
			}
		}
		b.WriteByte(']')
	}

	fmt.Fprintf(&b, `,"sc":%d,"mv":"%04x","r":%d}`, pd.Score, pd.Move, pd.GameResult)

	c.buf.SetString(b.String())
	return nil
}

// Decode is not implemented; JPN is an open question for decoding (spec
// §4.3.3).
func (c *JpnCodec) Decode(pd *posn.PosData) error {
	return ErrNotImplemented
}
