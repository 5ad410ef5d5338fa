// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dpldgr/variant-nnue-tools/bitio"
	"github.com/dpldgr/variant-nnue-tools/piece"
	"github.com/dpldgr/variant-nnue-tools/posbuf"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// Bin2Codec implements the variable-width, occupancy+index-coded BIN2
// format. Unlike BIN, every occupied square (including kings) carries a
// piece.Code payload rather than a Huffman code; the board is addressed
// through variant-square indices 0..max_sq rather than file/rank order.
type Bin2Codec struct {
	cur bitio.Cursor
	buf *posbuf.Bin2Buffer
}

// NewBin2Codec returns a ready-to-use BIN2 codec with its own scratch
// buffer.
func NewBin2Codec() *Bin2Codec {
	return &Bin2Codec{buf: posbuf.NewBin2Buffer()}
}

func (c *Bin2Codec) Name() string    { return "BIN2" }
func (c *Bin2Codec) Ext() string     { return ".bin2" }
func (c *Bin2Codec) Type() string    { return "bin2" }
func (c *Bin2Codec) IsDecoder() bool { return true }
func (c *Bin2Codec) IsEncoder() bool { return true }

func (c *Bin2Codec) Buffer(pb posbuf.Buffer) {
	bb, ok := pb.(*posbuf.Bin2Buffer)
	if !ok {
		panic(Error("BIN2 codec given a non-BIN2 buffer"))
	}
	c.buf = bb
}

func (c *Bin2Codec) CurrentBuffer() posbuf.Buffer { return c.buf }

func (c *Bin2Codec) Copy() posbuf.Buffer { return c.buf.Copy() }

func (c *Bin2Codec) Encode(pd *posn.PosData) (err error) {
	defer errRecover(&err)

	if c.buf == nil {
		return ErrBufferEmpty
	}
	pos := pd.Pos
	piece.CalcCodeSize(pos.PieceTypesCount())

	c.buf.Clear()
	c.cur.SetData(c.buf.Data())

	c.cur.WriteNBit(uint32(pos.PlyFromStart()), 16)

	maxSq := pos.ToVariantSquare(pos.MaxSquare())
	occ := make([]bool, maxSq+1)
	for i := posn.Square(0); i <= maxSq; i++ {
		sq := pos.FromVariantSquare(i)
		pc := pos.PieceOn(sq)
		occ[i] = !pc.IsEmpty()
		c.cur.WriteOneBit(boolBit(occ[i]))
	}

	kingType := pos.NNUEKing()
	for i := posn.Square(0); i <= maxSq; i++ {
		if !occ[i] {
			continue
		}
		sq := pos.FromVariantSquare(i)
		pc := pos.PieceOn(sq)
		code := bin2PieceCode(pos, pc, kingType)
		c.cur.WriteNBit(uint32(code.Code()), code.Bits())
	}

	if pos.VariantInfo().FreeDrops() {
		for _, col := range [2]piece.Color{piece.White, piece.Black} {
			for _, t := range pos.VariantInfo().PieceTypes() {
				c.cur.WriteNBit(uint32(pos.CountInHand(col, t)), 7)
			}
		}
	}

	c.cur.WriteNBit(uint32(pos.Rule50Count()), 8)

	c.cur.WriteOneBit(boolBit(pos.CanCastle(posn.WhiteOO)))
	c.cur.WriteOneBit(boolBit(pos.CanCastle(posn.WhiteOOO)))
	c.cur.WriteOneBit(boolBit(pos.CanCastle(posn.BlackOO)))
	c.cur.WriteOneBit(boolBit(pos.CanCastle(posn.BlackOOO)))

	ep := pos.EpSquares()
	if ep == 0 {
		c.cur.WriteOneBit(0)
	} else {
		c.cur.WriteOneBit(1)
		c.cur.WriteNBit(uint32(pos.ToVariantSquare(ep.Lsb())), 7)
	}

	if c.cur.Position() > 2048 {
		panic(Error("bin2 record exceeded 2048-bit budget"))
	}

	c.cur.WriteNBit(uint32(uint16(pd.Score)), 16)
	c.cur.WriteNBit(uint32(pd.Move), 16)
	c.cur.WriteNBit(uint32(uint8(pd.GameResult)), 8)

	c.buf.SetSize(c.cur.SizeBytes())
	return nil
}

func (c *Bin2Codec) Decode(pd *posn.PosData) (err error) {
	defer errRecover(&err)

	if c.buf == nil {
		return ErrBufferEmpty
	}
	pos := pd.Pos
	piece.CalcCodeSize(pos.PieceTypesCount())

	c.cur.SetData(c.buf.Data())
	hlp, _ := pos.(posn.PosCodecHelper)

	plyCount := int(c.cur.ReadNBit(16))

	maxSq := pos.ToVariantSquare(pos.MaxSquare())
	occ := make([]bool, maxSq+1)
	for i := posn.Square(0); i <= maxSq; i++ {
		occ[i] = c.cur.ReadOneBit() != 0
	}

	kingType := pos.NNUEKing()
	for i := posn.Square(0); i <= maxSq; i++ {
		if !occ[i] {
			continue
		}
		code := piece.FromCode(int(c.cur.ReadNBit(piece.CodeSize())), true)
		pc := bin2PieceFromCode(pos, code, kingType)
		pos.PutPiece(pc, pos.FromVariantSquare(i))
	}

	if pos.VariantInfo().FreeDrops() {
		for range [2]piece.Color{piece.White, piece.Black} {
			for range pos.VariantInfo().PieceTypes() {
				c.cur.ReadNBit(7) // no setter capability; discarded
			}
		}
	}

	rule50 := int(c.cur.ReadNBit(8))

	if hlp != nil {
		if c.cur.ReadOneBit() != 0 {
			hlp.SetCastle(posn.WhiteOO)
		}
		if c.cur.ReadOneBit() != 0 {
			hlp.SetCastle(posn.WhiteOOO)
		}
		if c.cur.ReadOneBit() != 0 {
			hlp.SetCastle(posn.BlackOO)
		}
		if c.cur.ReadOneBit() != 0 {
			hlp.SetCastle(posn.BlackOOO)
		}
	} else {
		c.cur.ReadOneBit()
		c.cur.ReadOneBit()
		c.cur.ReadOneBit()
		c.cur.ReadOneBit()
	}

	if c.cur.ReadOneBit() != 0 {
		sq := posn.Square(c.cur.ReadNBit(7))
		if hlp != nil {
			hlp.SetEpSquares(sq)
		}
	}

	if hlp != nil {
		hlp.SetNMoveRule(rule50)
		hlp.SetPlyFromStart(plyCount)
	}
	pd.GamePly = uint16(plyCount)

	pd.Score = int16(c.cur.ReadNBit(16))
	pd.Move = uint16(c.cur.ReadNBit(16))
	pd.GameResult = int8(c.cur.ReadNBit(8))

	if hlp != nil {
		hlp.SetState()
	}
	return nil
}

// bin2PieceCode builds the on-the-wire piece.Code for an occupied square,
// using the variant's 1-based piece index (0 reserved for the king) rather
// than a fixed engine-wide type enum, since this module only knows piece
// types through posn.Variant.
func bin2PieceCode(pos posn.Position, pc posn.Piece, kingType piece.Type) piece.Code {
	if kingType != piece.NoPieceType && pc.Type == kingType {
		return piece.FromColorAndType(pc.Color, piece.King)
	}
	idx := pos.VariantInfo().PieceIndex(pc.Type)
	return piece.FromTypeIndex(pc.Color, idx)
}

func bin2PieceFromCode(pos posn.Position, code piece.Code, kingType piece.Type) posn.Piece {
	if code.IsKing() {
		if kingType == piece.NoPieceType {
			kingType = piece.King
		}
		return posn.Piece{Color: code.Color(), Type: kingType}
	}
	idx := int(code.Type())
	for _, t := range pos.VariantInfo().PieceTypes() {
		if pos.VariantInfo().PieceIndex(t) == idx {
			return posn.Piece{Color: code.Color(), Type: t}
		}
	}
	panic(Error("bin2: piece code did not match any variant piece type"))
}
