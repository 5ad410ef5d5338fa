// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dpldgr/variant-nnue-tools/bitio"
	"github.com/dpldgr/variant-nnue-tools/huffman"
	"github.com/dpldgr/variant-nnue-tools/piece"
	"github.com/dpldgr/variant-nnue-tools/posbuf"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// binTrailerOffset is the fixed bit offset, from the start of a BIN
// record, at which the score/move/ply/result trailer begins (spec
// §4.3.1 item 10).
const binTrailerOffset = 512

// binHandCountBits is the width of each pieces-in-hand count BIN writes;
// the source widens this to 7 bits for record formats wider than 512
// bits, but BIN's own width is always exactly 512.
const binHandCountBits = 5

// BinCodec implements the fixed 72-byte BIN format.
type BinCodec struct {
	cur bitio.Cursor
	buf *posbuf.BinBuffer
}

// NewBinCodec returns a ready-to-use BIN codec with its own scratch
// buffer.
func NewBinCodec() *BinCodec {
	return &BinCodec{buf: posbuf.NewBinBuffer()}
}

func (c *BinCodec) Name() string     { return "BIN" }
func (c *BinCodec) Ext() string      { return ".bin" }
func (c *BinCodec) Type() string     { return "bin" }
func (c *BinCodec) IsDecoder() bool  { return true }
func (c *BinCodec) IsEncoder() bool  { return true }

func (c *BinCodec) Buffer(pb posbuf.Buffer) {
	bb, ok := pb.(*posbuf.BinBuffer)
	if !ok {
		panic(Error("BIN codec given a non-BIN buffer"))
	}
	c.buf = bb
}

func (c *BinCodec) CurrentBuffer() posbuf.Buffer { return c.buf }

func (c *BinCodec) Copy() posbuf.Buffer { return c.buf.Copy() }

// Encode fills the scratch buffer from pd. It panics with an Error (caught
// by the errRecover boundary) on any capability violation; callers should
// not rely on partial output from a failed Encode.
func (c *BinCodec) Encode(pd *posn.PosData) (err error) {
	defer errRecover(&err)

	if c.buf == nil {
		return ErrBufferEmpty
	}
	c.buf.Clear()
	c.cur.SetData(c.buf.Data())
	pos := pd.Pos

	c.cur.WriteOneBit(int(pos.SideToMove()))

	kingType := pos.NNUEKing()
	sentinel := uint32((pos.MaxFile() + 1) * (pos.MaxRank() + 1))
	for _, col := range [2]piece.Color{piece.White, piece.Black} {
		if kingType != piece.NoPieceType {
			c.cur.WriteNBit(uint32(pos.ToVariantSquare(pos.KingSquare(col))), 7)
		} else {
			c.cur.WriteNBit(sentinel, 7)
		}
	}

	for r := pos.MaxRank(); r >= 0; r-- {
		for f := 0; f <= pos.MaxFile(); f++ {
			sq := pos.MakeSquare(f, r)
			pc := pos.PieceOn(sq)
			if kingType != piece.NoPieceType && pc.Type == kingType {
				continue
			}
			writeBoardPiece(&c.cur, pos, pc)
		}
	}

	for _, col := range [2]piece.Color{piece.White, piece.Black} {
		for _, t := range pos.VariantInfo().PieceTypes() {
			c.cur.WriteNBit(uint32(pos.CountInHand(col, t)), binHandCountBits)
		}
	}

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

	rule50 := pos.Rule50Count()
	c.cur.WriteNBit(uint32(rule50)&0x3f, 6)

	stmBlack := 0
	if pos.SideToMove() == piece.Black {
		stmBlack = 1
	}
	fm := 1 + (pos.GamePly()-stmBlack)/2
	c.cur.WriteNBit(uint32(fm)&0xff, 8)
	c.cur.WriteNBit(uint32(fm>>8)&0xff, 8)

	c.cur.WriteOneBit(int((rule50 >> 6) & 1))

	if c.cur.Position() > binTrailerOffset {
		panic(Error("bin record exceeded trailer offset"))
	}

	c.cur.SetCursor(binTrailerOffset)
	c.cur.WriteNBit(uint32(uint16(pd.Score)), 16)
	c.cur.WriteNBit(uint32(pd.Move), 16)
	c.cur.WriteNBit(uint32(pd.GamePly), 16)
	c.cur.WriteNBit(uint32(uint8(pd.GameResult)), 8)

	return nil
}

// Decode reads the scratch buffer into pd, restoring the position's board,
// counters, castling, and en passant state through the PosCodecHelper
// capability.
func (c *BinCodec) Decode(pd *posn.PosData) (err error) {
	defer errRecover(&err)

	if c.buf == nil {
		return ErrBufferEmpty
	}
	c.cur.SetData(c.buf.Data())
	pos := pd.Pos
	hlp, _ := pos.(posn.PosCodecHelper)

	stm := piece.Color(c.cur.ReadOneBit())

	kingType := pos.NNUEKing()
	sentinel := uint32((pos.MaxFile() + 1) * (pos.MaxRank() + 1))
	var kingSq [2]posn.Square
	for i, col := range [2]piece.Color{piece.White, piece.Black} {
		v := c.cur.ReadNBit(7)
		if kingType != piece.NoPieceType && v != sentinel {
			kingSq[i] = posn.Square(v)
			pos.PutPiece(posn.Piece{Color: col, Type: kingType}, pos.FromVariantSquare(kingSq[i]))
		}
	}

	for r := pos.MaxRank(); r >= 0; r-- {
		for f := 0; f <= pos.MaxFile(); f++ {
			sq := pos.MakeSquare(f, r)
			if kingType != piece.NoPieceType && isKingSquare(pos, sq, kingSq[:]) {
				continue
			}
			if pc, ok := readBoardPiece(&c.cur, pos); ok {
				pos.PutPiece(pc, sq)
			}
		}
	}

	for _, col := range [2]piece.Color{piece.White, piece.Black} {
		for range pos.VariantInfo().PieceTypes() {
			c.cur.ReadNBit(binHandCountBits) // no setter capability on Position; discarded
			_ = col
		}
	}

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

	rule50Lo := int(c.cur.ReadNBit(6))
	fmLo := int(c.cur.ReadNBit(8))
	fmHi := int(c.cur.ReadNBit(8))
	rule50Hi := c.cur.ReadOneBit()

	rule50 := rule50Lo | (rule50Hi << 6)
	fm := fmLo | (fmHi << 8)

	stmIsBlack := 0
	if stm == piece.Black {
		stmIsBlack = 1
	}
	gamePly := 2*(fm-1) + stmIsBlack
	if gamePly < 0 {
		gamePly = 0
	}

	if hlp != nil {
		hlp.SetSideToMove(stm)
		hlp.SetNMoveRule(rule50)
		hlp.SetPlyFromStart(gamePly)
	}

	c.cur.SetCursor(binTrailerOffset)
	pd.Score = int16(c.cur.ReadNBit(16))
	pd.Move = uint16(c.cur.ReadNBit(16))
	pd.GamePly = uint16(c.cur.ReadNBit(16))
	pd.GameResult = int8(c.cur.ReadNBit(8))

	if hlp != nil {
		hlp.SetState()
	}
	return nil
}

func isKingSquare(pos posn.Position, sq posn.Square, kings []posn.Square) bool {
	for _, k := range kings {
		if pos.FromVariantSquare(k) == sq {
			return true
		}
	}
	return false
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func writeBoardPiece(c *bitio.Cursor, pos posn.Position, pc posn.Piece) {
	if pc.IsEmpty() {
		huffman.Encode(c, 0)
		return
	}
	pr := pos.VariantInfo().PieceIndex(pc.Type) + 1
	huffman.Encode(c, pr)
	c.WriteOneBit(int(pc.Color))
}

func readBoardPiece(c *bitio.Cursor, pos posn.Position) (posn.Piece, bool) {
	pr := huffman.Decode(c)
	if pr == 0 {
		return posn.Empty, false
	}
	col := piece.Color(c.ReadOneBit())
	for _, t := range pos.VariantInfo().PieceTypes() {
		if pos.VariantInfo().PieceIndex(t)+1 == pr {
			return posn.Piece{Color: col, Type: t}, true
		}
	}
	panic(Error("bin: huffman code did not match any variant piece type"))
}
