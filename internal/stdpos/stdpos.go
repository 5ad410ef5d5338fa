// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package stdpos is a minimal standard-chess implementation of
// posn.Position, good enough to drive cmd/posconv without a real engine.
// It stores piece placement and the counters a codec reads or writes; it
// never validates a move or generates one, since move generation and
// legality are out of this module's scope entirely — a real engine is
// expected to supply its own Position and wire it into
// convert.Options.NewPosition instead of this one.
package stdpos

import (
	"github.com/dpldgr/variant-nnue-tools/piece"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// Piece type values for the five non-king piece types. King already
// claims piece.King (1); NoPieceType claims 0.
const (
	Pawn piece.Type = iota + 2
	Knight
	Bishop
	Rook
	Queen
)

// pieceOrder is the Huffman-table/hand-count ordering BIN and BIN2
// expect, matching sfen_packer.cpp's piece-code table order.
var pieceOrder = []piece.Type{Pawn, Knight, Bishop, Rook, Queen}

// Variant is the standard chess posn.Variant: five piece types, no
// drops.
type Variant struct{}

func (Variant) PieceIndex(t piece.Type) int {
	if t == piece.NoPieceType {
		return 0
	}
	for i, pt := range pieceOrder {
		if pt == t {
			return i + 1
		}
	}
	return 0
}

func (Variant) FreeDrops() bool          { return false }
func (Variant) PieceTypes() []piece.Type { return pieceOrder }

// Position is an 8x8 board of posn.Piece plus the counters a PosCodec
// reads and writes. The zero value is an empty board with White to move.
type Position struct {
	board   [64]posn.Piece
	stm     piece.Color
	rule50  int
	ply     int
	castle  map[posn.CastlingRight]bool
	ep      posn.Bitboard
	variant Variant
}

// New returns an empty standard-chess Position.
func New() *Position {
	return &Position{castle: make(map[posn.CastlingRight]bool)}
}

func (p *Position) MaxSquare() posn.Square                      { return 63 }
func (p *Position) MaxFile() int                                { return 7 }
func (p *Position) MaxRank() int                                { return 7 }
func (p *Position) ToVariantSquare(sq posn.Square) posn.Square   { return sq }
func (p *Position) FromVariantSquare(sq posn.Square) posn.Square { return sq }

// MakeSquare builds a square index from a zero-based file and rank,
// file varying fastest (a1=0, h1=7, a2=8, ...).
func (p *Position) MakeSquare(file, rank int) posn.Square {
	return posn.Square(rank*8 + file)
}

func (p *Position) PieceOn(sq posn.Square) posn.Piece { return p.board[sq] }

func (p *Position) PutPiece(pc posn.Piece, sq posn.Square) { p.board[sq] = pc }

func (p *Position) SideToMove() piece.Color { return p.stm }

func (p *Position) KingSquare(c piece.Color) posn.Square {
	for sq, pc := range p.board {
		if pc.Type == piece.King && pc.Color == c {
			return posn.Square(sq)
		}
	}
	return -1
}

func (p *Position) NNUEKing() piece.Type { return piece.King }

func (p *Position) Rule50Count() int  { return p.rule50 }
func (p *Position) PlyFromStart() int { return p.ply }
func (p *Position) GamePly() int      { return p.ply }

func (p *Position) VariantInfo() posn.Variant                  { return p.variant }
func (p *Position) PieceTypesCount() int                       { return len(pieceOrder) }
func (p *Position) CountInHand(c piece.Color, t piece.Type) int { return 0 }

func (p *Position) CanCastle(right posn.CastlingRight) bool { return p.castle[right] }
func (p *Position) EpSquares() posn.Bitboard                { return p.ep }

// PosCodecHelper implementation.

func (p *Position) SetSideToMove(c piece.Color)        { p.stm = c }
func (p *Position) SetNMoveRule(n int)                 { p.rule50 = n }
func (p *Position) SetPlyFromStart(n int)              { p.ply = n }
func (p *Position) SetCastle(right posn.CastlingRight) { p.castle[right] = true }
func (p *Position) SetEpSquares(sq posn.Square)        { p.ep = 1 << uint(sq) }
func (p *Position) SetState()                          {}
func (p *Position) PosIsOk() bool                      { return true }
