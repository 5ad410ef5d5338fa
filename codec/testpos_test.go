// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"github.com/dpldgr/variant-nnue-tools/piece"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// standardVariant is a minimal posn.Variant for plain chess: five piece
// types (excluding the king, which is handled out of band), indexed in
// their conventional Huffman-table order.
type standardVariant struct{}

// Piece type values start at 2: King already claims 1.
const (
	pawnType piece.Type = iota + 2
	knightType
	bishopType
	rookType
	queenType
)

var stdPieceOrder = []piece.Type{pawnType, knightType, bishopType, rookType, queenType}

func (standardVariant) PieceIndex(t piece.Type) int {
	if t == piece.NoPieceType {
		return 0
	}
	for i, pt := range stdPieceOrder {
		if pt == t {
			return i + 1
		}
	}
	return 0
}

func (standardVariant) FreeDrops() bool           { return false }
func (standardVariant) PieceTypes() []piece.Type  { return stdPieceOrder }

// testPosition is a bare in-memory 8x8 Position used to exercise codec
// round trips without depending on a real chess engine.
type testPosition struct {
	board      [64]posn.Piece
	stm        piece.Color
	rule50     int
	gamePly    int
	castle     map[posn.CastlingRight]bool
	ep         posn.Bitboard
	kingType   piece.Type
	variant    standardVariant
}

func newTestPosition() *testPosition {
	return &testPosition{
		castle:   map[posn.CastlingRight]bool{},
		kingType: piece.King,
	}
}

func (p *testPosition) MaxSquare() posn.Square          { return 63 }
func (p *testPosition) MaxFile() int                    { return 7 }
func (p *testPosition) MaxRank() int                    { return 7 }
func (p *testPosition) ToVariantSquare(sq posn.Square) posn.Square   { return sq }
func (p *testPosition) FromVariantSquare(sq posn.Square) posn.Square { return sq }
func (p *testPosition) MakeSquare(file, rank int) posn.Square {
	return posn.Square(rank*8 + file)
}

func (p *testPosition) PieceOn(sq posn.Square) posn.Piece { return p.board[sq] }
func (p *testPosition) PutPiece(pc posn.Piece, sq posn.Square) {
	p.board[sq] = pc
}
func (p *testPosition) SideToMove() piece.Color        { return p.stm }
func (p *testPosition) KingSquare(c piece.Color) posn.Square {
	for sq, pc := range p.board {
		if pc.Type == piece.King && pc.Color == c {
			return posn.Square(sq)
		}
	}
	return 0
}
func (p *testPosition) NNUEKing() piece.Type { return p.kingType }

func (p *testPosition) Rule50Count() int  { return p.rule50 }
func (p *testPosition) PlyFromStart() int { return p.gamePly }
func (p *testPosition) GamePly() int      { return p.gamePly }

func (p *testPosition) VariantInfo() posn.Variant { return p.variant }
func (p *testPosition) PieceTypesCount() int      { return len(p.variant.PieceTypes()) }
func (p *testPosition) CountInHand(c piece.Color, t piece.Type) int { return 0 }

func (p *testPosition) CanCastle(right posn.CastlingRight) bool { return p.castle[right] }
func (p *testPosition) EpSquares() posn.Bitboard                { return p.ep }

// PosCodecHelper implementation.
func (p *testPosition) SetSideToMove(c piece.Color) { p.stm = c }
func (p *testPosition) SetNMoveRule(n int)           { p.rule50 = n }
func (p *testPosition) SetPlyFromStart(n int)        { p.gamePly = n }
func (p *testPosition) SetCastle(right posn.CastlingRight) {
	p.castle[right] = true
}
func (p *testPosition) SetEpSquares(sq posn.Square) { p.ep = 1 << uint(sq) }
func (p *testPosition) SetState()                   {}
func (p *testPosition) PosIsOk() bool                { return true }

func twoKingsPosition() *testPosition {
	p := newTestPosition()
	p.PutPiece(posn.Piece{Color: piece.White, Type: piece.King}, p.MakeSquare(4, 0)) // e1
	p.PutPiece(posn.Piece{Color: piece.Black, Type: piece.King}, p.MakeSquare(7, 0)) // h1
	return p
}

func standardStartPosition() *testPosition {
	p := newTestPosition()
	backRank := []piece.Type{rookType, knightType, bishopType, queenType, piece.King, bishopType, knightType, rookType}
	for f, typ := range backRank {
		p.PutPiece(posn.Piece{Color: piece.White, Type: typ}, p.MakeSquare(f, 0))
		p.PutPiece(posn.Piece{Color: piece.Black, Type: typ}, p.MakeSquare(f, 7))
	}
	for f := 0; f < 8; f++ {
		p.PutPiece(posn.Piece{Color: piece.White, Type: pawnType}, p.MakeSquare(f, 1))
		p.PutPiece(posn.Piece{Color: piece.Black, Type: pawnType}, p.MakeSquare(f, 6))
	}
	return p
}
