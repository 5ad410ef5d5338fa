// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package posn defines the capability set a codec needs from an external
// position implementation, plus the PosData value record that flows
// between a decoder and an encoder.
//
// Nothing in this package represents chess rules, move generation, or
// search; per scope, Position is an opaque capability interface supplied
// by a collaborator. This module only consumes it.
package posn

import "github.com/dpldgr/variant-nnue-tools/piece"

// Square is a board square index in the variant's own numbering.
type Square int

// CastlingRight is one of the four corner-castling rights a position may
// grant. The bit order (W-OO, W-OOO, B-OO, B-OOO) matches BIN's four
// castling bits.
type CastlingRight int

const (
	WhiteOO CastlingRight = iota
	WhiteOOO
	BlackOO
	BlackOOO
)

// Bitboard is a square-indexed bitmap, used only for en passant squares.
type Bitboard uint64

// Lsb returns the least-significant set square. It panics if the bitboard
// is empty; callers must check b != 0 first.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		panic("posn: Lsb of empty bitboard")
	}
	for sq := Square(0); ; sq++ {
		if b&(1<<uint(sq)) != 0 {
			return sq
		}
	}
}

// Piece is a (color, type) pair describing a square's occupant, distinct
// from piece.Code: this is the position's own view of a square, before any
// wire-format bit-packing is applied to it.
type Piece struct {
	Color piece.Color
	Type  piece.Type
}

// Empty is the Piece value for an unoccupied square.
var Empty = Piece{Type: piece.NoPieceType}

// IsEmpty reports whether p represents no piece.
func (p Piece) IsEmpty() bool { return p.Type == piece.NoPieceType }

// Variant describes the piece-type set and drop rules a Position is
// configured with; it is consulted by both BIN and BIN2 codecs.
type Variant interface {
	// PieceIndex maps a piece type to its 1-based index. BIN writes a
	// board piece as Huffman table entry PieceIndex+1; BIN2 and JPN use
	// it as the type-index bits of a piece code, where 0 is the king.
	// Index 0 is reserved for NoPieceType.
	PieceIndex(t piece.Type) int
	// FreeDrops reports whether this variant allows piece drops (e.g.
	// crazyhouse), which adds a pieces-in-hand section to BIN/BIN2.
	FreeDrops() bool
	// PieceTypes lists every playable, non-king piece type this variant
	// uses, in the order hand counts and Huffman-table assignment expect.
	PieceTypes() []piece.Type
}

// Position is the capability set a codec requires of an external
// position implementation, mirroring original_source/poscodec.h's
// PosCodecHelper surface. A codec only ever interacts with positions
// through this interface.
type Position interface {
	// Geometry.
	MaxSquare() Square
	MaxFile() int
	MaxRank() int
	ToVariantSquare(sq Square) Square
	FromVariantSquare(sq Square) Square
	// MakeSquare builds a native board square from a zero-based file and
	// rank. Not part of the capability list the codec spec enumerates, but
	// required to reproduce BIN's rank/file board traversal order; added
	// here rather than assuming a fixed square-numbering convention.
	MakeSquare(file, rank int) Square

	// Contents.
	PieceOn(sq Square) Piece
	PutPiece(pc Piece, sq Square)
	SideToMove() piece.Color
	KingSquare(c piece.Color) Square
	// NNUEKing returns the piece type treated as this variant's designated
	// king for king-square encoding, or piece.NoPieceType if the variant
	// has no such concept (in which case BIN writes a sentinel square).
	NNUEKing() piece.Type

	// Counters.
	Rule50Count() int
	PlyFromStart() int
	GamePly() int

	// Variant.
	VariantInfo() Variant
	PieceTypesCount() int
	CountInHand(c piece.Color, t piece.Type) int

	// Castling/EP.
	CanCastle(right CastlingRight) bool
	EpSquares() Bitboard
}

// PosCodecHelper is the mutation surface a decoder uses to write derived
// state back into a Position once its board and counters are filled in.
type PosCodecHelper interface {
	SetSideToMove(c piece.Color)
	SetNMoveRule(n int)
	SetPlyFromStart(n int)
	SetCastle(right CastlingRight)
	SetEpSquares(sq Square)
	// SetState finalizes any derived state (e.g. check info) the position
	// implementation caches, analogous to Stockfish's StateInfo refresh.
	SetState()
	// PosIsOk runs the position's own internal consistency check.
	PosIsOk() bool
}

// PosData is the value record a decoder fills in and an encoder reads
// from: a position reference plus the auxiliary fields every format's
// trailer carries.
type PosData struct {
	Pos        Position
	Score      int16
	Move       uint16
	GamePly    uint16
	GameResult int8
}
