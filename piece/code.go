// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package piece implements PieceCode, the compact (color, type, king-flag)
// encoding BIN2 uses for every occupied square.
//
// The bit width is variant-scaled: CalcCodeSize must be called once per
// conversion with the target variant's piece-type count before any Code is
// built, mirroring original_source/piececode.h's process-global code_size.
package piece

import "math/bits"

// Color mirrors the two-value side-to-move domain the codec cares about; it
// says nothing about whose turn it is, only which half of a PieceCode's
// color bit a piece occupies.
type Color int

const (
	White Color = 0
	Black Color = 1
)

// Type is a variant piece-type index. Zero is reserved for "no piece"; King
// is carried out of band via Code.IsKing rather than through Type's value,
// since a king's type-index bits are always zero on the wire.
type Type int

const (
	NoPieceType Type = 0
	King        Type = 1
)

// codeSize is the process-wide bit width of a Code's payload, set by
// CalcCodeSize. It is deliberately package-level state, the same as
// original_source/piececode.cpp's PieceCode::code_size: the conversion
// driver is single-threaded, so no synchronization is needed here. A
// concurrent redesign would need to thread this through a per-codec or
// per-conversion context instead.
var codeSize int

// CalcCodeSize sets the process-wide code width for typeCount piece types
// (not counting the king, which is encoded out of band). Per the codec
// design, the width is ceil(log2(2*typeCount)): one color bit plus enough
// type bits to distinguish typeCount values.
func CalcCodeSize(typeCount int) {
	codeSize = ceilLog2(2 * typeCount)
}

// CodeSize returns the current process-wide bit width set by CalcCodeSize.
func CodeSize() int { return codeSize }

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Code is a per-square piece encoding: empty, a king, or a (color,
// type-index) pair packed into CodeSize bits as
// [color : 1 bit | type_index : CodeSize-1 bits].
type Code struct {
	code    int
	bits    int
	isPiece bool
	isKing  bool
}

// Empty returns the Code for an unoccupied square.
func Empty() Code {
	return Code{bits: codeSize}
}

// FromColorAndType builds a Code from an explicit color and type. Passing
// NoPieceType yields Empty regardless of c.
func FromColorAndType(c Color, t Type) Code {
	pc := Code{bits: codeSize}
	switch t {
	case NoPieceType:
		pc.isPiece = false
		pc.code = 0
	case King:
		pc.isPiece = true
		pc.isKing = true
		pc.code = int(c) << uint(pc.bits-1)
	default:
		pc.isPiece = true
		pc.code = (int(c) << uint(pc.bits-1)) | int(t)
	}
	return pc
}

// FromTypeIndex builds a non-king Code directly from a raw type-index,
// bypassing FromColorAndType's King special-case. Callers that address
// piece types through an externally assigned index (rather than the
// domain Type enum) use this to avoid an index that happens to equal the
// King sentinel being mistaken for one.
func FromTypeIndex(c Color, typeIndex int) Code {
	pc := Code{bits: codeSize, isPiece: true}
	pc.code = (int(c) << uint(pc.bits-1)) | typeIndex
	return pc
}

// FromCode reconstructs a Code from its raw on-the-wire payload, given only
// whether the square is occupied; BIN2 decoding builds a Code in two
// passes, first from the occupancy bitmap and then from the payload bits
// read afterwards, so king-ness isn't known until code is available. A
// type-index of zero is reserved for the king (the same convention
// FromColorAndType uses to encode one), so it is derived here rather than
// passed in.
func FromCode(code int, isPiece bool) Code {
	pc := Code{code: code, bits: codeSize, isPiece: isPiece}
	if isPiece && pc.bits > 1 && code&((1<<uint(pc.bits-1))-1) == 0 {
		pc.isKing = true
	}
	return pc
}

// Code returns the raw payload bits written to or read from the wire.
func (p Code) Code() int { return p.code }

// Bits returns the bit width this Code was built or read with.
func (p Code) Bits() int { return p.bits }

// IsEmpty reports whether the square holds no piece.
func (p Code) IsEmpty() bool { return !p.isPiece }

// IsPiece reports whether the square holds a piece (including a king).
func (p Code) IsPiece() bool { return p.isPiece }

// IsKing reports whether the square holds a king.
func (p Code) IsKing() bool { return p.isKing }

// Color extracts the color bit from the payload: color = code >> (bits-1).
func (p Code) Color() Color {
	if p.bits == 0 {
		return White
	}
	return Color(p.code >> uint(p.bits-1))
}

// Type extracts the type-index from the payload: type_index = code &
// ((1<<(bits-1))-1). It returns King for a king square without consulting
// the payload bits, since those bits are always zero for a king.
func (p Code) Type() Type {
	if !p.isPiece {
		return NoPieceType
	}
	if p.isKing {
		return King
	}
	if p.bits <= 1 {
		return NoPieceType
	}
	return Type(p.code & ((1 << uint(p.bits-1)) - 1))
}

// SetColor mutates the color bit of an already-built Code in place,
// preserving its type-index bits. The BIN2 decoder does not use it; it
// builds each Code in one step with FromCode.
func (p *Code) SetColor(c Color) {
	if p.code == 0 && !p.isPiece {
		return
	}
	p.code = (p.code &^ (1 << uint(p.bits-1))) | (int(c) << uint(p.bits-1))
}
