// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements the fixed 17-entry board-piece prefix code BIN
// uses for every square: 1 bit for an empty square, 5-bit odd-alphabet codes
// for each of the 16 occupied piece-table entries.
//
// The alphabet and dispatch style follow xflate/meta's small fixed-alphabet
// Huffman symbols (encode by direct value, decode by accumulating one bit
// at a time and testing against every known code); the table's exact values
// come from the codec this package ports.
package huffman

// entry is one row of the board-piece code table: the bit pattern and its
// width in bits.
type entry struct {
	code int
	bits int
}

// table is the fixed board-piece alphabet. Index 0 is the empty-square
// code; indices 1..16 are the non-empty piece-table entries addressed by
// variant.pieceIndex[type]+1. No entry is a prefix of another:
// the single 1-bit code is all-zero and every 5-bit code's low bit is 1.
var table = [17]entry{
	{0b00000, 1},
	{0b00001, 5},
	{0b00011, 5},
	{0b00101, 5},
	{0b00111, 5},
	{0b01001, 5},
	{0b01011, 5},
	{0b01101, 5},
	{0b01111, 5},
	{0b10001, 5},
	{0b10011, 5},
	{0b10101, 5},
	{0b10111, 5},
	{0b11001, 5},
	{0b11011, 5},
	{0b11101, 5},
	{0b11111, 5},
}

// maxBits is the decode loop's bit budget, one more than the table's
// longest (5-bit) code; the loop never needs to read more than this many
// bits to resolve a symbol (spec property 6).
const maxBits = 6

// bitWriter is the minimal surface huffman needs from a bit cursor.
type bitWriter interface {
	WriteNBit(value uint32, n int)
}

// bitReader is the minimal surface huffman needs from a bit cursor.
type bitReader interface {
	ReadOneBit() int
}

// Encode writes the board-piece code for table index pr (0 = empty,
// 1..16 = variant.pieceIndex[type]+1) to w.
func Encode(w bitWriter, pr int) {
	e := table[pr]
	w.WriteNBit(uint32(e.code), e.bits)
}

// Decode reads one board-piece code from r and returns its table index (0
// for empty). It panics if no entry matches within maxBits, which cannot
// happen for a stream actually produced by Encode.
func Decode(r bitReader) int {
	var code, bits int
	for {
		code |= r.ReadOneBit() << uint(bits)
		bits++
		if bits > maxBits {
			panic("huffman: no matching code within max bit budget")
		}
		for i, e := range table {
			if e.code == code && e.bits == bits {
				return i
			}
		}
	}
}
