// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import (
	"testing"

	"github.com/dpldgr/variant-nnue-tools/internal/testutil"
	"github.com/dpldgr/variant-nnue-tools/piece"
	"github.com/dpldgr/variant-nnue-tools/posn"
)

// randomPosition scatters one king per side plus a random scattering of
// the five non-king piece types across the remaining squares, using a
// seeded, version-stable generator so failures reproduce exactly.
func randomPosition(r *testutil.Rand) *testPosition {
	p := newTestPosition()

	squares := r.Perm(64)
	wk, bk := squares[0], squares[1]
	p.PutPiece(posn.Piece{Color: piece.White, Type: piece.King}, posn.Square(wk))
	p.PutPiece(posn.Piece{Color: piece.Black, Type: piece.King}, posn.Square(bk))

	for _, sq := range squares[2:] {
		if r.Intn(3) != 0 {
			continue
		}
		typ := stdPieceOrder[r.Intn(len(stdPieceOrder))]
		color := piece.Color(r.Intn(2))
		p.PutPiece(posn.Piece{Color: color, Type: typ}, posn.Square(sq))
	}

	p.stm = piece.Color(r.Intn(2))
	p.rule50 = r.Intn(100)
	p.gamePly = r.Intn(400)
	return p
}

func TestBinCodecRandomRoundTrip(t *testing.T) {
	for seed := 0; seed < 20; seed++ {
		r := testutil.NewRand(seed)
		src := randomPosition(r)

		pd := &posn.PosData{Pos: src, Score: int16(seed * 7), Move: uint16(seed), GamePly: uint16(src.gamePly), GameResult: int8(seed%3 - 1)}

		c := NewBinCodec()
		if err := c.Encode(pd); err != nil {
			t.Fatalf("seed %d: Encode: %v", seed, err)
		}

		dst := newTestPosition()
		outPd := &posn.PosData{Pos: dst}
		c2 := NewBinCodec()
		c2.Buffer(c.Copy())
		if err := c2.Decode(outPd); err != nil {
			t.Fatalf("seed %d: Decode: %v", seed, err)
		}

		if dst.stm != src.stm {
			t.Errorf("seed %d: stm = %v, want %v", seed, dst.stm, src.stm)
		}
		if dst.rule50 != src.rule50 {
			t.Errorf("seed %d: rule50 = %d, want %d", seed, dst.rule50, src.rule50)
		}
		for sq := 0; sq < 64; sq++ {
			if dst.board[sq] != src.board[sq] {
				t.Errorf("seed %d: square %d = %+v, want %+v", seed, sq, dst.board[sq], src.board[sq])
			}
		}
	}
}

func TestBinCodecTwoKingsGoldenLeadingBytes(t *testing.T) {
	// White king on e1 (square 4), black king on h1 (square 7), white to
	// move: byte 0 packs stm plus all seven bits of the white king square,
	// byte 1 holds the seven bits of the black king square and opens the
	// board Huffman stream with one empty-square bit. Spelled out as a hex literal so
	// the on-the-wire layout is checked independent of the round-trip
	// test above.
	want := testutil.MustDecodeHex("0807")

	c := NewBinCodec()
	pd := &posn.PosData{Pos: twoKingsPosition()}
	if err := c.Encode(pd); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := c.Copy().Data()[:2]
	if got[0] != want[0] || got[1] != want[1] {
		t.Errorf("leading bytes = %#02x %#02x, want %#02x %#02x", got[0], got[1], want[0], want[1])
	}
}
