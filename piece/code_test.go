// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package piece

import "testing"

func TestCalcCodeSize(t *testing.T) {
	vectors := []struct {
		typeCount int
		want      int
	}{
		{6, 4},  // chess: ceil(log2(12)) = 4
		{1, 1},  // ceil(log2(2)) = 1
		{8, 4},  // ceil(log2(16)) = 4
		{9, 5},  // ceil(log2(18)) = 5
	}
	for _, v := range vectors {
		CalcCodeSize(v.typeCount)
		if got := CodeSize(); got != v.want {
			t.Errorf("CalcCodeSize(%d): CodeSize() = %d, want %d", v.typeCount, got, v.want)
		}
	}
}

func TestFromColorAndTypeRoundTrip(t *testing.T) {
	CalcCodeSize(6)

	vectors := []struct {
		name string
		c    Color
		typ  Type
	}{
		{"white pawn", White, Type(2)},
		{"black queen", Black, Type(6)},
		{"white king", White, King},
		{"black king", Black, King},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			pc := FromColorAndType(v.c, v.typ)
			if !pc.IsPiece() {
				t.Fatalf("IsPiece() = false, want true")
			}
			if got := pc.Color(); got != v.c {
				t.Errorf("Color() = %v, want %v", got, v.c)
			}
			if got := pc.Type(); got != v.typ {
				t.Errorf("Type() = %v, want %v", got, v.typ)
			}
			if v.typ == King && !pc.IsKing() {
				t.Errorf("IsKing() = false, want true")
			}
		})
	}
}

func TestFromColorAndTypeEmpty(t *testing.T) {
	CalcCodeSize(6)
	pc := FromColorAndType(White, NoPieceType)
	if !pc.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}
	if pc.Code() != 0 {
		t.Errorf("Code() = %d, want 0", pc.Code())
	}
}

func TestKingCodeIsColorBitOnly(t *testing.T) {
	CalcCodeSize(6)
	pc := FromColorAndType(Black, King)
	want := 1 << uint(pc.Bits()-1)
	if pc.Code() != want {
		t.Errorf("Code() = %#x, want %#x", pc.Code(), want)
	}
}

func TestSetColorPreservesType(t *testing.T) {
	CalcCodeSize(6)
	pc := FromColorAndType(White, Type(3))
	pc.SetColor(Black)
	if got := pc.Color(); got != Black {
		t.Errorf("Color() = %v, want Black", got)
	}
	if got := pc.Type(); got != Type(3) {
		t.Errorf("Type() = %v, want 3", got)
	}
}

func TestFromCode(t *testing.T) {
	CalcCodeSize(6)
	pc := FromCode(0, false)
	if !pc.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}

	pc = FromCode(1<<3|2, true)
	if got := pc.Color(); got != Black {
		t.Errorf("Color() = %v, want Black", got)
	}
	if got := pc.Type(); got != Type(2) {
		t.Errorf("Type() = %v, want 2", got)
	}
}

func TestFromCodeDetectsKing(t *testing.T) {
	CalcCodeSize(6)
	pc := FromCode(1<<3, true) // color bit set, type-index bits all zero
	if !pc.IsKing() {
		t.Errorf("IsKing() = false, want true")
	}
	if got := pc.Color(); got != Black {
		t.Errorf("Color() = %v, want Black", got)
	}
}
