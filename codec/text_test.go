// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codec

import "testing"

func TestTextStubsAreInert(t *testing.T) {
	stubs := []PosCodec{NewPlainCodec(), NewEpdCodec(), NewFenCodec()}
	for _, s := range stubs {
		if s.IsEncoder() || s.IsDecoder() {
			t.Errorf("%s: IsEncoder/IsDecoder should both be false", s.Name())
		}
		if err := s.Encode(nil); err != ErrNotImplemented {
			t.Errorf("%s: Encode error = %v, want ErrNotImplemented", s.Name(), err)
		}
		if err := s.Decode(nil); err != ErrNotImplemented {
			t.Errorf("%s: Decode error = %v, want ErrNotImplemented", s.Name(), err)
		}
	}
}
