// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package registry

import "github.com/dpldgr/variant-nnue-tools/codec"

// init registers the format codecs this module ships, mirroring
// original_source/poscodec.h's get_codec/get_codec_ext/get_codec_type
// dispatch but resolved once at startup instead of on every lookup.
func init() {
	Register(codec.NewBinCodec())
	Register(codec.NewBin2Codec())
	Register(codec.NewJpnCodec())
	Register(codec.NewPlainCodec())
	Register(codec.NewEpdCodec())
	Register(codec.NewFenCodec())
}
