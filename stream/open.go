// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stream

import (
	"os"
	"strings"
)

// BinpackExtension is the canonical file extension for the shelved binpack
// container; its codec and stream support are not implemented here.
const BinpackExtension = ".binpack"

// OpenInput opens path for reading and wraps it in the PosInputStream
// matching its extension, mirroring open_sfen_input_file.
func OpenInput(path string) (PosInputStream, error) {
	if strings.HasSuffix(path, BinpackExtension) {
		return nil, ErrUnsupported
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, Bin2Extension):
		return NewBin2InputStream(f), nil
	case strings.HasSuffix(path, BinExtension):
		return NewBinInputStream(f), nil
	default:
		f.Close()
		return nil, Error("unrecognized input extension: " + path)
	}
}

// OpenOutput creates path and wraps it in the PosOutputStream matching its
// extension, mirroring create_new_sfen_output. The stream is chosen from
// the extension path already ends in, so filenameWithExtension returns
// path unchanged here; a path without a recognized extension is an error,
// and no extension is appended to it.
func OpenOutput(path string) (PosOutputStream, error) {
	if strings.HasSuffix(path, BinpackExtension) {
		return nil, ErrUnsupported
	}
	switch {
	case strings.HasSuffix(path, Bin2Extension):
		f, err := os.Create(filenameWithExtension(path, Bin2Extension))
		if err != nil {
			return nil, err
		}
		return NewBin2OutputStream(f), nil
	case strings.HasSuffix(path, JpnExtension):
		f, err := os.Create(filenameWithExtension(path, JpnExtension))
		if err != nil {
			return nil, err
		}
		return NewJpnOutputStream(f), nil
	case strings.HasSuffix(path, BinExtension):
		f, err := os.Create(filenameWithExtension(path, BinExtension))
		if err != nil {
			return nil, err
		}
		return NewBinOutputStream(f), nil
	default:
		return nil, Error("unrecognized output extension: " + path)
	}
}
