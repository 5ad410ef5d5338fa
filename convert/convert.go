// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package convert implements the conversion driver: it opens an input and
// an output stream, resolves their codecs from the registry, and iterates
// records through decode, optional rescore, encode, write, with skip/count
// windowing, ported from original_source/extract.cpp's do_extract.
package convert

import (
	"fmt"
	"io"

	"github.com/dpldgr/variant-nnue-tools/posn"
	"github.com/dpldgr/variant-nnue-tools/registry"
	"github.com/dpldgr/variant-nnue-tools/stream"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "convert: " + string(e) }

var (
	// ErrOpenFailure reports that the input or output file could not be
	// opened.
	ErrOpenFailure error = Error("could not open input or output")
	// ErrUnknownFormat reports that a path's extension isn't registered.
	ErrUnknownFormat error = Error("unknown format")
	// ErrBadCapability reports that a resolved codec lacks the direction
	// (encode/decode) the conversion needs.
	ErrBadCapability error = Error("codec lacks required capability")
)

// Rescorer runs an external search against pd.Pos and replaces its move
// and score with the first principal-variation move and its value. It
// must tolerate an empty PV by leaving pd unchanged; the search itself is
// an external collaborator this module does not provide.
type Rescorer interface {
	Rescore(pd *posn.PosData, depth, nodes int)
}

// Options configures one conversion run.
type Options struct {
	InputPath  string
	OutputPath string
	// Skip is the number of leading records to discard. Negative values
	// are normalized to 0.
	Skip int
	// Count is the number of records to process after Skip; -1 means
	// unlimited, 0 is normalized to 1.
	Count int
	// Rescore enables the optional rescore step; Rescorer must be set if
	// true.
	Rescore  bool
	Depth    int
	Nodes    int
	Rescorer Rescorer
	// NewPosition builds a fresh Position for each decoded record.
	// original_source/extract.cpp reuses a single Position across the
	// whole run; this module requires a fresh one per record instead,
	// since nothing in the Position capability interface exposes a way to
	// clear one.
	NewPosition func() posn.Position
}

// Report summarizes one completed conversion.
type Report struct {
	Skipped   int
	Processed int
}

func normalize(opts *Options) {
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	if opts.Count < -1 {
		opts.Count = -1
	}
	if opts.Count == 0 {
		opts.Count = 1
	}
}

// Run executes one conversion end to end, writing the output header
// before the first record and the footer after the last.
func Run(opts Options) (Report, error) {
	normalize(&opts)

	codecIn, err := registry.GetPath(opts.InputPath)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if !codecIn.IsDecoder() {
		return Report{}, fmt.Errorf("%w: %s cannot decode", ErrBadCapability, codecIn.Name())
	}
	codecOut, err := registry.GetPath(opts.OutputPath)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if !codecOut.IsEncoder() {
		return Report{}, fmt.Errorf("%w: %s cannot encode", ErrBadCapability, codecOut.Name())
	}

	in, err := stream.OpenInput(opts.InputPath)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrOpenFailure, err)
	}
	defer in.Close()

	out, err := stream.OpenOutput(opts.OutputPath)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrOpenFailure, err)
	}
	defer out.Close()

	if err := out.WriteHeader(); err != nil {
		return Report{}, err
	}

	var report Report
	for i := 0; ; i++ {
		pb, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, err
		}

		if i < opts.Skip {
			report.Skipped++
			continue
		}
		if opts.Count != -1 && i >= opts.Skip+opts.Count {
			break
		}

		pos := opts.NewPosition()
		pd := &posn.PosData{Pos: pos}

		codecIn.Buffer(pb)
		if err := codecIn.Decode(pd); err != nil {
			return report, err
		}

		if opts.Rescore {
			opts.Rescorer.Rescore(pd, opts.Depth, opts.Nodes)
		}

		if err := codecOut.Encode(pd); err != nil {
			return report, err
		}
		if err := out.Write(codecOut.Copy()); err != nil {
			return report, err
		}

		report.Processed++
	}

	if err := out.WriteFooter(); err != nil {
		return report, err
	}
	return report, nil
}
