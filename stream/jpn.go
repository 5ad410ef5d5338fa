// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stream

import (
	"io"

	"github.com/dpldgr/variant-nnue-tools/posbuf"
)

// JpnExtension is the canonical file extension for JPN files.
const JpnExtension = ".jpn"

const (
	jpnHeader = `{"header":{"type":"jpn","version":"1.0","magic":"1c36f8e2"},` + "\n" +
		`"variant":{"name":"chess","files":8,"ranks":8,"squares":64,"types":12,"magic":"b2d69903"},` + "\n" +
		`"positions":[`
	jpnFooter    = "]}\n"
	jpnSeparator = ","
)

// jpnState is the writer's header/footer state machine: a one-way
// Fresh -> HeaderWritten -> RecordsWritten -> FooterWritten progression
// (FooterWritten is terminal), where driving a transition out of order is
// an error rather than
// original_source's silent idempotent no-op.
type jpnState int

const (
	jpnFresh jpnState = iota
	jpnHeaderWritten
	jpnRecordsWritten
	jpnFooterWritten
)

// JpnOutputStream writes the JPN JSON envelope: a header, a
// comma-separated "positions" array, and a footer.
type JpnOutputStream struct {
	w      io.WriteCloser
	closed bool
	state  jpnState
}

// NewJpnOutputStream wraps w as a JPN output stream.
func NewJpnOutputStream(w io.WriteCloser) *JpnOutputStream {
	return &JpnOutputStream{w: w}
}

func (s *JpnOutputStream) WriteHeader() error {
	if s.state != jpnFresh {
		return ErrIllegalTransition
	}
	if _, err := io.WriteString(s.w, jpnHeader); err != nil {
		return err
	}
	s.state = jpnHeaderWritten
	return nil
}

func (s *JpnOutputStream) Write(pb posbuf.Buffer) error {
	switch s.state {
	case jpnHeaderWritten:
		// first record, no separator
	case jpnRecordsWritten:
		if _, err := io.WriteString(s.w, jpnSeparator); err != nil {
			return err
		}
	default:
		return ErrIllegalTransition
	}
	if _, err := pb.WriteTo(s.w); err != nil {
		return err
	}
	s.state = jpnRecordsWritten
	return nil
}

func (s *JpnOutputStream) WriteFooter() error {
	if s.state != jpnHeaderWritten && s.state != jpnRecordsWritten {
		return ErrIllegalTransition
	}
	if _, err := io.WriteString(s.w, jpnFooter); err != nil {
		return err
	}
	s.state = jpnFooterWritten
	return nil
}

func (s *JpnOutputStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.w.Close()
}
