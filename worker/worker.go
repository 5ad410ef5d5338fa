// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package worker implements the optional background codec writer: a
// single goroutine that drains buffered records to a PosOutputStream
// while encoder goroutines keep filling new ones, grounded on
// original_source/poscodec.cpp's file_write_worker.
//
// original_source polls with sleep(100) on a mutex-guarded slice. This
// redesigns that into a buffered channel drained by a blocking receive:
// no polling interval to tune, and Stop drains and closes deterministically
// instead of racing a sleep loop, following the channel-worker-pool shape
// mrjoshuak-go-jpeg2000's tile encoder uses.
package worker

import (
	"sync"

	"github.com/dpldgr/variant-nnue-tools/posbuf"
	"github.com/dpldgr/variant-nnue-tools/stream"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "worker: " + string(e) }

// ErrStopped is returned by Submit once the worker has been stopped.
var ErrStopped error = Error("worker stopped")

// Writer owns a PosOutputStream and writes every submitted buffer to it,
// in submission order, from a single background goroutine. Buffers
// queued across multiple Submit calls preserve FIFO order both within
// and across any burst of submissions.
type Writer struct {
	out   stream.PosOutputStream
	queue chan posbuf.Buffer
	done  chan struct{}

	mu       sync.Mutex
	stopped  bool
	firstErr error
	inflight sync.WaitGroup // Submit calls that passed the stopped check and are about to send
}

// New starts a Writer backed by out, with room for capacity queued
// buffers before Submit blocks. out's header must already be written;
// New does not call WriteHeader itself, since callers may need to
// inspect or configure the stream first.
func New(out stream.PosOutputStream, capacity int) *Writer {
	if capacity <= 0 {
		capacity = 1
	}
	w := &Writer{
		out:   out,
		queue: make(chan posbuf.Buffer, capacity),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	defer close(w.done)
	for pb := range w.queue {
		if err := w.out.Write(pb); err != nil {
			w.recordErr(err)
		}
	}
}

func (w *Writer) recordErr(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.firstErr == nil {
		w.firstErr = err
	}
}

// Submit enqueues pb for writing. It blocks if the queue is full, and
// returns ErrStopped if Stop has already been called.
func (w *Writer) Submit(pb posbuf.Buffer) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return ErrStopped
	}
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()

	w.queue <- pb
	return nil
}

// Stop closes the submission queue, waits for every already-queued
// buffer to be written, writes the stream's footer, and returns the
// first write error encountered, if any. Stop waits for any Submit call
// already past its stopped check before closing the queue, so a Submit
// racing with Stop never sends on a closed channel.
func (w *Writer) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		<-w.done
		return w.firstErr
	}
	w.stopped = true
	w.mu.Unlock()

	w.inflight.Wait()
	close(w.queue)
	<-w.done

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.out.WriteFooter(); err != nil && w.firstErr == nil {
		w.firstErr = err
	}
	return w.firstErr
}
