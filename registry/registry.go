// Copyright 2026, The variant-nnue-tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package registry implements CodecRegistry: lookup of a PosCodec by name,
// file extension, or output type. builtin.go's init() registers every
// format this module ships, the same RegisterGenerator idea
// hailam-genfile/internal/adapters/factory uses for its file generators,
// centralized here rather than in each codec's own init() since codec
// cannot import registry without a cycle.
package registry

import (
	"strings"
	"sync"

	"github.com/dpldgr/variant-nnue-tools/codec"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "registry: " + string(e) }

var (
	mu     sync.RWMutex
	byName = make(map[string]codec.PosCodec)
	byExt  = make(map[string]codec.PosCodec)
	byType = make(map[string]codec.PosCodec)
)

// Register adds c to the registry under its own Name(), Ext(), and Type().
// Called from builtin.go's init(), mirroring RegisterGenerator in the
// factory package this is grounded on.
func Register(c codec.PosCodec) {
	mu.Lock()
	defer mu.Unlock()
	byName[strings.ToUpper(c.Name())] = c
	byExt[c.Ext()] = c
	byType[strings.ToLower(c.Type())] = c
}

// ByName looks up a codec by its canonical name (case-insensitive).
func ByName(name string) (codec.PosCodec, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := byName[strings.ToUpper(name)]
	if !ok {
		return nil, Error("unknown codec name: " + name)
	}
	return c, nil
}

// ByType looks up a codec by its output type token (case-insensitive).
func ByType(t string) (codec.PosCodec, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := byType[strings.ToLower(t)]
	if !ok {
		return nil, Error("unknown codec type: " + t)
	}
	return c, nil
}

// GetPath resolves a codec from a file path by matching the longest
// registered extension that is a suffix of path, mirroring
// original_source/poscodec.h's get_codec(path) ends_with scan.
func GetPath(path string) (codec.PosCodec, error) {
	mu.RLock()
	defer mu.RUnlock()

	var best codec.PosCodec
	bestLen := -1
	for ext, c := range byExt {
		if strings.HasSuffix(path, ext) && len(ext) > bestLen {
			best = c
			bestLen = len(ext)
		}
	}
	if best == nil {
		return nil, Error("no codec registered for path: " + path)
	}
	return best, nil
}

// RegisteredNames returns every codec name currently registered.
func RegisteredNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	return names
}
