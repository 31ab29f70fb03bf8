// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "sync"

// Orientation is one of the four relative read-pair orientations used to
// index the pes[4] insert-size statistics vector (§4.F, §8.H).
type Orientation int

const (
	OrientFF Orientation = iota
	OrientFR
	OrientRF
	OrientRR
)

// PEStat holds the inferred insert-size distribution for one
// Orientation: the [Low, High] window considered a "proper pair", the
// running Average/StdDev, and whether inference Failed for lack of
// data (§4.F).
type PEStat struct {
	Low, High int64
	Average   float64
	StdDev    float64
	Failed    bool
}

// PEStats is the pes[4] vector indexed by Orientation.
type PEStats [4]PEStat

var (
	libMu   sync.RWMutex
	libOpts *Options
)

// Init stores a cloned copy of opts as the library-wide default,
// tearing down any previous state (§4.D "Library state"). Passing nil
// resets to DefaultOptions.
func Init(opts *Options) error {
	libMu.Lock()
	defer libMu.Unlock()
	if opts == nil {
		libOpts = DefaultOptions()
	} else {
		libOpts = opts.Clone()
	}
	return nil
}

// Shutdown releases the library-wide options, matching Init.
func Shutdown() error {
	libMu.Lock()
	defer libMu.Unlock()
	libOpts = nil
	return nil
}

// LibraryOptions returns the options registered by Init, or
// DefaultOptions if Init was never called.
func LibraryOptions() *Options {
	libMu.RLock()
	defer libMu.RUnlock()
	if libOpts == nil {
		return DefaultOptions()
	}
	return libOpts.Clone()
}

// AlignerState holds the per-call state that Align threads through a
// batch of fragments: a local clone of options (so per-call overrides
// never leak into the library-wide defaults), a running count of
// processed reads, and the paired-end statistics vector written once
// between pass 1 and pass 2 (§4.D, §5).
type AlignerState struct {
	Opts *Options

	NReadsProcessed int64
	PES             PEStats
}

// NewAlignerState clones opts (or the library-wide options, if opts is
// nil) into a fresh AlignerState.
func NewAlignerState(opts *Options) *AlignerState {
	if opts == nil {
		opts = LibraryOptions()
	} else {
		opts = opts.Clone()
	}
	return &AlignerState{Opts: opts}
}

// Free releases the AlignerState. It exists for symmetry with the
// library's C-shaped API surface (§6.2); there is nothing to release in
// the Go port beyond dropping the reference.
func (s *AlignerState) Free() error {
	if s == nil {
		return nil
	}
	s.Opts = nil
	return nil
}
