// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "testing"

func TestInitShutdownRoundTrip(t *testing.T) {
	defer Shutdown()

	o := DefaultOptions()
	o.NThreads = 7
	if err := Init(o); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	got := LibraryOptions()
	if got.NThreads != 7 {
		t.Errorf("LibraryOptions().NThreads = %d, want 7", got.NThreads)
	}

	o.NThreads = 99
	if got2 := LibraryOptions(); got2.NThreads != 7 {
		t.Errorf("LibraryOptions() changed after mutating the caller's Options, got NThreads=%d", got2.NThreads)
	}

	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if got := LibraryOptions(); got.NThreads != DefaultOptions().NThreads {
		t.Errorf("LibraryOptions() after Shutdown = %+v, want defaults", got)
	}
}

func TestInitNilResetsToDefaults(t *testing.T) {
	defer Shutdown()
	Init(DefaultOptions())
	if err := Init(nil); err != nil {
		t.Fatalf("Init(nil) failed: %v", err)
	}
	if got := LibraryOptions(); got.Match != DefaultOptions().Match {
		t.Errorf("Init(nil) did not reset to defaults")
	}
}

func TestNewAlignerStateClonesAndIsolates(t *testing.T) {
	defer Shutdown()
	base := DefaultOptions()
	base.MaxMateSW = 5

	state := NewAlignerState(base)
	base.MaxMateSW = 500
	if state.Opts.MaxMateSW != 5 {
		t.Errorf("AlignerState.Opts.MaxMateSW = %d, want 5 (isolated from caller mutation)", state.Opts.MaxMateSW)
	}

	if err := state.Free(); err != nil {
		t.Fatalf("Free() failed: %v", err)
	}
	if state.Opts != nil {
		t.Errorf("Opts = %+v after Free, want nil", state.Opts)
	}
}

func TestNewAlignerStateNilUsesLibraryOptions(t *testing.T) {
	defer Shutdown()
	o := DefaultOptions()
	o.MapQMin = 13
	Init(o)

	state := NewAlignerState(nil)
	if state.Opts.MapQMin != 13 {
		t.Errorf("NewAlignerState(nil).Opts.MapQMin = %d, want 13", state.Opts.MapQMin)
	}
}
