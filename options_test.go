// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "testing"

func TestDefaultOptionsMatchesBWAMEMDefaults(t *testing.T) {
	o := DefaultOptions()
	if o.Match != 1 || o.Mismatch != 4 || o.GapOpen != 6 || o.GapExt != 1 {
		t.Errorf("scoring defaults = %+v, want BWA-MEM's 1/4/6/1", o)
	}
	if o.MinSeedLen != 19 {
		t.Errorf("MinSeedLen = %d, want 19", o.MinSeedLen)
	}
}

func TestOptionsCloneIsIndependent(t *testing.T) {
	o := DefaultOptions()
	o.Parameters = append(o.Parameters, Param{Name: "x"})

	clone := o.Clone()
	clone.Match = 99
	clone.Parameters[0].Name = "y"

	if o.Match != 1 {
		t.Errorf("mutating a clone changed the original's Match: %d", o.Match)
	}
	if o.Parameters[0].Name != "x" {
		t.Errorf("mutating a clone's Parameters changed the original's: %q", o.Parameters[0].Name)
	}
}

func TestNilOptionsCloneReturnsDefaults(t *testing.T) {
	var o *Options
	clone := o.Clone()
	if clone == nil {
		t.Fatal("Clone() on a nil *Options returned nil")
	}
	if clone.Match != DefaultOptions().Match {
		t.Errorf("Clone() on nil did not fall back to DefaultOptions")
	}
}
