// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "testing"

func TestBatchAllocAndSetRead(t *testing.T) {
	b, err := Alloc(2, 4)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	defer b.Free()

	if got, want := b.ReadCapacity(), int64(8); got != want {
		t.Fatalf("ReadCapacity() = %d, want %d", got, want)
	}

	if err := b.SetRead(0, 0, "read1/1", "ACGTACGT", "IIIIIIII", SangerOffset); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}
	if err := b.SetRead(0, 1, "read1/2", "TTTTGGGG", "IIIIIIII", SangerOffset); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}

	r := b.GetRead(0, 0)
	if r == nil || r.IsZero() {
		t.Fatal("GetRead(0,0) should be populated")
	}
	if got, want := r.ID(), "read1"; got != want {
		t.Errorf("ID() = %q, want %q (mate suffix should be stripped)", got, want)
	}
	if got, want := r.Seq(), "ACGTACGT"; got != want {
		t.Errorf("Seq() = %q, want %q", got, want)
	}

	empty := b.GetRead(1, 0)
	if empty == nil || !empty.IsZero() {
		t.Fatal("unset read slot should report IsZero")
	}
}

func TestBatchReserveGrowsAndPreservesPrefix(t *testing.T) {
	b, err := Alloc(1, 2)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	defer b.Free()

	if err := b.SetRead(0, 0, "r0", "AAAA", "", 0); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}
	if err := b.Reserve(5); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if got, want := b.NFrags, int64(5); got != want {
		t.Fatalf("NFrags = %d, want %d", got, want)
	}
	if got := b.GetRead(0, 0); got == nil || got.Seq() != "AAAA" {
		t.Fatal("Reserve must preserve previously set reads")
	}
}

func TestBatchOutOfBoundsSetRead(t *testing.T) {
	b, err := Alloc(2, 1)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	defer b.Free()

	if err := b.SetRead(1, 0, "x", "A", "", 0); err == nil {
		t.Error("SetRead with out-of-range fragment should fail")
	}
	if err := b.SetRead(0, 2, "x", "A", "", 0); err == nil {
		t.Error("SetRead with out-of-range read index should fail")
	}
}
