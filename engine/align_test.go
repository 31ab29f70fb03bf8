// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/biogo/rapi"
	"github.com/biogo/rapi/backend"
)

// alignBackend is a stubBackend variant whose AlignCore returns one
// fixed region per call, enough to drive Align end to end without a
// real aligner.
type alignBackend struct {
	stubBackend
}

func (alignBackend) AlignCore(opts *rapi.Options, ref *rapi.Reference, seq []byte) ([]backend.CandidateRegion, error) {
	return []backend.CandidateRegion{{Score: 40, RefBegin: 100, RefEnd: 100 + int64(len(seq)), Secondary: -1}}, nil
}

func TestAlignRejectsSingleEndBatches(t *testing.T) {
	state := rapi.NewAlignerState(nil)
	ref := testRef()
	batch, err := rapi.Alloc(1, 1)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	err = Align(state, ref, batch, 0, batch.NFrags, alignBackend{})
	if err == nil {
		t.Fatal("Align must reject single-end batches")
	}
}

func TestAlignRejectsTooManyReadsPerFrag(t *testing.T) {
	state := rapi.NewAlignerState(nil)
	ref := testRef()
	batch, err := rapi.Alloc(3, 1)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	err = Align(state, ref, batch, 0, batch.NFrags, alignBackend{})
	if err == nil {
		t.Fatal("Align must reject fragments with more than 2 reads")
	}
}

func TestAlignProducesAlignmentsForEachFragment(t *testing.T) {
	state := rapi.NewAlignerState(nil)
	ref := testRef()
	batch, err := rapi.Alloc(2, 2)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	for f := int64(0); f < 2; f++ {
		if err := batch.SetRead(f, 0, "r1", "ACGTACGTACGTACGTACGT", "", 0); err != nil {
			t.Fatalf("SetRead failed: %v", err)
		}
		if err := batch.SetRead(f, 1, "r2", "TGCATGCATGCATGCATGCA", "", 0); err != nil {
			t.Fatalf("SetRead failed: %v", err)
		}
	}

	be := alignBackend{stubBackend: stubBackend{pairResult: backend.PairResult{O: 80, Z: [2]int{0, 0}}}}
	if err := Align(state, ref, batch, 0, batch.NFrags, be); err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if state.NReadsProcessed != 4 {
		t.Errorf("NReadsProcessed = %d, want 4", state.NReadsProcessed)
	}
	for f := int64(0); f < 2; f++ {
		for r := 0; r < 2; r++ {
			read := batch.GetRead(f, r)
			if len(read.Alignments) != 1 {
				t.Fatalf("read (%d,%d) has %d alignments, want 1", f, r, len(read.Alignments))
			}
			if !read.Alignments[0].Mapped {
				t.Errorf("read (%d,%d) should be mapped", f, r)
			}
		}
	}
}

func TestAlignEmptyRangeIsNoop(t *testing.T) {
	state := rapi.NewAlignerState(nil)
	ref := testRef()
	batch, err := rapi.Alloc(2, 0)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if err := Align(state, ref, batch, 0, 0, alignBackend{}); err != nil {
		t.Fatalf("Align on an empty range failed: %v", err)
	}
	if state.NReadsProcessed != 0 {
		t.Errorf("NReadsProcessed = %d, want 0", state.NReadsProcessed)
	}
}
