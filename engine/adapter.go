// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/biogo/rapi"

// adaptedRead is the backend-facing read the adapter builds out of a
// public rapi.Read: owned duplicates of seq/qual (a real backend would
// mutate these in place, e.g. 2-bit encoding), plus a non-owning view
// of the id (§4.E).
type adaptedRead struct {
	id   string
	seq  []byte
	qual []byte
}

// adaptedBatch is the flat, backend-internal read layout produced by
// Convert for the half-open fragment range [startFrag, endFrag) of a
// public Batch (§4.E).
type adaptedBatch struct {
	nReadsPerFrag int
	reads         []adaptedRead
	nBases        int
}

// convert copies the fragment range [startFrag, endFrag) out of batch
// into a flat backend-internal array. A range outside the batch is a
// ParamError. An unpopulated read slot in the range aborts the
// conversion with a MemoryError; every duplicate allocated so far is
// released (naturally, by dropping references), so the whole conversion
// rolls back as one unit (§4.E).
func convert(batch *rapi.Batch, startFrag, endFrag int64) (*adaptedBatch, error) {
	if startFrag < 0 || endFrag > batch.NFrags || startFrag > endFrag {
		return nil, rapi.Errorf(rapi.ParamError, "engine: fragment range [%d,%d) out of bounds for batch with %d frags",
			startFrag, endFrag, batch.NFrags)
	}
	n := int(endFrag-startFrag) * batch.NReadsPerFrag
	ab := &adaptedBatch{
		nReadsPerFrag: batch.NReadsPerFrag,
		reads:         make([]adaptedRead, 0, n),
	}
	for f := startFrag; f < endFrag; f++ {
		for r := 0; r < batch.NReadsPerFrag; r++ {
			read := batch.GetRead(f, r)
			if read == nil || read.IsZero() {
				return nil, rapi.Errorf(rapi.MemoryError, "engine: missing read at (%d, %d)", f, r)
			}
			seq := []byte(read.Seq())
			var qual []byte
			if read.HasQual() {
				qual = []byte(read.Qual())
			}
			ab.reads = append(ab.reads, adaptedRead{
				id:   read.ID(),
				seq:  seq,
				qual: qual,
			})
			ab.nBases += len(seq)
		}
	}
	return ab, nil
}
