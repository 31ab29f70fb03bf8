// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine drives a backend.Backend through the two-pass
// seed-and-chain / extend-and-pair pipeline over a batch of fragments,
// the Go shape of rapi_align_reads and its bwa_worker_1/bwa_worker_2
// helpers.
package engine

import (
	"github.com/biogo/rapi"
	"github.com/biogo/rapi/backend"
	"github.com/grailbio/base/traverse"
)

// Align runs both passes of the alignment pipeline over the half-open
// fragment range [startFrag, endFrag) of batch against ref, using be as
// the backend and state to carry options and running statistics across
// calls. It is the Go shape of rapi_align_reads.
func Align(state *rapi.AlignerState, ref *rapi.Reference, batch *rapi.Batch, startFrag, endFrag int64, be backend.Backend) error {
	if batch.NReadsPerFrag > 2 {
		return rapi.Errorf(rapi.OpNotSupported, "engine: fragments with more than 2 reads are not supported")
	}
	if batch.NReadsPerFrag <= 0 {
		return rapi.Errorf(rapi.ParamError, "engine: batch has no reads per fragment")
	}
	if batch.NReadsPerFrag == 1 {
		return rapi.Errorf(rapi.OpNotSupported, "engine: single-end alignment is not implemented")
	}

	ab, err := convert(batch, startFrag, endFrag)
	if err != nil {
		return err
	}
	nFrags := int(endFrag - startFrag)
	if nFrags == 0 {
		return nil
	}

	opts := state.Opts
	regions := make([][2][]backend.CandidateRegion, nFrags)

	// Pass 1: seed and chain each read independently.
	err = traverse.T{Limit: opts.NThreads}.Each(nFrags, func(i int) error {
		for end := 0; end < 2; end++ {
			read := ab.reads[i*2+end]
			rs, err := be.AlignCore(opts, ref, read.seq)
			if err != nil {
				return rapi.Wrap(rapi.GenericError, err, "engine: seed-and-chain failed")
			}
			regions[i][end] = rs
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Infer the insert-size distribution from every region collected in
	// pass 1, in fragment-major, end-major order, before pass 2 runs.
	flat := make([][]backend.CandidateRegion, 0, nFrags*2)
	for i := 0; i < nFrags; i++ {
		flat = append(flat, regions[i][0], regions[i][1])
	}
	state.PES = be.PEStat(opts, refHalfSize(ref), flat)

	results := make([]*fragmentResult, nFrags)
	fragBase := uint64(state.NReadsProcessed) / 2

	// Pass 2: extend, rescue, pair and finalize each fragment.
	err = traverse.T{Limit: opts.NThreads}.Each(nFrags, func(i int) error {
		seqs := [2][]byte{ab.reads[i*2].seq, ab.reads[i*2+1].seq}
		res, err := FinalizePair(opts, ref, &state.PES, fragBase+uint64(i), seqs, regions[i], be)
		if err != nil {
			return err
		}
		results[i] = res
		return nil
	})
	if err != nil {
		return err
	}

	for i := 0; i < nFrags; i++ {
		attachSATags(results[i].ends[0])
		attachSATags(results[i].ends[1])
		for end := 0; end < 2; end++ {
			read := batch.GetRead(startFrag+int64(i), end)
			read.Alignments = results[i].ends[end]
		}
	}

	state.NReadsProcessed += int64(nFrags) * 2
	return nil
}
