// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend defines the engine contract RAPI is parameterized
// over (§6.4): the narrow interface the core depends on to seed, chain,
// rescue, pair, and render alignments, without reaching into any
// backend's internals.
package backend

import "github.com/biogo/rapi"

// CandidateRegion is one candidate alignment location produced by a
// backend's seed-and-chain step, before it has been converted into a
// concrete placement (§6.4).
type CandidateRegion struct {
	Score int

	RefBegin, RefEnd int64 // half-open interval on the backend's packed reference

	Sub       int // sub-optimal score among this read's regions
	CSub      int // score of the closest contending region (tandem-repeat aware)
	Secondary int // index of the dominating primary region, or -1
	SeedCov   int // bases covered by seeding, used for MAPQ heuristics
}

// IsPrimary reports whether r is its own read's primary region.
func (r CandidateRegion) IsPrimary() bool { return r.Secondary < 0 }

// ConcreteAln is a fully resolved placement produced by Reg2Aln: a
// contig id, position, CIGAR and the handful of scores the finalizer
// needs in order to build a rapi.Alignment (§6.4, based on mem_aln_t).
type ConcreteAln struct {
	RID   int // index into the Reference's contig array, or -1 if unmapped
	Pos   int64 // 0-based
	IsRev bool
	MapQ  uint8

	Cigar rapi.Cigar
	MD    string

	NM    int
	Score int
	Sub   int // -1 means "do not report XS"
}

// PairResult is the outcome of Pair: a pairing score, a best competing
// (sub-optimal) pairing score, the count of sub-optimal pairings, and
// the winning region index for each end (§4.F step 3).
type PairResult struct {
	O, Subo int
	NSub    int
	Z       [2]int
}

// Backend is the pluggable alignment engine RAPI drives (§6.4). A
// concrete backend wraps a real seed-and-extend aligner (e.g. BWA-MEM);
// package wfa provides a small reference implementation used by this
// module's own tests.
type Backend interface {
	// Name and Version identify the wrapped aligner for the SAM @PG
	// line and the rapi_aligner_name/rapi_aligner_version accessors
	// (§6.1, §6.2).
	Name() string
	Version() string

	// LoadReferenceIndex loads path's on-disk index (mmap or read, at
	// the backend's discretion) and reports back its contig catalog.
	// It structurally satisfies rapi.ReferenceLoader.
	LoadReferenceIndex(path string) (rapi.BackendIndex, []rapi.Contig, error)

	// AlignCore runs the seed-and-chain pass for a single read,
	// returning its candidate regions (§4.F pass 1).
	AlignCore(opts *rapi.Options, ref *rapi.Reference, seq []byte) ([]CandidateRegion, error)

	// MarkPrimarySE sorts regions by score in place, demotes
	// sub-optimal regions to secondary, and records which primary
	// region dominates each. id is a caller-assigned, deterministic
	// identity (fragment_id<<1 | end_index) used to break score ties
	// reproducibly (§4.F step 2).
	MarkPrimarySE(opts *rapi.Options, regions []CandidateRegion, id uint64)

	// MateSW performs Smith-Waterman mate-rescue: given one end's
	// candidate region and the other end's sequence, it searches the
	// pes-implied window around region for a placement of mateSeq and
	// returns any new candidate regions found (§4.F step 1).
	MateSW(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, region CandidateRegion, mateSeq []byte) ([]CandidateRegion, error)

	// Pair scores the best consistent pairing between the two ends'
	// candidate regions given the inferred insert-size distribution
	// (§4.F step 3).
	Pair(opts *rapi.Options, ref *rapi.Reference, pes *rapi.PEStats, regionsA, regionsB []CandidateRegion, id uint64) (PairResult, error)

	// Reg2Aln converts one candidate region (or nil, for an unmapped
	// placeholder) into a concrete alignment against seq (§4.F
	// "Conversion to alignment records").
	Reg2Aln(opts *rapi.Options, ref *rapi.Reference, seq []byte, region *CandidateRegion) (ConcreteAln, error)

	// ApproxMapQSE estimates a single-end MAPQ for region (§4.F step
	// 4).
	ApproxMapQSE(opts *rapi.Options, region CandidateRegion) int

	// PEStat infers the pes[4] insert-size distribution from the
	// regions collected in pass 1: regions holds one entry per adapter
	// read, in the same fragment-major, end-major order AlignCore was
	// called in (§4.F, between passes).
	PEStat(opts *rapi.Options, refHalfSize int64, regions [][]CandidateRegion) rapi.PEStats

	// MapQCoefA returns the engine's own MAPQ scaling coefficient "a",
	// used by raw_mapq (§4.F step 4, §6.4 "Engines signal their own
	// mapQ coefficient").
	MapQCoefA() float64
}
