// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/biogo/rapi"

// InferOrientation classifies a pair of forward-strand reference
// coordinates b1, b2 (each measured on a doubled-length "packed
// reference" of total size 2*halfRefLen, the top half holding the
// reverse-complement strand, as BWA lays it out) into one of the four
// rapi.Orientation classes and returns the genomic distance between
// them. It is a direct port of mem_infer_dir from the original source.
func InferOrientation(halfRefLen, b1, b2 int64) (rapi.Orientation, int64) {
	r1 := b1 >= halfRefLen
	r2 := b2 >= halfRefLen
	var p2 int64
	if r1 == r2 {
		p2 = b2
	} else {
		p2 = (halfRefLen << 1) - 1 - b2
	}
	var dist int64
	if p2 > b1 {
		dist = p2 - b1
	} else {
		dist = b1 - p2
	}
	var sameStrand, forward int
	if r1 != r2 {
		sameStrand = 1
	}
	if p2 > b1 {
		forward = 0
	} else {
		forward = 3
	}
	return rapi.Orientation(sameStrand ^ forward), dist
}

// refHalfSize returns the length of the forward-strand packed
// reference a backend built its coordinate space over, i.e. the sum of
// every contig's length. Candidate regions are reported against a
// doubled reference (forward strand followed by its reverse
// complement), so this is the midpoint InferOrientation needs.
func refHalfSize(ref *rapi.Reference) int64 {
	var n int64
	for i := range ref.Contigs {
		n += ref.Contigs[i].Length
	}
	return n
}
