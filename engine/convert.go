// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/biogo/rapi"
	"github.com/biogo/rapi/backend"
)

// concreteAlnToAlignment builds a rapi.Alignment from a backend
// ConcreteAln, attaching the MD tag (stored by the backend immediately
// after the CIGAR, per §4.F) and the XS tag when a sub-optimal score is
// present. This is the Go equivalent of _bwa_aln_to_rapi_aln (§4.F
// "Conversion to alignment records").
func concreteAlnToAlignment(ref *rapi.Reference, isPaired bool, aln backend.ConcreteAln) (*rapi.Alignment, error) {
	out := &rapi.Alignment{
		Paired: isPaired,
		Score:  aln.Score,
		MapQ:   aln.MapQ,
	}
	// PropPaired is decided by the caller once pairing is resolved; see finalize.go.

	out.Mapped = aln.RID >= 0
	if out.Mapped {
		if aln.RID >= len(ref.Contigs) {
			return nil, rapi.Errorf(rapi.GenericError, "engine: backend reference id %d out of bounds (n_contigs=%d)", aln.RID, len(ref.Contigs))
		}
		out.Contig = &ref.Contigs[aln.RID]
		out.Pos = aln.Pos + 1 // backend reports 0-based
		out.ReverseStrand = aln.IsRev
		out.NMismatches = uint8(clampByte(aln.NM))
		out.Cigar = aln.Cigar

		if len(aln.Cigar) > 0 && aln.MD != "" {
			out.AddTextTag("MD", aln.MD)
		}
	}

	if out.Mapped {
		out.AddIntTag("AS", int64(aln.Score))
	}
	if aln.Sub >= 0 {
		out.AddIntTag("XS", int64(aln.Sub))
	}

	return out, nil
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
