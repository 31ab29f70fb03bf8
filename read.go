// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// SangerOffset and IlluminaOffset are the two quality encoding offsets
// a caller may pass to Batch.SetRead (§6.5).
const (
	SangerOffset   = 33
	IlluminaOffset = 64
)

// Read is a short DNA sequence plus its optional quality string and the
// alignments found for it (§3). Per the "Manual-memory layout for reads"
// design note, id/seq/qual are packed into a single backing buffer with
// offset views, the way the original C implementation lays out one
// allocation per read for locality; in Go this buys nothing at the
// allocator level but is kept so the accessor contracts (a Read is only
// ever resliced, never partially mutated) match the original exactly.
type Read struct {
	buf     []byte
	idLen   int
	seqLen  int
	hasQual bool

	Alignments []*Alignment
}

// ID returns the read's identifier, without the NUL terminator stored
// after it in the backing buffer, and with any trailing "/1" or "/2"
// mate suffix already stripped.
func (r *Read) ID() string {
	if r.buf == nil {
		return ""
	}
	return string(r.buf[:r.idLen])
}

// Seq returns the read's base sequence.
func (r *Read) Seq() string {
	if r.buf == nil {
		return ""
	}
	start := r.idLen + 1
	return string(r.buf[start : start+r.seqLen])
}

// Qual returns the read's Sanger-encoded quality string, or "" if none
// was provided.
func (r *Read) Qual() string {
	if r.buf == nil || !r.hasQual {
		return ""
	}
	start := r.idLen + 1 + r.seqLen + 1
	return string(r.buf[start : start+r.seqLen])
}

// HasQual reports whether the read carries a quality string.
func (r *Read) HasQual() bool { return r.hasQual }

// Len returns the sequence length, derived from Seq (§3 invariant 1).
func (r *Read) Len() int { return r.seqLen }

// IsZero reports whether the read slot has never been populated by
// SetRead (a freshly-Reserve'd slot, per §8 property 2).
func (r *Read) IsZero() bool { return r.buf == nil }

// stripMateSuffix removes a trailing "/1" or "/2" from a read id, as
// BWA and most aligners do for paired fragment names.
func stripMateSuffix(id string) string {
	if n := len(id); n > 2 && id[n-2] == '/' && (id[n-1] == '1' || id[n-1] == '2') {
		return id[:n-2]
	}
	return id
}

// setRead populates the read slot with id/seq/qual, recoding qual from
// qOffset to Sanger (33) as it is copied. It validates coordinates are
// the caller's job (Batch.SetRead); this function only validates the
// payload itself and is used to build the single backing buffer
// (§4.C).
func (r *Read) setRead(id, seq, qual string, qOffset int) error {
	if len(seq) == 0 {
		return Errorf(ParamError, "rapi: empty sequence for read %q", id)
	}
	id = stripMateSuffix(id)

	hasQual := qual != ""
	if hasQual && len(qual) != len(seq) {
		return Errorf(ParamError, "rapi: qual length %d != seq length %d", len(qual), len(seq))
	}

	size := len(id) + 1 + len(seq) + 1
	if hasQual {
		size += len(seq) + 1
	}
	buf := make([]byte, size)

	n := copy(buf, id)
	buf[n] = 0
	n++
	copy(buf[n:], seq)
	n += len(seq)
	buf[n] = 0
	n++

	if hasQual {
		recoded := buf[n : n+len(qual)]
		for i := 0; i < len(qual); i++ {
			v := int(qual[i]) - qOffset + SangerOffset
			if v < 33 || v > 126 {
				return Errorf(ParamError, "rapi: recoded quality byte %d out of [33,126] at position %d", v, i)
			}
			recoded[i] = byte(v)
		}
	}

	r.buf = buf
	r.idLen = len(id)
	r.seqLen = len(seq)
	r.hasQual = hasQual
	r.Alignments = nil
	return nil
}

// clear releases the read's owned data and resets it to the zero slot,
// matching Batch.Clear's per-slot semantics (§4.C).
func (r *Read) clear() {
	*r = Read{}
}
