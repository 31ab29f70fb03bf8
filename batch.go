// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// Batch is a fragment-major, contiguous store of reads (§3). The read
// at (fragment, readInFragment) lives at index
// fragment*NReadsPerFrag + readInFragment.
type Batch struct {
	NFrags        int64
	NReadsPerFrag int

	reads []Read
}

// Alloc returns a new Batch sized for nFrags fragments of nReadsPerFrag
// reads each, with every slot zero-initialized (§4.C).
func Alloc(nReadsPerFrag int, nFrags int64) (*Batch, error) {
	if nReadsPerFrag <= 0 || nFrags < 0 {
		return nil, Errorf(ParamError, "rapi: invalid batch shape (%d reads/frag, %d frags)", nReadsPerFrag, nFrags)
	}
	b := &Batch{NReadsPerFrag: nReadsPerFrag}
	if nFrags > 0 {
		b.reads = make([]Read, nFrags*int64(nReadsPerFrag))
	}
	b.NFrags = nFrags
	return b, nil
}

// ReadCapacity returns the number of reads that fit in the currently
// allocated space: NFrags * NReadsPerFrag.
func (b *Batch) ReadCapacity() int64 {
	if b == nil {
		return 0
	}
	return b.NFrags * int64(b.NReadsPerFrag)
}

// Reserve grows the batch to hold at least nFrags fragments. Shrinking
// is a no-op. Newly added slots are zero-initialized; the existing
// prefix is preserved exactly, including its owned read buffers. On
// error the batch is left unmodified (§4.C, §8 property 2).
func (b *Batch) Reserve(nFrags int64) error {
	if nFrags < 0 {
		return Errorf(ParamError, "rapi: negative fragment count %d", nFrags)
	}
	if nFrags <= b.NFrags {
		return nil
	}
	newReads := make([]Read, nFrags*int64(b.NReadsPerFrag))
	copy(newReads, b.reads)
	b.reads = newReads
	b.NFrags = nFrags
	return nil
}

// Clear resets all slots to zero, releasing each read's owned data
// (id/seq/qual buffer, alignments and their cigar/tag storage) without
// releasing the outer rectangle (§4.C).
func (b *Batch) Clear() {
	for i := range b.reads {
		b.reads[i].clear()
	}
}

// Free releases everything, including the outer rectangle, and zeros
// the batch handle (§4.C, §8 property 3).
func (b *Batch) Free() {
	b.reads = nil
	b.NFrags = 0
	b.NReadsPerFrag = 0
}

func (b *Batch) index(nFrag int64, nRead int) (int64, error) {
	if nFrag < 0 || nFrag >= b.NFrags || nRead < 0 || nRead >= b.NReadsPerFrag {
		return 0, Errorf(ParamError, "rapi: read coordinates (%d, %d) out of range for batch (%d frags, %d reads/frag)",
			nFrag, nRead, b.NFrags, b.NReadsPerFrag)
	}
	return nFrag*int64(b.NReadsPerFrag) + int64(nRead), nil
}

// SetRead stores id/seq/qual at (nFrag, nRead), validating coordinates,
// rejecting empty sequences, and recoding qual from qOffset to Sanger
// (33). Any recoded byte landing outside [33,126] aborts the call and
// rolls the slot back to its prior contents (§4.C).
func (b *Batch) SetRead(nFrag int64, nRead int, id, seq, qual string, qOffset int) error {
	idx, err := b.index(nFrag, nRead)
	if err != nil {
		return err
	}
	var tmp Read
	if err := tmp.setRead(id, seq, qual, qOffset); err != nil {
		return err
	}
	b.reads[idx] = tmp
	return nil
}

// GetRead returns a pointer into the batch at (nFrag, nRead), or nil if
// the coordinates are out of range.
func (b *Batch) GetRead(nFrag int64, nRead int) *Read {
	idx, err := b.index(nFrag, nRead)
	if err != nil {
		return nil
	}
	return &b.reads[idx]
}

// Fragment returns the slice of reads belonging to fragment nFrag, or
// nil if nFrag is out of range.
func (b *Batch) Fragment(nFrag int64) []Read {
	if nFrag < 0 || nFrag >= b.NFrags {
		return nil
	}
	start := nFrag * int64(b.NReadsPerFrag)
	return b.reads[start : start+int64(b.NReadsPerFrag)]
}
