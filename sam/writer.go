// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"io"
	"strconv"

	"github.com/biogo/rapi"
	"github.com/biogo/rapi/internal/pool"
	"github.com/pkg/errors"
)

// Writer renders fragments as SAM text records onto an underlying
// io.Writer, the header having already been written by NewWriter.
type Writer struct {
	w io.Writer
}

// NewWriter writes h to w and returns a Writer ready to accept
// fragments.
func NewWriter(w io.Writer, h *Header) (*Writer, error) {
	text, err := h.MarshalText()
	if err != nil {
		return nil, errors.Wrap(err, "sam: failed to marshal header")
	}
	if _, err := w.Write(text); err != nil {
		return nil, errors.Wrap(err, "sam: failed to write header")
	}
	return &Writer{w: w}, nil
}

// WriteFragment renders every alignment of every read in reads (1 for
// single-end, 2 for paired-end) as SAM records, cross-referencing mate
// fields (RNEXT/PNEXT/TLEN) from each read's first, primary alignment.
func (w *Writer) WriteFragment(id string, reads []*rapi.Read) error {
	paired := len(reads) == 2
	for i, read := range reads {
		var mate *rapi.Read
		if paired {
			mate = reads[1-i]
		}
		alns := read.Alignments
		if len(alns) == 0 {
			alns = []*rapi.Alignment{nil}
		}
		for j, aln := range alns {
			var mateAln *rapi.Alignment
			if mate != nil && len(mate.Alignments) > 0 {
				mateAln = mate.Alignments[0]
			}
			buf := pool.GetBuffer(0)
			buf = appendRecord(buf, id, read, i, paired, aln, j, mateAln)
			_, err := w.w.Write(buf)
			pool.PutBuffer(buf)
			if err != nil {
				return errors.Wrap(err, "sam: failed to write record")
			}
		}
	}
	return nil
}

func flagsFor(readIndex int, paired bool, aln *rapi.Alignment, alnIndex int, mateAln *rapi.Alignment) rapi.Flags {
	var f rapi.Flags
	if paired {
		f |= rapi.Paired
		if readIndex == 0 {
			f |= rapi.Read1
		} else {
			f |= rapi.Read2
		}
		if mateAln == nil || !mateAln.Mapped {
			f |= rapi.MateUnmapped
		} else if mateAln.ReverseStrand {
			f |= rapi.MateReverse
		}
		if aln != nil && aln.Mapped && aln.PropPaired {
			f |= rapi.ProperPair
		}
	}
	if aln == nil || !aln.Mapped {
		f |= rapi.Unmapped
		return f
	}
	if aln.ReverseStrand {
		f |= rapi.Reverse
	}
	if rapi.Supplementary(aln, alnIndex) {
		f |= rapi.Supplementary
	} else if alnIndex > 0 || aln.Secondary {
		f |= rapi.Secondary
	}
	return f
}

func appendRecord(buf []byte, id string, read *rapi.Read, readIndex int, paired bool, aln *rapi.Alignment, alnIndex int, mateAln *rapi.Alignment) []byte {
	buf = buf[:0]
	buf = append(buf, id...)
	buf = append(buf, '\t')

	flags := flagsFor(readIndex, paired, aln, alnIndex, mateAln)
	buf = strconv.AppendInt(buf, int64(flags), 10)
	buf = append(buf, '\t')

	mapped := aln != nil && aln.Mapped
	mateMapped := mateAln != nil && mateAln.Mapped
	secondary := aln != nil && aln.Secondary
	supplementary := rapi.Supplementary(aln, alnIndex)

	// §4.G: when exactly one end is mapped, the unmapped end reports the
	// mapped end's RNAME/POS (classic BWA behaviour), and the mapped
	// end's RNEXT/PNEXT point back at itself.
	var rname *rapi.Contig
	var pos int64
	switch {
	case mapped:
		rname, pos = aln.Contig, aln.Pos
	case mateMapped:
		rname, pos = mateAln.Contig, mateAln.Pos
	}

	if rname != nil {
		buf = append(buf, rname.Name...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, pos, 10)
		buf = append(buf, '\t')
		if mapped {
			buf = strconv.AppendInt(buf, int64(aln.MapQ), 10)
			buf = append(buf, '\t')
			buf = append(buf, rapi.PutCigar(aln.Cigar, supplementary)...)
		} else {
			buf = append(buf, "0\t*"...)
		}
	} else {
		buf = append(buf, "*\t0\t0\t*"...)
	}
	buf = append(buf, '\t')

	var mrname *rapi.Contig
	var mpos int64
	switch {
	case mateMapped:
		mrname, mpos = mateAln.Contig, mateAln.Pos
	case mapped:
		mrname, mpos = aln.Contig, aln.Pos
	}

	if mrname != nil {
		if mrname == rname {
			buf = append(buf, '=')
		} else {
			buf = append(buf, mrname.Name...)
		}
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, mpos, 10)
	} else {
		buf = append(buf, "*\t0"...)
	}
	buf = append(buf, '\t')

	var tlen int64
	if mapped && mateMapped {
		tlen = rapi.InsertSize(aln, mateAln)
	}
	buf = strconv.AppendInt(buf, tlen, 10)
	buf = append(buf, '\t')

	switch {
	case secondary:
		// §4.G: secondary alignments do not emit SEQ/QUAL.
		buf = append(buf, "*\t*"...)
	case mapped:
		seq := []byte(read.Seq())
		hasQual := read.HasQual()
		var qual []byte
		if hasQual {
			qual = []byte(read.Qual())
		}
		if aln.ReverseStrand {
			rapi.RevComp(seq)
			if hasQual {
				qual = reverseBytes(qual)
			}
		}
		if supplementary {
			// §4.G: supplementary alignments emit only the
			// non-hard-clipped span of the read.
			begin, end := clippedSpan(aln.Cigar, len(seq))
			seq = seq[begin:end]
			if hasQual {
				qual = qual[begin:end]
			}
		}
		buf = append(buf, seq...)
		buf = append(buf, '\t')
		if hasQual {
			buf = append(buf, qual...)
		} else {
			buf = append(buf, '*')
		}
	default:
		buf = append(buf, read.Seq()...)
		buf = append(buf, '\t')
		if read.HasQual() {
			buf = append(buf, read.Qual()...)
		} else {
			buf = append(buf, '*')
		}
	}

	if mapped {
		for _, t := range aln.Tags {
			buf = append(buf, '\t')
			buf = appendTag(buf, t)
		}
	}

	buf = append(buf, '\n')
	return buf
}

// clippedSpan returns the [begin, end) span, out of a read of length
// total, that survives the leading and trailing soft/hard clips of
// cigar: the span rendered for a supplementary alignment's SEQ/QUAL
// (§4.G).
func clippedSpan(cigar rapi.Cigar, total int) (begin, end int) {
	end = total
	for _, op := range cigar {
		if op.Op != rapi.CigarSoftClipped && op.Op != rapi.CigarHardClipped {
			break
		}
		begin += int(op.Len)
	}
	for i := len(cigar) - 1; i >= 0; i-- {
		op := cigar[i]
		if op.Op != rapi.CigarSoftClipped && op.Op != rapi.CigarHardClipped {
			break
		}
		end -= int(op.Len)
	}
	return begin, end
}

func reverseBytes(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func appendTag(buf []byte, t rapi.Tag) []byte {
	buf = append(buf, t.Key...)
	buf = append(buf, ':')
	switch t.Type() {
	case rapi.Int:
		buf = append(buf, 'i', ':')
		v, _ := t.GetLong()
		buf = strconv.AppendInt(buf, v, 10)
	case rapi.Real:
		buf = append(buf, 'f', ':')
		v, _ := t.GetDbl()
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	case rapi.Char:
		buf = append(buf, 'A', ':')
		v, _ := t.GetChar()
		buf = append(buf, v)
	default:
		buf = append(buf, 'Z', ':')
		v, _ := t.GetText()
		buf = append(buf, v...)
	}
	return buf
}
