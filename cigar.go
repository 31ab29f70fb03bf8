// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "bytes"

// CigarOpType is the operation code of a single CIGAR operation.
type CigarOpType uint8

// CIGAR operation codes (§3). Values are wire-stable: they match the
// packed 4-bit op field of the original C rapi_cigar bitfield.
const (
	CigarMatch       CigarOpType = 0 // M
	CigarInsertion   CigarOpType = 1 // I
	CigarDeletion    CigarOpType = 2 // D
	CigarSoftClipped CigarOpType = 3 // S
	CigarHardClipped CigarOpType = 4 // H
	CigarSkipped     CigarOpType = 5 // N
	CigarPadded      CigarOpType = 6 // P
)

var cigarOpChar = [...]byte{'M', 'I', 'D', 'S', 'H', 'N', 'P'}

// String returns the single-letter representation of the op type, or "?"
// for an out of range value.
func (t CigarOpType) String() string {
	if int(t) >= len(cigarOpChar) {
		return "?"
	}
	return string(cigarOpChar[t])
}

// CigarOp is a single (op, length) pair. Length is restricted to 28 bits
// to mirror the packed representation of the original rapi_cigar.
type CigarOp struct {
	Op  CigarOpType
	Len uint32
}

const maxCigarLen = 1<<28 - 1

// NewCigarOp returns a CigarOp, or a ParamError when n is negative or
// does not fit in 28 bits.
func NewCigarOp(op CigarOpType, n int) (CigarOp, error) {
	if n < 0 || n > maxCigarLen {
		return CigarOp{}, Errorf(ParamError, "rapi: cigar op length %d out of range", n)
	}
	return CigarOp{Op: op, Len: uint32(n)}, nil
}

// Cigar is an ordered list of CIGAR operations.
type Cigar []CigarOp

// RefConsumedLen returns the number of reference bases consumed by c:
// the sum of lengths of M and D operations (§4.H).
func (c Cigar) RefConsumedLen() int {
	n := 0
	for _, op := range c {
		if op.Op == CigarMatch || op.Op == CigarDeletion {
			n += int(op.Len)
		}
	}
	return n
}

// PutCigar renders c in SAM CIGAR string form (§4.H): letters MIDSH:
// N and P are never emitted. Soft clips are rewritten to hard clips
// when forceHardClip is set, matching the supplementary-alignment rule
// of §4.G. An empty, or entirely N/P, op list renders as "*".
func PutCigar(c Cigar, forceHardClip bool) string {
	var b bytes.Buffer
	for _, op := range c {
		o := op.Op
		if o == CigarSkipped || o == CigarPadded {
			continue
		}
		if forceHardClip && o == CigarSoftClipped {
			o = CigarHardClipped
		}
		writeUint(&b, uint64(op.Len))
		b.WriteByte(cigarOpChar[o])
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// writeUint writes the decimal representation of n to b without the
// allocations of strconv.Itoa + WriteString.
func writeUint(b *bytes.Buffer, n uint64) {
	if n == 0 {
		b.WriteByte('0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	b.Write(buf[i:])
}
