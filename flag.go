// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// Flags represents a SAM FLAG field (§4.G). It is the bit-for-bit
// layout SAM v1.6 specifies; the sam package computes one of these per
// alignment and per mate.
type Flags uint16

const (
	Paired        Flags = 1 << iota // 0x1  template has multiple reads
	ProperPair                      // 0x2  each read properly aligned
	Unmapped                        // 0x4  read unmapped
	MateUnmapped                    // 0x8  mate unmapped
	Reverse                         // 0x10 read reverse strand
	MateReverse                     // 0x20 mate reverse strand
	Read1                           // 0x40 first read in template
	Read2                           // 0x80 second read in template
	Secondary                       // 0x100 secondary alignment
	QCFail                          // 0x200 not passing filters
	Duplicate                       // 0x400 PCR or optical duplicate
	Supplementary                   // 0x800 supplementary alignment
)

// String renders flag as the short debug form used by the original
// rapi_flag_string: one character per bit ("pPuUrR12sfdS"), "-" when
// unset. When Paired is unset, the pair-dependent bits are forced unset
// first since no assumptions can be made about them.
func (f Flags) String() string {
	const pairedMask = ProperPair | MateUnmapped | MateReverse | Read1 | Read2
	if f&Paired == 0 {
		f &^= pairedMask
	}
	const names = "pPuUrR12sfdS"
	b := make([]byte, len(names))
	for i, c := range names {
		if f&(1<<uint(i)) != 0 {
			b[i] = byte(c)
		} else {
			b[i] = '-'
		}
	}
	return string(b)
}
