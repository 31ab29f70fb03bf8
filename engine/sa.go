// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"strconv"
	"strings"

	"github.com/biogo/rapi"
)

// attachSATags adds an SA tag to every mapped, non-secondary alignment
// in alns when there is more than one such alignment: each SA value
// lists every *other* mapped alignment in the group as
// "contig,pos,strand,CIGAR,mapQ,NM;", the chimeric-alignment convention
// also used for supplementary records (§4.F, §8 "multi-part reads").
func attachSATags(alns []*rapi.Alignment) {
	mapped := make([]*rapi.Alignment, 0, len(alns))
	for _, a := range alns {
		if a.Mapped && !a.Secondary {
			mapped = append(mapped, a)
		}
	}
	if len(mapped) < 2 {
		return
	}
	for i, a := range mapped {
		var b strings.Builder
		for j, other := range mapped {
			if j == i {
				continue
			}
			writeSAEntry(&b, other)
		}
		a.AddTextTag("SA", b.String())
	}
}

func writeSAEntry(b *strings.Builder, a *rapi.Alignment) {
	b.WriteString(a.Contig.Name)
	b.WriteByte(',')
	b.WriteString(strconv.FormatInt(a.Pos, 10))
	b.WriteByte(',')
	if a.ReverseStrand {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteByte(',')
	b.WriteString(rapi.PutCigar(a.Cigar, true))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(a.MapQ)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(a.NMismatches)))
	b.WriteByte(';')
}
