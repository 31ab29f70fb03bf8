// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// Alignment is one placement of a Read against a Reference (§3).
// Contig is a weak reference into the Reference that produced it: the
// Alignment does not own it and must not outlive the Reference.
type Alignment struct {
	Contig *Contig
	Pos    int64 // 1-based
	MapQ   uint8
	Score  int

	Paired        bool
	PropPaired    bool
	Mapped        bool
	ReverseStrand bool
	Secondary     bool

	NMismatches     uint8
	NGapOpens       uint8
	NGapExtensions  uint8

	Cigar Cigar
	Tags  []Tag
}

// Supplementary reports whether this Alignment should receive the SAM
// 0x800 flag: it is non-secondary and not the first in its read's
// alignment list (§4.F, §4.G).
func Supplementary(aln *Alignment, index int) bool {
	return index > 0 && !aln.Secondary
}

// Tag returns the value of the tag with the given key and whether it was
// found.
func (a *Alignment) Tag(key string) (Tag, bool) {
	for _, t := range a.Tags {
		if t.Key == key {
			return t, true
		}
	}
	return Tag{}, false
}

// AddIntTag appends a tag with the given key and integer value.
func (a *Alignment) AddIntTag(key string, v int64) {
	t := Tag{}
	t.SetKey(key)
	t.SetInt(v)
	a.Tags = append(a.Tags, t)
}

// AddTextTag appends a tag with the given key and text value.
func (a *Alignment) AddTextTag(key string, v string) {
	t := Tag{}
	t.SetKey(key)
	t.SetText(v)
	a.Tags = append(a.Tags, t)
}

// InsertSize returns the signed distance between the outermost mapped
// positions of aln and mate (§4.H, TLEN). It is zero unless both ends
// are mapped on the same contig; InsertSize(a, b) == -InsertSize(b, a).
func InsertSize(aln, mate *Alignment) int64 {
	if aln == nil || mate == nil || !aln.Mapped || !mate.Mapped || aln.Contig != mate.Contig {
		return 0
	}
	p0 := aln.Pos
	if aln.ReverseStrand {
		p0 += int64(aln.Cigar.RefConsumedLen()) - 1
	}
	p1 := mate.Pos
	if mate.ReverseStrand {
		p1 += int64(mate.Cigar.RefConsumedLen()) - 1
	}
	diff := p0 - p1
	var sign int64
	switch {
	case diff > 0:
		sign = 1
	case diff < 0:
		sign = -1
	}
	return -(diff + sign)
}
