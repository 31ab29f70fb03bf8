// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"strings"
	"testing"

	"github.com/biogo/rapi"
)

func TestAttachSATagsSingleAlignmentUntouched(t *testing.T) {
	c := &rapi.Contig{Name: "chr1"}
	alns := []*rapi.Alignment{{Contig: c, Mapped: true, Pos: 10}}
	attachSATags(alns)
	if _, ok := alns[0].Tag("SA"); ok {
		t.Error("a single mapped alignment must not get an SA tag")
	}
}

func TestAttachSATagsMultipleMapped(t *testing.T) {
	c := &rapi.Contig{Name: "chr1"}
	a := &rapi.Alignment{Contig: c, Mapped: true, Pos: 10, MapQ: 60,
		Cigar: rapi.Cigar{{Op: rapi.CigarMatch, Len: 20}}}
	b := &rapi.Alignment{Contig: c, Mapped: true, Pos: 500, ReverseStrand: true, MapQ: 20,
		Cigar: rapi.Cigar{{Op: rapi.CigarMatch, Len: 20}}}
	alns := []*rapi.Alignment{a, b}

	attachSATags(alns)

	tagA, ok := a.Tag("SA")
	if !ok {
		t.Fatal("alignment a missing SA tag")
	}
	text, err := tagA.GetText()
	if err != nil {
		t.Fatalf("SA tag is not text-typed: %v", err)
	}
	if !strings.Contains(text, "chr1,500,-,") {
		t.Errorf("a's SA tag = %q, want an entry describing b", text)
	}

	tagB, _ := b.Tag("SA")
	textB, _ := tagB.GetText()
	if !strings.Contains(textB, "chr1,10,+,") {
		t.Errorf("b's SA tag = %q, want an entry describing a", textB)
	}
}

func TestAttachSATagsSkipsSecondaryAndUnmapped(t *testing.T) {
	c := &rapi.Contig{Name: "chr1"}
	primary := &rapi.Alignment{Contig: c, Mapped: true, Pos: 1}
	secondary := &rapi.Alignment{Contig: c, Mapped: true, Pos: 2, Secondary: true}
	unmapped := &rapi.Alignment{Mapped: false}
	alns := []*rapi.Alignment{primary, secondary, unmapped}

	attachSATags(alns)

	if _, ok := primary.Tag("SA"); ok {
		t.Error("only one non-secondary mapped alignment exists, SA should not be attached")
	}
}
