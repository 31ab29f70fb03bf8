// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "testing"

func TestPutCigar(t *testing.T) {
	for _, test := range []struct {
		c             Cigar
		forceHardClip bool
		want          string
	}{
		{c: nil, want: "*"},
		{c: Cigar{{CigarMatch, 100}}, want: "100M"},
		{
			c:    Cigar{{CigarSoftClipped, 5}, {CigarMatch, 90}, {CigarInsertion, 2}, {CigarMatch, 3}, {CigarDeletion, 1}},
			want: "5S90M2I3M1D",
		},
		{
			c:             Cigar{{CigarSoftClipped, 5}, {CigarMatch, 90}},
			forceHardClip: true,
			want:          "5H90M",
		},
		{
			c:    Cigar{{CigarMatch, 10}, {CigarSkipped, 500}, {CigarMatch, 10}, {CigarPadded, 2}},
			want: "10M10M",
		},
		{
			c:    Cigar{{CigarSkipped, 500}},
			want: "*",
		},
	} {
		if got := PutCigar(test.c, test.forceHardClip); got != test.want {
			t.Errorf("PutCigar(%v, %v) = %q, want %q", test.c, test.forceHardClip, got, test.want)
		}
	}
}

func TestCigarRefConsumedLen(t *testing.T) {
	c := Cigar{{CigarSoftClipped, 5}, {CigarMatch, 90}, {CigarInsertion, 2}, {CigarDeletion, 3}}
	if got, want := c.RefConsumedLen(), 93; got != want {
		t.Errorf("RefConsumedLen() = %d, want %d", got, want)
	}
}

func TestNewCigarOpRange(t *testing.T) {
	if _, err := NewCigarOp(CigarMatch, -1); err == nil {
		t.Error("NewCigarOp(-1) should fail")
	}
	if _, err := NewCigarOp(CigarMatch, maxCigarLen+1); err == nil {
		t.Error("NewCigarOp(maxCigarLen+1) should fail")
	}
	if _, err := NewCigarOp(CigarMatch, maxCigarLen); err != nil {
		t.Errorf("NewCigarOp(maxCigarLen) should succeed: %v", err)
	}
}
