// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sam renders rapi alignment results as SAM v1.6 text: the
// @HD/@SQ/@PG/@CO header lines and one record per alignment.
//
// http://samtools.github.io/hts-specs/SAMv1.pdf
package sam

import (
	"bytes"
	"fmt"

	"github.com/biogo/rapi"
)

// Program describes one @PG line.
type Program struct {
	ID, Name, Version, CommandLine string
}

// Header collects the metadata a Writer emits before any alignment
// records: the reference dictionary, the chain of @PG entries that
// produced the file, and free-text @CO comments.
type Header struct {
	Contigs  []rapi.Contig
	Programs []Program
	Comments []string

	// SortOrder is written into the @HD line's SO field; it defaults
	// to "unsorted", as a one-pass aligner never sorts its output.
	SortOrder string
}

// NewHeader returns a Header with the given reference dictionary and
// an "unsorted" @HD line, ready for Programs/Comments to be appended.
func NewHeader(contigs []rapi.Contig) *Header {
	return &Header{Contigs: contigs, SortOrder: "unsorted"}
}

// MarshalText renders h in SAM header text form.
func (h *Header) MarshalText() ([]byte, error) {
	var b bytes.Buffer

	so := h.SortOrder
	if so == "" {
		so = "unsorted"
	}
	fmt.Fprintf(&b, "@HD\tVN:1.6\tSO:%s\n", so)

	for _, c := range h.Contigs {
		fmt.Fprintf(&b, "@SQ\tSN:%s\tLN:%d", c.Name, c.Length)
		if c.AssemblyID != "" {
			fmt.Fprintf(&b, "\tAS:%s", c.AssemblyID)
		}
		if c.Species != "" {
			fmt.Fprintf(&b, "\tSP:%s", c.Species)
		}
		if c.MD5 != "" {
			fmt.Fprintf(&b, "\tM5:%s", c.MD5)
		}
		if c.URI != "" {
			fmt.Fprintf(&b, "\tUR:%s", c.URI)
		}
		b.WriteByte('\n')
	}

	for _, p := range h.Programs {
		fmt.Fprintf(&b, "@PG\tID:%s", p.ID)
		if p.Name != "" {
			fmt.Fprintf(&b, "\tPN:%s", p.Name)
		}
		if p.Version != "" {
			fmt.Fprintf(&b, "\tVN:%s", p.Version)
		}
		if p.CommandLine != "" {
			fmt.Fprintf(&b, "\tCL:%s", p.CommandLine)
		}
		b.WriteByte('\n')
	}

	for _, c := range h.Comments {
		fmt.Fprintf(&b, "@CO\t%s\n", c)
	}

	return b.Bytes(), nil
}
