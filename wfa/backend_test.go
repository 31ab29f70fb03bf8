// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wfa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/rapi"
)

const testFasta = ">chr1\n" +
	"ACGTACGTACGTACGTACGTGGGGCCCCAAAATTTTACGTACGTACGTACGTACGTACGT\n" +
	"TTTTGGGGCCCCAAAAACGTACGTACGTACGTACGTACGT\n"

func writeTestFasta(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.fa")
	if err := os.WriteFile(path, []byte(testFasta), 0o644); err != nil {
		t.Fatalf("failed to write test fasta: %v", err)
	}
	return path
}

func TestLoadReferenceIndex(t *testing.T) {
	path := writeTestFasta(t)
	handle, contigs, err := LoadReferenceIndex(path)
	if err != nil {
		t.Fatalf("LoadReferenceIndex failed: %v", err)
	}
	defer handle.Close()

	if len(contigs) != 1 || contigs[0].Name != "chr1" {
		t.Fatalf("contigs = %v, want a single chr1 contig", contigs)
	}
	wantLen := int64(len("ACGTACGTACGTACGTACGTGGGGCCCCAAAATTTTACGTACGTACGTACGTACGTACGT") +
		len("TTTTGGGGCCCCAAAAACGTACGTACGTACGTACGTACGT"))
	if contigs[0].Length != wantLen {
		t.Errorf("contig length = %d, want %d", contigs[0].Length, wantLen)
	}
}

func TestAlignCoreFindsExactMatch(t *testing.T) {
	path := writeTestFasta(t)
	ref, err := rapi.LoadReference(Backend{}, path)
	if err != nil {
		t.Fatalf("LoadReference failed: %v", err)
	}
	defer ref.Free()

	opts := rapi.DefaultOptions()
	opts.T = 10
	be := Backend{}

	// A perfect 16bp substring of the contig's forward strand.
	seq := []byte("GGGGCCCCAAAATTTT")
	regions, err := be.AlignCore(opts, ref, seq)
	if err != nil {
		t.Fatalf("AlignCore failed: %v", err)
	}
	if len(regions) == 0 {
		t.Fatal("AlignCore found no regions for an exact substring")
	}
	found := false
	for _, r := range regions {
		if r.Score >= opts.T {
			found = true
		}
	}
	if !found {
		t.Errorf("no region cleared the minimum score threshold: %v", regions)
	}
}
