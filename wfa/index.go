// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wfa is a small reference rapi/backend.Backend built on the
// wavefront aligner in github.com/shenwei356/wfa. It trades the
// seed-and-chain search of a production engine for a linear scan of
// every contig, which is fine for the small references this module's
// own tests load, but is not meant for whole genomes.
package wfa

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/biogo/rapi"
	"golang.org/x/exp/mmap"
)

// record is one FASTA sequence's offset table, built the way
// biogo/hts/fai scans a FASTA file: no separate .fai sidecar is
// required.
type record struct {
	name                       string
	length                     int64
	start                      int64
	basesPerLine, bytesPerLine int
}

func (r record) position(p int64) int64 {
	return r.start + p/int64(r.basesPerLine)*int64(r.bytesPerLine) + p%int64(r.basesPerLine)
}

func scanIndex(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		recs   []record
		cur    record
		offset int64
		inSeq  bool
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := sc.Bytes()
		lineLen := int64(len(line)) + 1 // + the newline the scanner stripped
		if len(line) > 0 && line[0] == '>' {
			if inSeq {
				recs = append(recs, cur)
			}
			name := string(bytes.SplitN(line[1:], []byte{' '}, 2)[0])
			cur = record{name: name, start: offset + lineLen}
			inSeq = true
		} else if inSeq {
			b := bytes.TrimRight(line, "\r")
			if cur.bytesPerLine == 0 {
				cur.bytesPerLine = len(line) + 1
				cur.basesPerLine = len(b)
			}
			cur.length += int64(len(b))
		}
		offset += lineLen
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inSeq {
		recs = append(recs, cur)
	}
	return recs, nil
}

// Index is an opened, mmapped FASTA file paired with the offset table
// scanIndex computed for it. It implements rapi.BackendIndex.
type Index struct {
	f    *mmap.ReaderAt
	recs []record
	byID map[string]int
}

// LoadReferenceIndex opens the FASTA file at path, scans its contig
// offsets and satisfies rapi.ReferenceLoader.
func LoadReferenceIndex(path string) (rapi.BackendIndex, []rapi.Contig, error) {
	recs, err := scanIndex(path)
	if err != nil {
		return nil, nil, fmt.Errorf("wfa: failed to index %s: %w", path, err)
	}
	f, err := mmap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("wfa: failed to mmap %s: %w", path, err)
	}
	idx := &Index{f: f, recs: recs, byID: make(map[string]int, len(recs))}
	contigs := make([]rapi.Contig, len(recs))
	for i, r := range recs {
		contigs[i] = rapi.Contig{Name: r.name, Length: r.length}
		idx.byID[r.name] = i
	}
	return idx, contigs, nil
}

// Close releases the mmapped file.
func (x *Index) Close() error {
	if x == nil || x.f == nil {
		return nil
	}
	err := x.f.Close()
	x.f = nil
	return err
}

// sequence reads the full sequence of the contig at i into dst,
// growing it as needed, and returns the slice actually filled.
func (x *Index) sequence(i int, dst []byte) ([]byte, error) {
	r := x.recs[i]
	if int64(cap(dst)) < r.length {
		dst = make([]byte, r.length)
	}
	dst = dst[:r.length]
	var n int64
	for n < r.length {
		lineBases := int64(r.basesPerLine)
		rem := r.length - n
		if rem < lineBases {
			lineBases = rem
		}
		pos := r.position(n)
		read, err := x.f.ReadAt(dst[n:n+lineBases], pos)
		if err != nil {
			return nil, fmt.Errorf("wfa: read error in contig %s: %w", r.name, err)
		}
		n += int64(read)
	}
	return dst, nil
}
