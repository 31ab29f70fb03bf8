// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rapi-wfa-demo aligns one paired-end read pair against a
// FASTA reference using the wfa reference backend and writes the
// result as SAM to stdout. It exists to exercise the rapi/engine
// pipeline end to end; it is not a production aligner driver.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/biogo/rapi"
	"github.com/biogo/rapi/engine"
	"github.com/biogo/rapi/sam"
	"github.com/biogo/rapi/wfa"
	"github.com/kortschak/utter"
)

var (
	refPath = flag.String("ref", "", "path to a FASTA reference")
	r1Seq   = flag.String("r1", "", "first-in-pair read sequence")
	r2Seq   = flag.String("r2", "", "second-in-pair read sequence")
	debug   = flag.Bool("debug", false, "dump the aligner state to stderr")
)

func main() {
	flag.Parse()
	if *refPath == "" || *r1Seq == "" || *r2Seq == "" {
		fmt.Fprintln(os.Stderr, "usage: rapi-wfa-demo -ref ref.fa -r1 SEQ -r2 SEQ")
		os.Exit(2)
	}
	if err := run(*refPath, *r1Seq, *r2Seq); err != nil {
		fmt.Fprintln(os.Stderr, "rapi-wfa-demo:", err)
		os.Exit(1)
	}
}

func run(refPath, r1, r2 string) error {
	be := wfa.Backend{}

	ref, err := rapi.LoadReference(be, refPath)
	if err != nil {
		return err
	}
	defer ref.Free()

	batch, err := rapi.Alloc(2, 1)
	if err != nil {
		return err
	}
	defer batch.Free()
	if err := batch.SetRead(0, 0, "demo/1", r1, "", 0); err != nil {
		return err
	}
	if err := batch.SetRead(0, 1, "demo/2", r2, "", 0); err != nil {
		return err
	}

	state := rapi.NewAlignerState(nil)
	if err := engine.Align(state, ref, batch, 0, batch.NFrags, be); err != nil {
		return err
	}
	if *debug {
		fmt.Fprintln(os.Stderr, utter.Sdump(state))
	}

	h := sam.NewHeader(ref.Contigs)
	h.Programs = append(h.Programs, sam.Program{ID: be.Name(), Name: be.Name(), Version: be.Version()})
	w, err := sam.NewWriter(os.Stdout, h)
	if err != nil {
		return err
	}
	reads := batch.Fragment(0)
	return w.WriteFragment("demo", []*rapi.Read{&reads[0], &reads[1]})
}
