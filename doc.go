// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rapi implements the data model of the Read Aligner Plugin
// Interface (RAPI): an alignment-engine-agnostic contract for aligning
// batches of short DNA reads against a pre-built reference index via a
// pluggable backend engine.
//
// rapi itself holds only the core types — Reference, Batch, Read,
// Alignment, Cigar, Param/Tag, Options — and the utilities defined over
// them. The engine contract lives in package backend; the two-phase
// paired-end alignment pipeline lives in package engine; SAM rendering
// lives in package sam.
package rapi
