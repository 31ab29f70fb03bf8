// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// Contig describes one named reference sequence, e.g. a chromosome
// (§3). Name is treated as a non-owned view into the backend's own
// string table: the core never mutates or frees it out from under the
// backend. The remaining metadata fields are core-owned and optional.
type Contig struct {
	Name   string
	Length int64

	AssemblyID string
	Species    string
	URI        string
	MD5        string
}
