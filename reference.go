// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "io"

// BackendIndex is the opaque, backend-owned handle referenced by a
// Reference (§3). The core never looks inside it; it only closes it
// when the Reference is freed.
type BackendIndex = io.Closer

// ReferenceLoader is the minimal capability a backend must expose for
// rapi.LoadReference to build a Reference: given a path, it maps or
// reads whatever on-disk index format the backend uses and reports back
// the backend handle plus the decoded contig catalog. Any backend.Backend
// (§6.4) satisfies this structurally, without rapi importing the backend
// package.
type ReferenceLoader interface {
	LoadReferenceIndex(path string) (BackendIndex, []Contig, error)
}

// Reference is an immutable-after-load catalog of contigs backed by an
// opaque, backend-owned index handle (§3).
type Reference struct {
	Path    string
	Contigs []Contig

	handle BackendIndex
}

// LoadReference loads the reference index at path via loader. On any
// failure, no partial Reference escapes: the returned pointer is nil and
// any backend handle obtained before the failure is closed (§4.B,
// "must fail atomically").
func LoadReference(loader ReferenceLoader, path string) (*Reference, error) {
	if path == "" {
		return nil, Errorf(ParamError, "rapi: empty reference path")
	}
	handle, contigs, err := loader.LoadReferenceIndex(path)
	if err != nil {
		if handle != nil {
			handle.Close()
		}
		return nil, Wrap(GenericError, err, "rapi: failed to load reference "+path)
	}
	return &Reference{
		Path:    path,
		Contigs: contigs,
		handle:  handle,
	}, nil
}

// Free releases the reference in the order specified by §4.B: backend
// handle, then path, then per-contig metadata, then the contig array.
// After Free the Reference must not be used again; it is zeroed so that
// accidental reuse is easy to spot.
func (r *Reference) Free() error {
	if r == nil {
		return nil
	}
	var err error
	if r.handle != nil {
		err = r.handle.Close()
	}
	r.Path = ""
	r.Contigs = nil
	r.handle = nil
	if err != nil {
		return Wrap(GenericError, err, "rapi: error closing backend reference handle")
	}
	return nil
}

// Handle returns the backend-owned index handle LoadReference stored,
// so a backend can recover its own concrete type from a *Reference it
// is handed back in later calls.
func (r *Reference) Handle() BackendIndex {
	if r == nil {
		return nil
	}
	return r.handle
}

// ContigIndex returns the index of the contig with the given name, or -1
// if the reference has no such contig.
func (r *Reference) ContigIndex(name string) int {
	for i := range r.Contigs {
		if r.Contigs[i].Name == name {
			return i
		}
	}
	return -1
}
