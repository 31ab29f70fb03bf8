// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// Options carries the process-wide and per-call tuning knobs for a
// backend (§4.D). Defaults mirror BWA-MEM's, matching the original
// implementation so a backend swap does not silently change scoring
// behaviour.
type Options struct {
	IgnoreUnsupported bool

	MapQMin int
	ISizeMin int
	ISizeMax int

	NThreads     int
	ShareRefMem  bool

	Parameters []Param

	// Match/mismatch/gap scoring, BWA-MEM defaults.
	Match          int
	Mismatch       int
	GapOpen        int
	GapExt         int
	Band           int
	T              int // minimum output score
	ZDrop          int
	PenUnpaired    int
	PenClip        int
	MinSeedLen     int
	SplitWidth     int
	MaxOcc         int
	MaxChainGap    int
	MaxIns         int
	MaskLevel      float64
	ChainDrop      float64
	SplitFactor    float64
	Chunk          int
	MaxMateSW      int
	MaskLevelRedun float64
	MapQCoefLen    float64

	// NoRescue disables the mate-rescue step of §4.F pass 2.
	NoRescue bool
	// NoPairing disables pairing entirely, falling through to the
	// unpaired "no pairing" path of §4.F step 5 for every fragment.
	NoPairing bool
	// OutputAll makes the finalizer's unpaired path convert every
	// remaining region of each end into an extra alignment record,
	// loosely mirroring BWA's MEM_F_ALL. The paired path does not read
	// it and emits only the winning alignment of each end.
	OutputAll bool

	// Private is an opaque, backend-specific payload (§4.D).
	Private interface{}
}

// DefaultOptions returns a freshly allocated Options populated with the
// BWA-MEM-style defaults named in §4.D.
func DefaultOptions() *Options {
	return &Options{
		MapQMin:        0,
		ISizeMin:       0,
		ISizeMax:       0,
		NThreads:       1,
		Match:          1,
		Mismatch:       4,
		GapOpen:        6,
		GapExt:         1,
		Band:           100,
		T:              30,
		ZDrop:          100,
		PenUnpaired:    17,
		PenClip:        5,
		MinSeedLen:     19,
		SplitWidth:     10,
		MaxOcc:         10000,
		MaxChainGap:    10000,
		MaxIns:         10000,
		MaskLevel:      0.50,
		ChainDrop:      0.50,
		SplitFactor:    1.5,
		Chunk:          10_000_000,
		MaxMateSW:      100,
		MaskLevelRedun: 0.95,
		MapQCoefLen:    50,
	}
}

// Clone returns a deep-enough copy of o for an AlignerState to hold,
// so per-call overrides never leak back into shared state (§4.D, §9
// "Global state").
func (o *Options) Clone() *Options {
	if o == nil {
		return DefaultOptions()
	}
	clone := *o
	clone.Parameters = append([]Param(nil), o.Parameters...)
	return &clone
}
