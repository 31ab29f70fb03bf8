// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

// ValueType identifies the active variant of a Param or Tag.
type ValueType uint8

// Value type codes, per §6.5. Stable, may be persisted by callers that
// serialize Params/Tags.
const (
	Char ValueType = 1
	Text ValueType = 2
	Int  ValueType = 3
	Real ValueType = 4
)

func (t ValueType) String() string {
	switch t {
	case Char:
		return "A"
	case Text:
		return "Z"
	case Int:
		return "i"
	case Real:
		return "f"
	default:
		return "?"
	}
}

// MaxTagKeyLen is the maximum length, in bytes, of a Tag key (§6.5).
const MaxTagKeyLen = 6

// Param is a named, aligner-specific option. It is a discriminated union
// over {char, text, int64, float64}; Param.Text owns its storage (§9,
// resolving the set_text ownership ambiguity of the original source in
// favour of always-owns).
type Param struct {
	Name string

	typ  ValueType
	ch   byte
	text string
	i    int64
	f    float64
}

// NewParam returns a named, untyped Param. Call one of the SetXxx methods
// before reading it back.
func NewParam(name string) *Param { return &Param{Name: name} }

func (p *Param) SetChar(v byte)     { p.typ, p.ch = Char, v }
func (p *Param) SetText(v string)   { p.typ, p.text = Text, v }
func (p *Param) SetInt(v int64)     { p.typ, p.i = Int, v }
func (p *Param) SetFloat(v float64) { p.typ, p.f = Real, v }

// Type returns the currently active variant.
func (p *Param) Type() ValueType { return p.typ }

func (p *Param) GetChar() (byte, error) {
	if p.typ != Char {
		return 0, TypeError
	}
	return p.ch, nil
}

func (p *Param) GetText() (string, error) {
	if p.typ != Text {
		return "", TypeError
	}
	return p.text, nil
}

func (p *Param) GetInt() (int64, error) {
	if p.typ != Int {
		return 0, TypeError
	}
	return p.i, nil
}

func (p *Param) GetFloat() (float64, error) {
	if p.typ != Real {
		return 0, TypeError
	}
	return p.f, nil
}

// Tag is a short auxiliary field attached to an Alignment: a key of at
// most MaxTagKeyLen bytes plus a discriminated value, the same variant
// set as Param. Tag.Text always owns its storage.
//
// Reassigning a text-typed tag to another variant without first calling
// Clear is a documented precondition violation, not a checked one (§4.A):
// nothing leaks under the Go garbage collector, but the stale text stays
// referenced by the tag until Clear or the next SetText replaces it;
// callers porting semantics from the C original should not rely on that
// detail.
type Tag struct {
	Key string

	typ  ValueType
	ch   byte
	text string
	i    int64
	f    float64
}

// SetKey truncates s to MaxTagKeyLen bytes, matching the original's
// fixed inline key buffer.
func (t *Tag) SetKey(s string) {
	if len(s) > MaxTagKeyLen {
		s = s[:MaxTagKeyLen]
	}
	t.Key = s
}

// Clear resets the tag to the zero variant, releasing any text payload.
func (t *Tag) Clear() { *t = Tag{Key: t.Key} }

func (t *Tag) SetChar(v byte)   { t.typ, t.ch = Char, v }
func (t *Tag) SetText(v string) { t.typ, t.text = Text, v } // takes a copy of v
func (t *Tag) SetInt(v int64)   { t.typ, t.i = Int, v }
func (t *Tag) SetFloat(v float64) { t.typ, t.f = Real, v }

func (t *Tag) Type() ValueType { return t.typ }

func (t *Tag) GetChar() (byte, error) {
	if t.typ != Char {
		return 0, TypeError
	}
	return t.ch, nil
}

func (t *Tag) GetText() (string, error) {
	if t.typ != Text {
		return "", TypeError
	}
	return t.text, nil
}

func (t *Tag) GetLong() (int64, error) {
	if t.typ != Int {
		return 0, TypeError
	}
	return t.i, nil
}

func (t *Tag) GetDbl() (float64, error) {
	if t.typ != Real {
		return 0, TypeError
	}
	return t.f, nil
}
