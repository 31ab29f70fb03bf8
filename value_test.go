// Copyright ©2012 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rapi

import "testing"

func TestParamRoundTrip(t *testing.T) {
	p := NewParam("x")
	if p.Type() != 0 {
		t.Fatalf("fresh Param has type %v, want zero value", p.Type())
	}

	p.SetInt(42)
	if got, err := p.GetInt(); err != nil || got != 42 {
		t.Errorf("GetInt() = %d, %v, want 42, nil", got, err)
	}
	if _, err := p.GetText(); err != TypeError {
		t.Errorf("GetText() on an int Param = %v, want TypeError", err)
	}

	p.SetText("hello")
	if got, err := p.GetText(); err != nil || got != "hello" {
		t.Errorf("GetText() = %q, %v, want hello, nil", got, err)
	}
	if p.Type() != Text {
		t.Errorf("Type() = %v, want Text", p.Type())
	}
}

func TestValueTypeString(t *testing.T) {
	cases := []struct {
		v    ValueType
		want string
	}{
		{Char, "A"},
		{Text, "Z"},
		{Int, "i"},
		{Real, "f"},
		{ValueType(99), "?"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestTagSetKeyTruncates(t *testing.T) {
	tag := Tag{}
	tag.SetKey("ABCDEFGHIJ")
	if len(tag.Key) != MaxTagKeyLen {
		t.Errorf("Key = %q (len %d), want length %d", tag.Key, len(tag.Key), MaxTagKeyLen)
	}
}

func TestTagClearResetsVariant(t *testing.T) {
	tag := Tag{}
	tag.SetKey("XS")
	tag.SetFloat(3.14)
	tag.Clear()
	if tag.Type() != 0 {
		t.Errorf("Type() after Clear = %v, want zero value", tag.Type())
	}
	if tag.Key != "XS" {
		t.Errorf("Clear must preserve Key, got %q", tag.Key)
	}
	if _, err := tag.GetDbl(); err != TypeError {
		t.Errorf("GetDbl() after Clear = %v, want TypeError", err)
	}
}

func TestTagGetWrongVariant(t *testing.T) {
	tag := Tag{}
	tag.SetChar('A')
	if _, err := tag.GetLong(); err != TypeError {
		t.Errorf("GetLong() on a char Tag = %v, want TypeError", err)
	}
	if got, err := tag.GetChar(); err != nil || got != 'A' {
		t.Errorf("GetChar() = %c, %v, want A, nil", got, err)
	}
}
