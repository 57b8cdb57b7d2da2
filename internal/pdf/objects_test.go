// seehuhn.de/go/lccurve - render the loss vs. capacity figure
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func format(t *testing.T, obj Object) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(-12), "-12"},
		{Real(0.5), ".5"},
		{Real(180), "180"},
		{Real(1.0 / 3), ".33333"},
		{String("hello"), "(hello)"},
		{String("a(b)c"), "(a(b)c)"},
		{String("a)b"), `(a\)b)`},
		{String(`x\y`), `(x\\y)`},
		{String{0, 1, 2, 3}, "<00010203>"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("x/y"), "/x#2fy"},
		{Array{Integer(1), nil, Name("X")}, "[1 null /X]"},
		{Array{}, "[]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Dict(nil), "null"},
		{Reference(7), "7 0 R"},
		{&Rectangle{URx: 180, URy: 180.5}, "[0 0 180 180.5]"},
	}
	for _, c := range cases {
		got := format(t, c.in)
		if got != c.out {
			t.Errorf("%#v: got %q, want %q", c.in, got, c.out)
		}
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("Loss"); string(got) != "Loss" {
		t.Errorf("ASCII text string changed: %q", got)
	}

	got := TextString("κ")
	want := []byte{0xFE, 0xFF, 0x03, 0xBA}
	if !bytes.Equal(got, want) {
		t.Errorf("TextString(κ) = % x, want % x", got, want)
	}
}

func TestStream(t *testing.T) {
	s := &Stream{
		Dict: Dict{"Length": Integer(3)},
		R:    strings.NewReader("abc"),
	}
	got := format(t, s)
	want := "<<\n/Length 3\n>>\nstream\nabc\nendstream"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRectangle(t *testing.T) {
	r := &Rectangle{LLx: 10, LLy: 20, URx: 110, URy: 70}
	if r.Dx() != 100 || r.Dy() != 50 {
		t.Errorf("wrong size %gx%g", r.Dx(), r.Dy())
	}
}
