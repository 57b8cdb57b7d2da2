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

package font

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/lccurve/internal/pdf"
)

func TestEncodeWidths(t *testing.T) {
	f := &Font{
		widths: map[sfnt.GlyphIndex]float64{1: 500, 2: 500, 3: 600, 7: 600, 9: 1000},
		used:   map[sfnt.GlyphIndex]string{1: "a", 2: "b", 3: "c", 7: "x", 9: "y"},
	}

	dw := f.defaultWidth()
	if dw != 500 {
		t.Fatalf("default width %g, want 500", dw)
	}

	got := f.encodeWidths(dw)
	want := pdf.Array{
		pdf.Integer(3), pdf.Array{pdf.Integer(600)},
		pdf.Integer(7), pdf.Array{pdf.Integer(600)},
		pdf.Integer(9), pdf.Array{pdf.Integer(1000)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("W array mismatch (-want +got):\n%s", d)
	}
}

func TestEncodeWidthsRun(t *testing.T) {
	f := &Font{
		widths: map[sfnt.GlyphIndex]float64{4: 300, 5: 400, 6: 500, 10: 300},
		used:   map[sfnt.GlyphIndex]string{4: "a", 5: "b", 6: "c", 10: "d"},
	}
	got := f.encodeWidths(300)
	want := pdf.Array{
		pdf.Integer(5), pdf.Array{pdf.Integer(400), pdf.Integer(500)},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("W array mismatch (-want +got):\n%s", d)
	}
}

func TestToUnicode(t *testing.T) {
	buf := &bytes.Buffer{}
	gids := []sfnt.GlyphIndex{0, 17, 300}
	text := map[sfnt.GlyphIndex]string{0: "", 17: "A", 300: "κ"}
	err := writeToUnicode(buf, gids, text)
	if err != nil {
		t.Fatal(err)
	}
	cmap := buf.String()
	for _, line := range []string{"2 beginbfchar", "<0011> <0041>", "<012c> <03BA>"} {
		if !strings.Contains(cmap, line+"\n") {
			t.Errorf("CMap lacks %q:\n%s", line, cmap)
		}
	}
	if strings.Count(cmap, "beginbfchar") != 1 {
		t.Errorf("unexpected CMap:\n%s", cmap)
	}
}

func TestChunks(t *testing.T) {
	x := make([]bfChar, 2*chunkSize+1)
	cc := chunks(x)
	if len(cc) != 3 || len(cc[0]) != chunkSize || len(cc[2]) != 1 {
		t.Errorf("wrong chunking: %d chunks", len(cc))
	}
	if chunks(nil) != nil {
		t.Error("chunks(nil) is not empty")
	}
}
