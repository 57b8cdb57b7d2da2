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

package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/lccurve/font/gofont"
	"seehuhn.de/go/lccurve/graphics"
	"seehuhn.de/go/lccurve/internal/pdf"
	"seehuhn.de/go/lccurve/internal/pdftest"
)

func TestSinglePage(t *testing.T) {
	F, err := gofont.Regular.New()
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	page, err := WriteSinglePage(buf, Inches(2.5, 2.5), &pdf.WriterOptions{HumanReadable: true})
	if err != nil {
		t.Fatal(err)
	}
	page.Out.Info = &pdf.Info{Title: "test"}

	page.SetExtGState(graphics.Opacity(0.5))
	page.SetFillColor(graphics.RGB{R: 1})
	page.Rectangle(10, 10, 50, 50)
	page.Fill()
	page.TextBegin()
	page.TextSetFont(F, 10)
	page.TextFirstLine(20, 100)
	page.TextShow("Loss")
	page.TextEnd()

	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}

	f, err := pdftest.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	pages := f.Find("/Type /Pages")
	if len(pages) != 1 {
		t.Fatalf("expected one page tree node, found %d", len(pages))
	}
	pageObjs := f.Find("/Type /Page\n")
	if len(pageObjs) != 1 {
		t.Fatalf("expected one page, found %d", len(pageObjs))
	}
	pageDict := string(f.Objects[pageObjs[0]])
	for _, key := range []string{"/MediaBox [0 0 180 180]", "/ExtGState", "/F1 ", "/G1 "} {
		if !strings.Contains(pageDict, key) {
			t.Errorf("page dictionary lacks %q:\n%s", key, pageDict)
		}
	}

	// the content stream is the first object written
	_, content, err := f.Stream(1)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(content), "\n")
	want := []string{"/G1 gs", "1 0 0 rg", "10 10 50 50 re", "f", "BT", "/F1 10 Tf", "20 100 Td"}
	if d := cmp.Diff(want, lines[:len(want)]); d != "" {
		t.Errorf("content mismatch (-want +got):\n%s", d)
	}

	if len(f.Find("/FontFile2")) != 1 {
		t.Error("font not embedded")
	}
	if !strings.Contains(f.Trailer, "/Info") {
		t.Error("missing information dictionary")
	}
}

func TestCreateSinglePage(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.pdf")
	page, err := CreateSinglePage(name, Inches(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}
	page.MoveTo(0, 0)
	page.LineTo(72, 72)
	page.Stroke()
	err = page.Close()
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pdftest.Parse(data); err != nil {
		t.Error(err)
	}

	if err := page.Close(); err != errPageClosed {
		t.Errorf("second Close returned %v", err)
	}
}

func TestDrawingError(t *testing.T) {
	buf := &bytes.Buffer{}
	page, err := WriteSinglePage(buf, Inches(1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}
	page.LineTo(1, 1)
	if page.Close() == nil {
		t.Error("drawing error not reported")
	}
}

func TestInvalidPageSize(t *testing.T) {
	page, err := WriteSinglePage(&bytes.Buffer{}, &pdf.Rectangle{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if page.Close() == nil {
		t.Error("empty page size accepted")
	}
}
