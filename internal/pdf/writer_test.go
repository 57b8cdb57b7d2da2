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

package pdf_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/lccurve/internal/pdf"
	"seehuhn.de/go/lccurve/internal/pdftest"
)

func writeTestFile(t *testing.T, opt *pdf.WriterOptions) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_7, opt)
	if err != nil {
		t.Fatal(err)
	}

	pagesRef := w.Alloc()
	pageRef := w.Alloc()
	contentRef := w.Alloc()

	err = w.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{pageRef},
		"Count": pdf.Integer(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Put(pageRef, pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   pagesRef,
		"MediaBox": &pdf.Rectangle{URx: 100, URy: 100},
		"Contents": contentRef,
	})
	if err != nil {
		t.Fatal(err)
	}
	stm, err := w.OpenStream(contentRef, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = stm.Write([]byte("0 0 m 100 100 l S"))
	if err != nil {
		t.Fatal(err)
	}
	err = stm.Close()
	if err != nil {
		t.Fatal(err)
	}

	w.Catalog["Pages"] = pagesRef
	w.Info = &pdf.Info{Title: "test", Producer: "pdf_test"}
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	for _, readable := range []bool{true, false} {
		data := writeTestFile(t, &pdf.WriterOptions{HumanReadable: readable})

		f, err := pdftest.Parse(data)
		if err != nil {
			t.Fatal(err)
		}
		if f.Header != "%PDF-1.7" {
			t.Errorf("wrong header %q", f.Header)
		}
		if len(f.Objects) != 5 {
			t.Errorf("expected 5 objects, got %d", len(f.Objects))
		}
		for _, key := range []string{"/Size 6", "/Root 4 0 R", "/Info 5 0 R", "/ID ["} {
			if !strings.Contains(f.Trailer, key) {
				t.Errorf("trailer %q lacks %q", f.Trailer, key)
			}
		}

		dict, content, err := f.Stream(3)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff("0 0 m 100 100 l S", string(content)); d != "" {
			t.Errorf("content mismatch (-want +got):\n%s", d)
		}
		hasFilter := strings.Contains(dict, "/FlateDecode")
		if hasFilter == readable {
			t.Errorf("HumanReadable=%t, but stream dict is %q", readable, dict)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := writeTestFile(t, &pdf.WriterOptions{IDSeed: 1234})
	b := writeTestFile(t, &pdf.WriterOptions{IDSeed: 1234})
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different files")
	}

	c := writeTestFile(t, &pdf.WriterOptions{IDSeed: 1})
	if bytes.Equal(a, c) {
		t.Error("file identifier does not depend on the seed")
	}
}

func TestErrors(t *testing.T) {
	w, err := pdf.NewWriter(&bytes.Buffer{}, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}

	ref := w.Alloc()
	if err := w.Put(ref+1, pdf.Integer(1)); err == nil {
		t.Error("writing an unallocated reference succeeded")
	}
	if err := w.Put(ref, pdf.Integer(1)); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(ref, pdf.Integer(2)); err == nil {
		t.Error("writing an object twice succeeded")
	}

	stm, err := w.OpenStream(w.Alloc(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.OpenStream(w.Alloc(), nil); err == nil {
		t.Error("opening a second stream succeeded")
	}
	if err := stm.Close(); err != nil {
		t.Fatal(err)
	}
	if err := stm.Close(); err == nil {
		t.Error("closing a stream twice succeeded")
	}

	// the catalog has no /Pages entry
	if err := w.Close(); err == nil {
		t.Error("Close without /Pages succeeded")
	}
	if err := w.Close(); err == nil {
		t.Error("second Close succeeded")
	}

	if _, err := pdf.NewWriter(&bytes.Buffer{}, pdf.Version(3), nil); err == nil {
		t.Error("PDF-1.3 was accepted")
	}
}

func TestCreateInvalidVersion(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.pdf")
	_, err := pdf.Create(name, pdf.V1_7+1, nil)
	if err == nil {
		t.Fatal("unsupported version accepted")
	}
	if _, err := os.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file left behind after failed Create: %v", err)
	}
}
