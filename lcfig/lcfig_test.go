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

package lcfig

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/lccurve/internal/pdftest"
	"seehuhn.de/go/lccurve/plot"
)

func TestInputs(t *testing.T) {
	d := Inputs()

	if diff := cmp.Diff(d, Inputs()); diff != "" {
		t.Errorf("inputs differ between calls (-first +second):\n%s", diff)
	}

	c := d.Curve
	if math.Abs(d.XLim[0]-0.6) > 1e-9 || math.Abs(d.XLim[1]-5.2) > 1e-9 {
		t.Errorf("x limits %v", d.XLim)
	}
	wantYLim := [2]float64{c.Losses[3] - 0.1, c.Losses[0] + 0.075 + 0.1}
	if math.Abs(d.YLim[0]-wantYLim[0]) > 1e-9 || math.Abs(d.YLim[1]-wantYLim[1]) > 1e-9 {
		t.Errorf("y limits %v, want %v", d.YLim, wantYLim)
	}

	var xLabels []string
	for _, tick := range d.XTicks {
		xLabels = append(xLabels, tick.Label)
	}
	wantX := []string{`$\kappa_1$`, `$\kappa_2$`, `$\kappa_3$`, `$\kappa_*$`, `$\kappa_5$`}
	if diff := cmp.Diff(wantX, xLabels); diff != "" {
		t.Errorf("x tick labels (-want +got):\n%s", diff)
	}

	wantY := []plot.Tick{
		{Pos: c.Losses[0] + 0.1, Label: `$\ell^b$`},
		{Pos: c.Losses[0], Label: `$\ell^1$`},
		{Pos: c.Losses[3], Label: `$\ell^*$`},
	}
	if diff := cmp.Diff(wantY, d.YTicks); diff != "" {
		t.Errorf("y ticks (-want +got):\n%s", diff)
	}

	if len(d.AULCC.X) != 20 || len(d.Normalizer.X) != 20 {
		t.Errorf("regions have %d and %d samples", len(d.AULCC.X), len(d.Normalizer.X))
	}
}

func TestRender(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Render(buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := pdftest.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	pages := f.Find("/Type /Page\n")
	if len(pages) != 1 {
		t.Fatalf("expected one page, found %d", len(pages))
	}
	page := string(f.Objects[pages[0]])
	for _, key := range []string{
		"/MediaBox [0 0 180 180]",
		"/ca .75",
		"/ca .15",
		"/ca .8",
		"/Font",
	} {
		if !strings.Contains(page, key) {
			t.Errorf("page dictionary lacks %q", key)
		}
	}

	_, content, err := f.Stream(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range []string{" gs\n", " re\nW\nn\n", " d\n", " Tf\n", " Tj\n"} {
		if !bytes.Contains(content, []byte(op)) {
			t.Errorf("content stream lacks %q", op)
		}
	}

	if n := len(f.Find("/FontFile2")); n != 2 {
		t.Errorf("expected 2 embedded fonts, found %d", n)
	}
	for _, key := range []string{"/Root", "/Info", "/ID"} {
		if !strings.Contains(f.Trailer, key) {
			t.Errorf("trailer lacks %s", key)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := &bytes.Buffer{}
	if err := Render(a, nil); err != nil {
		t.Fatal(err)
	}
	b := &bytes.Buffer{}
	if err := Render(b, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("repeated rendering produced different output")
	}
}

func TestSave(t *testing.T) {
	name := filepath.Join(t.TempDir(), FileName)
	err := Save(name, nil)
	if err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty output file")
	}
}

func TestSaveError(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", FileName)
	if err := Save(name, nil); err == nil {
		t.Error("writing to a missing directory succeeded")
	}

	// a style without fonts is rejected before the file is created
	name = filepath.Join(t.TempDir(), FileName)
	if err := Save(name, &plot.Style{}); err == nil {
		t.Error("invalid style accepted")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Error("output file created despite error")
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestRenderCloses(t *testing.T) {
	w := &closeRecorder{}
	err := Render(w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if w.closed != 1 {
		t.Errorf("writer closed %d times, want 1", w.closed)
	}
	if w.Len() == 0 {
		t.Error("no output")
	}
}
