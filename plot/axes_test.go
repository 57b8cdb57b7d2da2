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

package plot

import (
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lccurve/graphics"
)

var testFig = rect.Rect{URx: 180, URy: 180}

func newTestAxes(t *testing.T) *Axes {
	t.Helper()
	st, err := DefaultStyle()
	if err != nil {
		t.Fatal(err)
	}
	a := NewAxes(st)
	a.SetXLim(0.6, 5.2)
	a.SetYLim(-0.08, 0.55)
	a.XLabel = "Capacity"
	a.YLabel = "Loss"
	err = a.SetXTicks([]float64{1, 2, 3, 4, 5},
		[]string{`$\kappa_1$`, `$\kappa_2$`, `$\kappa_3$`, `$\kappa_*$`, `$\kappa_5$`})
	if err != nil {
		t.Fatal(err)
	}
	err = a.SetYTicks([]float64{0.47, 0.37, 0.02},
		[]string{`$\ell^b$`, `$\ell^1$`, `$\ell^*$`})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestLayout(t *testing.T) {
	a := newTestAxes(t)
	box, err := a.Layout(testFig)
	if err != nil {
		t.Fatal(err)
	}

	st := a.style
	if box.LLx <= st.FigurePad+st.TickLength || box.LLy <= st.FigurePad+st.TickLength {
		t.Errorf("no room for the decorations: %v", box)
	}
	if box.URx > testFig.URx-st.FigurePad || box.URy > testFig.URy-st.FigurePad {
		t.Errorf("plot area %v exceeds the figure", box)
	}
	if box.Dx() < 100 || box.Dy() < 100 {
		t.Errorf("plot area %v is too small", box)
	}

	// without labels, the plot area grows
	a.XLabel, a.YLabel = "", ""
	box2, err := a.Layout(testFig)
	if err != nil {
		t.Fatal(err)
	}
	if !(box2.LLx < box.LLx && box2.LLy < box.LLy) {
		t.Errorf("axis labels take no space: %v vs. %v", box, box2)
	}

	_, err = a.Layout(rect.Rect{URx: 10, URy: 10})
	if err == nil {
		t.Error("tiny figure accepted")
	}
}

func TestDataToPage(t *testing.T) {
	a := newTestAxes(t)
	box := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 220}
	m := a.dataToPage(box)

	lo := apply(m, vecXY(a.XMin, a.YMin))
	hi := apply(m, vecXY(a.XMax, a.YMax))
	if !near(lo.X, 10) || !near(lo.Y, 20) || !near(hi.X, 110) || !near(hi.Y, 220) {
		t.Errorf("corners map to %v and %v", lo, hi)
	}

	mid := apply(m, vecXY((a.XMin+a.XMax)/2, (a.YMin+a.YMax)/2))
	if !near(mid.X, 60) || !near(mid.Y, 120) {
		t.Errorf("centre maps to %v", mid)
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		m    matrix.Matrix
		in   vec.Vec2
		want vec.Vec2
	}{
		{matrix.Identity, vecXY(1, 2), vecXY(1, 2)},
		{matrix.Translate(3, -1), vecXY(1, 2), vecXY(4, 1)},
		{matrix.Scale(2, 0.5), vecXY(1, 2), vecXY(2, 1)},
		{matrix.Matrix{0, 1, -1, 0, 10, 0}, vecXY(1, 2), vecXY(8, 1)},
	}
	for i, c := range cases {
		got := apply(c.m, c.in)
		if !near(got.X, c.want.X) || !near(got.Y, c.want.Y) {
			t.Errorf("%d: apply(%v) = %v, want %v", i, c.in, got, c.want)
		}
	}
}

func TestDraw(t *testing.T) {
	a := newTestAxes(t)
	blue, err := graphics.ParseHex("#1f77b4")
	if err != nil {
		t.Fatal(err)
	}

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{0.37, 0.14, 0.05, 0.02, 0.04}
	err = a.Line(x, []float64{0.02, 0.02, 0.02, 0.02, 0.02}, &LineOptions{Dashed: true})
	if err != nil {
		t.Fatal(err)
	}
	err = a.Line(x, y, &LineOptions{Markers: true})
	if err != nil {
		t.Fatal(err)
	}
	err = a.FillBetween(x[:4], y[:4], []float64{0.02, 0.02, 0.02, 0.02}, blue, 0.75)
	if err != nil {
		t.Fatal(err)
	}
	err = a.Legend([]LegendEntry{
		{Label: "AULCC", Color: blue, Alpha: 0.75, Width: 5},
		{Label: "Normalizer", Color: blue, Alpha: 0.15, Width: 5},
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	b := graphics.NewBuilder()
	box, err := a.Draw(b, testFig)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if box.Dx() <= 0 {
		t.Errorf("invalid plot area %v", box)
	}

	stream := string(b.Stream())
	for _, want := range []string{
		"re\nW\nn\n",          // clipping
		"[5.55 2.4] 0 d\n",    // dashed line
		"1 G\n",               // marker edges
		"/F1 ",                // fonts
		"0 1 -1 0 ",           // rotated y label
		".122 .467 .706 rg\n", // tab:blue
	} {
		if !strings.Contains(stream, want) {
			t.Errorf("content stream lacks %q", want)
		}
	}
	if strings.Index(stream, "\nf\n") > strings.Index(stream, "\nS\n") {
		t.Error("lines are drawn below the filled region")
	}
	if n := strings.Count(stream, "BT\n"); n != 5+3+2+2 {
		t.Errorf("expected 12 text objects, got %d", n)
	}

	var alphas []float64
	for _, gs := range b.Resources.ExtGState {
		alphas = append(alphas, gs.FillAlpha)
	}
	for _, want := range []float64{0.75, 0.15, 0.8, 1} {
		found := false
		for _, alpha := range alphas {
			if alpha == want {
				found = true
			}
		}
		if !found {
			t.Errorf("no ExtGState with alpha %g, have %v", want, alphas)
		}
	}
	if len(b.Resources.Font) != 2 {
		t.Errorf("expected regular and italic font, got %d fonts", len(b.Resources.Font))
	}
}

func TestDrawErrors(t *testing.T) {
	a := newTestAxes(t)
	a.SetXLim(1, 1)
	if _, err := a.Draw(graphics.NewBuilder(), testFig); err == nil {
		t.Error("empty x range accepted")
	}

	a = newTestAxes(t)
	a.XTicks[0].Label = `$\unknown$`
	if _, err := a.Draw(graphics.NewBuilder(), testFig); err == nil {
		t.Error("invalid tick label accepted")
	}

	a = newTestAxes(t)
	if err := a.SetXTicks([]float64{1, 2}, []string{"a"}); err == nil {
		t.Error("mismatched tick labels accepted")
	}
	if err := a.Line([]float64{1, 2}, []float64{1}, nil); err == nil {
		t.Error("mismatched line data accepted")
	}
	if err := a.Line([]float64{1}, []float64{1}, nil); err == nil {
		t.Error("single point line accepted")
	}
	if err := a.FillBetween([]float64{1, 2}, []float64{1, 2}, []float64{1}, nil, 1); err == nil {
		t.Error("mismatched fill data accepted")
	}
	if err := a.FillBetween([]float64{1, 2}, []float64{1, 2}, []float64{0, 0}, nil, 2); err == nil {
		t.Error("invalid alpha accepted")
	}
	if err := a.Legend([]LegendEntry{{Label: `$x`}}, 1); err == nil {
		t.Error("invalid legend label accepted")
	}

	a = NewAxes(&Style{})
	if _, err := a.Draw(graphics.NewBuilder(), testFig); err == nil {
		t.Error("style without fonts accepted")
	}
}

func TestTicksOutsideRange(t *testing.T) {
	a := newTestAxes(t)
	a.SetXLim(10, 20)
	a.SetYLim(10, 20)

	b := graphics.NewBuilder()
	_, err := a.Draw(b, testFig)
	if err != nil {
		t.Fatal(err)
	}
	// only the two axis labels remain
	if n := strings.Count(string(b.Stream()), "BT\n"); n != 2 {
		t.Errorf("expected 2 text objects, got %d", n)
	}
}
