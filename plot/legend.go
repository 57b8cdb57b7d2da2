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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lccurve/graphics"
)

// LegendEntry describes one line of the legend.  The handle is a short,
// thick line in the given colour.
type LegendEntry struct {
	Label string
	Color graphics.Color
	Alpha float64 // opacity of the handle, 0 is invisible
	Width float64 // handle line width, 0 selects the style's line width
}

// Legend spacing, in multiples of the legend font size.
const (
	legendBorderPad     = 0.4
	legendLabelSpacing  = 0.5
	legendHandleTextPad = 0.8
	legendBorderAxesPad = 0.5
	legendCornerRadius  = 0.2
)

type legend struct {
	entries      []LegendEntry
	labels       []preparedLabel
	handleLength float64
}

// Legend places a legend in the upper right corner of the plot area.
// The handle length is given in multiples of the legend font size.
func (a *Axes) Legend(entries []LegendEntry, handleLength float64) error {
	if err := a.style.check(); err != nil {
		return err
	}
	if handleLength < 0 {
		return fmt.Errorf("plot: invalid handle length %g", handleLength)
	}

	l := &legend{
		entries:      entries,
		labels:       make([]preparedLabel, len(entries)),
		handleLength: handleLength,
	}
	for i, e := range entries {
		if e.Alpha < 0 || e.Alpha > 1 {
			return fmt.Errorf("plot: legend entry %q: invalid alpha %g", e.Label, e.Alpha)
		}
		var err error
		l.labels[i], err = a.prepare(e.Label, a.style.LegendFontSize)
		if err != nil {
			return err
		}
	}
	a.legend = l
	return nil
}

// size returns the width and height of the legend frame, and the height of
// one row.
func (l *legend) size(st *Style) (w, h, rowH float64) {
	fs := st.LegendFontSize
	rowH = fs * (st.Regular.Ascent - st.Regular.Descent) / 1000

	var textW float64
	for _, lab := range l.labels {
		textW = max(textW, lab.ext.Width)
	}
	n := float64(len(l.entries))
	w = 2*legendBorderPad*fs + l.handleLength*fs + legendHandleTextPad*fs + textW
	h = 2*legendBorderPad*fs + n*rowH + (n-1)*legendLabelSpacing*fs
	return w, h, rowH
}

func (l *legend) draw(b *graphics.Builder, st *Style, box rect.Rect) {
	if len(l.entries) == 0 {
		return
	}
	fs := st.LegendFontSize
	w, h, rowH := l.size(st)
	x1 := box.URx - legendBorderAxesPad*fs
	y1 := box.URy - legendBorderAxesPad*fs
	x0 := x1 - w
	y0 := y1 - h

	b.SetExtGState(graphics.Opacity(st.LegendFrameAlpha))
	b.SetFillColor(graphics.White)
	b.SetStrokeColor(graphics.Gray(0.8))
	b.SetLineWidth(st.AxesLineWidth)
	b.SetLineDash(nil, 0)
	roundedRect(b, x0, y0, w, h, legendCornerRadius*fs)
	b.FillAndStroke()

	pad := legendBorderPad * fs
	handleLen := l.handleLength * fs
	b.SetLineCap(graphics.LineCapButt)
	for i, e := range l.entries {
		rowTop := y1 - pad - float64(i)*(rowH+legendLabelSpacing*fs)
		yc := rowTop - rowH/2

		if handleLen > 0 {
			color := e.Color
			if color == nil {
				color = graphics.Black
			}
			width := e.Width
			if width == 0 {
				width = st.LineWidth
			}
			b.SetExtGState(graphics.Opacity(e.Alpha))
			b.SetStrokeColor(color)
			b.SetLineWidth(width)
			b.MoveTo(x0+pad, yc)
			b.LineTo(x0+pad+handleLen, yc)
			b.Stroke()
		}

		lab := l.labels[i]
		if len(lab.label) == 0 {
			continue
		}
		b.SetExtGState(graphics.Opacity(1))
		b.SetFillColor(graphics.Black)
		x := x0 + pad + handleLen + legendHandleTextPad*fs
		y := yc - (lab.ext.Ascent-lab.ext.Depth)/2
		st.show(b, lab.label, lab.size, matrix.Translate(x, y))
	}
}

// roundedRect appends a rectangle with rounded corners to the current path.
func roundedRect(b *graphics.Builder, x, y, w, h, r float64) {
	r = min(r, w/2, h/2)
	k := 0.5523 * r
	x1, y1 := x+w, y+h

	b.MoveTo(x+r, y)
	b.LineTo(x1-r, y)
	b.CurveTo(x1-r+k, y, x1, y+r-k, x1, y+r)
	b.LineTo(x1, y1-r)
	b.CurveTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	b.LineTo(x+r, y1)
	b.CurveTo(x+r-k, y1, x, y1-r+k, x, y1-r)
	b.LineTo(x, y+r)
	b.CurveTo(x, y+r-k, x+r-k, y, x+r, y)
	b.ClosePath()
}
