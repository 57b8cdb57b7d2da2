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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lccurve/graphics"
)

// LineOptions controls the appearance of a line.
type LineOptions struct {
	// Color is the line colour.  If this is nil, black is used.
	Color graphics.Color

	// Width is the line width.  If this is zero, the width from the style
	// is used.
	Width float64

	// Dashed selects the dash pattern from the style.
	Dashed bool

	// Markers draws a filled circle at every data point.
	Markers bool
}

type line struct {
	x, y []float64
	opt  LineOptions
}

// Line adds a polyline through the points (x[i], y[i]).
// If opt is nil, a solid black line is drawn.
func (a *Axes) Line(x, y []float64, opt *LineOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("plot: %d x values but %d y values", len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("plot: a line needs at least two points, got %d", len(x))
	}

	l := &line{x: x, y: y}
	if opt != nil {
		l.opt = *opt
	}
	if l.opt.Color == nil {
		l.opt.Color = graphics.Black
	}
	a.artists = append(a.artists, l)
	return nil
}

// Lines are drawn on top of filled regions.
func (l *line) zOrder() int { return 2 }

func (l *line) draw(b *graphics.Builder, st *Style, m matrix.Matrix) {
	width := l.opt.Width
	if width == 0 {
		width = st.LineWidth
	}

	b.SetExtGState(graphics.Opacity(1))
	b.SetStrokeColor(l.opt.Color)
	b.SetLineWidth(width)
	b.SetLineJoin(graphics.LineJoinRound)
	if l.opt.Dashed {
		dash := make([]float64, len(st.DashPattern))
		for i, x := range st.DashPattern {
			dash[i] = x * width
		}
		b.SetLineDash(dash, 0)
		b.SetLineCap(graphics.LineCapButt)
	} else {
		b.SetLineDash(nil, 0)
		b.SetLineCap(graphics.LineCapSquare)
	}

	for i := range l.x {
		p := apply(m, vec.Vec2{X: l.x[i], Y: l.y[i]})
		if i == 0 {
			b.MoveTo(p.X, p.Y)
		} else {
			b.LineTo(p.X, p.Y)
		}
	}
	b.Stroke()

	if !l.opt.Markers {
		return
	}
	b.SetFillColor(l.opt.Color)
	b.SetStrokeColor(graphics.White)
	b.SetLineWidth(st.MarkerEdgeWidth)
	b.SetLineDash(nil, 0)
	for i := range l.x {
		p := apply(m, vec.Vec2{X: l.x[i], Y: l.y[i]})
		b.Circle(p.X, p.Y, st.MarkerSize/2)
		b.FillAndStroke()
	}
}

type fillBetween struct {
	x, y1, y2 []float64
	color     graphics.Color
	alpha     float64
}

// FillBetween adds a filled polygon between the curves (x[i], y1[i]) and
// (x[i], y2[i]).  The colour is painted with the given opacity.
func (a *Axes) FillBetween(x, y1, y2 []float64, color graphics.Color, alpha float64) error {
	if len(y1) != len(x) || len(y2) != len(x) {
		return fmt.Errorf("plot: FillBetween: lengths %d/%d/%d differ",
			len(x), len(y1), len(y2))
	}
	if len(x) < 2 {
		return fmt.Errorf("plot: FillBetween needs at least two points, got %d", len(x))
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("plot: FillBetween: invalid alpha %g", alpha)
	}
	if color == nil {
		color = graphics.Black
	}
	a.artists = append(a.artists, &fillBetween{
		x:     x,
		y1:    y1,
		y2:    y2,
		color: color,
		alpha: alpha,
	})
	return nil
}

func (f *fillBetween) zOrder() int { return 1 }

func (f *fillBetween) draw(b *graphics.Builder, _ *Style, m matrix.Matrix) {
	b.SetExtGState(graphics.Opacity(f.alpha))
	b.SetFillColor(f.color)

	n := len(f.x)
	for i := range n {
		p := apply(m, vec.Vec2{X: f.x[i], Y: f.y1[i]})
		if i == 0 {
			b.MoveTo(p.X, p.Y)
		} else {
			b.LineTo(p.X, p.Y)
		}
	}
	for i := n - 1; i >= 0; i-- {
		p := apply(m, vec.Vec2{X: f.x[i], Y: f.y2[i]})
		b.LineTo(p.X, p.Y)
	}
	b.ClosePath()
	b.Fill()
}
