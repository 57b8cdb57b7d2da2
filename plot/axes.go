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
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lccurve/graphics"
)

// Tick is a tick mark on one of the axes.
type Tick struct {
	Pos   float64
	Label string
}

// Axes is a rectangular plot area with data coordinates.
type Axes struct {
	XMin, XMax float64
	YMin, YMax float64

	XLabel, YLabel string
	XTicks, YTicks []Tick

	style   *Style
	artists []artist
	legend  *legend
}

// artist is an element drawn inside the plot area.
// Artists with lower zOrder are drawn first.
type artist interface {
	draw(b *graphics.Builder, st *Style, m matrix.Matrix)
	zOrder() int
}

// NewAxes creates an empty set of axes with the limits [0, 1] x [0, 1].
func NewAxes(style *Style) *Axes {
	return &Axes{
		XMax:  1,
		YMax:  1,
		style: style,
	}
}

// SetXLim sets the range of data values shown on the horizontal axis.
func (a *Axes) SetXLim(lo, hi float64) {
	a.XMin, a.XMax = lo, hi
}

// SetYLim sets the range of data values shown on the vertical axis.
func (a *Axes) SetYLim(lo, hi float64) {
	a.YMin, a.YMax = lo, hi
}

// SetXTicks sets the tick positions and labels of the horizontal axis.
func (a *Axes) SetXTicks(pos []float64, labels []string) error {
	ticks, err := makeTicks(pos, labels)
	if err != nil {
		return err
	}
	a.XTicks = ticks
	return nil
}

// SetYTicks sets the tick positions and labels of the vertical axis.
func (a *Axes) SetYTicks(pos []float64, labels []string) error {
	ticks, err := makeTicks(pos, labels)
	if err != nil {
		return err
	}
	a.YTicks = ticks
	return nil
}

func makeTicks(pos []float64, labels []string) ([]Tick, error) {
	if len(labels) != len(pos) {
		return nil, fmt.Errorf("plot: %d tick positions but %d labels", len(pos), len(labels))
	}
	ticks := make([]Tick, len(pos))
	for i := range pos {
		ticks[i] = Tick{Pos: pos[i], Label: labels[i]}
	}
	return ticks, nil
}

// preparedLabel is a parsed and measured label.
type preparedLabel struct {
	label Label
	size  float64
	ext   extent
}

func (a *Axes) prepare(text string, size float64) (preparedLabel, error) {
	l, err := ParseLabel(text)
	if err != nil {
		return preparedLabel{}, fmt.Errorf("plot: %w", err)
	}
	ext, err := a.style.measure(l, size)
	if err != nil {
		return preparedLabel{}, err
	}
	return preparedLabel{label: l, size: size, ext: ext}, nil
}

func (a *Axes) prepareTicks(ticks []Tick, size float64) ([]preparedLabel, error) {
	res := make([]preparedLabel, len(ticks))
	for i, t := range ticks {
		var err error
		res[i], err = a.prepare(t.Label, size)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// decorations holds the measured text outside the plot area.
type decorations struct {
	xTicks, yTicks []preparedLabel
	xLabel, yLabel preparedLabel
}

// tickLabelSize returns the height of the x tick labels and the width of
// the y tick labels.
func (d *decorations) tickLabelSize() (xTickH, yTickW float64) {
	for _, t := range d.xTicks {
		xTickH = max(xTickH, t.ext.height())
	}
	for _, t := range d.yTicks {
		yTickW = max(yTickW, t.ext.Width)
	}
	return xTickH, yTickW
}

func (a *Axes) prepareAll() (*decorations, error) {
	if err := a.style.check(); err != nil {
		return nil, err
	}
	if !(a.XMax > a.XMin) || !(a.YMax > a.YMin) {
		return nil, fmt.Errorf("plot: invalid axis limits [%g, %g] x [%g, %g]",
			a.XMin, a.XMax, a.YMin, a.YMax)
	}

	st := a.style
	d := &decorations{}
	var err error
	d.xTicks, err = a.prepareTicks(a.XTicks, st.XTickLabelSize)
	if err != nil {
		return nil, err
	}
	d.yTicks, err = a.prepareTicks(a.YTicks, st.YTickLabelSize)
	if err != nil {
		return nil, err
	}
	d.xLabel, err = a.prepare(a.XLabel, st.LabelSize)
	if err != nil {
		return nil, err
	}
	d.yLabel, err = a.prepare(a.YLabel, st.LabelSize)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Layout returns the plot area which leaves room for the ticks, the tick
// labels and the axis labels inside fig.
func (a *Axes) Layout(fig rect.Rect) (rect.Rect, error) {
	d, err := a.prepareAll()
	if err != nil {
		return rect.Rect{}, err
	}
	return a.layout(fig, d)
}

func (a *Axes) layout(fig rect.Rect, d *decorations) (rect.Rect, error) {
	st := a.style

	xTickH, yTickW := d.tickLabelSize()

	left := st.FigurePad + st.TickLength + st.TickPad + yTickW
	if len(d.yLabel.label) > 0 {
		left += st.LabelPad + d.yLabel.ext.height()
	}
	bottom := st.FigurePad + st.TickLength + st.TickPad + xTickH
	if len(d.xLabel.label) > 0 {
		bottom += st.LabelPad + d.xLabel.ext.height()
	}
	box := rect.Rect{
		LLx: fig.LLx + left,
		LLy: fig.LLy + bottom,
		URx: fig.URx - st.FigurePad,
		URy: fig.URy - st.FigurePad,
	}
	if box.Dx() <= 0 || box.Dy() <= 0 {
		return rect.Rect{}, errors.New("plot: figure too small")
	}

	// Tick labels near the right and top edges stick out of the plot area.
	m := a.dataToPage(box)
	var right, top float64
	for i, t := range a.XTicks {
		if !a.inXRange(t.Pos) {
			continue
		}
		p := apply(m, vec.Vec2{X: t.Pos, Y: a.YMin})
		right = max(right, p.X+d.xTicks[i].ext.Width/2-box.URx)
	}
	for i, t := range a.YTicks {
		if !a.inYRange(t.Pos) {
			continue
		}
		p := apply(m, vec.Vec2{X: a.XMin, Y: t.Pos})
		top = max(top, p.Y+d.yTicks[i].ext.height()/2-box.URy)
	}
	box.URx -= right
	box.URy -= top
	if box.Dx() <= 0 || box.Dy() <= 0 {
		return rect.Rect{}, errors.New("plot: figure too small")
	}
	return box, nil
}

// dataToPage returns the transformation from data coordinates to page
// coordinates, for the given plot area.
func (a *Axes) dataToPage(box rect.Rect) matrix.Matrix {
	sx := box.Dx() / (a.XMax - a.XMin)
	sy := box.Dy() / (a.YMax - a.YMin)
	return matrix.Translate(-a.XMin, -a.YMin).
		Mul(matrix.Scale(sx, sy)).
		Mul(matrix.Translate(box.LLx, box.LLy))
}

// apply maps the point v using the transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

func (a *Axes) inXRange(x float64) bool {
	return x >= a.XMin && x <= a.XMax
}

func (a *Axes) inYRange(y float64) bool {
	return y >= a.YMin && y <= a.YMax
}

// Draw lays out the axes inside fig and draws them.  Lines and filled
// regions are clipped to the plot area.  The return value is the plot area,
// in page coordinates.
func (a *Axes) Draw(b *graphics.Builder, fig rect.Rect) (rect.Rect, error) {
	d, err := a.prepareAll()
	if err != nil {
		return rect.Rect{}, err
	}
	box, err := a.layout(fig, d)
	if err != nil {
		return rect.Rect{}, err
	}
	st := a.style
	m := a.dataToPage(box)

	b.PushGraphicsState()
	b.Rectangle(box.LLx, box.LLy, box.Dx(), box.Dy())
	b.ClipNonZero()
	b.EndPath()
	artists := slices.Clone(a.artists)
	slices.SortStableFunc(artists, func(x, y artist) int {
		return x.zOrder() - y.zOrder()
	})
	for _, art := range artists {
		art.draw(b, st, m)
	}
	b.PopGraphicsState()

	// spines
	b.SetExtGState(graphics.Opacity(1))
	b.SetStrokeColor(graphics.Black)
	b.SetLineWidth(st.AxesLineWidth)
	b.SetLineDash(nil, 0)
	b.SetLineCap(graphics.LineCapSquare)
	b.SetLineJoin(graphics.LineJoinMiter)
	b.Rectangle(box.LLx, box.LLy, box.Dx(), box.Dy())
	b.Stroke()

	a.drawTicks(b, box, m, d)
	a.drawAxisLabels(b, box, d)

	if a.legend != nil {
		a.legend.draw(b, st, box)
	}

	if b.Err != nil {
		return rect.Rect{}, b.Err
	}
	return box, nil
}

func (a *Axes) drawTicks(b *graphics.Builder, box rect.Rect, m matrix.Matrix, d *decorations) {
	st := a.style

	b.SetLineWidth(st.TickWidth)
	b.SetLineCap(graphics.LineCapButt)
	hasTicks := false
	for _, t := range a.XTicks {
		if !a.inXRange(t.Pos) {
			continue
		}
		p := apply(m, vec.Vec2{X: t.Pos, Y: a.YMin})
		b.MoveTo(p.X, box.LLy)
		b.LineTo(p.X, box.LLy-st.TickLength)
		hasTicks = true
	}
	for _, t := range a.YTicks {
		if !a.inYRange(t.Pos) {
			continue
		}
		p := apply(m, vec.Vec2{X: a.XMin, Y: t.Pos})
		b.MoveTo(box.LLx, p.Y)
		b.LineTo(box.LLx-st.TickLength, p.Y)
		hasTicks = true
	}
	if hasTicks {
		b.Stroke()
	}

	b.SetFillColor(graphics.Black)
	labelTop := box.LLy - st.TickLength - st.TickPad
	for i, t := range a.XTicks {
		l := d.xTicks[i]
		if !a.inXRange(t.Pos) || len(l.label) == 0 {
			continue
		}
		p := apply(m, vec.Vec2{X: t.Pos, Y: a.YMin})
		x := p.X - l.ext.Width/2
		y := labelTop - l.ext.Ascent
		st.show(b, l.label, l.size, matrix.Translate(x, y))
	}
	labelRight := box.LLx - st.TickLength - st.TickPad
	for i, t := range a.YTicks {
		l := d.yTicks[i]
		if !a.inYRange(t.Pos) || len(l.label) == 0 {
			continue
		}
		p := apply(m, vec.Vec2{X: a.XMin, Y: t.Pos})
		x := labelRight - l.ext.Width
		y := p.Y - (l.ext.Ascent-l.ext.Depth)/2
		st.show(b, l.label, l.size, matrix.Translate(x, y))
	}
}

func (a *Axes) drawAxisLabels(b *graphics.Builder, box rect.Rect, d *decorations) {
	st := a.style

	xTickH, yTickW := d.tickLabelSize()

	if l := d.xLabel; len(l.label) > 0 {
		x := (box.LLx+box.URx)/2 - l.ext.Width/2
		y := box.LLy - st.TickLength - st.TickPad - xTickH - st.LabelPad - l.ext.Ascent
		st.show(b, l.label, l.size, matrix.Translate(x, y))
	}
	if l := d.yLabel; len(l.label) > 0 {
		// rotated by 90 degrees, the ascent points to the left
		x := box.LLx - st.TickLength - st.TickPad - yTickW - st.LabelPad - l.ext.Depth
		y := (box.LLy+box.URy)/2 - l.ext.Width/2
		st.show(b, l.label, l.size, matrix.Matrix{0, 1, -1, 0, x, y})
	}
}
