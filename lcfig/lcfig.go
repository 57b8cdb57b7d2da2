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

// Package lcfig renders the loss vs. capacity figure.
//
// The figure shows a synthetic loss-capacity curve with markers, a dashed
// line at the lowest loss, the area under the curve (AULCC) and the
// triangle used to normalize it.  The result is a single-page PDF file of
// 2.5 x 2.5 inches.
package lcfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/lccurve/curve"
	"seehuhn.de/go/lccurve/document"
	"seehuhn.de/go/lccurve/graphics"
	"seehuhn.de/go/lccurve/internal/pdf"
	"seehuhn.de/go/lccurve/plot"
)

// FileName is the default name of the output file.
const FileName = "lc_curve.pdf"

// Seed is the random seed of the program.  It is also mixed into the PDF
// file identifier.
const Seed uint64 = 1234

// Display constants.
const (
	// Eps is added to the loss of the smallest model to get the baseline.
	Eps = 0.1

	// Size is the width and height of the figure, in inches.
	Size = 2.5

	// Color is the fill colour of the shaded regions ("tab:blue").
	Color = "#1f77b4"

	AULCCAlpha      = 0.75
	NormalizerAlpha = 0.15

	legendHandleLength = 1
	legendHandleWidth  = 5
)

// Data holds all numeric inputs of the figure.
type Data struct {
	Curve      *curve.Curve
	AULCC      *curve.Region
	Normalizer *curve.Region

	XLim, YLim     [2]float64
	XTicks, YTicks []plot.Tick
}

// Inputs computes the data shown in the figure.
// The result is the same every time the function is called.
func Inputs() *Data {
	c := curve.Generate()
	last := len(c.Capacities) - 1

	xTicks := make([]plot.Tick, len(c.Capacities))
	for i, x := range c.Capacities {
		xTicks[i] = plot.Tick{Pos: x, Label: fmt.Sprintf(`$\kappa_%d$`, i+1)}
	}
	xTicks[last-1].Label = `$\kappa_*$`

	yTicks := []plot.Tick{
		{Pos: c.Baseline(Eps), Label: `$\ell^b$`},
		{Pos: c.Losses[0], Label: `$\ell^1$`},
		{Pos: c.Best(), Label: `$\ell^*$`},
	}

	lo, hi := c.LossRange()
	return &Data{
		Curve:      c,
		AULCC:      curve.AreaUnderCurve(c, curve.NumSamples),
		Normalizer: curve.Normalizer(c, Eps, curve.NumSamples),
		XLim:       [2]float64{c.Capacities[0] - 0.4, c.Capacities[last] + 0.2},
		YLim:       [2]float64{lo - 0.1, hi + 0.075 + Eps},
		XTicks:     xTicks,
		YTicks:     yTicks,
	}
}

// Render writes the figure as a PDF file to w.  If style is nil,
// [plot.DefaultStyle] is used.  The fonts of a style record the glyphs
// used, so a style should not be shared between files.
//
// If w implements [io.Closer], Render closes it after writing the figure.
func Render(w io.Writer, style *plot.Style) error {
	a, err := newAxes(Inputs(), style)
	if err != nil {
		return err
	}
	page, err := document.WriteSinglePage(w, document.Inches(Size, Size), writerOptions())
	if err != nil {
		return err
	}
	return draw(page, a)
}

// Save writes the figure to the named file.  If an error occurs,
// the incomplete file is removed.
func Save(name string, style *plot.Style) error {
	a, err := newAxes(Inputs(), style)
	if err != nil {
		return err
	}
	page, err := document.CreateSinglePage(name, document.Inches(Size, Size), writerOptions())
	if err != nil {
		return err
	}
	err = draw(page, a)
	if err != nil {
		return errors.Join(err, os.Remove(name))
	}
	return nil
}

func writerOptions() *pdf.WriterOptions {
	return &pdf.WriterOptions{IDSeed: Seed}
}

func draw(page *document.Page, a *plot.Axes) error {
	page.Out.Info = &pdf.Info{
		Title:    "Loss vs. capacity",
		Creator:  "lc-curve",
		Producer: "seehuhn.de/go/lccurve",
	}
	fig := rect.Rect{URx: page.MediaBox.URx, URy: page.MediaBox.URy}
	_, err := a.Draw(page.Builder, fig)
	if err != nil && page.Err == nil {
		page.Err = err
	}
	return page.Close()
}

// newAxes sets up the plot.  All errors in the data are detected here,
// before the output is created.
func newAxes(d *Data, style *plot.Style) (*plot.Axes, error) {
	if style == nil {
		var err error
		style, err = plot.DefaultStyle()
		if err != nil {
			return nil, err
		}
	}
	color, err := graphics.ParseHex(Color)
	if err != nil {
		return nil, err
	}

	c := d.Curve
	a := plot.NewAxes(style)
	a.SetXLim(d.XLim[0], d.XLim[1])
	a.SetYLim(d.YLim[0], d.YLim[1])
	a.XTicks = d.XTicks
	a.YTicks = d.YTicks
	a.XLabel = "Capacity"
	a.YLabel = "Loss"

	best := make([]float64, len(c.Capacities))
	for i := range best {
		best[i] = c.Best()
	}
	err = a.Line(c.Capacities, best, &plot.LineOptions{Dashed: true})
	if err != nil {
		return nil, err
	}
	err = a.Line(c.Capacities, c.Losses, &plot.LineOptions{Markers: true})
	if err != nil {
		return nil, err
	}

	err = a.FillBetween(d.AULCC.X, d.AULCC.Upper, d.AULCC.Lower, color, AULCCAlpha)
	if err != nil {
		return nil, err
	}
	err = a.FillBetween(d.Normalizer.X, d.Normalizer.Upper, d.Normalizer.Lower, color, NormalizerAlpha)
	if err != nil {
		return nil, err
	}

	err = a.Legend([]plot.LegendEntry{
		{Label: "AULCC", Color: color, Alpha: AULCCAlpha, Width: legendHandleWidth},
		{Label: "Normalizer", Color: color, Alpha: NormalizerAlpha, Width: legendHandleWidth},
	}, legendHandleLength)
	if err != nil {
		return nil, err
	}

	// Parse and measure all labels now, so that errors are reported
	// before the output file is created.
	_, err = a.Layout(rect.Rect{URx: Size * 72, URy: Size * 72})
	if err != nil {
		return nil, err
	}
	return a, nil
}
