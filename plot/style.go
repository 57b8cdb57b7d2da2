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

// Package plot draws simple line plots into PDF content streams.
//
// An [Axes] collects lines, filled regions, ticks, labels and a legend.
// Nothing is drawn until [Axes.Draw] is called.  Draw lays out the axes
// inside the given box so that all tick labels and axis labels fit, then
// emits the PDF graphics operators using a [graphics.Builder].
//
// Tick labels and legend entries can use a small subset of TeX math
// notation, see [ParseLabel].
package plot

import (
	"fmt"

	"seehuhn.de/go/lccurve/font"
	"seehuhn.de/go/lccurve/font/gofont"
)

// Style holds the fonts and the sizes used for drawing.
// All lengths are in PDF units (1/72 inch).
type Style struct {
	// Regular is used for upright text.  It must not be nil.
	Regular *font.Font

	// Italic is used for letters in math mode.  Characters not present
	// in the italic font are set using the regular font.  If Italic is
	// nil, all text is set upright.
	Italic *font.Font

	LabelSize      float64 // axis labels
	XTickLabelSize float64
	YTickLabelSize float64
	LegendFontSize float64

	LineWidth       float64
	DashPattern     []float64 // in multiples of the line width
	MarkerSize      float64   // diameter
	MarkerEdgeWidth float64

	AxesLineWidth float64
	TickLength    float64
	TickWidth     float64
	TickPad       float64 // between tick and tick label
	LabelPad      float64 // between tick labels and axis label
	FigurePad     float64 // around the outside of the axes decorations

	LegendFrameAlpha float64
}

// DefaultStyle returns the style used for the loss-capacity figure,
// using the Go fonts.
func DefaultStyle() (*Style, error) {
	regular, err := gofont.Regular.New()
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	italic, err := gofont.Italic.New()
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}

	return &Style{
		Regular: regular,
		Italic:  italic,

		LabelSize:      10,
		XTickLabelSize: 10,
		YTickLabelSize: 11,
		LegendFontSize: 10,

		LineWidth:       1.5,
		DashPattern:     []float64{3.7, 1.6},
		MarkerSize:      6,
		MarkerEdgeWidth: 0.75,

		AxesLineWidth: 0.8,
		TickLength:    3.5,
		TickWidth:     0.8,
		TickPad:       3.5,
		LabelPad:      4,
		FigurePad:     3,

		LegendFrameAlpha: 0.8,
	}, nil
}

func (s *Style) check() error {
	if s == nil || s.Regular == nil {
		return errMissingFont
	}
	return nil
}
