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

package graphics

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/lccurve/internal/float"
)

// checkPath verifies that a path construction operator is allowed.
// If start is false, a current path is required.
func (b *Builder) checkPath(op string, start bool) bool {
	if b.Err != nil {
		return false
	}
	if b.inText {
		b.Err = fmt.Errorf("%s: not allowed in text object", op)
		return false
	}
	if !start && !b.inPath {
		b.Err = fmt.Errorf("%s: no current point", op)
		return false
	}
	return true
}

// MoveTo starts a new subpath at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (b *Builder) MoveTo(x, y float64) {
	if !b.checkPath("MoveTo", true) {
		return
	}
	b.inPath = true
	b.emit("m", x, y)
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (b *Builder) LineTo(x, y float64) {
	if !b.checkPath("LineTo", false) {
		return
	}
	b.emit("l", x, y)
}

// CurveTo appends a cubic Bezier curve to the current path.
//
// This implements the PDF graphics operator "c".
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !b.checkPath("CurveTo", false) {
		return
	}
	b.emit("c", x1, y1, x2, y2, x3, y3)
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (b *Builder) ClosePath() {
	if !b.checkPath("ClosePath", false) {
		return
	}
	b.emit("h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
//
// This implements the PDF graphics operator "re".
func (b *Builder) Rectangle(x, y, width, height float64) {
	if !b.checkPath("Rectangle", true) {
		return
	}
	b.inPath = true
	b.emit("re", x, y, width, height)
}

// Circle appends a circle to the current path, as a closed subpath.
//
// This is a convenience function, which uses [Builder.MoveTo] and
// [Builder.CurveTo] to draw the circle.
func (b *Builder) Circle(x, y, radius float64) {
	if b.Err != nil {
		return
	}
	if radius <= 0 {
		b.Err = fmt.Errorf("Circle: invalid radius %g", radius)
		return
	}

	// rounding precision based on radius
	digits := max(1, 2-int(math.Round(math.Log10(radius))))

	// four quarter circles, see https://pomax.github.io/bezierinfo/
	const nSegment = 4
	dPhi := 2 * math.Pi / nSegment
	k := 4.0 / 3.0 * radius * math.Tan(dPhi/4)

	phi := 0.0
	x0 := x + radius
	y0 := y
	b.MoveTo(float.Round(x0, digits), float.Round(y0, digits))
	for range nSegment {
		x1 := x0 - k*math.Sin(phi)
		y1 := y0 + k*math.Cos(phi)
		phi += dPhi
		x3 := x + radius*math.Cos(phi)
		y3 := y + radius*math.Sin(phi)
		x2 := x3 + k*math.Sin(phi)
		y2 := y3 - k*math.Cos(phi)
		b.CurveTo(
			float.Round(x1, digits), float.Round(y1, digits),
			float.Round(x2, digits), float.Round(y2, digits),
			float.Round(x3, digits), float.Round(y3, digits))
		x0, y0 = x3, y3
	}
	b.ClosePath()
}

// paint finishes the current path with the given painting operator.
func (b *Builder) paint(op string) {
	if b.Err != nil {
		return
	}
	if !b.inPath {
		b.Err = fmt.Errorf("%s: no current path", op)
		return
	}
	b.inPath = false
	b.emit(op)
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (b *Builder) Stroke() {
	b.paint("S")
}

// Fill fills the current path using the nonzero winding number rule.
//
// This implements the PDF graphics operator "f".
func (b *Builder) Fill() {
	b.paint("f")
}

// FillAndStroke fills and strokes the current path.
//
// This implements the PDF graphics operator "B".
func (b *Builder) FillAndStroke() {
	b.paint("B")
}

// EndPath ends the path without filling or stroking it.
//
// This implements the PDF graphics operator "n".
func (b *Builder) EndPath() {
	b.paint("n")
}

// ClipNonZero marks the current path for use as the clipping path, using
// the nonzero winding number rule.  The clipping path takes effect after
// the next path painting operator, usually [Builder.EndPath].
//
// This implements the PDF graphics operator "W".
func (b *Builder) ClipNonZero() {
	if b.Err != nil {
		return
	}
	if !b.inPath {
		b.Err = errors.New("ClipNonZero: no current path")
		return
	}
	b.emit("W")
}
