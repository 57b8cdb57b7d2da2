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
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lccurve/font"
	"seehuhn.de/go/lccurve/internal/float"
	"seehuhn.de/go/lccurve/internal/pdf"
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// Builder constructs a PDF content stream.
type Builder struct {
	Resources *Resources
	Err       error

	buf   bytes.Buffer
	state state
	stack []state

	inPath bool
	inText bool
}

// state holds the parts of the graphics state which are tracked
// to avoid redundant operators.
type state struct {
	LineWidth   float64
	LineCap     LineCapStyle
	LineJoin    LineJoinStyle
	DashPattern []float64
	DashPhase   float64
	StrokeColor Color
	FillColor   Color
	ExtGState   ExtGState

	Font     *font.Font
	FontSize float64
	TextRise float64
}

func initialState() state {
	return state{
		LineWidth:   1,
		StrokeColor: Black,
		FillColor:   Black,
		ExtGState:   Opacity(1),
	}
}

// NewBuilder creates a new Builder with the initial graphics state.
func NewBuilder() *Builder {
	return &Builder{
		Resources: &Resources{},
		state:     initialState(),
	}
}

// Stream returns the content stream constructed so far.
func (b *Builder) Stream() []byte {
	return b.buf.Bytes()
}

// Close checks that all graphics states saved using PushGraphicsState have
// been restored, and that no text object or path is left open.
// The return value is the first error encountered while building
// the stream.
func (b *Builder) Close() error {
	if b.Err != nil {
		return b.Err
	}
	switch {
	case b.inText:
		b.Err = errors.New("unterminated text object")
	case b.inPath:
		b.Err = errors.New("unterminated path")
	case len(b.stack) > 0:
		b.Err = fmt.Errorf("%d unbalanced PushGraphicsState calls", len(b.stack))
	}
	return b.Err
}

// emit writes an operator with numeric operands to the stream.
func (b *Builder) emit(op string, args ...float64) {
	for _, x := range args {
		b.buf.WriteString(float.Format(x, 3))
		b.buf.WriteByte(' ')
	}
	b.buf.WriteString(op)
	b.buf.WriteByte('\n')
}

// emitName writes an operator with a name and numeric operands.
func (b *Builder) emitName(name pdf.Name, op string, args ...float64) {
	_ = name.PDF(&b.buf)
	b.buf.WriteByte(' ')
	b.emit(op, args...)
}

// checkState verifies that graphics state operators are allowed.
func (b *Builder) checkState(op string) bool {
	if b.Err != nil {
		return false
	}
	if b.inPath {
		b.Err = fmt.Errorf("%s: not allowed inside a path", op)
		return false
	}
	return true
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (b *Builder) PushGraphicsState() {
	if !b.checkState("PushGraphicsState") {
		return
	}
	if b.inText {
		b.Err = errors.New("PushGraphicsState: not allowed in text object")
		return
	}
	saved := b.state
	saved.DashPattern = slices.Clone(b.state.DashPattern)
	b.stack = append(b.stack, saved)
	b.emit("q")
}

// PopGraphicsState restores the previous graphics state.
//
// This implements the PDF graphics operator "Q".
func (b *Builder) PopGraphicsState() {
	if !b.checkState("PopGraphicsState") {
		return
	}
	if b.inText {
		b.Err = errors.New("PopGraphicsState: not allowed in text object")
		return
	}
	n := len(b.stack) - 1
	if n < 0 {
		b.Err = errors.New("PopGraphicsState: no saved graphics state")
		return
	}
	b.state = b.stack[n]
	b.stack = b.stack[:n]
	b.emit("Q")
}

// Transform applies a transformation matrix to the coordinate system.
//
// This implements the PDF graphics operator "cm".
func (b *Builder) Transform(m matrix.Matrix) {
	if !b.checkState("Transform") {
		return
	}
	if m == matrix.Identity {
		return
	}
	b.emit("cm", m[0], m[1], m[2], m[3], m[4], m[5])
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (b *Builder) SetLineWidth(width float64) {
	if !b.checkState("SetLineWidth") {
		return
	}
	if width < 0 {
		b.Err = fmt.Errorf("SetLineWidth: negative width %g", width)
		return
	}
	if nearlyEqual(width, b.state.LineWidth) {
		return
	}
	b.state.LineWidth = width
	b.emit("w", width)
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (b *Builder) SetLineCap(cap LineCapStyle) {
	if !b.checkState("SetLineCap") {
		return
	}
	if cap > LineCapSquare {
		b.Err = fmt.Errorf("SetLineCap: invalid line cap style %d", cap)
		return
	}
	if cap == b.state.LineCap {
		return
	}
	b.state.LineCap = cap
	b.emit("J", float64(cap))
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (b *Builder) SetLineJoin(join LineJoinStyle) {
	if !b.checkState("SetLineJoin") {
		return
	}
	if join > LineJoinBevel {
		b.Err = fmt.Errorf("SetLineJoin: invalid line join style %d", join)
		return
	}
	if join == b.state.LineJoin {
		return
	}
	b.state.LineJoin = join
	b.emit("j", float64(join))
}

// SetLineDash sets the line dash pattern.  An empty pattern gives solid
// lines.
//
// This implements the PDF graphics operator "d".
func (b *Builder) SetLineDash(pattern []float64, phase float64) {
	if !b.checkState("SetLineDash") {
		return
	}
	allZero := true
	for _, x := range pattern {
		if x < 0 {
			b.Err = fmt.Errorf("SetLineDash: negative dash length %g", x)
			return
		}
		if x > 0 {
			allZero = false
		}
	}
	if len(pattern) > 0 && allZero {
		b.Err = errors.New("SetLineDash: all dash lengths are zero")
		return
	}
	if slices.EqualFunc(pattern, b.state.DashPattern, nearlyEqual) &&
		nearlyEqual(phase, b.state.DashPhase) {
		return
	}
	b.state.DashPattern = slices.Clone(pattern)
	b.state.DashPhase = phase

	b.buf.WriteByte('[')
	for i, x := range pattern {
		if i > 0 {
			b.buf.WriteByte(' ')
		}
		b.buf.WriteString(float.Format(x, 3))
	}
	b.buf.WriteString("] ")
	b.emit("d", phase)
}

// SetStrokeColor sets the colour used for stroking operations.
//
// This implements the PDF graphics operators "G" and "RG".
func (b *Builder) SetStrokeColor(c Color) {
	b.setColor(c, false)
}

// SetFillColor sets the colour used for non-stroking operations,
// including text.
//
// This implements the PDF graphics operators "g" and "rg".
func (b *Builder) SetFillColor(c Color) {
	b.setColor(c, true)
}

func (b *Builder) setColor(c Color, fill bool) {
	if !b.checkState("SetColor") {
		return
	}
	if c == nil {
		b.Err = errors.New("SetColor: nil colour")
		return
	}
	cur := &b.state.StrokeColor
	if fill {
		cur = &b.state.FillColor
	}
	if *cur == c {
		return
	}
	*cur = c
	args, op := c.operator(fill)
	b.emit(op, args...)
}

// SetExtGState sets the transparency parameters.
//
// This implements the PDF graphics operator "gs".
func (b *Builder) SetExtGState(gs ExtGState) {
	if !b.checkState("SetExtGState") {
		return
	}
	if err := gs.check(); err != nil {
		b.Err = fmt.Errorf("SetExtGState: %w", err)
		return
	}
	if gs == b.state.ExtGState {
		return
	}
	b.state.ExtGState = gs
	name := b.Resources.extGStateName(gs)
	b.emitName(name, "gs")
}

func nearlyEqual(a, b float64) bool {
	const ε = 1e-6
	return math.Abs(a-b) < ε
}
