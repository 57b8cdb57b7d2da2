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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lccurve/font"
)

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (b *Builder) TextBegin() {
	if !b.checkState("TextBegin") {
		return
	}
	if b.inText {
		b.Err = errors.New("TextBegin: nested text objects")
		return
	}
	b.inText = true
	b.emit("BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (b *Builder) TextEnd() {
	if b.Err != nil {
		return
	}
	if !b.inText {
		b.Err = errors.New("TextEnd: no text object")
		return
	}
	b.inText = false
	b.emit("ET")
}

// TextSetFont sets the font and font size.
//
// This implements the PDF graphics operator "Tf".
func (b *Builder) TextSetFont(f *font.Font, size float64) {
	if !b.checkState("TextSetFont") {
		return
	}
	if f == nil {
		b.Err = errors.New("TextSetFont: nil font")
		return
	}
	if b.state.Font == f && nearlyEqual(b.state.FontSize, size) {
		return
	}
	b.state.Font = f
	b.state.FontSize = size
	name := b.Resources.fontName(f)
	b.emitName(name, "Tf", size)
}

// TextSetRise sets the text rise.
//
// This implements the PDF graphics operator "Ts".
func (b *Builder) TextSetRise(rise float64) {
	if !b.checkState("TextSetRise") {
		return
	}
	if nearlyEqual(rise, b.state.TextRise) {
		return
	}
	b.state.TextRise = rise
	b.emit("Ts", rise)
}

// checkText verifies that a text object is open.
func (b *Builder) checkText(op string) bool {
	if b.Err != nil {
		return false
	}
	if !b.inText {
		b.Err = fmt.Errorf("%s: not in text object", op)
		return false
	}
	return true
}

// TextFirstLine moves to the start of the next line of text.
// The new text position is (x, y), relative to the start of the current
// line.
//
// This implements the PDF graphics operator "Td".
func (b *Builder) TextFirstLine(x, y float64) {
	if !b.checkText("TextFirstLine") {
		return
	}
	b.emit("Td", x, y)
}

// TextSetMatrix sets the text matrix and text line matrix.
//
// This implements the PDF graphics operator "Tm".
func (b *Builder) TextSetMatrix(m matrix.Matrix) {
	if !b.checkText("TextSetMatrix") {
		return
	}
	b.emit("Tm", m[0], m[1], m[2], m[3], m[4], m[5])
}

// TextShow shows a string using the current font.  The return value is the
// width of the string in text space units.
//
// This implements the PDF graphics operator "Tj".
func (b *Builder) TextShow(s string) float64 {
	if !b.checkText("TextShow") {
		return 0
	}
	f := b.state.Font
	if f == nil {
		b.Err = errors.New("TextShow: no font set")
		return 0
	}
	code, width := f.Encode(s)
	_ = code.PDF(&b.buf)
	b.buf.WriteByte(' ')
	b.emit("Tj")
	return width * b.state.FontSize / 1000
}
