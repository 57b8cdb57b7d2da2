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

// Package font implements TrueType fonts for use in PDF files.
//
// Fonts are embedded as composite fonts (Type0 with a CIDFontType2
// descendant) using the Identity-H encoding, so that every glyph of the font
// can be used.  Character codes are two-byte glyph IDs.  A ToUnicode CMap
// makes the text extractable.  Only the outlines of glyphs which were
// used are embedded.
package font

import (
	"errors"
	"fmt"
	"math"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/lccurve/internal/pdf"
)

// Font is a TrueType font which can be embedded in a PDF file.
//
// All metrics are given in PDF glyph space units, i.e. 1/1000 of the font
// size.  A Font keeps track of the glyphs used, so that the width and
// ToUnicode information in the PDF file can be restricted to these glyphs.
type Font struct {
	// PostScriptName is the name used for the /BaseFont entry.
	PostScriptName string

	Ascent      float64
	Descent     float64 // negative
	CapHeight   float64
	ItalicAngle float64 // degrees, counter-clockwise from vertical
	BBox        pdf.Rectangle

	data []byte
	info *sfnt.Font
	buf  sfnt.Buffer
	upem fixed.Int26_6

	widths map[sfnt.GlyphIndex]float64
	used   map[sfnt.GlyphIndex]string
}

// Load parses TrueType font data.
func Load(data []byte) (*Font, error) {
	info, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	f := &Font{
		data:   data,
		info:   info,
		upem:   fixed.I(int(info.UnitsPerEm())),
		widths: make(map[sfnt.GlyphIndex]float64),
		used:   make(map[sfnt.GlyphIndex]string),
	}

	name, err := info.Name(&f.buf, sfnt.NameIDPostScript)
	if err != nil || name == "" {
		name, err = info.Name(&f.buf, sfnt.NameIDFull)
	}
	if err != nil {
		return nil, fmt.Errorf("font: missing font name: %w", err)
	}
	f.PostScriptName = strings.ReplaceAll(name, " ", "")

	m, err := info.Metrics(&f.buf, f.upem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	f.Ascent = f.toPDF(m.Ascent)
	f.Descent = -f.toPDF(m.Descent)
	f.CapHeight = f.toPDF(m.CapHeight)
	if post := info.PostTable(); post != nil {
		f.ItalicAngle = post.ItalicAngle
	}

	bounds, err := info.Bounds(&f.buf, f.upem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	// The y-axis of x/image points downwards.
	f.BBox = pdf.Rectangle{
		LLx: math.Floor(f.toPDF(bounds.Min.X)),
		LLy: math.Floor(-f.toPDF(bounds.Max.Y)),
		URx: math.Ceil(f.toPDF(bounds.Max.X)),
		URy: math.Ceil(-f.toPDF(bounds.Min.Y)),
	}

	return f, nil
}

// toPDF converts a 26.6 value at f.upem pixels per em to glyph space units.
func (f *Font) toPDF(x fixed.Int26_6) float64 {
	return float64(x) / float64(f.upem) * 1000
}

// IsItalic reports whether the font is slanted.
func (f *Font) IsItalic() bool {
	return f.ItalicAngle != 0
}

// HasRune reports whether the font contains a glyph for r.
func (f *Font) HasRune(r rune) bool {
	gid, err := f.info.GlyphIndex(&f.buf, r)
	return err == nil && gid != 0
}

// Width returns the width of s, set at the given font size.
func (f *Font) Width(s string, size float64) float64 {
	var total float64
	for _, r := range s {
		gid, err := f.info.GlyphIndex(&f.buf, r)
		if err != nil {
			gid = 0
		}
		total += f.glyphWidth(gid)
	}
	return total * size / 1000
}

// Encode converts s to a PDF string for use with the TJ and Tj operators,
// and records the glyphs as used.  Characters not present in the font are
// mapped to the .notdef glyph.  The returned width is in glyph space units.
func (f *Font) Encode(s string) (pdf.String, float64) {
	var code pdf.String
	var width float64
	for _, r := range s {
		gid, err := f.info.GlyphIndex(&f.buf, r)
		if err != nil {
			gid = 0
		}
		code = append(code, byte(gid>>8), byte(gid))
		width += f.glyphWidth(gid)
		if _, seen := f.used[gid]; !seen {
			text := string(r)
			if gid == 0 {
				text = ""
			}
			f.used[gid] = text
		}
	}
	return code, width
}

func (f *Font) glyphWidth(gid sfnt.GlyphIndex) float64 {
	if w, ok := f.widths[gid]; ok {
		return w
	}
	adv, err := f.info.GlyphAdvance(&f.buf, gid, f.upem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	w := math.Round(f.toPDF(adv))
	f.widths[gid] = w
	return w
}

// errNoGlyphs is returned when embedding a font which has never been used.
var errNoGlyphs = errors.New("font: no glyphs used")
