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

package font

import (
	"slices"

	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/lccurve/internal/pdf"
)

// PDF font descriptor flags.
const (
	flagNonsymbolic = 1 << 5
	flagItalic      = 1 << 6
)

// Embed writes the font to the PDF file, as the font dictionary with
// the given reference.  Only the outlines of the glyphs used are included.  Embed must be called after all text using the font
// has been encoded.
func (f *Font) Embed(w *pdf.Writer, ref pdf.Reference) error {
	if len(f.used) == 0 {
		return errNoGlyphs
	}
	gids := f.usedGlyphs()
	data, err := subsetTrueType(f.data, gids)
	if err != nil {
		return err
	}
	fontName := pdf.Name(subsetTag(gids, f.info.NumGlyphs()) + "+" + f.PostScriptName)

	cidFontRef := w.Alloc()
	descRef := w.Alloc()
	fileRef := w.Alloc()
	toUniRef := w.Alloc()

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        fontName,
		"Encoding":        pdf.Name("Identity-H"),
		"DescendantFonts": pdf.Array{cidFontRef},
		"ToUnicode":       toUniRef,
	}
	err = w.Put(ref, fontDict)
	if err != nil {
		return err
	}

	cidFontDict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("CIDFontType2"),
		"BaseFont": fontName,
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String("Adobe"),
			"Ordering":   pdf.String("Identity"),
			"Supplement": pdf.Integer(0),
		},
		"FontDescriptor": descRef,
		"CIDToGIDMap":    pdf.Name("Identity"),
	}
	dw := f.defaultWidth()
	if dw != 1000 {
		cidFontDict["DW"] = pdf.Integer(dw)
	}
	if ww := f.encodeWidths(dw); len(ww) > 0 {
		cidFontDict["W"] = ww
	}
	err = w.Put(cidFontRef, cidFontDict)
	if err != nil {
		return err
	}

	flags := flagNonsymbolic
	if f.IsItalic() {
		flags |= flagItalic
	}
	bbox := f.BBox
	descDict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    fontName,
		"Flags":       pdf.Integer(flags),
		"FontBBox":    &bbox,
		"ItalicAngle": pdf.Real(f.ItalicAngle),
		"Ascent":      pdf.Real(f.Ascent),
		"Descent":     pdf.Real(f.Descent),
		"CapHeight":   pdf.Real(f.CapHeight),
		"StemV":       pdf.Integer(80),
		"FontFile2":   fileRef,
	}
	err = w.Put(descRef, descDict)
	if err != nil {
		return err
	}

	stm, err := w.OpenStream(fileRef, pdf.Dict{
		"Length1": pdf.Integer(len(data)),
	})
	if err != nil {
		return err
	}
	_, err = stm.Write(data)
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	stm, err = w.OpenStream(toUniRef, nil)
	if err != nil {
		return err
	}
	err = writeToUnicode(stm, gids, f.used)
	if err != nil {
		return err
	}
	return stm.Close()
}

func (f *Font) usedGlyphs() []sfnt.GlyphIndex {
	gids := make([]sfnt.GlyphIndex, 0, len(f.used))
	for gid := range f.used {
		gids = append(gids, gid)
	}
	slices.Sort(gids)
	return gids
}

// defaultWidth returns the most frequent width among the used glyphs.
// Ties are broken in favour of the smaller width.
func (f *Font) defaultWidth() float64 {
	count := make(map[float64]int)
	for gid := range f.used {
		count[f.glyphWidth(gid)]++
	}
	best, bestCount := 1000.0, 0
	for w, n := range count {
		if n > bestCount || n == bestCount && w < best {
			best, bestCount = w, n
		}
	}
	return best
}

// encodeWidths constructs the /W array for the used glyphs.  Runs of
// consecutive glyph IDs are written as "first [w1 w2 ...]", glyphs which
// have the default width are omitted.
func (f *Font) encodeWidths(dw float64) pdf.Array {
	var res pdf.Array
	var run pdf.Array
	var next sfnt.GlyphIndex
	for _, gid := range f.usedGlyphs() {
		w := f.glyphWidth(gid)
		if w == dw {
			continue
		}
		if run != nil && gid == next {
			run = append(run, pdf.Integer(w))
		} else {
			if run != nil {
				res = append(res, run)
			}
			res = append(res, pdf.Integer(gid))
			run = pdf.Array{pdf.Integer(w)}
		}
		next = gid + 1
	}
	if run != nil {
		res = append(res, run)
	}
	return res
}
