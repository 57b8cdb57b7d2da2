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
	"encoding/binary"
	"errors"
	"math/bits"
	"slices"

	"golang.org/x/image/font/sfnt"
)

// embedTables lists the TrueType tables which are kept in an embedded
// CIDFontType2 font.  The "cmap" table is not needed, since the PDF file
// maps character codes to glyphs.
var embedTables = []string{
	"cvt ", "fpgm", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "prep",
}

var errInvalidTrueType = errors.New("font: invalid TrueType data")

// Flags in the component records of composite glyphs.
const (
	argsAreWords   = 0x0001
	haveScale      = 0x0008
	moreComponents = 0x0020
	haveXYScale    = 0x0040
	haveTwoByTwo   = 0x0080
)

// subsetTrueType returns a TrueType font which contains only the outlines
// of the given glyphs, of the .notdef glyph, and of all glyphs these are
// composed of.  Glyph IDs are unchanged, all other glyphs are left empty.
func subsetTrueType(data []byte, glyphs []sfnt.GlyphIndex) ([]byte, error) {
	tables, err := readTables(data)
	if err != nil {
		return nil, err
	}
	head, maxp := tables["head"], tables["maxp"]
	glyf, loca := tables["glyf"], tables["loca"]
	if len(head) < 54 || len(maxp) < 6 || glyf == nil || loca == nil {
		return nil, errInvalidTrueType
	}
	numGlyphs := int(binary.BigEndian.Uint16(maxp[4:]))
	longLoca := binary.BigEndian.Uint16(head[50:]) != 0
	offsets, err := parseLoca(loca, numGlyphs, longLoca, len(glyf))
	if err != nil {
		return nil, err
	}

	keep := make([]bool, numGlyphs)
	todo := append([]sfnt.GlyphIndex{0}, glyphs...)
	for len(todo) > 0 {
		gid := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if int(gid) >= numGlyphs {
			return nil, errInvalidTrueType
		}
		if keep[gid] {
			continue
		}
		keep[gid] = true
		components, err := glyphComponents(glyf[offsets[gid]:offsets[gid+1]])
		if err != nil {
			return nil, err
		}
		todo = append(todo, components...)
	}

	var newGlyf []byte
	newOffsets := make([]uint32, numGlyphs+1)
	for gid := range numGlyphs {
		if keep[gid] {
			newGlyf = append(newGlyf, glyf[offsets[gid]:offsets[gid+1]]...)
			if len(newGlyf)%2 != 0 {
				newGlyf = append(newGlyf, 0)
			}
		}
		newOffsets[gid+1] = uint32(len(newGlyf))
	}

	sub := make(map[string][]byte, len(embedTables))
	for _, tag := range embedTables {
		if t, ok := tables[tag]; ok {
			sub[tag] = t
		}
	}
	sub["glyf"] = newGlyf
	sub["loca"] = encodeLoca(newOffsets, longLoca)
	return writeTrueType(sub), nil
}

// readTables returns the tables of a TrueType font, by tag.
func readTables(data []byte) (map[string][]byte, error) {
	if len(data) < 12 {
		return nil, errInvalidTrueType
	}
	n := int(binary.BigEndian.Uint16(data[4:]))
	if len(data) < 12+16*n {
		return nil, errInvalidTrueType
	}
	tables := make(map[string][]byte, n)
	for i := range n {
		rec := data[12+16*i:]
		offset := uint64(binary.BigEndian.Uint32(rec[8:]))
		length := uint64(binary.BigEndian.Uint32(rec[12:]))
		if offset+length > uint64(len(data)) {
			return nil, errInvalidTrueType
		}
		tables[string(rec[:4])] = data[offset : offset+length]
	}
	return tables, nil
}

func parseLoca(loca []byte, numGlyphs int, long bool, glyfLen int) ([]uint32, error) {
	size := 2
	if long {
		size = 4
	}
	if len(loca) < size*(numGlyphs+1) {
		return nil, errInvalidTrueType
	}
	offsets := make([]uint32, numGlyphs+1)
	for i := range offsets {
		if long {
			offsets[i] = binary.BigEndian.Uint32(loca[4*i:])
		} else {
			offsets[i] = 2 * uint32(binary.BigEndian.Uint16(loca[2*i:]))
		}
		if offsets[i] > uint32(glyfLen) || i > 0 && offsets[i] < offsets[i-1] {
			return nil, errInvalidTrueType
		}
	}
	return offsets, nil
}

func encodeLoca(offsets []uint32, long bool) []byte {
	if long {
		res := make([]byte, 4*len(offsets))
		for i, x := range offsets {
			binary.BigEndian.PutUint32(res[4*i:], x)
		}
		return res
	}
	res := make([]byte, 2*len(offsets))
	for i, x := range offsets {
		binary.BigEndian.PutUint16(res[2*i:], uint16(x/2))
	}
	return res
}

// glyphComponents returns the glyphs referenced by a composite glyph.
// For simple glyphs, the result is nil.
func glyphComponents(g []byte) ([]sfnt.GlyphIndex, error) {
	if len(g) == 0 || int16(binary.BigEndian.Uint16(g)) >= 0 {
		return nil, nil
	}

	var res []sfnt.GlyphIndex
	pos := 10
	for {
		if pos+4 > len(g) {
			return nil, errInvalidTrueType
		}
		flags := binary.BigEndian.Uint16(g[pos:])
		res = append(res, sfnt.GlyphIndex(binary.BigEndian.Uint16(g[pos+2:])))
		pos += 4
		if flags&argsAreWords != 0 {
			pos += 4
		} else {
			pos += 2
		}
		switch {
		case flags&haveScale != 0:
			pos += 2
		case flags&haveXYScale != 0:
			pos += 4
		case flags&haveTwoByTwo != 0:
			pos += 8
		}
		if flags&moreComponents == 0 {
			return res, nil
		}
	}
}

// writeTrueType assembles a TrueType font from its tables.
func writeTrueType(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	n := len(tags)
	entrySelector := bits.Len(uint(n)) - 1
	searchRange := 16 << entrySelector
	header := make([]byte, 12+16*n)
	binary.BigEndian.PutUint32(header, 0x00010000)
	binary.BigEndian.PutUint16(header[4:], uint16(n))
	binary.BigEndian.PutUint16(header[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(header[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(header[10:], uint16(16*n-searchRange))

	var body []byte
	headPos := -1
	for i, tag := range tags {
		t := tables[tag]
		offset := len(header) + len(body)
		if tag == "head" {
			t = slices.Clone(t)
			binary.BigEndian.PutUint32(t[8:], 0) // checkSumAdjustment
			headPos = offset
		}
		rec := header[12+16*i:]
		copy(rec, tag)
		binary.BigEndian.PutUint32(rec[4:], checksum(t))
		binary.BigEndian.PutUint32(rec[8:], uint32(offset))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t)))
		body = append(body, t...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}

	res := append(header, body...)
	if headPos >= 0 {
		binary.BigEndian.PutUint32(res[headPos+8:], 0xB1B0AFBA-checksum(res))
	}
	return res
}

func checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var tail [4]byte
		copy(tail[:], data)
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}

const subsetModulus = 26 * 26 * 26 * 26 * 26 * 26

// subsetTag constructs a 6-letter tag (range AAAAAA to ZZZZZZ) to describe
// a subset of glyphs of a font.  The glyphs must be sorted.
func subsetTag(glyphs []sfnt.GlyphIndex, numGlyphs int) string {
	X := uint32(numGlyphs)
	for _, g := range glyphs {
		// 11 is the largest integer smaller than `1<<32 / subsetModulus`
		// which is relatively prime to 26.
		X = (X*11 + uint32(g)) % subsetModulus
	}

	var buf [6]byte
	for i := range buf {
		buf[i] = 'A' + byte(X%26)
		X /= 26
	}
	return string(buf[:])
}
