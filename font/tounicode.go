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
	"fmt"
	"io"
	"text/template"
	"unicode/utf16"

	"golang.org/x/image/font/sfnt"
)

type bfChar struct {
	Code string
	Text string
}

// writeToUnicode writes a ToUnicode CMap for two-byte codes equal to the
// glyph IDs.  Glyphs without text are omitted.
func writeToUnicode(w io.Writer, gids []sfnt.GlyphIndex, text map[sfnt.GlyphIndex]string) error {
	var chars []bfChar
	for _, gid := range gids {
		s := text[gid]
		if s == "" {
			continue
		}
		chars = append(chars, bfChar{
			Code: fmt.Sprintf("<%04x>", uint16(gid)),
			Text: formatText(s),
		})
	}
	return toUnicodeTmpl.Execute(w, chunks(chars))
}

func formatText(s string) string {
	var text []byte
	for _, x := range utf16.Encode([]rune(s)) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%02X>", text)
}

const chunkSize = 100

func chunks(x []bfChar) [][]bfChar {
	var res [][]bfChar
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

var toUnicodeTmpl = template.Must(template.New("tounicode").Parse(
	`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
{{range . -}}
{{len .}} beginbfchar
{{range . -}}
{{.Code}} {{.Text}}
{{end -}}
endbfchar
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
