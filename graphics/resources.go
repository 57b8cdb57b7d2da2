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
	"fmt"
	"slices"
	"strconv"

	"seehuhn.de/go/lccurve/font"
	"seehuhn.de/go/lccurve/internal/pdf"
)

// ExtGState is a graphics state parameter dictionary.
// Only the transparency parameters are supported.
type ExtGState struct {
	// StrokeAlpha is the constant opacity for stroking operations (/CA).
	StrokeAlpha float64

	// FillAlpha is the constant opacity for non-stroking operations (/ca).
	FillAlpha float64
}

// Opacity returns an ExtGState which uses the same alpha value for
// stroking and filling.
func Opacity(alpha float64) ExtGState {
	return ExtGState{StrokeAlpha: alpha, FillAlpha: alpha}
}

// AsDict returns the PDF representation of the parameter dictionary.
func (gs ExtGState) AsDict() pdf.Dict {
	return pdf.Dict{
		"Type": pdf.Name("ExtGState"),
		"CA":   pdf.Real(gs.StrokeAlpha),
		"ca":   pdf.Real(gs.FillAlpha),
	}
}

func (gs ExtGState) check() error {
	if gs.StrokeAlpha < 0 || gs.StrokeAlpha > 1 || gs.FillAlpha < 0 || gs.FillAlpha > 1 {
		return fmt.Errorf("alpha values %g/%g out of range", gs.StrokeAlpha, gs.FillAlpha)
	}
	return nil
}

// Resources lists the named resources used by a content stream.
type Resources struct {
	Font      map[pdf.Name]*font.Font
	ExtGState map[pdf.Name]ExtGState
}

// FontNames returns the names of all fonts, in sorted order.
func (r *Resources) FontNames() []pdf.Name {
	names := make([]pdf.Name, 0, len(r.Font))
	for name := range r.Font {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AsDict returns the resource dictionary.  Fonts are referenced using the
// given object references, ExtGStates are included as direct objects.
func (r *Resources) AsDict(fontRefs map[pdf.Name]pdf.Reference) pdf.Dict {
	res := pdf.Dict{}
	if len(r.Font) > 0 {
		fonts := pdf.Dict{}
		for name := range r.Font {
			fonts[name] = fontRefs[name]
		}
		res["Font"] = fonts
	}
	if len(r.ExtGState) > 0 {
		gs := pdf.Dict{}
		for name, val := range r.ExtGState {
			gs[name] = val.AsDict()
		}
		res["ExtGState"] = gs
	}
	return res
}

func (r *Resources) fontName(f *font.Font) pdf.Name {
	for name, val := range r.Font {
		if val == f {
			return name
		}
	}
	if r.Font == nil {
		r.Font = make(map[pdf.Name]*font.Font)
	}
	name := allocateName("F", r.Font)
	r.Font[name] = f
	return name
}

func (r *Resources) extGStateName(gs ExtGState) pdf.Name {
	for name, val := range r.ExtGState {
		if val == gs {
			return name
		}
	}
	if r.ExtGState == nil {
		r.ExtGState = make(map[pdf.Name]ExtGState)
	}
	name := allocateName("G", r.ExtGState)
	r.ExtGState[name] = gs
	return name
}

// allocateName generates a new unique name with the given prefix in the dict.
func allocateName[T any](prefix pdf.Name, dict map[pdf.Name]T) pdf.Name {
	for i := 1; ; i++ {
		name := pdf.Name(string(prefix) + strconv.Itoa(i))
		if _, exists := dict[name]; !exists {
			return name
		}
	}
}
