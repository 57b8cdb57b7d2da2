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
	"strconv"
	"strings"
)

// Color is a colour in one of the PDF device colour spaces.
// The types Gray and RGB implement this interface.
type Color interface {
	// operator returns the operands and the name of the operator
	// which sets the colour, for stroking or for filling.
	operator(fill bool) ([]float64, string)
}

// Gray is a colour in the DeviceGray colour space.
// 0 is black, 1 is white.
type Gray float64

func (c Gray) operator(fill bool) ([]float64, string) {
	if fill {
		return []float64{float64(c)}, "g"
	}
	return []float64{float64(c)}, "G"
}

// RGB is a colour in the DeviceRGB colour space.
// All components are in the range [0, 1].
type RGB struct {
	R, G, B float64
}

func (c RGB) operator(fill bool) ([]float64, string) {
	if fill {
		return []float64{c.R, c.G, c.B}, "rg"
	}
	return []float64{c.R, c.G, c.B}, "RG"
}

// Frequently used colours.
var (
	Black = Gray(0)
	White = Gray(1)
)

// ParseHex converts a colour given as "#rrggbb" to RGB.
func ParseHex(s string) (RGB, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q", s)
	}
	return RGB{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}, nil
}
