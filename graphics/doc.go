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

// Package graphics provides a type-safe API for constructing PDF content
// streams.
//
// The [Builder] type offers methods corresponding to PDF graphics operators.
// It tracks the graphics state, omits operators which would not change the
// state, and allocates names for the resources used.  Errors are reported
// using the Builder.Err field.  Once an error occurs, all methods return
// immediately without doing anything.
//
// The following code draws a red square with a black outline:
//
//	b := graphics.NewBuilder()
//	b.SetLineWidth(2)
//	b.SetFillColor(graphics.RGB{R: 1})
//	b.SetStrokeColor(graphics.Black)
//	b.Rectangle(100, 100, 200, 200)
//	b.FillAndStroke()
//	err := b.Close()
package graphics
