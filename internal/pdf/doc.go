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

// Package pdf implements the low-level part of writing PDF files:
// the native object types, indirect objects, compressed streams,
// the cross-reference table and the trailer.
//
// Files are written sequentially.  Object numbers are allocated using
// [Writer.Alloc] and each allocated object must be written exactly once,
// either using [Writer.Put] or using [Writer.OpenStream].  The document
// catalog and the information dictionary are written by [Writer.Close].
package pdf
