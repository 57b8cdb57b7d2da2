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

package document

import (
	"io"

	"seehuhn.de/go/lccurve/graphics"
	"seehuhn.de/go/lccurve/internal/pdf"
)

// CreateSinglePage creates a new PDF document consisting of a single page.
// The document is written to the file with the given name.
func CreateSinglePage(fileName string, pageSize *pdf.Rectangle, opt *pdf.WriterOptions) (*Page, error) {
	out, err := pdf.Create(fileName, pdf.V1_7, opt)
	if err != nil {
		return nil, err
	}
	return singlePage(out, pageSize), nil
}

// WriteSinglePage creates a new PDF document consisting of a single page.
// The document is written to the given writer.
func WriteSinglePage(w io.Writer, pageSize *pdf.Rectangle, opt *pdf.WriterOptions) (*Page, error) {
	out, err := pdf.NewWriter(w, pdf.V1_7, opt)
	if err != nil {
		return nil, err
	}
	return singlePage(out, pageSize), nil
}

func singlePage(w *pdf.Writer, pageSize *pdf.Rectangle) *Page {
	return &Page{
		Builder:  graphics.NewBuilder(),
		MediaBox: pageSize,
		Out:      w,
	}
}

// Inches returns a page size of the given width and height in inches.
func Inches(width, height float64) *pdf.Rectangle {
	return &pdf.Rectangle{URx: width * 72, URy: height * 72}
}
