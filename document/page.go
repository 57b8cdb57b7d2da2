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

// Package document creates single-page PDF documents.
//
// The page contents are drawn using the methods of the embedded
// [graphics.Builder].  When the page is closed, the content stream, the
// fonts and all other objects are written to the file.
package document

import (
	"errors"
	"fmt"

	"seehuhn.de/go/lccurve/graphics"
	"seehuhn.de/go/lccurve/internal/pdf"
)

// Page represents a page in a PDF document.
type Page struct {
	// Builder is used to draw the contents of the page.
	*graphics.Builder

	// MediaBox is the page size, in PDF units.
	MediaBox *pdf.Rectangle

	// Out is the PDF file which contains this page.
	// This can be used to set the document information dictionary.
	Out *pdf.Writer
}

// Close writes the page to the PDF file and closes the file.
// The page contents can no longer be modified after this call.
// The underlying file is closed even if an error occurs.
func (p *Page) Close() error {
	if p.Builder == nil {
		return errPageClosed
	}
	b := p.Builder
	p.Builder = nil

	err := p.writePage(b)
	if err != nil {
		// Close the file, the error from the incomplete document is
		// less interesting than the original one.
		_ = p.Out.Close()
		return err
	}
	return p.Out.Close()
}

func (p *Page) writePage(b *graphics.Builder) error {
	if err := b.Close(); err != nil {
		return err
	}
	if p.MediaBox == nil || p.MediaBox.Dx() <= 0 || p.MediaBox.Dy() <= 0 {
		return errors.New("invalid page size")
	}

	out := p.Out
	contentRef := out.Alloc()
	stm, err := out.OpenStream(contentRef, nil)
	if err != nil {
		return err
	}
	_, err = stm.Write(b.Stream())
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	fontRefs := make(map[pdf.Name]pdf.Reference)
	for _, name := range b.Resources.FontNames() {
		ref := out.Alloc()
		err := b.Resources.Font[name].Embed(out, ref)
		if err != nil {
			return fmt.Errorf("font %s: %w", name, err)
		}
		fontRefs[name] = ref
	}

	pageRef := out.Alloc()
	pagesRef := out.Alloc()
	err = out.Put(pageRef, pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    pagesRef,
		"MediaBox":  p.MediaBox,
		"Resources": b.Resources.AsDict(fontRefs),
		"Contents":  contentRef,
	})
	if err != nil {
		return err
	}
	err = out.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{pageRef},
		"Count": pdf.Integer(1),
	})
	if err != nil {
		return err
	}
	out.Catalog["Pages"] = pagesRef
	return nil
}

var errPageClosed = errors.New("page already closed")
