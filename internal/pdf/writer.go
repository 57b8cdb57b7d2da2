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

package pdf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Version represents a PDF version number.
type Version int

// PDF versions supported by the writer.  Transparency (the /ca and /CA
// entries of graphics state parameter dictionaries) requires at least V1_4.
const (
	V1_4 Version = 4
	V1_7 Version = 7
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// HumanReadable disables stream compression.
	HumanReadable bool

	// IDSeed is mixed into the file identifier.  Files with identical
	// contents and identical seeds get identical identifiers.
	IDSeed uint64
}

// Info holds the entries of the document information dictionary.
// Empty fields are omitted.  No dates are recorded, so that the output
// only depends on the file contents.
type Info struct {
	Title    string
	Subject  string
	Creator  string
	Producer string
}

// Writer represents a PDF file open for writing.
type Writer struct {
	// Catalog holds the entries of the document catalog.
	// The /Pages entry must be set before Close is called.
	Catalog Dict

	// Info, if non-nil, is written as the document information dictionary.
	Info *Info

	ver     Version
	opt     WriterOptions
	w       *posWriter
	closer  io.Closer
	xref    map[Reference]int64
	nextRef Reference
	inUse   bool
}

// NewWriter prepares a PDF file for writing.
// If opt is nil, default options are used.
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	if ver < V1_4 || ver > V1_7 {
		return nil, fmt.Errorf("unsupported PDF version 1.%d", ver)
	}
	if opt == nil {
		opt = &WriterOptions{}
	}

	pdf := &Writer{
		Catalog: Dict{},
		ver:     ver,
		opt:     *opt,
		w:       &posWriter{w: w, hash: xxhash.New()},
		xref:    make(map[Reference]int64),
		nextRef: 1,
	}
	if c, ok := w.(io.Closer); ok {
		pdf.closer = c
	}

	var seed [8]byte
	binary.BigEndian.PutUint64(seed[:], opt.IDSeed)
	_, _ = pdf.w.hash.Write(seed[:])

	_, err := fmt.Fprintf(pdf.w, "%%PDF-1.%d\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Create creates the named PDF file and opens it for output.  If a previous
// file with the same name exists, it is overwritten.  After writing is
// complete, Close() must be called to write the trailer and to close the
// underlying file.
func Create(name string, ver Version, opt *WriterOptions) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	pdf, err := NewWriter(fd, ver, opt)
	if err != nil {
		fd.Close()
		os.Remove(name)
		return nil, err
	}
	return pdf, nil
}

// Version returns the PDF version of the file being written.
func (pdf *Writer) Version() Version {
	return pdf.ver
}

// Compress reports whether streams are compressed.
func (pdf *Writer) Compress() bool {
	return !pdf.opt.HumanReadable
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextRef
	pdf.nextRef++
	return ref
}

// Put writes obj to the PDF file, as the indirect object with the given
// reference.  Each reference can only be written once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.w == nil {
		return errClosed
	}
	if pdf.inUse {
		return errors.New("cannot write objects while a stream is open")
	}
	if ref <= 0 || ref >= pdf.nextRef {
		return fmt.Errorf("reference %d not allocated", ref)
	}
	if _, seen := pdf.xref[ref]; seen {
		return fmt.Errorf("object %d already written", ref)
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", ref)
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = io.WriteString(pdf.w, "null")
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	if err != nil {
		return err
	}

	pdf.xref[ref] = pos
	return nil
}

// OpenStream starts a new stream object with the given reference.  The data
// written to the returned io.WriteCloser forms the contents of the stream.
// The stream is written to the file when the io.WriteCloser is closed.
// Unless the writer was created with HumanReadable set, the data is
// compressed using the FlateDecode filter.  The /Length and /Filter entries
// of dict are set automatically.
func (pdf *Writer) OpenStream(ref Reference, dict Dict) (io.WriteCloser, error) {
	if pdf.w == nil {
		return nil, errClosed
	}
	if pdf.inUse {
		return nil, errors.New("another stream is already open")
	}
	pdf.inUse = true
	return &streamWriter{pdf: pdf, ref: ref, dict: dict}, nil
}

type streamWriter struct {
	pdf  *Writer
	ref  Reference
	dict Dict
	buf  bytes.Buffer
}

func (s *streamWriter) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

func (s *streamWriter) Close() error {
	if s.pdf == nil {
		return errors.New("stream already closed")
	}
	pdf := s.pdf
	s.pdf = nil
	pdf.inUse = false

	dict := Dict{}
	for key, val := range s.dict {
		dict[key] = val
	}
	data := s.buf.Bytes()
	if pdf.Compress() {
		var err error
		data, err = flateEncode(data)
		if err != nil {
			return err
		}
		dict["Filter"] = Name("FlateDecode")
	}
	dict["Length"] = Integer(len(data))

	return pdf.Put(s.ref, &Stream{Dict: dict, R: bytes.NewReader(data)})
}

// Close writes the document catalog, the information dictionary, the
// cross-reference table and the trailer.  If the underlying io.Writer has a
// Close() method, the writer is also closed.  The underlying writer is
// closed even if an error occurs.
func (pdf *Writer) Close() (err error) {
	if pdf.w == nil {
		return errClosed
	}
	defer func() {
		pdf.w = nil
		if pdf.closer != nil {
			closeErr := pdf.closer.Close()
			if err == nil {
				err = closeErr
			}
		}
	}()

	if pdf.inUse {
		return errors.New("stream still open")
	}
	if _, ok := pdf.Catalog["Pages"]; !ok {
		return errors.New("missing /Pages in document catalog")
	}

	catalog := Dict{}
	for key, val := range pdf.Catalog {
		catalog[key] = val
	}
	catalog["Type"] = Name("Catalog")
	rootRef := pdf.Alloc()
	err = pdf.Put(rootRef, catalog)
	if err != nil {
		return err
	}

	var infoRef Reference
	if infoDict := pdf.Info.asDict(); infoDict != nil {
		infoRef = pdf.Alloc()
		err = pdf.Put(infoRef, infoDict)
		if err != nil {
			return err
		}
	}

	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		if _, ok := pdf.xref[ref]; !ok {
			return fmt.Errorf("object %d allocated but never written", ref)
		}
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": rootRef,
		"ID":   pdf.fileID(),
	}
	if infoRef != 0 {
		trailer["Info"] = infoRef
	}

	xrefPos := pdf.w.pos
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xrefPos)
	return err
}

// fileID computes the two-part file identifier from the hash of everything
// written so far.
func (pdf *Writer) fileID() Array {
	sum := pdf.w.hash.Sum64()
	id := binary.BigEndian.AppendUint64(nil, sum)
	id = binary.BigEndian.AppendUint64(id, xxhash.Sum64(id))
	return Array{hexString(id), hexString(id)}
}

// hexString is a String which is always written in hexadecimal form.
type hexString []byte

func (x hexString) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%X>", []byte(x))
	return err
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
	if err != nil {
		return err
	}
	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pdf.xref[ref])
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

func (info *Info) asDict() Dict {
	if info == nil {
		return nil
	}
	dict := Dict{}
	add := func(key Name, val string) {
		if val != "" {
			dict[key] = TextString(val)
		}
	}
	add("Title", info.Title)
	add("Subject", info.Subject)
	add("Creator", info.Creator)
	add("Producer", info.Producer)
	if len(dict) == 0 {
		return nil
	}
	return dict
}

var errClosed = errors.New("PDF writer already closed")

// posWriter keeps track of the current file position and feeds all data
// into the hash used for the file identifier.
type posWriter struct {
	w    io.Writer
	pos  int64
	hash *xxhash.Digest
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	_, _ = w.hash.Write(p[:n])
	return n, err
}
