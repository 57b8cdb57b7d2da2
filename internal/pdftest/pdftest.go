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

// Package pdftest reads back the PDF files written by this module, so that
// tests can check the file structure and inspect the content streams.
// Only the subset of PDF produced by internal/pdf is understood.
package pdftest

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"seehuhn.de/go/lccurve/internal/pdf"
)

// File is a parsed PDF file.
type File struct {
	// Header is the first line of the file, e.g. "%PDF-1.7".
	Header string

	// Objects maps object numbers to the text between the
	// "N 0 obj" and "endobj" keywords.
	Objects map[int][]byte

	// Trailer is the trailer dictionary.
	Trailer string
}

// Parse locates all objects using the cross-reference table and checks
// that every table entry points at the start of the corresponding object.
func Parse(data []byte) (*File, error) {
	eol := bytes.IndexByte(data, '\n')
	if eol < 0 || !bytes.HasPrefix(data, []byte("%PDF-1.")) {
		return nil, errors.New("missing PDF header")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		return nil, errors.New("missing %%EOF marker")
	}

	k := bytes.LastIndex(data, []byte("startxref\n"))
	if k < 0 {
		return nil, errors.New("missing startxref")
	}
	m := startXRefRegexp.FindSubmatch(data[k:])
	if m == nil {
		return nil, errors.New("malformed startxref")
	}
	xrefPos, _ := strconv.Atoi(string(m[1]))
	if xrefPos <= 0 || xrefPos >= len(data) {
		return nil, fmt.Errorf("xref position %d out of range", xrefPos)
	}

	xref := data[xrefPos:]
	m = xrefHeaderRegexp.FindSubmatch(xref)
	if m == nil {
		return nil, errors.New("malformed xref table")
	}
	n, _ := strconv.Atoi(string(m[1]))
	xref = xref[len(m[0]):]
	if len(xref) < 20*n {
		return nil, errors.New("xref table truncated")
	}

	f := &File{
		Header:  string(data[:eol]),
		Objects: make(map[int][]byte, n),
	}
	for i := 0; i < n; i++ {
		entry := string(xref[20*i : 20*i+20])
		if entry[17] == 'f' {
			continue
		}
		pos, err := strconv.Atoi(entry[:10])
		if err != nil || pos >= len(data) {
			return nil, fmt.Errorf("invalid xref entry %q", entry)
		}
		start := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(data[pos:], []byte(start)) {
			return nil, fmt.Errorf("xref entry for object %d points to wrong offset", i)
		}
		body := data[pos+len(start):]
		end := bytes.Index(body, []byte("\nendobj\n"))
		if end < 0 {
			return nil, fmt.Errorf("object %d not terminated", i)
		}
		f.Objects[i] = body[:end]
	}

	rest := xref[20*n:]
	if !bytes.HasPrefix(rest, []byte("trailer\n")) {
		return nil, errors.New("missing trailer")
	}
	rest = rest[len("trailer\n"):]
	end := bytes.Index(rest, []byte("\nstartxref\n"))
	if end < 0 {
		return nil, errors.New("malformed trailer")
	}
	f.Trailer = string(rest[:end])

	return f, nil
}

// Stream returns the dictionary of the given stream object, together with
// the decoded stream data.
func (f *File) Stream(ref int) (string, []byte, error) {
	body, ok := f.Objects[ref]
	if !ok {
		return "", nil, fmt.Errorf("object %d not found", ref)
	}
	k := bytes.Index(body, []byte("\nstream\n"))
	if k < 0 {
		return "", nil, fmt.Errorf("object %d is not a stream", ref)
	}
	dict := string(body[:k])
	m := lengthRegexp.FindStringSubmatch(dict)
	if m == nil {
		return "", nil, fmt.Errorf("stream %d has no /Length", ref)
	}
	length, _ := strconv.Atoi(m[1])
	data := body[k+len("\nstream\n"):]
	if len(data) != length+len("\nendstream") {
		return "", nil, fmt.Errorf("stream %d: /Length %d does not match data", ref, length)
	}
	data = data[:length]

	if bytes.Contains([]byte(dict), []byte("/Filter /FlateDecode")) {
		var err error
		data, err = pdf.FlateDecode(data)
		if err != nil {
			return "", nil, err
		}
	}
	return dict, data, nil
}

// Find returns the numbers of all objects whose text contains pat,
// in increasing order.  Stream data is included in the search as it
// is stored in the file.
func (f *File) Find(pat string) []int {
	var res []int
	for i := 1; i <= len(f.Objects)+1; i++ {
		if body, ok := f.Objects[i]; ok && bytes.Contains(body, []byte(pat)) {
			res = append(res, i)
		}
	}
	return res
}

var (
	startXRefRegexp  = regexp.MustCompile(`^startxref\n(\d+)\n`)
	xrefHeaderRegexp = regexp.MustCompile(`^xref\n0 (\d+)\n`)
	lengthRegexp     = regexp.MustCompile(`/Length (\d+)`)
)
