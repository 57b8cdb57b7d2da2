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

package main

import (
	"bytes"
	"os"
	"testing"

	"seehuhn.de/go/lccurve/lcfig"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := run(lcfig.FileName)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "lc_curve.pdf" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only lc_curve.pdf, got %v", names)
	}
	first, err := os.ReadFile("lc_curve.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if len(first) == 0 {
		t.Fatal("empty output file")
	}
	if !bytes.HasPrefix(first, []byte("%PDF-1.7\n")) {
		t.Error("output is not a PDF file")
	}

	err = run(lcfig.FileName)
	if err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile("lc_curve.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("output differs between runs")
	}
}

func TestRunError(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := run("no/such/dir/out.pdf"); err == nil {
		t.Error("writing to a missing directory succeeded")
	}
}
