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

package plot

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lccurve/font"
	"seehuhn.de/go/lccurve/graphics"
)

// Run is a piece of a label which is set using a single font and size.
type Run struct {
	Text   string
	Italic bool

	// Scale is the font size relative to the size of the label.
	Scale float64

	// Rise is the baseline shift, in multiples of the label font size.
	Rise float64
}

// Label is a parsed text label.
type Label []Run

// Parameters for sub- and superscripts, relative to the font size.
const (
	scriptScale     = 0.7
	subscriptRise   = -0.2
	superscriptRise = 0.35
)

type scriptKind int

const (
	noScript scriptKind = iota
	subscript
	superscript
)

// symbols lists the TeX commands understood in math mode.
var symbols = map[string]string{
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ϵ",
	"kappa":   "κ",
	"lambda":  "λ",
	"theta":   "θ",
	"sigma":   "σ",
	"ell":     "ℓ",
}

// ParseLabel converts a label string to a sequence of runs.
//
// Text between dollar signs is set in math mode.  In math mode, letters
// are italic and spaces are ignored.  The commands \alpha, \beta, \gamma,
// \delta, \epsilon, \kappa, \lambda, \theta, \sigma and \ell give Greek
// letters and the script l.  Subscripts and superscripts are written as
// _x, _{xy}, ^x and ^{xy}.  Scripts cannot be nested.
func ParseLabel(s string) (Label, error) {
	parts := strings.Split(s, "$")
	if len(parts)%2 == 0 {
		return nil, fmt.Errorf("label %q: unbalanced $", s)
	}

	p := &labelParser{}
	for i, part := range parts {
		if i%2 == 0 {
			p.add(part, false, noScript)
			continue
		}
		err := p.parseMath(part, noScript)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", s, err)
		}
	}
	return p.runs, nil
}

type labelParser struct {
	runs Label
}

func (p *labelParser) add(text string, italic bool, kind scriptKind) {
	if text == "" {
		return
	}
	run := Run{Text: text, Italic: italic, Scale: 1}
	switch kind {
	case subscript:
		run.Scale = scriptScale
		run.Rise = subscriptRise
	case superscript:
		run.Scale = scriptScale
		run.Rise = superscriptRise
	}

	if n := len(p.runs); n > 0 {
		last := &p.runs[n-1]
		if last.Italic == run.Italic && last.Scale == run.Scale && last.Rise == run.Rise {
			last.Text += run.Text
			return
		}
	}
	p.runs = append(p.runs, run)
}

func (p *labelParser) parseMath(s string, kind scriptKind) error {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch r {
		case '\\':
			name := commandName(s[1:])
			sym, ok := symbols[name]
			if !ok {
				return fmt.Errorf("unknown command \\%s", name)
			}
			p.add(sym, true, kind)
			s = s[1+len(name):]
		case '_', '^':
			if kind != noScript {
				return errNestedScript
			}
			arg, rest, err := scriptArg(s[1:])
			if err != nil {
				return err
			}
			newKind := subscript
			if r == '^' {
				newKind = superscript
			}
			err = p.parseMath(arg, newKind)
			if err != nil {
				return err
			}
			s = rest
		case ' ':
			s = s[size:]
		case '{', '}':
			return fmt.Errorf("unexpected %q", r)
		default:
			p.add(string(r), unicode.IsLetter(r), kind)
			s = s[size:]
		}
	}
	return nil
}

// commandName returns the letters at the start of s.
func commandName(s string) string {
	n := 0
	for n < len(s) && (s[n] >= 'a' && s[n] <= 'z' || s[n] >= 'A' && s[n] <= 'Z') {
		n++
	}
	return s[:n]
}

// scriptArg splits off the argument of a sub- or superscript.
// The argument is either a braced group, a command or a single character.
func scriptArg(s string) (arg, rest string, err error) {
	if s == "" {
		return "", "", errors.New("missing script argument")
	}
	switch s[0] {
	case '{':
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", "", errors.New("missing }")
		}
		return s[1:end], s[end+1:], nil
	case '\\':
		n := 1 + len(commandName(s[1:]))
		return s[:n], s[n:], nil
	default:
		_, size := utf8.DecodeRuneInString(s)
		return s[:size], s[size:], nil
	}
}

var (
	errMissingFont  = errors.New("plot: no regular font")
	errNestedScript = errors.New("nested scripts are not supported")
)

// fontFor returns the font used to set the given run.
func (s *Style) fontFor(run Run) *font.Font {
	if run.Italic && s.Italic != nil {
		ok := true
		for _, r := range run.Text {
			if !s.Italic.HasRune(r) {
				ok = false
				break
			}
		}
		if ok {
			return s.Italic
		}
	}
	return s.Regular
}

// extent describes the size of a label, in PDF units.
type extent struct {
	Width  float64
	Ascent float64 // above the baseline
	Depth  float64 // below the baseline, positive
}

func (e extent) height() float64 {
	return e.Ascent + e.Depth
}

// measure returns the size of the label, set at the given font size.
// An error is returned if a character cannot be set in any font.
func (s *Style) measure(l Label, size float64) (extent, error) {
	var ext extent
	for _, run := range l {
		f := s.fontFor(run)
		for _, r := range run.Text {
			if !f.HasRune(r) {
				return extent{}, fmt.Errorf("plot: no glyph for %q", r)
			}
		}
		runSize := size * run.Scale
		rise := run.Rise * size
		ext.Width += f.Width(run.Text, runSize)
		ext.Ascent = max(ext.Ascent, rise+f.CapHeight*runSize/1000)
		ext.Depth = max(ext.Depth, -(rise + f.Descent*runSize/1000))
	}
	return ext, nil
}

// show draws the label.  The text matrix m maps the start of the
// baseline to the desired position.
func (s *Style) show(b *graphics.Builder, l Label, size float64, m matrix.Matrix) {
	b.TextBegin()
	b.TextSetMatrix(m)
	for _, run := range l {
		b.TextSetFont(s.fontFor(run), size*run.Scale)
		b.TextSetRise(run.Rise * size)
		b.TextShow(run.Text)
	}
	b.TextEnd()
}
