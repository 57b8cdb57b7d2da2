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

// Lc-curve renders the loss vs. capacity figure.
//
// Usage:
//
//	lc-curve [-o file.pdf] [-v]
//
// Without arguments, the figure is written to lc_curve.pdf in the current
// directory.  The output is identical on every run.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"seehuhn.de/go/lccurve/curve"
	"seehuhn.de/go/lccurve/lcfig"
)

var (
	outFile = flag.String("o", lcfig.FileName, "name of the output file")
	verbose = flag.Bool("v", false, "show debug messages")
)

func main() {
	flag.Parse()
	setupLogging(*verbose)

	err := run(*outFile)
	if err != nil {
		slog.Error("cannot create the figure", "error", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
			NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
		}),
	))
}

func run(fileName string) error {
	d := lcfig.Inputs()
	slog.Debug("curve",
		"seed", lcfig.Seed,
		"capacities", d.Curve.Capacities,
		"losses", d.Curve.Losses)
	slog.Debug("limits", "x", d.XLim, "y", d.YLim)

	err := lcfig.Save(fileName, nil)
	if err != nil {
		return err
	}

	slog.Info("figure written",
		"file", fileName,
		"aulcc", curve.AULCC(d.Curve, lcfig.Eps))
	return nil
}
