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

package curve

import (
	"fmt"
	"slices"
)

// Linspace returns n evenly spaced values in the closed interval
// [start, stop].  For n == 1 the result is [start], for n <= 0 it is nil.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	res := make([]float64, n)
	if n == 1 {
		res[0] = start
		return res
	}
	step := (stop - start) / float64(n-1)
	for i := range res {
		res[i] = start + float64(i)*step
	}
	// avoid rounding errors at the right end
	res[n-1] = stop
	return res
}

// Interp evaluates the piecewise-linear function through the points
// (xp[i], fp[i]) at x.  The values xp must be increasing.  Outside the range
// of xp, the first or last value of fp is returned.
//
// Interp panics if xp and fp have different lengths or are empty.
func Interp(x float64, xp, fp []float64) float64 {
	checkTable(xp, fp)

	n := len(xp)
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}

	// xp[k-1] < x <= xp[k]
	k, found := slices.BinarySearch(xp, x)
	if found {
		return fp[k]
	}
	x0, x1 := xp[k-1], xp[k]
	y0, y1 := fp[k-1], fp[k]
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// InterpAll evaluates the piecewise-linear function through the points
// (xp[i], fp[i]) at every element of xs.
func InterpAll(xs, xp, fp []float64) []float64 {
	checkTable(xp, fp)

	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = Interp(x, xp, fp)
	}
	return res
}

func checkTable(xp, fp []float64) {
	if len(xp) != len(fp) {
		panic(fmt.Sprintf("curve: %d x values but %d function values", len(xp), len(fp)))
	}
	if len(xp) == 0 {
		panic("curve: empty interpolation table")
	}
}
