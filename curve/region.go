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

// NumSamples is the number of x values used to sample the shaded regions.
const NumSamples = 20

// Region is the area between two curves sampled at the same x values.
type Region struct {
	X     []float64
	Upper []float64
	Lower []float64
}

// AreaUnderCurve returns the region between the decreasing part of the
// curve and the horizontal line at the best loss, sampled at n points.
// The upper boundary interpolates the points up to and including the best
// one.
func AreaUnderCurve(c *Curve, n int) *Region {
	k := c.bestIndex()
	xs := Linspace(c.Capacities[0], c.Capacities[k], n)
	return &Region{
		X:     xs,
		Upper: InterpAll(xs, c.Capacities[:k+1], c.Losses[:k+1]),
		Lower: constant(c.Best(), len(xs)),
	}
}

// Normalizer returns the triangle between the line from
// (first capacity, baseline loss) to (last capacity, best loss) and the
// horizontal line at the best loss, sampled at n points.
func Normalizer(c *Curve, eps float64, n int) *Region {
	last := len(c.Capacities) - 1
	xs := Linspace(c.Capacities[0], c.Capacities[last], n)
	return &Region{
		X: xs,
		Upper: InterpAll(xs,
			[]float64{c.Capacities[0], c.Capacities[last]},
			[]float64{c.Baseline(eps), c.Best()}),
		Lower: constant(c.Best(), len(xs)),
	}
}

// Area returns the area between the upper and lower boundary, computed
// using the trapezoidal rule.
func (r *Region) Area() float64 {
	var area float64
	for i := 1; i < len(r.X); i++ {
		h0 := r.Upper[i-1] - r.Lower[i-1]
		h1 := r.Upper[i] - r.Lower[i]
		area += (r.X[i] - r.X[i-1]) * (h0 + h1) / 2
	}
	return area
}

// AULCC returns the area under the loss-capacity curve, divided by the
// area of the normalizing triangle.
func AULCC(c *Curve, eps float64) float64 {
	num := AreaUnderCurve(c, NumSamples).Area()
	den := Normalizer(c, eps, NumSamples).Area()
	return num / den
}

func constant(y float64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = y
	}
	return res
}
