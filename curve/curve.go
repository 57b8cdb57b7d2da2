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

// Package curve generates the synthetic loss vs. capacity data and the two
// shaded regions derived from it.
//
// The loss of a model with capacity c is exp(-c) for the first four
// capacities.  The last model is slightly worse than the one before, so
// that the curve has a minimum at the fourth capacity.  The area between the
// decreasing part of the curve and the minimum loss is the "area under the
// loss-capacity curve" (AULCC); the triangle spanned by the baseline loss,
// the minimum loss and the largest capacity is used to normalize it.
package curve

import "math"

// Curve is a sequence of (capacity, loss) points, sorted by capacity.
type Curve struct {
	Capacities []float64
	Losses     []float64
}

// NumPoints is the number of points on the curve returned by Generate.
const NumPoints = 5

// overshoot is the loss increase of the last point over the best one.
const overshoot = 0.02

// Generate returns the synthetic loss-capacity curve.
// The result does not depend on any external state.
func Generate() *Curve {
	c := &Curve{
		Capacities: make([]float64, NumPoints),
		Losses:     make([]float64, NumPoints),
	}
	for i := range NumPoints {
		c.Capacities[i] = float64(i + 1)
	}
	for i := range NumPoints - 1 {
		c.Losses[i] = math.Exp(-c.Capacities[i])
	}
	c.Losses[NumPoints-1] = c.Losses[NumPoints-2] + overshoot
	return c
}

// bestIndex is the index of the point with the lowest loss.
func (c *Curve) bestIndex() int {
	return len(c.Losses) - 2
}

// Best returns the lowest loss on the curve, denoted ℓ* in the figure.
func (c *Curve) Best() float64 {
	return c.Losses[c.bestIndex()]
}

// Baseline returns the loss of the smallest model, increased by eps.
// This is denoted ℓ^b in the figure.
func (c *Curve) Baseline(eps float64) float64 {
	return c.Losses[0] + eps
}

// LossRange returns the smallest and largest loss on the curve.
func (c *Curve) LossRange() (lo, hi float64) {
	lo, hi = math.Inf(+1), math.Inf(-1)
	for _, l := range c.Losses {
		lo = min(lo, l)
		hi = max(hi, l)
	}
	return lo, hi
}
