// seehuhn.de/go/plotting - rasterize implicit curves
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package curves provides example curves for the plotting package.
//
// Each curve is an implicit equation in x and y, solved for x and for y
// where possible.  A point is on the curve if one of the solutions is
// within the tolerance of the corresponding coordinate.  Solutions which
// are undefined at the point evaluate to NaN, and NaN never compares as
// equal.
package curves

import (
	"math"

	"seehuhn.de/go/plotting"
)

// Equal reports whether a and b differ by at most tolerance.
// The result is false if a or b is NaN.
func Equal(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Line returns the line x + y = 0.
func Line() plotting.Predicate {
	return plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		return Equal(-y, x, tolerance) || Equal(-x, y, tolerance)
	})
}

// Circle returns the circle x² + y² = r² around the origin.
func Circle(r float64) plotting.Predicate {
	r2 := r * r
	return plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		x1 := math.Sqrt(r2 - y*y)
		if Equal(x1, x, tolerance) || Equal(-x1, x, tolerance) {
			return true
		}
		y1 := math.Sqrt(r2 - x*x)
		return Equal(y1, y, tolerance) || Equal(-y1, y, tolerance)
	})
}

// Ellipse returns the axis-aligned ellipse x²/a² + y²/b² = 1.
func Ellipse(a, b float64) plotting.Predicate {
	a2 := a * a
	b2 := b * b
	return plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		x1 := a * math.Sqrt(1-y*y/b2)
		if Equal(x1, x, tolerance) || Equal(-x1, x, tolerance) {
			return true
		}
		y1 := b * math.Sqrt(1-x*x/a2)
		return Equal(y1, y, tolerance) || Equal(-y1, y, tolerance)
	})
}

// LinePair returns the curve x² = 4y², which consists of the two lines
// x = 2y and x = -2y.
func LinePair() plotting.Predicate {
	return plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		x1 := math.Sqrt(4 * y * y)
		if Equal(x1, x, tolerance) || Equal(-x1, x, tolerance) {
			return true
		}
		y1 := math.Sqrt(x * x / 4)
		return Equal(y1, y, tolerance) || Equal(-y1, y, tolerance)
	})
}

// Parabola returns the parabola x² = 4ay.  The parabola opens upwards for
// a > 0 and has its focus at (0, a).
func Parabola(a float64) plotting.Predicate {
	return plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		x1 := math.Sqrt(4 * a * y)
		if Equal(x1, x, tolerance) || Equal(-x1, x, tolerance) {
			return true
		}
		return Equal(x*x/(4*a), y, tolerance)
	})
}

// RoseOfGrandi returns the four-leaved rose (x² + y²)³ = 4a²x²y².
//
// The equation has no simple solution for x or y, and the predicate
// currently matches no points at all.
func RoseOfGrandi(a float64) plotting.Predicate {
	// TODO: evaluate the rose via r = a·sin(2θ) in polar coordinates.
	return plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		return false
	})
}
