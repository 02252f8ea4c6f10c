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

// Package plotting rasterizes implicit curves into boolean pixel grids.
//
// A curve is given as a [Predicate], a membership test which decides
// whether a point of the plane lies on the curve, up to a tolerance.
// [New] evaluates the predicate once for every pixel of a square grid,
// spreading the work over a fixed number of goroutines, and returns an
// immutable [Snapshot].  [Zoom] computes a new Snapshot of the same curve at
// a different scale.
//
// The grid is centred on the origin of the plane.  The scale gives the
// number of pixels per unit of the plane, so that a grid of size n covers
// the square [-n/(2*scale), n/(2*scale)) along both axes.
package plotting

// Predicate decides whether a point lies on a curve.
//
// Evaluate must be free of side effects and safe for concurrent use.
// The tolerance is given in the units of the plane; it is half the width
// of a pixel.  Points where the curve equation is undefined (for example
// square roots of negative numbers) must be reported as not on the curve.
type Predicate interface {
	Evaluate(x, y, tolerance float64) bool
}

// PredicateFunc adapts an ordinary function to the [Predicate] interface.
type PredicateFunc func(x, y, tolerance float64) bool

// Evaluate calls f(x, y, tolerance).
func (f PredicateFunc) Evaluate(x, y, tolerance float64) bool {
	return f(x, y, tolerance)
}

// Default parameters, matching the interactive viewer.
const (
	// DefaultWorkers is the number of goroutines used for one rasterization.
	DefaultWorkers = 20

	// DefaultSize is the side length of the pixel grid.
	DefaultSize = 1000

	// DefaultScale is the initial number of pixels per unit.
	DefaultScale = 8.0

	// ZoomIn doubles the scale.
	ZoomIn = 2.0

	// ZoomOut halves the scale.
	ZoomOut = 1 / ZoomIn
)
