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

package curves

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/plotting"
)

// Curve is a named example curve.
type Curve struct {
	Name      string // lowercase a-z and _ only
	Equation  string // human readable form of the equation
	Predicate plotting.Predicate
}

// All contains the example curves, indexed by name.
var All = map[string]Curve{
	"line": {
		Name:      "line",
		Equation:  "x + y = 0",
		Predicate: Line(),
	},
	"circle": {
		Name:      "circle",
		Equation:  "x² + y² = 1600",
		Predicate: Circle(40),
	},
	"ellipse": {
		Name:      "ellipse",
		Equation:  "x² + 4y² = 36",
		Predicate: Ellipse(6, 3),
	},
	"line_pair": {
		Name:      "line_pair",
		Equation:  "x² = 4y²",
		Predicate: LinePair(),
	},
	"parabola": {
		Name:      "parabola",
		Equation:  "x² = 4y",
		Predicate: Parabola(1),
	},
	"rose": {
		Name:      "rose",
		Equation:  "(x² + y²)³ = 400x²y²",
		Predicate: RoseOfGrandi(10),
	},
}

// Default is the name of the curve shown when nothing else is requested.
const Default = "circle"

// Names returns the names of all curves in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Lookup returns the curve with the given name.
func Lookup(name string) (Curve, error) {
	c, ok := All[name]
	if !ok {
		return Curve{}, fmt.Errorf("unknown curve %q (available: %v)", name, Names())
	}
	return c, nil
}
