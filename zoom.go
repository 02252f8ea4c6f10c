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

package plotting

import "math"

// Zoom rasterizes the curve of s again, at s.Scale()*factor pixels per
// unit.  Grid size and worker count are taken from s, and s itself is left
// unchanged.  Factors greater than one zoom in.
//
// No cells are reused: the cost is the same as for the initial [New].
func Zoom(s *Snapshot, factor float64) (*Snapshot, error) {
	if s == nil {
		return nil, &ConfigError{Param: "snapshot", Value: s}
	}
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, &ConfigError{Param: "zoom factor", Value: factor}
	}
	return New(s.pred, s.workers, s.m.size, s.m.scale*factor)
}

// Zoom is shorthand for Zoom(s, factor).
func (s *Snapshot) Zoom(factor float64) (*Snapshot, error) {
	return Zoom(s, factor)
}
