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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mapper converts between pixel indices and coordinates in the plane.
//
// Pixel (0, 0) is sampled at the lower left corner of the covered square,
// and the grid is centred on the origin.  The zero value is not usable; use
// [NewMapper] or [Snapshot.Mapper].
type Mapper struct {
	size   int
	scale  float64 // pixels per unit
	offset float64 // plane coordinate of pixel index 0, on both axes
}

// NewMapper returns the mapper for a size×size grid at the given scale.
func NewMapper(size int, scale float64) (Mapper, error) {
	if err := checkGeometry(size, scale); err != nil {
		return Mapper{}, err
	}
	return newMapper(size, scale), nil
}

func newMapper(size int, scale float64) Mapper {
	m := Mapper{size: size, scale: scale}
	m.offset = 0 - m.DomainSize()/2
	return m
}

// Size returns the side length of the grid in pixels.
func (m Mapper) Size() int {
	return m.size
}

// Scale returns the number of pixels per unit.
func (m Mapper) Scale() float64 {
	return m.scale
}

// PixelsToUnits converts a length in pixels to a length in the plane.
func (m Mapper) PixelsToUnits(pixels float64) float64 {
	return pixels / m.scale
}

// DomainSize returns the side length of the covered square in the plane.
func (m Mapper) DomainSize() float64 {
	return m.PixelsToUnits(float64(m.size))
}

// Tolerance returns half the width of a pixel, in units of the plane.
func (m Mapper) Tolerance() float64 {
	return m.PixelsToUnits(0.5)
}

// Point returns the sample point of pixel (px, py).
//
// The pixel index is used as is, without moving to the pixel centre.
// Only the tolerance accounts for the half pixel.
func (m Mapper) Point(px, py int) vec.Vec2 {
	return vec.Vec2{
		X: m.offset + m.PixelsToUnits(float64(px)),
		Y: m.offset + m.PixelsToUnits(float64(py)),
	}
}

// Pixel returns the pixel whose sample point is nearest to p.
// The last return value is false if p lies outside the grid.
func (m Mapper) Pixel(p vec.Vec2) (px, py int, ok bool) {
	fx := math.Round((p.X - m.offset) * m.scale)
	fy := math.Round((p.Y - m.offset) * m.scale)
	n := float64(m.size)
	if !(fx >= 0 && fx < n && fy >= 0 && fy < n) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Domain returns the square of the plane covered by the grid.
func (m Mapper) Domain() rect.Rect {
	d := m.DomainSize()
	return rect.Rect{
		LLx: m.offset,
		LLy: m.offset,
		URx: m.offset + d,
		URy: m.offset + d,
	}
}

// Matrix returns the transformation from plane coordinates to pixel
// coordinates.  The origin of the plane maps to the centre of the grid.
func (m Mapper) Matrix() matrix.Matrix {
	shift := -m.offset * m.scale
	return matrix.Scale(m.scale, m.scale).Translate(shift, shift)
}

func checkGeometry(size int, scale float64) error {
	if size <= 0 || size > math.MaxInt/size {
		return &ConfigError{Param: "size", Value: size}
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return &ConfigError{Param: "scale", Value: scale}
	}
	// Very small scales make the covered square infinite.
	if d := float64(size) / scale; math.IsInf(d, 0) {
		return &ConfigError{Param: "scale", Value: scale}
	}
	return nil
}
