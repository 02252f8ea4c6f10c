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

package export

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/plotting"
)

// Palette indices of the colours used by [Render].
const (
	Background uint8 = iota
	Axis
	Curve
)

// Palette is the colour palette of the images returned by [Render].
var Palette = color.Palette{
	Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Axis:       color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	Curve:      color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
}

// MaxSide is the largest width and height of a magnified image.
const MaxSide = 1 << 15

// Render draws s into a new paletted image.
//
// The axes are drawn through the pixel which samples the origin, and the
// curve is drawn on top of the axes.  If magnify is at least 2, every
// pixel is enlarged to a magnify×magnify block.  An error is returned if
// the magnified image would be wider than [MaxSide].
func Render(s *plotting.Snapshot, magnify int) (*image.Paletted, error) {
	size := s.Size()
	if magnify > 1 && size > MaxSide/magnify {
		return nil, fmt.Errorf("magnification %d too large for a %d pixel image", magnify, size)
	}

	img := image.NewPaletted(image.Rect(0, 0, size, size), Palette)

	// The zero value of Pix selects the background colour.
	origin := size / 2
	row := size - 1 - origin
	for i := range size {
		img.SetColorIndex(origin, i, Axis)
		img.SetColorIndex(i, row, Axis)
	}

	s.Accept(func(x, y int, value bool) {
		if value {
			img.SetColorIndex(x, size-1-y, Curve)
		}
	})

	if magnify < 2 {
		return img, nil
	}
	big := image.NewPaletted(image.Rect(0, 0, size*magnify, size*magnify), Palette)
	draw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
	return big, nil
}
