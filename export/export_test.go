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
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotting"
)

// pixels returns a snapshot in which exactly the listed pixels are set.
func pixels(t *testing.T, size int, set ...image.Point) *plotting.Snapshot {
	t.Helper()
	m, err := plotting.NewMapper(size, 1)
	require.NoError(t, err)

	want := make(map[image.Point]bool)
	for _, p := range set {
		want[p] = true
	}
	pred := plotting.PredicateFunc(func(x, y, tolerance float64) bool {
		px, py, ok := m.Pixel(vec.Vec2{X: x, Y: y})
		return ok && want[image.Pt(px, py)]
	})
	s, err := plotting.New(pred, 2, size, 1)
	require.NoError(t, err)
	return s
}

func TestRenderOrientation(t *testing.T) {
	s := pixels(t, 4, image.Pt(1, 0))
	img, err := Render(s, 1)
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.Equal(t, Curve, img.ColorIndexAt(1, 3))
	assert.Equal(t, Axis, img.ColorIndexAt(2, 0))
	assert.Equal(t, Axis, img.ColorIndexAt(0, 1))
	assert.Equal(t, Axis, img.ColorIndexAt(2, 1))
	assert.Equal(t, Background, img.ColorIndexAt(0, 0))
	assert.Equal(t, Background, img.ColorIndexAt(3, 3))
}

func TestRenderCurveOverAxis(t *testing.T) {
	s := pixels(t, 4, image.Pt(2, 2))
	img, err := Render(s, 0)
	require.NoError(t, err)
	assert.Equal(t, Curve, img.ColorIndexAt(2, 1))
}

func TestRenderMagnify(t *testing.T) {
	s := pixels(t, 4, image.Pt(1, 0))
	img, err := Render(s, 3)
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())
	for y := 9; y < 12; y++ {
		for x := 3; x < 6; x++ {
			assert.Equal(t, Curve, img.ColorIndexAt(x, y), "(%d, %d)", x, y)
		}
	}
	assert.Equal(t, Background, img.ColorIndexAt(2, 11))
	assert.Equal(t, Axis, img.ColorIndexAt(6, 0))
}

func TestFormatFromName(t *testing.T) {
	cases := []struct {
		name string
		want Format
	}{
		{"plot.png", PNG},
		{"plot.PNG", PNG},
		{"dir.d/plot.gif", GIF},
		{"plot.jpg", JPEG},
		{"plot.jpeg", JPEG},
		{"plot.bmp", BMP},
		{"plot.tif", TIFF},
		{"plot.tiff", TIFF},
		{"plot.pdf", PDF},
		{"plot.json", JSON},
		{"plot", JPEG},
		{"plot.webp", JPEG},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatFromName(c.name), c.name)
	}
}

func TestParseFormat(t *testing.T) {
	for f := JPEG; f <= JSON; f++ {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("TIF")
	require.NoError(t, err)
	assert.Equal(t, TIFF, got)

	_, err = ParseFormat("svg")
	assert.ErrorContains(t, err, "svg")
}

func TestWritePNG(t *testing.T) {
	s := pixels(t, 8, image.Pt(0, 0), image.Pt(7, 7))

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, s, PNG, nil))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	assert.Equal(t, Palette[Curve], img.At(0, 7))
	assert.Equal(t, Palette[Curve], img.At(7, 0))
	assert.Equal(t, Palette[Background], img.At(7, 7))
}

func TestWriteRasterFormats(t *testing.T) {
	s := pixels(t, 8, image.Pt(3, 3))
	for _, f := range []Format{JPEG, GIF, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, Write(buf, s, f, &Options{Magnify: 2, Quality: 90}))

			cfg, name, err := image.DecodeConfig(buf)
			require.NoError(t, err)
			assert.Equal(t, f.String(), name)
			assert.Equal(t, 16, cfg.Width)
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	s := pixels(t, 4)
	err := Write(&bytes.Buffer{}, s, Format(99), nil)
	assert.ErrorContains(t, err, "Format(99)")
}

func TestRuns(t *testing.T) {
	s := pixels(t, 6,
		image.Pt(0, 1), image.Pt(1, 1), image.Pt(2, 1),
		image.Pt(4, 1),
		image.Pt(5, 3), image.Pt(0, 4))

	want := []run{
		{Y: 1, X0: 0, X1: 2},
		{Y: 1, X0: 4, X1: 4},
		{Y: 3, X0: 5, X1: 5},
		{Y: 4, X0: 0, X1: 0},
	}
	assert.Equal(t, want, rowRuns(s))
}

func TestJSONRoundTrip(t *testing.T) {
	set := []image.Point{
		image.Pt(0, 1), image.Pt(1, 1), image.Pt(2, 1),
		image.Pt(5, 3), image.Pt(4, 5),
	}
	s := pixels(t, 6, set...)

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, s, JSON, nil))

	doc, err := ReadJSON(buf)
	require.NoError(t, err)
	assert.Equal(t, 6, doc.Size)
	assert.Equal(t, 1.0, doc.Scale)
	assert.Equal(t, [4]float64{-3, -3, 3, 3}, doc.Domain)
	assert.Equal(t, s.String(), doc.Label)
	assert.Equal(t, 5, doc.Count)
	assert.Len(t, doc.Runs, 3)

	var got []image.Point
	doc.Pixels(func(x, y int) bool {
		got = append(got, image.Pt(x, y))
		return true
	})
	assert.Equal(t, set, got)

	var first []image.Point
	doc.Pixels(func(x, y int) bool {
		first = append(first, image.Pt(x, y))
		return len(first) < 2
	})
	assert.Equal(t, set[:2], first)
}

func TestJSONEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, pixels(t, 3), JSON, nil))
	assert.Contains(t, buf.String(), `"runs": []`)

	_, err := ReadJSON(bytes.NewBufferString("{"))
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	s := pixels(t, 10, image.Pt(2, 2), image.Pt(3, 2), image.Pt(7, 8))

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, s, PDF, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestSave(t *testing.T) {
	s := pixels(t, 8, image.Pt(4, 4))
	dir := t.TempDir()

	name := filepath.Join(dir, "plot.png")
	require.NoError(t, Save(name, s, &Options{Magnify: 2}))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
}

func TestSaveFailure(t *testing.T) {
	s := pixels(t, 4)
	name := filepath.Join(t.TempDir(), "missing", "plot.png")
	assert.Error(t, Save(name, s, nil))
	assert.NoFileExists(t, name)
}

func TestRenderMagnifyLimit(t *testing.T) {
	s := pixels(t, 100)

	img, err := Render(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	for _, magnify := range []int{MaxSide/100 + 1, 1 << 30, math.MaxInt} {
		img, err := Render(s, magnify)
		assert.Nil(t, img)
		assert.Error(t, err, "magnify %d", magnify)
	}

	err = Write(&bytes.Buffer{}, s, PNG, &Options{Magnify: math.MaxInt})
	assert.ErrorContains(t, err, "too large")

	// vector and data formats ignore the magnification
	assert.NoError(t, Write(&bytes.Buffer{}, s, JSON, &Options{Magnify: math.MaxInt}))
}

func TestSaveAs(t *testing.T) {
	s := pixels(t, 8, image.Pt(4, 4))
	name := filepath.Join(t.TempDir(), "plot.out")

	require.NoError(t, SaveAs(name, s, JSON, nil))
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	doc, err := ReadJSON(f)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Count)
}

func TestSaveAsRemovesPartialFile(t *testing.T) {
	s := pixels(t, 100)
	dir := t.TempDir()

	name := filepath.Join(dir, "plot.out")
	err := SaveAs(name, s, PNG, &Options{Magnify: math.MaxInt})
	assert.ErrorContains(t, err, name)
	assert.NoFileExists(t, name)

	name = filepath.Join(dir, "plot.gif")
	assert.Error(t, Save(name, s, &Options{Magnify: math.MaxInt}))
	assert.NoFileExists(t, name)
}
