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

// Package export writes rasterized curves to image files.
//
// Raster formats show the curve in blue on a white background, with grey
// coordinate axes through the origin.  The y axis points upwards, so that
// row 0 of a snapshot becomes the bottom row of the image.
package export

import (
	"errors"
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/plotting"
)

// Format is an output file format.
type Format int

// The supported output formats.
const (
	JPEG Format = iota
	PNG
	GIF
	BMP
	TIFF
	PDF
	JSON
)

var formatNames = map[Format]string{
	JPEG: "jpeg",
	PNG:  "png",
	GIF:  "gif",
	BMP:  "bmp",
	TIFF: "tiff",
	PDF:  "pdf",
	JSON: "json",
}

var extensions = map[string]Format{
	".jpg":  JPEG,
	".jpeg": JPEG,
	".png":  PNG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".pdf":  PDF,
	".json": JSON,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format with the given name, as returned by
// [Format.String].  The file extensions "jpg" and "tif" are accepted, too.
func ParseFormat(name string) (Format, error) {
	if f, ok := extensions["."+strings.ToLower(name)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}

// FormatFromName chooses the format based on the extension of a file name.
// Names with a missing or unknown extension are written as JPEG.
func FormatFromName(name string) Format {
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := extensions[ext]; ok {
		return f
	}
	return JPEG
}

// Options control the output.
type Options struct {
	// Magnify enlarges every pixel to a Magnify×Magnify block.
	// Values below 2 leave the image size unchanged.
	Magnify int

	// Quality is the JPEG quality, from 1 to 100.
	// Zero selects the encoder default.
	Quality int
}

// Write encodes s in the given format.
func Write(w io.Writer, s *plotting.Snapshot, format Format, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	switch format {
	case PDF:
		return writePDF(w, s)
	case JSON:
		return writeJSON(w, s)
	}

	img, err := Render(s, opts.Magnify)
	if err != nil {
		return err
	}
	switch format {
	case JPEG:
		var jo *jpeg.Options
		if opts.Quality > 0 {
			jo = &jpeg.Options{Quality: opts.Quality}
		}
		return jpeg.Encode(w, img, jo)
	case PNG:
		return png.Encode(w, img)
	case GIF:
		return gif.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}

// Save writes s to the named file, choosing the format by the file name
// extension.  If writing fails, the file is removed again.
func Save(name string, s *plotting.Snapshot, opts *Options) error {
	return SaveAs(name, s, FormatFromName(name), opts)
}

// SaveAs writes s to the named file in the given format.  If writing
// fails, the file is removed again.
func SaveAs(name string, s *plotting.Snapshot, format Format, opts *Options) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			os.Remove(name)
		}
	}()

	if err := Write(f, s, format, opts); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	plotting.Logger().Info("saved image",
		"file", name,
		"format", format.String(),
		"size", s.Size())
	return nil
}
