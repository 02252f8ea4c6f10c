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
	"io"

	jsoniter "github.com/json-iterator/go"

	"seehuhn.de/go/plotting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the JSON representation of a snapshot.  Curve pixels are
// listed as horizontal runs, in the row-major order of the snapshot.
type Document struct {
	Size   int        `json:"size"`
	Scale  float64    `json:"scale"`
	Domain [4]float64 `json:"domain"` // llx, lly, urx, ury
	Label  string     `json:"label"`
	Count  int        `json:"count"`
	Runs   []JSONRun  `json:"runs"`
}

// JSONRun is the pixel range [X0, X1] of row Y.
type JSONRun struct {
	Y  int `json:"y"`
	X0 int `json:"x0"`
	X1 int `json:"x1"`
}

// NewDocument converts s to its JSON representation.
func NewDocument(s *plotting.Snapshot) *Document {
	dom := s.Domain()
	doc := &Document{
		Size:   s.Size(),
		Scale:  s.Scale(),
		Domain: [4]float64{dom.LLx, dom.LLy, dom.URx, dom.URy},
		Label:  s.String(),
		Runs:   []JSONRun{},
	}
	for _, r := range rowRuns(s) {
		doc.Runs = append(doc.Runs, JSONRun{Y: r.Y, X0: r.X0, X1: r.X1})
		doc.Count += r.X1 - r.X0 + 1
	}
	return doc
}

// Pixels calls yield for every curve pixel listed in d.
func (d *Document) Pixels(yield func(x, y int) bool) {
	for _, r := range d.Runs {
		for x := r.X0; x <= r.X1; x++ {
			if !yield(x, r.Y) {
				return
			}
		}
	}
}

func writeJSON(w io.Writer, s *plotting.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(s))
}

// ReadJSON decodes a document written in the [JSON] format.
func ReadJSON(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
