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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Label returns a short description of s for status displays, formatted
// for the given language.
func (s *Snapshot) Label(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d×%d pixels, %.6g pixels per unit, %.6g units across",
		s.m.size, s.m.size, s.m.scale, s.m.DomainSize())
}

// String returns the label of s in English.
func (s *Snapshot) String() string {
	return s.Label(language.English)
}
