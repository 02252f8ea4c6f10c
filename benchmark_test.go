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
	"fmt"
	"testing"
)

// BenchmarkNew measures a full rasterization of the circle for different
// numbers of workers.
func BenchmarkNew(b *testing.B) {
	for _, workers := range []int{1, 4, DefaultWorkers} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := New(circle, workers, DefaultSize, DefaultScale); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkAccept measures the read path.
func BenchmarkAccept(b *testing.B) {
	s, err := New(circle, DefaultWorkers, DefaultSize, DefaultScale)
	if err != nil {
		b.Fatal(err)
	}

	n := 0
	visit := func(x, y int, value bool) {
		if value {
			n++
		}
	}

	b.ResetTimer()
	for b.Loop() {
		s.Accept(visit)
	}
	_ = n
}
