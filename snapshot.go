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
	"context"
	"image"
	"iter"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// Snapshot is a rasterized curve at a fixed scale.
//
// A Snapshot is immutable once [New] returns, and is safe for concurrent
// use.  The cells are stored in row-major order, with row 0 at the bottom
// of the covered square.
type Snapshot struct {
	m       Mapper
	pred    Predicate
	workers int
	cells   []bool
}

// Visitor receives the value of pixel (x, y).
type Visitor func(x, y int, value bool)

// New rasterizes the curve p onto a size×size grid at the given scale
// (pixels per unit), using the given number of goroutines.
//
// New returns only after all goroutines have finished.  Invalid arguments
// give an error matching [ErrInvalidConfig].  If the predicate panics, New
// returns an error matching [ErrInterrupted] and no Snapshot.
func New(p Predicate, workers, size int, scale float64) (*Snapshot, error) {
	if p == nil {
		return nil, &ConfigError{Param: "predicate", Value: p}
	}
	if workers < 1 {
		return nil, &ConfigError{Param: "worker count", Value: workers}
	}
	if err := checkGeometry(size, scale); err != nil {
		return nil, err
	}

	s := &Snapshot{
		m:       newMapper(size, scale),
		pred:    p,
		workers: workers,
		cells:   make([]bool, size*size),
	}

	logger := Logger()
	start := time.Now()
	if err := s.rasterize(); err != nil {
		logger.Warn("rasterization interrupted",
			slog.Int("size", size),
			slog.Float64("scale", scale),
			slog.Any("error", err))
		return nil, err
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("rasterized",
			slog.Int("size", size),
			slog.Float64("scale", scale),
			slog.Int("workers", workers),
			slog.Duration("elapsed", time.Since(start)),
			slog.Int("count", s.Count()))
	}

	return s, nil
}

// rasterize evaluates the predicate for all cells.  Pixel index i is
// handled by worker i mod s.workers, so that every cell is written by
// exactly one goroutine and the cells need no lock.  Interleaving the
// indices keeps the workers balanced when the curve is concentrated in a
// few rows.
func (s *Snapshot) rasterize() error {
	var g errgroup.Group
	for w := range s.workers {
		g.Go(func() error {
			return s.rasterizePartition(w)
		})
	}
	return g.Wait()
}

func (s *Snapshot) rasterizePartition(w int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InterruptedError{Worker: w, Cause: r}
		}
	}()

	size := s.m.size
	tolerance := s.m.Tolerance()
	for i := w; i < len(s.cells); i += s.workers {
		p := s.m.Point(i%size, i/size)
		if s.pred.Evaluate(p.X, p.Y, tolerance) {
			s.cells[i] = true
		}
	}
	return nil
}

// Accept calls v once for every pixel, row by row starting with y = 0, and
// within each row in order of increasing x.
func (s *Snapshot) Accept(v Visitor) {
	size := s.m.size
	i := 0
	for y := range size {
		for x := range size {
			v(x, y, s.cells[i])
			i++
		}
	}
}

// All iterates over the pixels in the same order as [Snapshot.Accept].
func (s *Snapshot) All() iter.Seq2[image.Point, bool] {
	return func(yield func(image.Point, bool) bool) {
		size := s.m.size
		for i, value := range s.cells {
			if !yield(image.Point{X: i % size, Y: i / size}, value) {
				return
			}
		}
	}
}

// At returns the value of pixel (x, y).  Pixels outside the grid are false.
func (s *Snapshot) At(x, y int) bool {
	size := s.m.size
	if x < 0 || x >= size || y < 0 || y >= size {
		return false
	}
	return s.cells[y*size+x]
}

// Count returns the number of pixels on the curve.
func (s *Snapshot) Count() int {
	n := 0
	for _, value := range s.cells {
		if value {
			n++
		}
	}
	return n
}

// Size returns the side length of the grid in pixels.
func (s *Snapshot) Size() int {
	return s.m.size
}

// Scale returns the number of pixels per unit.
func (s *Snapshot) Scale() float64 {
	return s.m.scale
}

// Workers returns the number of goroutines used to compute s.
func (s *Snapshot) Workers() int {
	return s.workers
}

// DomainSize returns the side length of the covered square in the plane.
func (s *Snapshot) DomainSize() float64 {
	return s.m.DomainSize()
}

// Domain returns the square of the plane covered by s.
func (s *Snapshot) Domain() rect.Rect {
	return s.m.Domain()
}

// Mapper returns the coordinate mapping used for s.
func (s *Snapshot) Mapper() Mapper {
	return s.m
}

// Predicate returns the curve rasterized in s.
func (s *Snapshot) Predicate() Predicate {
	return s.pred
}
