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

// Package viewer implements an interactive session for exploring a curve.
//
// A session shows one snapshot at a time.  Zooming computes a new snapshot
// and puts it on a history stack, going back returns to the previous one.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"seehuhn.de/go/plotting"
	"seehuhn.de/go/plotting/export"
	"seehuhn.de/go/plotting/history"
)

var (
	// ErrBusy is returned when a computation is requested while another
	// one is still running.
	ErrBusy = errors.New("computation in progress")

	// ErrNotStarted is returned by operations which need a snapshot
	// before [Session.Start] has completed.
	ErrNotStarted = errors.New("session not started")

	errStarted = errors.New("session already started")
)

// Config describes the curve and the rasterization parameters of a session.
// Zero values are replaced by the defaults from the plotting package.
type Config struct {
	Name      string
	Predicate plotting.Predicate
	Workers   int
	Size      int
	Scale     float64
}

// Result is the outcome of an asynchronous computation.
type Result struct {
	Entry history.Entry
	Err   error
}

// Session is an interactive view of a curve.
type Session struct {
	cfg     Config
	history history.Stack
	busy    atomic.Bool
}

// NewSession returns a session for the given configuration.
// No computation is done until [Session.Start] is called.
func NewSession(cfg Config) *Session {
	if cfg.Workers == 0 {
		cfg.Workers = plotting.DefaultWorkers
	}
	if cfg.Size == 0 {
		cfg.Size = plotting.DefaultSize
	}
	if cfg.Scale == 0 {
		cfg.Scale = plotting.DefaultScale
	}
	return &Session{cfg: cfg}
}

// Start computes the initial snapshot.
func (s *Session) Start() error {
	return (<-s.StartAsync()).Err
}

// StartAsync computes the initial snapshot in a new goroutine.
// The result is delivered on the returned channel.
func (s *Session) StartAsync() <-chan Result {
	return s.run(func() (*plotting.Snapshot, error) {
		if s.history.Len() > 0 {
			return nil, errStarted
		}
		return plotting.New(s.cfg.Predicate, s.cfg.Workers, s.cfg.Size, s.cfg.Scale)
	})
}

// Zoom computes the current curve at the current scale multiplied by
// factor, and makes the result the current snapshot.
func (s *Session) Zoom(factor float64) (history.Entry, error) {
	res := <-s.ZoomAsync(factor)
	return res.Entry, res.Err
}

// ZoomIn doubles the scale.
func (s *Session) ZoomIn() (history.Entry, error) {
	return s.Zoom(plotting.ZoomIn)
}

// ZoomOut halves the scale.
func (s *Session) ZoomOut() (history.Entry, error) {
	return s.Zoom(plotting.ZoomOut)
}

// ZoomAsync is like [Session.Zoom], but runs the computation in a new
// goroutine.  The snapshot to zoom is the one current at the time of the
// call.
func (s *Session) ZoomAsync(factor float64) <-chan Result {
	top, ok := s.history.Peek()
	if !ok {
		return done(Result{Err: ErrNotStarted})
	}
	return s.run(func() (*plotting.Snapshot, error) {
		return top.Snapshot.Zoom(factor)
	})
}

// run executes compute in a new goroutine and pushes the resulting
// snapshot.  Only one computation may run at a time.  The session is no
// longer busy once the result is delivered.
func (s *Session) run(compute func() (*plotting.Snapshot, error)) <-chan Result {
	if !s.busy.CompareAndSwap(false, true) {
		return done(Result{Err: ErrBusy})
	}

	c := make(chan Result, 1)
	go func() {
		res := s.push(compute)
		s.busy.Store(false)
		c <- res
	}()
	return c
}

func (s *Session) push(compute func() (*plotting.Snapshot, error)) Result {
	snap, err := compute()
	if err != nil {
		plotting.Logger().Warn("computation failed",
			slog.String("curve", s.cfg.Name),
			slog.Any("error", err))
		return Result{Err: err}
	}
	e := s.history.Push(snap)
	plotting.Logger().Info("snapshot ready",
		slog.String("curve", s.cfg.Name),
		slog.String("id", e.ID.String()),
		slog.Float64("scale", snap.Scale()),
		slog.Int("depth", s.history.Len()))
	return Result{Entry: e}
}

func done(res Result) <-chan Result {
	c := make(chan Result, 1)
	c <- res
	return c
}

// Busy reports whether a computation is running.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Back returns to the previous snapshot.  The first snapshot of the
// session is never discarded; the second return value is false if there
// is nothing to go back to.
func (s *Session) Back() (history.Entry, bool) {
	if s.busy.Load() {
		return history.Entry{}, false
	}
	return s.history.Back()
}

// Current returns the snapshot currently shown.
func (s *Session) Current() (*plotting.Snapshot, bool) {
	e, ok := s.history.Peek()
	if !ok {
		return nil, false
	}
	return e.Snapshot, true
}

// Depth returns the number of snapshots on the history stack.
func (s *Session) Depth() int {
	return s.history.Len()
}

// Status returns a one-line description of the current view.
func (s *Session) Status() string {
	snap, ok := s.Current()
	if !ok {
		return fmt.Sprintf("%s: no snapshot", s.cfg.Name)
	}
	return fmt.Sprintf("%s: %s (view %d)", s.cfg.Name, snap, s.history.Len())
}

// Save writes the current snapshot to the named file.
func (s *Session) Save(name string, opts *export.Options) error {
	snap, ok := s.Current()
	if !ok {
		return ErrNotStarted
	}
	return export.Save(name, snap, opts)
}
