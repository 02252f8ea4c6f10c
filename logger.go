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
	"log/slog"
	"sync/atomic"
)

// discard is a slog handler which drops every record.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	quiet   = slog.New(discard{})
	current atomic.Pointer[slog.Logger]
)

// SetLogger installs l as the destination for diagnostic messages of this
// module. Completed rasterizations are reported at debug level, failed
// ones at warning level. The viewer and the exporters report finished
// operations at info level.
//
// Initially nothing is logged. SetLogger(nil) returns to this state.
func SetLogger(l *slog.Logger) {
	if l == quiet {
		l = nil
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a logger which
// discards everything.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return quiet
}
