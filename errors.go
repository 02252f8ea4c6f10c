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
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by all errors caused by invalid
	// parameters.  These are detected before any computation starts.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInterrupted is matched by errors reporting that a worker was
	// aborted before it finished its share of the grid.
	ErrInterrupted = errors.New("computation interrupted")
)

// ConfigError reports an invalid rasterization parameter.
type ConfigError struct {
	Param string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v", e.Param, e.Value)
}

// Unwrap returns [ErrInvalidConfig].
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// InterruptedError reports that a worker did not complete its partition.
// The partially computed grid is discarded.
type InterruptedError struct {
	Worker int // index of the failed worker
	Cause  any // value recovered from the worker
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("worker %d interrupted: %v", e.Worker, e.Cause)
}

// Unwrap returns [ErrInterrupted], together with the cause if the cause is
// an error itself.
func (e *InterruptedError) Unwrap() []error {
	if err, ok := e.Cause.(error); ok {
		return []error{ErrInterrupted, err}
	}
	return []error{ErrInterrupted}
}
