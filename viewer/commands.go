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

package viewer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/plotting/export"
)

const helpText = `commands:
  in, +         zoom in
  out, -        zoom out
  zoom FACTOR   multiply the scale by FACTOR
  back, <       return to the previous view
  status        show the current view
  save FILE     save the current view (jpg, png, gif, bmp, tif, pdf, json)
  help          show this text
  quit          leave the viewer
`

// Run reads commands from in, one per line, and executes them until in is
// exhausted, "quit" is read, or ctx is cancelled.  Replies are written to
// out.  If the session has not been started, Run starts it first.
//
// Cancelling ctx makes Run return while it waits for input.  A command
// which is already running is completed first.  Errors from individual
// commands are reported on out and do not stop the loop.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if _, ok := s.Current(); !ok {
		if err := s.Start(); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, s.Status())

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := readLines(in, stop)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		quit, err := s.execute(fields, out)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// readLines scans in from a new goroutine.  The lines channel is closed
// at the end of input, after the scanner error has been sent on the error
// channel.  Closing stop ends the goroutine once its current read returns.
func readLines(in io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (s *Session) execute(fields []string, out io.Writer) (quit bool, err error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "in", "+":
		_, err = s.ZoomIn()
	case "out", "-":
		_, err = s.ZoomOut()
	case "zoom":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: zoom FACTOR")
		}
		factor, perr := strconv.ParseFloat(args[0], 64)
		if perr != nil {
			return false, fmt.Errorf("invalid zoom factor %q", args[0])
		}
		_, err = s.Zoom(factor)
	case "back", "<":
		if _, ok := s.Back(); !ok {
			return false, fmt.Errorf("no previous view")
		}
	case "status":
	case "save":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: save FILE")
		}
		if err := s.Save(args[0], nil); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "saved %s as %s\n", args[0], export.FormatFromName(args[0]))
		return false, nil
	case "help", "?":
		fmt.Fprint(out, helpText)
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, try \"help\"", cmd)
	}
	if err != nil {
		return false, err
	}
	fmt.Fprintln(out, s.Status())
	return false, nil
}
