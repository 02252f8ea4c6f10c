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

// Command plot rasterizes implicit curves.
//
// Usage:
//
//	plot render --curve circle --zoom 2 --zoom 2 -o circle.png
//	plot view --curve ellipse
//	plot curves
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"seehuhn.de/go/plotting"
	"seehuhn.de/go/plotting/curves"
	"seehuhn.de/go/plotting/export"
	"seehuhn.de/go/plotting/viewer"
)

// settings holds the values of the command line flags.
type settings struct {
	curve   string
	workers int
	size    int
	scale   float64
	verbose bool

	zooms   []float64
	output  string
	format  string
	magnify int
	quality int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &settings{}

	root := &cobra.Command{
		Use:          "plot",
		Short:        "Rasterize implicit curves",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if cfg.verbose {
				level = slog.LevelDebug
			}
			plotting.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.curve, "curve", "c", curves.Default, "curve to plot")
	pf.IntVarP(&cfg.workers, "workers", "w", plotting.DefaultWorkers, "number of worker goroutines")
	pf.IntVarP(&cfg.size, "size", "s", plotting.DefaultSize, "side length of the image in pixels")
	pf.Float64Var(&cfg.scale, "scale", plotting.DefaultScale, "initial scale in pixels per unit")
	pf.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd(cfg), newViewCmd(cfg), newCurvesCmd())
	return root
}

func newRenderCmd(cfg *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a curve to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cfg)
		},
	}
	f := cmd.Flags()
	f.Float64SliceVarP(&cfg.zooms, "zoom", "z", nil, "zoom factors to apply, in order")
	f.StringVarP(&cfg.output, "output", "o", "plot.png", "output file")
	f.StringVarP(&cfg.format, "format", "f", "", "output format (default: from the file name)")
	f.IntVar(&cfg.magnify, "magnify", 1, "enlarge every pixel by this factor")
	f.IntVar(&cfg.quality, "quality", 0, "JPEG quality, 1 to 100")
	return cmd
}

func render(cfg *settings) error {
	c, err := curves.Lookup(cfg.curve)
	if err != nil {
		return err
	}

	snap, err := plotting.New(c.Predicate, cfg.workers, cfg.size, cfg.scale)
	if err != nil {
		return err
	}
	for _, factor := range cfg.zooms {
		snap, err = snap.Zoom(factor)
		if err != nil {
			return err
		}
	}

	opts := &export.Options{Magnify: cfg.magnify, Quality: cfg.quality}
	if cfg.format == "" {
		return export.Save(cfg.output, snap, opts)
	}
	format, err := export.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	return export.SaveAs(cfg.output, snap, format, opts)
}

func newViewCmd(cfg *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Explore a curve interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curves.Lookup(cfg.curve)
			if err != nil {
				return err
			}
			s := viewer.NewSession(viewer.Config{
				Name:      c.Name,
				Predicate: c.Predicate,
				Workers:   cfg.workers,
				Size:      cfg.size,
				Scale:     cfg.scale,
			})

			// An interrupt ends the session.  After that, the default
			// signal handling is restored.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			context.AfterFunc(ctx, stop)

			err = s.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) && cmd.Context().Err() == nil {
				return nil
			}
			return err
		},
	}
}

func newCurvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the available curves",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range curves.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, curves.All[name].Equation)
			}
		},
	}
}
