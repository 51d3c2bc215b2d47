package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolath/config"
	"github.com/katalvlaran/percolath/percolation"
)

// Cell glyphs for the rendered grid.
const (
	glyphBlocked = '#'
	glyphOpen    = '.'
	glyphFull    = '~'
)

func newTrialCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trial",
		Short: "Run one trial and draw the grid at the moment it percolates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			logger, err := cfg.Log.BuildLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runTrial(cfg, logger, cmd.OutOrStdout())
		},
	}
}

// runTrial opens random sites until the grid percolates, then renders it:
// '#' blocked, '.' open, '~' full.
func runTrial(cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	r := rand.New(rand.NewSource(seed))

	var gridOpts []percolation.Option
	if cfg.Backwash {
		gridOpts = append(gridOpts, percolation.WithBackwash())
	}
	g, err := percolation.New(cfg.N, gridOpts...)
	if err != nil {
		return err
	}
	for !g.Percolates() {
		if err = g.Open(1+r.Intn(cfg.N), 1+r.Intn(cfg.N)); err != nil {
			return err
		}
	}
	logger.Debug("trial percolated",
		zap.Int("n", cfg.N),
		zap.Int64("seed", seed),
		zap.Int("opened", g.OpenSites()))

	if err = render(g, out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "open sites: %d / %d (%.4f)\n",
		g.OpenSites(), cfg.N*cfg.N, float64(g.OpenSites())/float64(cfg.N*cfg.N))

	return err
}

// render writes one line per row using the grid's IsOpen and IsFull answers.
func render(g *percolation.Grid, out io.Writer) error {
	n := g.Size()
	var b strings.Builder
	for row := 1; row <= n; row++ {
		b.Reset()
		for col := 1; col <= n; col++ {
			open, err := g.IsOpen(row, col)
			if err != nil {
				return err
			}
			full, err := g.IsFull(row, col)
			if err != nil {
				return err
			}
			switch {
			case full:
				b.WriteByte(glyphFull)
			case open:
				b.WriteByte(glyphOpen)
			default:
				b.WriteByte(glyphBlocked)
			}
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}

	return nil
}
