package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/percolath/config"
	"github.com/katalvlaran/percolath/metrics"
	"github.com/katalvlaran/percolath/stats"
)

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run trials and report the threshold estimate",
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

			return runSimulation(cfg, logger, opts.metrics, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&opts.trials, "trials", "t", config.DefaultTrials, "number of trials")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print Prometheus metrics after the report")

	return cmd
}

// runSimulation runs the configured simulation and writes the report to out.
func runSimulation(cfg *config.Config, logger *zap.Logger, withMetrics bool, out io.Writer) error {
	simOpts := []stats.Option{stats.WithLogger(logger)}
	if cfg.Seed != nil {
		simOpts = append(simOpts, stats.WithSeed(*cfg.Seed))
	}

	var collector *metrics.Collector
	if withMetrics {
		var err error
		if collector, err = metrics.NewCollector(prometheus.NewRegistry()); err != nil {
			return err
		}
		simOpts = append(simOpts, stats.WithMetrics(collector))
	}

	logger.Info("starting simulation", zap.Int("n", cfg.N), zap.Int("trials", cfg.Trials))
	s, err := stats.New(cfg.N, cfg.Trials, simOpts...)
	if err != nil {
		return err
	}

	t := tabby.NewCustom(tabwriter.NewWriter(out, 0, 0, 2, ' ', 0))
	t.AddLine("n", cfg.N)
	t.AddLine("sites", humanize.Comma(int64(cfg.N)*int64(cfg.N)))
	t.AddLine("trials", humanize.Comma(int64(cfg.Trials)))
	t.AddLine("mean", s.Mean())
	t.AddLine("stddev", s.Stddev())
	t.AddLine("95% confidence interval", fmt.Sprintf("[%v, %v]", s.ConfidenceLo(), s.ConfidenceHi()))
	t.Print()

	if collector != nil {
		fmt.Fprintln(out)
		return collector.WriteText(out)
	}

	return nil
}
