package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolath/config"
)

// options collects the flags shared by every subcommand.
type options struct {
	configFile string
	n          int
	trials     int
	seed       int64
	backwash   bool
	logLevel   string
	logFormat  string
	metrics    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "percolath",
		Short:         "Monte Carlo estimation of the percolation threshold",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "TOML configuration file")
	pf.IntVarP(&opts.n, "n", "n", config.DefaultN, "grid side")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed (clock-seeded when unset)")
	pf.BoolVar(&opts.backwash, "backwash", false, "answer IsFull from the shared forest")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")

	root.AddCommand(newRunCmd(opts), newTrialCmd(opts))

	return root
}

// resolve loads the configuration file, if any, and lets explicitly set
// flags override it.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = o.n
	}
	if flags.Changed("trials") {
		cfg.Trials = o.trials
	}
	if flags.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if flags.Changed("backwash") {
		cfg.Backwash = o.backwash
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
