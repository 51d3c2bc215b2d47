// Package config holds the settings of the percolath command-line driver
// and loads them from TOML files.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Default values.
const (
	DefaultN         = 200
	DefaultTrials    = 100
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config is the driver configuration.
type Config struct {
	// N is the grid side.
	N int `toml:"n"`
	// Trials is the number of independent experiments.
	Trials int `toml:"trials"`
	// Seed fixes the random source; nil seeds from the clock.
	Seed *int64 `toml:"seed"`
	// Backwash answers IsFull from the shared forest.
	Backwash bool `toml:"backwash"`
	Log      Log  `toml:"log"`
}

// Log configures the zap logger.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Format is "json" or "console".
	Format string `toml:"format"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		N:      DefaultN,
		Trials: DefaultTrials,
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a TOML file over the defaults. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return c, nil
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if c.N <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "n=%d must be positive", c.N)
	}
	if c.Trials <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "trials=%d must be positive", c.Trials)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log format %q", c.Log.Format)
	}

	return nil
}

// BuildLogger constructs a zap logger writing to stderr.
func (l Log) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "log level %q", l.Level)
	}

	var zc zap.Config
	if l.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
