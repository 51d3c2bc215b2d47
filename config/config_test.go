package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "percolath.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, DefaultN, c.N)
	assert.Equal(t, DefaultTrials, c.Trials)
	assert.Nil(t, c.Seed)
	assert.False(t, c.Backwash)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
n = 64
trials = 30
seed = 17
backwash = true

[log]
level = "debug"
format = "json"
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 64, c.N)
	assert.Equal(t, 30, c.Trials)
	require.NotNil(t, c.Seed)
	assert.Equal(t, int64(17), *c.Seed)
	assert.True(t, c.Backwash)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoadKeepsDefaults(t *testing.T) {
	c, err := Load(writeFile(t, "trials = 5\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultN, c.N)
	assert.Equal(t, 5, c.Trials)
	assert.Equal(t, DefaultLogLevel, c.Log.Level)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeFile(t, "trails = 5\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero n":      func(c *Config) { c.N = 0 },
		"negative n":  func(c *Config) { c.N = -3 },
		"zero trials": func(c *Config) { c.Trials = 0 },
		"bad level":   func(c *Config) { c.Log.Level = "loud" },
		"bad format":  func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestBuildLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := Log{Level: "warn", Format: format}.BuildLogger()
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel), "debug must be disabled at warn")
	}

	_, err := Log{Level: "nope"}.BuildLogger()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
