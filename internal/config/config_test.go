package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/kflux/internal/logging"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(NewViper(t.TempDir()), newFlags(t))
	require.NoError(t, err)

	want := Defaults()
	assert.Equal(t, want, cfg)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
theme: nord
flux-namespace: gitops
pool-size: 3
probe-timeout: 2s
log-level: debug
`)

	t.Run("config file over defaults", func(t *testing.T) {
		cfg, err := Load(NewViper(dir), newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "nord", cfg.Theme)
		assert.Equal(t, "gitops", cfg.FluxNamespace)
		assert.Equal(t, 3, cfg.PoolSize)
		assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
		assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
	})

	t.Run("env over config file", func(t *testing.T) {
		t.Setenv("KFLUX_FLUX_NAMESPACE", "flux")
		t.Setenv("KFLUX_POOL_SIZE", "7")

		cfg, err := Load(NewViper(dir), newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "flux", cfg.FluxNamespace)
		assert.Equal(t, 7, cfg.PoolSize)
		assert.Equal(t, "nord", cfg.Theme)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("KFLUX_THEME", "dracula")

		cfg, err := Load(NewViper(dir), newFlags(t, "--theme", "monokai", "--dummy"))
		require.NoError(t, err)
		assert.Equal(t, "monokai", cfg.Theme)
		assert.True(t, cfg.Dummy)
	})
}

func TestLoadExplicitConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "context: staging\n")

	cfg, err := Load(NewViper(), newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Context)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(NewViper(), newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "theme: [unclosed\n")
		_, err := Load(NewViper(dir), newFlags(t))
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(NewViper(t.TempDir()), newFlags(t, "--pool-size", "0", "--log-format", "xml"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "pool-size")
		assert.ErrorContains(t, err, "log-format")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero timeout", mutate: func(c *Config) { c.ProbeTimeout = 0 }, wantErr: "probe-timeout"},
		{name: "zero concurrency", mutate: func(c *Config) { c.ProbeConcurrency = 0 }, wantErr: "probe-concurrency"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "neon" }, wantErr: "theme"},
		{name: "empty flux namespace", mutate: func(c *Config) { c.FluxNamespace = "" }, wantErr: "flux-namespace"},
		{name: "json logs", mutate: func(c *Config) { c.LogFormat = "JSON" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLogging(t *testing.T) {
	cfg := Defaults()
	cfg.LogFile = "/tmp/kflux.log"
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	lc := cfg.Logging()
	assert.Equal(t, "/tmp/kflux.log", lc.FilePath)
	assert.Equal(t, logging.ParseLevel("debug"), lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/flux")

	assert.Equal(t, []string{"/xdg/kflux", "/home/flux/.kflux"}, DefaultPaths())
}
