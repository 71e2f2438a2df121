package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambeau/unitz/pkg/unitz"
)

func noenv(string) string { return "" }

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
	assert.True(t, cfg.Dynamic)
	assert.NoError(t, Validate(cfg))
	assert.Empty(t, Warnings(cfg))

	d := cfg.UnitzDefaults()
	assert.Equal(t, unitz.DefaultOutput(), d.Output)
	assert.Equal(t, unitz.DefaultTransform(), d.Transform)
	assert.Equal(t, unitz.SortMax, d.Sort.Type)
}

func TestInterpolateEnv(t *testing.T) {
	getenv := func(key string) string {
		switch key {
		case "TEST_HOST":
			return "example.com"
		case "TEST_PORT":
			return "9000"
		default:
			return ""
		}
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple substitution", "host: ${TEST_HOST}", "host: example.com"},
		{"with default (env set)", "host: ${TEST_HOST:-localhost}", "host: example.com"},
		{"with default (env not set)", "host: ${UNSET_VAR:-localhost}", "host: localhost"},
		{"multiple substitutions", "addr: ${TEST_HOST}:${TEST_PORT}", "addr: example.com:9000"},
		{"unset without default", "host: ${UNSET_VAR}", "host: "},
		{"no substitution needed", "system: metric", "system: metric"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(interpolateEnv([]byte(tt.input), getenv)))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
output:
  unit: long
  format: number
  unit_spacer: " "
  significant: 2
  locale: de
transform:
  system: metric
  common: false
  not_classes: [Digital]
sort:
  ascending: true
  type: average
  classes: {Weight: 2}
catalogs: catalogs/kitchen.yaml
store:
  path: data/units.db
repl:
  history: .unitz_history
logging:
  level: debug
  format: json
server:
  port: 9090
  shutdown_timeout: 3s
  rate_limit:
    requests: 10
    window: 1s
`)

	cfg, resolved, err := LoadWithPath(path, noenv)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, dir, cfg.BaseDir)

	assert.Equal(t, unitz.UnitLong, cfg.Output.Unit)
	assert.Equal(t, unitz.FormatNumber, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Significant)
	assert.Equal(t, ", ", cfg.Output.Delimiter, "unset keys keep defaults")

	assert.Equal(t, unitz.Metric, cfg.Transform.System)
	assert.False(t, cfg.Transform.Common)
	assert.True(t, cfg.Transform.Groupless)
	assert.Equal(t, []string{"Digital"}, cfg.Transform.NotClasses)

	assert.True(t, cfg.Sort.Ascending)
	assert.Equal(t, unitz.SortAverage, cfg.Sort.Type)
	assert.Equal(t, 2, cfg.Sort.Classes["Weight"])

	assert.Equal(t, StringOrSlice{filepath.Join(dir, "catalogs", "kitchen.yaml")}, cfg.Catalogs)
	assert.Equal(t, filepath.Join(dir, "data", "units.db"), cfg.Store.Path)
	assert.Equal(t, filepath.Join(dir, ".unitz_history"), cfg.REPL.History)
	assert.Equal(t, "stderr", cfg.Logging.Output)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Server.RateLimit.Requests)
	assert.Equal(t, time.Second, cfg.Server.RateLimit.Window)
	assert.True(t, cfg.Server.RateLimit.Enabled)

	out := cfg.UnitzOutput()
	assert.Equal(t, "de", out.Locale)
	assert.Equal(t, " ", out.UnitSpacer)
}

func TestLoadServerMiddleware(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
server:
  cors:
    origins: https://app.example.com
    max_age: 600
  security:
    frame_options: SAMEORIGIN
  proxy:
    trusted: true
    trusted_ips: [10.0.0.1]
`)

	cfg, err := Load(path, noenv)
	require.NoError(t, err)
	assert.Equal(t, StringOrSlice{"https://app.example.com"}, cfg.Server.CORS.Origins)
	assert.Equal(t, 600, cfg.Server.CORS.MaxAge)
	assert.Equal(t, "SAMEORIGIN", cfg.Server.Security.FrameOptions)
	assert.Equal(t, "nosniff", cfg.Server.Security.ContentTypeOptions, "unset headers keep defaults")
	assert.True(t, cfg.Server.Proxy.Trusted)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.Server.Proxy.TrustedIPs)
}

func TestLoadWithEnvInterpolation(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
transform:
  system: ${UNITZ_SYSTEM:-imperial}
server:
  port: ${UNITZ_PORT:-8081}
`)

	getenv := func(key string) string {
		if key == "UNITZ_SYSTEM" {
			return "metric"
		}
		return ""
	}
	cfg, err := Load(path, getenv)
	require.NoError(t, err)
	assert.Equal(t, unitz.Metric, cfg.Transform.System)
	assert.Equal(t, 8081, cfg.Server.Port)

	cfg, err = Load(path, noenv)
	require.NoError(t, err)
	assert.Equal(t, unitz.Imperial, cfg.Transform.System)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"), noenv)
	assert.ErrorContains(t, err, "config file not found")

	bad := writeConfig(t, dir, "transform:\n  system: lunar\n")
	_, err = Load(bad, noenv)
	assert.ErrorContains(t, err, "unknown system")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("server:\n  port: 0\n"), 0o644))
	_, err = Load(invalid, noenv)
	assert.ErrorContains(t, err, "invalid port")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"bad compression", func(c *Config) { c.Server.Compression.Level = "max" }, "invalid compression level"},
		{"bad max body", func(c *Config) { c.Server.MaxBody = "lots" }, "server.max_body"},
		{"zero rate limit", func(c *Config) { c.Server.RateLimit.Requests = 0 }, "rate_limit.requests"},
		{"disabled rate limit ignores requests", func(c *Config) {
			c.Server.RateLimit.Enabled = false
			c.Server.RateLimit.Requests = 0
		}, ""},
		{"bad significant", func(c *Config) { c.Output.Significant = -2 }, "output.significant"},
		{"bad locale", func(c *Config) { c.Output.Locale = "not a locale" }, "output.locale"},
		{"min above max", func(c *Config) { c.Transform.Min, c.Transform.Max = 10, 1 }, "transform.min"},
		{"empty catalog", func(c *Config) { c.Catalogs = StringOrSlice{""} }, "catalogs[0]"},
		{"negative cors max age", func(c *Config) { c.Server.CORS.MaxAge = -1 }, "server.cors.max_age"},
		{"bad trusted proxy", func(c *Config) { c.Server.Proxy.TrustedIPs = []string{"proxy.local"} }, "server.proxy.trusted_ips"},
		{"good trusted proxy", func(c *Config) { c.Server.Proxy.TrustedIPs = []string{"10.0.0.1", "::1"} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidation_CollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	_, err := resolveConfigPath("", noenv)
	assert.ErrorIs(t, err, errNoConfig)

	cfg, path, err := LoadWithPath("", noenv)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 8080, cfg.Server.Port)

	home := filepath.Join(dir, ".config", "unitz")
	require.NoError(t, os.MkdirAll(home, 0o755))
	writeConfig(t, home, "server:\n  port: 7000\n")
	got, err := resolveConfigPath("", noenv)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, FileName), got)

	writeConfig(t, dir, "server:\n  port: 7001\n")
	got, err = resolveConfigPath("", noenv)
	require.NoError(t, err)
	assert.Equal(t, FileName, got)

	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("{}"), 0o644))
	getenv := func(k string) string {
		if k == EnvConfig {
			return envPath
		}
		return ""
	}
	got, err = resolveConfigPath("", getenv)
	require.NoError(t, err)
	assert.Equal(t, envPath, got)

	_, err = resolveConfigPath("", func(string) string { return "/nope/unitz.yaml" })
	assert.ErrorContains(t, err, EnvConfig)
}

func TestWarnings(t *testing.T) {
	cfg := Defaults()
	cfg.Transform.System = unitz.None
	cfg.Store.Path = "units.db"
	cfg.Dynamic = false
	cfg.Watch = true

	w := Warnings(cfg)
	require.Len(t, w, 3)
	assert.Contains(t, w[0], "transform.system")
	assert.Contains(t, w[1], "store.path")
	assert.Contains(t, w[2], "watch")

	cfg = Defaults()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.RateLimit.Enabled = false
	assert.Len(t, Warnings(cfg), 1)
}

func TestStringOrSlice(t *testing.T) {
	cfg, err := Parse([]byte("catalogs: a.yaml\n"), noenv)
	require.NoError(t, err)
	assert.Equal(t, StringOrSlice{"a.yaml"}, cfg.Catalogs)

	cfg, err = Parse([]byte("catalogs: [a.yaml, b.yaml]\n"), noenv)
	require.NoError(t, err)
	assert.True(t, cfg.Catalogs.Contains("b.yaml"))
	assert.False(t, cfg.Catalogs.Contains("c.yaml"))
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", Defaults().Server.Addr())
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"100", 100, false},
		{"100B", 100, false},
		{"64KB", 64 * 1024, false},
		{"10mb", 10 * 1024 * 1024, false},
		{"1GB", 1024 * 1024 * 1024, false},
		{" 2 KB ", 2048, false},
		{"lots", 0, true},
		{"xMB", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
