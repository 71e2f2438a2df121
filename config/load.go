package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sambeau/unitz/pkg/unitz"
)

// FileName is the config file looked for in the working directory and
// under ~/.config/unitz.
const FileName = "unitz.yaml"

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "UNITZ_CONFIG"

var errNoConfig = errors.New("no config file found")

// Load reads configuration from a file with ENV interpolation.
// If configPath is empty, it searches default locations and falls back to
// Defaults when none exist.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	cfg, _, err := LoadWithPath(configPath, getenv)
	return cfg, err
}

// LoadWithPath reads configuration and returns both the config and the
// resolved path. The path is empty when defaults were used.
func LoadWithPath(configPath string, getenv func(string) string) (*Config, string, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if errors.Is(err, errNoConfig) {
		cfg := Defaults()
		if wd, err := os.Getwd(); err == nil {
			cfg.BaseDir = wd
		}
		return cfg, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, getenv)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(absPath))

	if err := Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, absPath, nil
}

// Parse decodes YAML over Defaults after interpolating environment
// variables. Paths are left as written.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// resolvePaths makes relative paths absolute against the config directory.
func (c *Config) resolvePaths(baseDir string) {
	c.BaseDir = baseDir
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}
	for i := range c.Catalogs {
		c.Catalogs[i] = abs(c.Catalogs[i])
	}
	c.Store.Path = abs(c.Store.Path)
	c.REPL.History = abs(c.REPL.History)
	if c.Logging.Output != "stderr" && c.Logging.Output != "stdout" {
		c.Logging.Output = abs(c.Logging.Output)
	}
}

// Validate checks the configuration, reporting every problem at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port: %d (must be 1-65535)", cfg.Server.Port))
	}
	if _, err := ParseSize(cfg.Server.MaxBody); err != nil {
		errs = append(errs, fmt.Sprintf("server.max_body: %v", err))
	}
	if cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, "server.shutdown_timeout must not be negative")
	}

	validCompression := map[string]bool{"fastest": true, "default": true, "best": true, "none": true}
	if !validCompression[cfg.Server.Compression.Level] {
		errs = append(errs, fmt.Sprintf("invalid compression level: %s (must be fastest, default, best, or none)", cfg.Server.Compression.Level))
	}
	if cfg.Server.Compression.MinSize < 0 {
		errs = append(errs, "server.compression.min_size must not be negative")
	}

	if rl := cfg.Server.RateLimit; rl.Enabled {
		if rl.Requests < 1 {
			errs = append(errs, fmt.Sprintf("server.rate_limit.requests: %d (must be at least 1)", rl.Requests))
		}
		if rl.Window <= 0 {
			errs = append(errs, "server.rate_limit.window must be positive")
		}
	}

	if cfg.Server.CORS.MaxAge < 0 {
		errs = append(errs, "server.cors.max_age must not be negative")
	}
	for _, ip := range cfg.Server.Proxy.TrustedIPs {
		if net.ParseIP(ip) == nil {
			errs = append(errs, fmt.Sprintf("server.proxy.trusted_ips: %q is not an IP address", ip))
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Logging.Level))
	}
	validFormats := map[string]bool{"pretty": true, "json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be pretty, json or text)", cfg.Logging.Format))
	}

	if cfg.Output.Significant < -1 {
		errs = append(errs, fmt.Sprintf("output.significant: %d (must be -1 or more)", cfg.Output.Significant))
	}
	if cfg.Output.Locale != "" {
		if _, err := language.Parse(cfg.Output.Locale); err != nil {
			errs = append(errs, fmt.Sprintf("output.locale: %v", err))
		}
	}
	if cfg.Transform.Min > cfg.Transform.Max {
		errs = append(errs, fmt.Sprintf("transform.min (%g) is greater than transform.max (%g)", cfg.Transform.Min, cfg.Transform.Max))
	}

	if cfg.Store.MaxUnits < 0 {
		errs = append(errs, "store.max_units must not be negative")
	}

	for i, c := range cfg.Catalogs {
		if c == "" {
			errs = append(errs, fmt.Sprintf("catalogs[%d]: path is empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Warnings returns non-fatal configuration issues that should be reported to the user.
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.Transform.System == unitz.None {
		warnings = append(warnings, "transform.system is none - conversions, compaction and expansion will see no units")
	}
	if cfg.Transform.OnlyUnits != nil && len(cfg.Transform.OnlyUnits) == 0 {
		warnings = append(warnings, "transform.only_units is an empty list - every unit is hidden")
	}
	if cfg.Store.Path != "" && !cfg.Dynamic {
		warnings = append(warnings, "store.path is set but dynamic units are disabled - nothing will be stored")
	}
	if cfg.Watch && len(cfg.Catalogs) == 0 {
		warnings = append(warnings, "watch is enabled but no catalogs are configured")
	}
	if cfg.Server.Host != "" && cfg.Server.Host != "localhost" && cfg.Server.Host != "127.0.0.1" && !cfg.Server.RateLimit.Enabled {
		warnings = append(warnings, fmt.Sprintf("server listens on %s without a rate limit", cfg.Server.Host))
	}

	return warnings
}

// resolveConfigPath finds the config file to use.
// Search order: explicit path > UNITZ_CONFIG env > ./unitz.yaml > ~/.config/unitz/unitz.yaml
func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if envPath := getenv(EnvConfig); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s file not found: %s", EnvConfig, envPath)
		}
		return envPath, nil
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		xdgPath := filepath.Join(home, ".config", "unitz", FileName)
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath, nil
		}
	}

	return "", errNoConfig
}

// envPattern matches ${VAR} or ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default} patterns with environment values.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}

// ParseSize parses a size string like "10MB", "1GB", "500KB" to bytes.
// Supports: B, KB, MB, GB (case insensitive).
// Returns 0 for empty string.
func ParseSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	s = strings.TrimSpace(strings.ToUpper(s))

	// Longest suffix first so "B" does not match before "MB"
	suffixes := []struct {
		suffix string
		mult   int64
	}{
		{"GB", 1024 * 1024 * 1024},
		{"MB", 1024 * 1024},
		{"KB", 1024},
		{"B", 1},
	}

	for _, sf := range suffixes {
		if strings.HasSuffix(s, sf.suffix) {
			numStr := strings.TrimSpace(strings.TrimSuffix(s, sf.suffix))
			var num int64
			if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
				return 0, fmt.Errorf("invalid size number: %s", numStr)
			}
			return num * sf.mult, nil
		}
	}

	var num int64
	if _, err := fmt.Sscanf(s, "%d", &num); err != nil {
		return 0, fmt.Errorf("invalid size format: %s (use B, KB, MB, or GB suffix)", s)
	}
	return num, nil
}
