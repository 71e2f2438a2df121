package config

import (
	"math"
	"net"
	"strconv"
	"time"

	"github.com/sambeau/unitz/pkg/unitz"
)

// Config represents the complete unitz configuration
type Config struct {
	BaseDir   string          `yaml:"-"` // Directory containing config file, for resolving relative paths
	Output    OutputConfig    `yaml:"output"`
	Transform TransformConfig `yaml:"transform"`
	Sort      SortConfig      `yaml:"sort"`
	Catalogs  StringOrSlice   `yaml:"catalogs"` // YAML class catalogs loaded after the built-in classes
	Watch     bool            `yaml:"watch"`    // Reload catalogs when they change
	Dynamic   bool            `yaml:"dynamic"`  // Create classes for unknown units
	Store     StoreConfig     `yaml:"store"`
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	REPL      REPLConfig      `yaml:"repl"`
}

// OutputConfig mirrors unitz.Output
type OutputConfig struct {
	Unit           unitz.OutputUnit   `yaml:"unit"`   // given, none, short, long
	Format         unitz.OutputFormat `yaml:"format"` // given, number, mixed, fraction, improper
	RepeatUnit     bool               `yaml:"repeat_unit"`
	UnitSpacer     string             `yaml:"unit_spacer"`
	RangeSpacer    string             `yaml:"range_spacer"`
	FractionSpacer string             `yaml:"fraction_spacer"`
	MixedSpacer    string             `yaml:"mixed_spacer"`
	Delimiter      string             `yaml:"delimiter"`
	Significant    int                `yaml:"significant"` // -1 keeps every digit
	Locale         string             `yaml:"locale"`      // BCP 47 tag, e.g. "de"
}

// TransformConfig mirrors unitz.Transform
type TransformConfig struct {
	Common         bool         `yaml:"common"`
	System         unitz.System `yaml:"system"` // metric, imperial, any, given, none
	Min            float64      `yaml:"min"`
	Max            float64      `yaml:"max"`
	ConvertWithMax bool         `yaml:"convert_with_max"`
	Groupless      bool         `yaml:"groupless"`
	OnlyUnits      []string     `yaml:"only_units"`
	NotUnits       []string     `yaml:"not_units"`
	OnlyClasses    []string     `yaml:"only_classes"`
	NotClasses     []string     `yaml:"not_classes"`
}

// SortConfig mirrors unitz.Sort
type SortConfig struct {
	Ascending bool           `yaml:"ascending"`
	Type      unitz.SortType `yaml:"type"` // max, min, average
	Classes   map[string]int `yaml:"classes"`
}

// StoreConfig holds dynamic unit persistence settings
type StoreConfig struct {
	Path     string `yaml:"path"`      // SQLite file; empty disables persistence
	MaxUnits int    `yaml:"max_units"` // Oldest units are dropped beyond this (default: 10000)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // pretty, json or text
	Output string `yaml:"output"` // stderr, stdout, or file path
	Quiet  bool   `yaml:"quiet"`  // suppress request logs
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Host            string            `yaml:"host"`
	Port            int               `yaml:"port"`
	MaxBody         string            `yaml:"max_body"` // Request body limit, e.g. "64KB"
	ShutdownTimeout time.Duration     `yaml:"shutdown_timeout"`
	Compression     CompressionConfig `yaml:"compression"`
	RateLimit       RateLimitConfig   `yaml:"rate_limit"`
	CORS            CORSConfig        `yaml:"cors"`
	Security        SecurityConfig    `yaml:"security"`
	Proxy           ProxyConfig       `yaml:"proxy"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings for browser clients
type CORSConfig struct {
	Origins     StringOrSlice `yaml:"origins"`     // Allowed origins, "*" for any; empty disables CORS
	Methods     []string      `yaml:"methods"`     // Preflight methods (default: GET, POST)
	Headers     []string      `yaml:"headers"`     // Preflight headers; empty echoes the request
	Credentials bool          `yaml:"credentials"` // Send Access-Control-Allow-Credentials
	MaxAge      int           `yaml:"max_age"`     // Preflight cache in seconds
}

// SecurityConfig holds response security headers. Empty values are not sent.
type SecurityConfig struct {
	ContentTypeOptions string `yaml:"content_type_options"`
	FrameOptions       string `yaml:"frame_options"`
	ReferrerPolicy     string `yaml:"referrer_policy"`
	HSTS               string `yaml:"hsts"` // Strict-Transport-Security value, e.g. "max-age=31536000"
}

// ProxyConfig controls trust of X-Forwarded-For and X-Real-IP
type ProxyConfig struct {
	Trusted    bool     `yaml:"trusted"`
	TrustedIPs []string `yaml:"trusted_ips"` // Only trust headers from these peers; empty trusts any
}

// CompressionConfig holds HTTP response compression settings
type CompressionConfig struct {
	Enabled bool   `yaml:"enabled"`  // Enable gzip compression (default: true)
	Level   string `yaml:"level"`    // Compression level: "fastest", "default", "best", "none" (default: "default")
	MinSize int    `yaml:"min_size"` // Minimum response size to compress in bytes (default: 1024)
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Requests int           `yaml:"requests"` // Requests allowed per window
	Window   time.Duration `yaml:"window"`
}

// REPLConfig holds interactive shell settings
type REPLConfig struct {
	History string `yaml:"history"` // History file; empty disables history
	Prompt  string `yaml:"prompt"`
}

// StringOrSlice supports YAML fields that can be either a string or a slice of strings
type StringOrSlice []string

// UnmarshalYAML implements yaml.Unmarshaler to handle both string and []string
func (s *StringOrSlice) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var slice []string
	if err := unmarshal(&slice); err != nil {
		return err
	}
	*s = slice
	return nil
}

// Contains checks if the slice contains the given string
func (s StringOrSlice) Contains(str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	out := unitz.DefaultOutput()
	tr := unitz.DefaultTransform()
	return &Config{
		Output: OutputConfig{
			Unit:           out.Unit,
			Format:         out.Format,
			RangeSpacer:    out.RangeSpacer,
			FractionSpacer: out.FractionSpacer,
			MixedSpacer:    out.MixedSpacer,
			Delimiter:      out.Delimiter,
			Significant:    out.Significant,
		},
		Transform: TransformConfig{
			Common:         tr.Common,
			System:         tr.System,
			Min:            -math.MaxFloat64,
			Max:            math.MaxFloat64,
			ConvertWithMax: tr.ConvertWithMax,
			Groupless:      tr.Groupless,
		},
		Sort:    SortConfig{Type: unitz.SortMax},
		Store:   StoreConfig{MaxUnits: 10000},
		Dynamic: true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "pretty",
			Output: "stderr",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			MaxBody:         "64KB",
			ShutdownTimeout: 10 * time.Second,
			Compression: CompressionConfig{
				Enabled: true,
				Level:   "default",
				MinSize: 1024,
			},
			RateLimit: RateLimitConfig{
				Enabled:  true,
				Requests: 120,
				Window:   time.Minute,
			},
			Security: SecurityConfig{
				ContentTypeOptions: "nosniff",
				FrameOptions:       "DENY",
				ReferrerPolicy:     "no-referrer",
			},
		},
		REPL: REPLConfig{
			Prompt: "unitz> ",
		},
	}
}

// UnitzOutput converts the output section to engine options.
func (c *Config) UnitzOutput() unitz.Output {
	o := c.Output
	return unitz.Output{
		Unit:           o.Unit,
		Format:         o.Format,
		RepeatUnit:     o.RepeatUnit,
		UnitSpacer:     o.UnitSpacer,
		RangeSpacer:    o.RangeSpacer,
		FractionSpacer: o.FractionSpacer,
		MixedSpacer:    o.MixedSpacer,
		Delimiter:      o.Delimiter,
		Significant:    o.Significant,
		Locale:         o.Locale,
	}
}

// UnitzTransform converts the transform section to engine options.
func (c *Config) UnitzTransform() unitz.Transform {
	t := c.Transform
	return unitz.Transform{
		Common:         t.Common,
		System:         t.System,
		Min:            t.Min,
		Max:            t.Max,
		ConvertWithMax: t.ConvertWithMax,
		Groupless:      t.Groupless,
		OnlyUnits:      t.OnlyUnits,
		NotUnits:       t.NotUnits,
		OnlyClasses:    t.OnlyClasses,
		NotClasses:     t.NotClasses,
	}
}

// UnitzDefaults bundles the output, transform and sort sections for
// Registry.SetDefaults.
func (c *Config) UnitzDefaults() unitz.Defaults {
	return unitz.Defaults{
		Output:    c.UnitzOutput(),
		Transform: c.UnitzTransform(),
		Sort: unitz.Sort{
			Ascending: c.Sort.Ascending,
			Type:      c.Sort.Type,
			Classes:   c.Sort.Classes,
		},
	}
}

// Addr is the listen address of the API server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
