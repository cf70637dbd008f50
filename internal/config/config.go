// Package config loads sigil server configuration from TOML files.
//
// Every field has a default matching the reference deployment, so an
// empty or missing file yields a working configuration:
//
//	[server]
//	addr = ":8080"
//	default_width = 120
//	max_width = 600
//
//	[cache]
//	backend = "none"   # none | file | redis | mongo
//	ttl = "24h"
//
//	[theme]
//	rows = 5
//	foreground = ["#2d4fff", "#feb42c"]
//	background = "#e0e0e0"
package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sigilgen/sigil/pkg/errors"
	"github.com/sigilgen/sigil/pkg/sigil"
)

// Config holds the full server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Theme  ThemeConfig  `toml:"theme"`
}

// ServerConfig configures the HTTP listener and width limits.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	DefaultWidth int    `toml:"default_width"`
	MaxWidth     int    `toml:"max_width"`
}

// CacheConfig selects and configures the rendered-image cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"` // none | file | redis | mongo
	Dir       string   `toml:"dir"`     // file backend
	TTL       duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
	MongoURI  string   `toml:"mongo_uri"`
	MongoDB   string   `toml:"mongo_db"`
}

// ThemeConfig configures the identicon theme. Colours are "#rrggbb" hex
// strings.
type ThemeConfig struct {
	Rows       int      `toml:"rows"`
	Foreground []string `toml:"foreground"`
	Background string   `toml:"background"`
}

// duration wraps time.Duration for TOML decoding of strings like "24h".
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used when no file is given, matching
// the reference server: listen on :8080, 120px default width, 600px max,
// no cache, default theme.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			DefaultWidth: 120,
			MaxWidth:     600,
		},
		Cache: CacheConfig{
			Backend: "none",
			TTL:     duration{24 * time.Hour},
			MongoDB: "sigil",
		},
	}
}

// Load reads a TOML configuration file, applying defaults for any absent
// field. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "", "none", "file", "redis", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Server.DefaultWidth <= 0 || c.Server.MaxWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "widths must be positive")
	}
	if c.Server.DefaultWidth > c.Server.MaxWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "default_width %d exceeds max_width %d", c.Server.DefaultWidth, c.Server.MaxWidth)
	}

	// An explicitly configured theme must be valid up front, not at
	// request time.
	if _, err := c.BuildTheme(); err != nil {
		return err
	}
	return nil
}

// BuildTheme converts the theme section into a sigil.Theme. Absent fields
// fall back to the default theme's values; the result is validated.
func (c *Config) BuildTheme() (*sigil.Theme, error) {
	theme := sigil.DefaultTheme()

	if c.Theme.Rows != 0 {
		theme.Rows = c.Theme.Rows
	}
	if len(c.Theme.Foreground) > 0 {
		palette := make([]color.RGBA, 0, len(c.Theme.Foreground))
		for _, s := range c.Theme.Foreground {
			col, err := parseHexColor(s)
			if err != nil {
				return nil, err
			}
			palette = append(palette, col)
		}
		theme.Foreground = palette
	}
	if c.Theme.Background != "" {
		col, err := parseHexColor(c.Theme.Background)
		if err != nil {
			return nil, err
		}
		theme.Background = col
	}

	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

// parseHexColor parses "#rrggbb" into an opaque RGBA colour.
func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 || len(s) != 7 {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidConfig, "invalid colour %q, want #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
