// Package config loads the gateway configuration from an optional YAML file
// with LOREGATE_* environment overrides. All values have working defaults;
// a config file is only needed to point the gateway at a fork of the
// upstream data repositories or to tune the relay limits.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/loregate/loregate/internal/validate"
)

// Default upstream repositories. The per-record/index JSON tree and the
// pre-gzipped bulk archives live in two distinct repositories; this split is
// a fixed external contract, not a per-request choice.
const (
	DefaultDataBaseURL = "https://raw.githubusercontent.com/loregate/loregate-data"
	DefaultDistBaseURL = "https://raw.githubusercontent.com/loregate/loregate-dist"

	defaultListen          = ":8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultMaxResponseSize = 64 << 20 // 64 MB, bulk archives included
)

// Config holds the gateway runtime settings.
type Config struct {
	// Listen is the inbound HTTP listen address.
	Listen string `mapstructure:"listen"`
	// DataBaseURL fronts the per-record and index JSON tree.
	DataBaseURL string `mapstructure:"data_base_url"`
	// DistBaseURL fronts the pre-gzipped bulk archives.
	DistBaseURL string `mapstructure:"dist_base_url"`
	// RequestTimeout bounds a single upstream fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// MaxResponseSize caps the bytes read from an upstream body.
	MaxResponseSize int64 `mapstructure:"max_response_size"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", defaultListen)
	v.SetDefault("data_base_url", DefaultDataBaseURL)
	v.SetDefault("dist_base_url", DefaultDistBaseURL)
	v.SetDefault("request_timeout", defaultRequestTimeout)
	v.SetDefault("max_response_size", defaultMaxResponseSize)

	v.SetEnvPrefix("LOREGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The URL builder joins segments with "/"; keep bases slash-free.
	cfg.DataBaseURL = strings.TrimRight(cfg.DataBaseURL, "/")
	cfg.DistBaseURL = strings.TrimRight(cfg.DistBaseURL, "/")

	if err := validate.HTTPURL(cfg.DataBaseURL); err != nil {
		return nil, fmt.Errorf("data_base_url: %w", err)
	}
	if err := validate.HTTPURL(cfg.DistBaseURL); err != nil {
		return nil, fmt.Errorf("dist_base_url: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request_timeout must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.MaxResponseSize <= 0 {
		return nil, fmt.Errorf("max_response_size must be positive, got %d", cfg.MaxResponseSize)
	}

	return &cfg, nil
}
