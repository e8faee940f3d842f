// Package config loads passgen's configuration from an optional yaml file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"passgen/pkg/domain"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment selects the logger setup (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Generator holds the options a new session starts with.
	Generator struct {
		// Length is the default password length, clamped to [1, 256].
		Length int `env:"GENERATOR_LENGTH" env-default:"16" yaml:"length"`
		// Categories lists the character categories enabled by default:
		// any of lower, upper, numbers and symbols.
		Categories []string `env:"GENERATOR_CATEGORIES" env-default:"lower,upper,numbers,symbols" env-separator:"," yaml:"categories"` //nolint: lll
		// ExcludeAmbiguous strips O, 0, o, I, l and 1 by default.
		ExcludeAmbiguous bool `env:"GENERATOR_EXCLUDE_AMBIGUOUS" env-default:"false" yaml:"excludeAmbiguous"`
		// Readable enables the symbol-run readability filter by default.
		Readable bool `env:"GENERATOR_READABLE" env-default:"false" yaml:"readable"`
	} `yaml:"generator"`

	// Download controls where the Download action saves password.txt.
	Download struct {
		// Dir is the target directory; empty means the working directory.
		Dir string `env:"DOWNLOAD_DIR" env-default:"." yaml:"dir"`
	} `yaml:"download"`

	// Log controls where log output goes.
	Log struct {
		// File receives log output of generate and tui, which own the terminal.
		// Empty discards their logs; serve always logs to stderr.
		File string `env:"LOG_FILE" yaml:"file"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:"127.0.0.1:8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the exact origins (scheme://host[:port]) allowed to read
		// the API cross-origin. Empty means none: other sites' scripts cannot read passwords.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Category names accepted in Generator.Categories.
const (
	CategoryLower   = "lower"
	CategoryUpper   = "upper"
	CategoryNumbers = "numbers"
	CategorySymbols = "symbols"
)

// Load reads configPath when it exists and applies environment overrides.
// A missing file is not an error: defaults and the environment are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	for _, c := range cfg.Generator.Categories {
		switch c {
		case CategoryLower, CategoryUpper, CategoryNumbers, CategorySymbols:
		default:
			return nil, fmt.Errorf("unknown character category %q", c)
		}
	}

	return &cfg, nil
}

// DefaultOptions returns the options a new session starts with.
func (c *Config) DefaultOptions() domain.CharsetOptions {
	opts := domain.CharsetOptions{
		ExcludeAmbiguous:  c.Generator.ExcludeAmbiguous,
		ReadabilityFilter: c.Generator.Readable,
		Length:            c.Generator.Length,
	}
	for _, category := range c.Generator.Categories {
		switch category {
		case CategoryLower:
			opts.IncludeLower = true
		case CategoryUpper:
			opts.IncludeUpper = true
		case CategoryNumbers:
			opts.IncludeNumbers = true
		case CategorySymbols:
			opts.IncludeSymbols = true
		}
	}

	return opts.Normalize()
}
