package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

const (
	CatalogSQLite = "sqlite"
	CatalogStatic = "static"
)

type Config struct {
	Port          string        `envconfig:"PORT" default:"8081"`
	DBDSN         string        `envconfig:"DB_DSN" default:":memory:"`
	CatalogSource string        `envconfig:"CATALOG_SOURCE" default:"sqlite"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat     string        `envconfig:"LOG_FORMAT" default:"json"`
	LogFile       string        `envconfig:"LOG_FILE"`
	LinkBaseURL   string        `envconfig:"LINK_BASE_URL" default:"https://wa.me"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SessionMax    int           `envconfig:"SESSION_MAX" default:"10000"`
	TemplatesDir  string        `envconfig:"TEMPLATES_DIR" default:"./web/templates"`
	StaticDir     string        `envconfig:"STATIC_DIR" default:"./web/static"`
	SubmitPerMin  int           `envconfig:"SUBMIT_RATE_PER_MIN" default:"10"`
}

// Load reads the environment (after any .env file the caller loaded) and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Port:          "8081",
		DBDSN:         ":memory:",
		CatalogSource: CatalogSQLite,
		LogLevel:      "info",
		LogFormat:     "json",
		LinkBaseURL:   "https://wa.me",
		SessionTTL:    2 * time.Hour,
		SessionMax:    10000,
		TemplatesDir:  "./web/templates",
		StaticDir:     "./web/static",
		SubmitPerMin:  10,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs error
	if strings.TrimSpace(c.Port) == "" {
		errs = multierr.Append(errs, fmt.Errorf("PORT is required"))
	}
	switch c.CatalogSource {
	case CatalogSQLite:
		if strings.TrimSpace(c.DBDSN) == "" {
			errs = multierr.Append(errs, fmt.Errorf("DB_DSN is required when CATALOG_SOURCE=%s", CatalogSQLite))
		}
	case CatalogStatic:
	default:
		errs = multierr.Append(errs, fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSQLite, CatalogStatic, c.CatalogSource))
	}
	if u, err := url.Parse(c.LinkBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("LINK_BASE_URL must be an absolute URL, got %q", c.LinkBaseURL))
	}
	if c.SessionTTL <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("SESSION_TTL must be positive"))
	}
	if c.SessionMax <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("SESSION_MAX must be positive"))
	}
	if c.SubmitPerMin <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("SUBMIT_RATE_PER_MIN must be positive"))
	}
	return errs
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
