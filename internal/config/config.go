package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"moneygoup/internal/prices"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "config.yaml"
	DefaultDotEnv   = ".env.local"
	defaultBaseURL  = "http://localhost:3001"
	defaultRange    = "max"
	defaultFallback = string(prices.FallbackOnMissingOrZero)
	defaultTickers  = "https://dumbstockapi.com/stock?exchanges=NYSE,NASDAQ&format=json"
	defaultTickOut  = "public/company_tickers.json"
)

// Config is built once at startup and handed to every component that
// needs it. Nothing below cmd/ reads the environment directly.
type Config struct {
	Api struct {
		BaseURL         string        `yaml:"base_url"`
		HistoricalRange string        `yaml:"historical_range"`
		Timeout         time.Duration `yaml:"timeout"`
	} `yaml:"api"`
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Normalizer struct {
		AdjustedFallback string `yaml:"adjusted_fallback"`
	} `yaml:"normalizer"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Tickers struct {
		URL        string `yaml:"url"`
		OutputPath string `yaml:"output_path"`
	} `yaml:"tickers"`
}

// Path returns the config file location, CONFIG_PATH if set.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		err := godotenv.Load(p)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := overrideFromEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

func overrideFromEnv(cfg *Config) error {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.Api.BaseURL = v
	}
	if v := os.Getenv("HISTORICAL_RANGE"); v != "" {
		cfg.Api.HistoricalRange = v
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.Api.Timeout = d
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		cfg.Database.Port = port
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}

	if v := os.Getenv("ADJUSTED_FALLBACK"); v != "" {
		cfg.Normalizer.AdjustedFallback = v
	}
	if v := os.Getenv("SYNC_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("TICKERS_URL"); v != "" {
		cfg.Tickers.URL = v
	}
	if v := os.Getenv("TICKERS_OUTPUT"); v != "" {
		cfg.Tickers.OutputPath = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Api.BaseURL == "" {
		cfg.Api.BaseURL = defaultBaseURL
	}
	if cfg.Api.HistoricalRange == "" {
		cfg.Api.HistoricalRange = defaultRange
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = "postgres"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "postgres"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Normalizer.AdjustedFallback == "" {
		cfg.Normalizer.AdjustedFallback = defaultFallback
	}
	if cfg.Tickers.URL == "" {
		cfg.Tickers.URL = defaultTickers
	}
	if cfg.Tickers.OutputPath == "" {
		cfg.Tickers.OutputPath = defaultTickOut
	}
}

// Validate checks the fields that cannot be defaulted into correctness.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Api.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute url", c.Api.BaseURL)
	}
	if c.Api.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if _, err := prices.ParseFallbackPolicy(c.Normalizer.AdjustedFallback); err != nil {
		return fmt.Errorf("normalizer.adjusted_fallback: %w", err)
	}
	if c.Schedule.Cron != "" {
		if _, err := cron.ParseStandard(c.Schedule.Cron); err != nil {
			return fmt.Errorf("schedule.cron %q: %w", c.Schedule.Cron, err)
		}
	}
	return nil
}

// ConnString builds the lib/pq connection url.
func (c *Config) ConnString() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Database.SSLMode),
	}
	return u.String()
}
