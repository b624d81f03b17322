package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		Interval   string `yaml:"interval"`
		OutputSize int    `yaml:"output_size"`
	} `yaml:"provider"`
	RateLimit struct {
		MinIntervalMs int `yaml:"min_interval_ms"`
		DailyCap      int `yaml:"daily_cap"`
	} `yaml:"rate_limit"`
	Refresh struct {
		QuoteCron  string `yaml:"quote_cron"`
		MarketCron string `yaml:"market_cron"`
	} `yaml:"refresh"`
	Search struct {
		CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
	} `yaml:"search"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	DefaultSymbol string `yaml:"default_symbol"`
	FallbackSeed  int64  `yaml:"fallback_seed"`
	Proxy         string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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

	// Environment variable overrides
	if v := os.Getenv("TWELVE_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("TWELVE_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		cfg.DefaultSymbol = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DAILY_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.DailyCap = n
		}
	}

	// Defaults
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://api.twelvedata.com"
	}
	if cfg.Provider.Interval == "" {
		cfg.Provider.Interval = "1day"
	}
	if cfg.Provider.OutputSize == 0 {
		cfg.Provider.OutputSize = 30
	}
	if cfg.RateLimit.MinIntervalMs == 0 {
		cfg.RateLimit.MinIntervalMs = 2000
	}
	if cfg.RateLimit.DailyCap == 0 {
		cfg.RateLimit.DailyCap = 800
	}
	if cfg.Refresh.QuoteCron == "" {
		cfg.Refresh.QuoteCron = "@every 30s"
	}
	if cfg.Refresh.MarketCron == "" {
		cfg.Refresh.MarketCron = "@every 1m"
	}
	if cfg.Search.CacheTTLSeconds == 0 {
		cfg.Search.CacheTTLSeconds = 300
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockpulse.db"
	}
	if cfg.DefaultSymbol == "" {
		cfg.DefaultSymbol = "AAPL"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.RateLimit.MinIntervalMs < 0 {
		return fmt.Errorf("rate_limit.min_interval_ms must not be negative")
	}
	if c.RateLimit.DailyCap <= 0 {
		return fmt.Errorf("rate_limit.daily_cap must be positive")
	}
	if c.Provider.OutputSize <= 0 {
		return fmt.Errorf("provider.output_size must be positive")
	}
	if c.Search.CacheTTLSeconds <= 0 {
		return fmt.Errorf("search.cache_ttl_seconds must be positive")
	}
	return nil
}
