package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Dashboard struct {
		Symbol      string `yaml:"symbol"`
		Period      string `yaml:"period"`
		ShortWindow int    `yaml:"short_window"`
		LongWindow  int    `yaml:"long_window"`
		DebounceMS  int    `yaml:"debounce_ms"`
	} `yaml:"dashboard"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	WordCloud struct {
		Width    int `yaml:"width"`
		Height   int `yaml:"height"`
		MaxWords int `yaml:"max_words"`
	} `yaml:"wordcloud"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
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
	if v := os.Getenv("DASHBOARD_SYMBOL"); v != "" {
		cfg.Dashboard.Symbol = v
	}
	if v := os.Getenv("DASHBOARD_PERIOD"); v != "" {
		cfg.Dashboard.Period = v
	}
	if v := os.Getenv("DASHBOARD_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dashboard.DebounceMS = n
		}
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("MA_SHORT_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dashboard.ShortWindow = n
		}
	}
	if v := os.Getenv("MA_LONG_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Dashboard.LongWindow = n
		}
	}

	// Defaults. MA windows and the lookback period are presentation
	// defaults, not contract values, so they live here and nowhere else.
	if cfg.Dashboard.Period == "" {
		cfg.Dashboard.Period = "3mo"
	}
	if cfg.Dashboard.ShortWindow == 0 {
		cfg.Dashboard.ShortWindow = 20
	}
	if cfg.Dashboard.LongWindow == 0 {
		cfg.Dashboard.LongWindow = 50
	}
	if cfg.Dashboard.DebounceMS == 0 {
		cfg.Dashboard.DebounceMS = 400
	}
	if cfg.WordCloud.Width == 0 {
		cfg.WordCloud.Width = 800
	}
	if cfg.WordCloud.Height == 0 {
		cfg.WordCloud.Height = 400
	}
	if cfg.WordCloud.MaxWords == 0 {
		cfg.WordCloud.MaxWords = 60
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Dashboard.ShortWindow <= 0 {
		return fmt.Errorf("dashboard.short_window must be positive")
	}
	if c.Dashboard.LongWindow <= 0 {
		return fmt.Errorf("dashboard.long_window must be positive")
	}
	if c.Dashboard.DebounceMS <= 0 {
		return fmt.Errorf("dashboard.debounce_ms must be positive")
	}
	if c.WordCloud.Width <= 0 || c.WordCloud.Height <= 0 {
		return fmt.Errorf("wordcloud canvas dimensions must be positive")
	}
	return nil
}
