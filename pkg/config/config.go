package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Market struct {
		BaseURL         string        `yaml:"base_url"`
		RequestTimeout  time.Duration `yaml:"request_timeout"`
		CacheTTL        time.Duration `yaml:"cache_ttl"`
		PaceDelay       time.Duration `yaml:"pace_delay"`
		DailyWindowDays int           `yaml:"daily_window_days"`
		HourlyWindowDays int          `yaml:"hourly_window_days"`
	} `yaml:"market"`
	Briefing struct {
		APIURL    string        `yaml:"api_url"`
		Model     string        `yaml:"model"`
		MaxTokens int           `yaml:"max_tokens"`
		Timeout   time.Duration `yaml:"timeout"`
		APIKey    string        `yaml:"api_key"`
		MaxAssets int           `yaml:"max_assets"`
	} `yaml:"briefing"`
	Calendar struct {
		URL       string        `yaml:"url"`
		Countries string        `yaml:"countries"`
		Timeout   time.Duration `yaml:"timeout"`
		CacheTTL  time.Duration `yaml:"cache_ttl"`
	} `yaml:"calendar"`
	News struct {
		BaseURL  string        `yaml:"base_url"`
		Timeout  time.Duration `yaml:"timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"news"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file, then applies defaults and
// validates.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Briefing.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		// briefing generation can hold the connection for minutes
		c.Server.WriteTimeout = 3 * time.Minute
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Market.BaseURL == "" {
		c.Market.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Market.RequestTimeout == 0 {
		c.Market.RequestTimeout = 10 * time.Second
	}
	if c.Market.CacheTTL == 0 {
		c.Market.CacheTTL = 10 * time.Minute
	}
	if c.Market.PaceDelay == 0 {
		c.Market.PaceDelay = 250 * time.Millisecond
	}
	if c.Market.DailyWindowDays == 0 {
		c.Market.DailyWindowDays = 92
	}
	if c.Market.HourlyWindowDays == 0 {
		c.Market.HourlyWindowDays = 7
	}
	if c.Briefing.APIURL == "" {
		c.Briefing.APIURL = "https://api.anthropic.com/v1/messages"
	}
	if c.Briefing.Model == "" {
		c.Briefing.Model = "claude-sonnet-4-5"
	}
	if c.Briefing.MaxTokens == 0 {
		c.Briefing.MaxTokens = 5000
	}
	if c.Briefing.Timeout == 0 {
		c.Briefing.Timeout = 120 * time.Second
	}
	if c.Briefing.MaxAssets == 0 {
		c.Briefing.MaxAssets = 20
	}
	if c.Calendar.URL == "" {
		c.Calendar.URL = "https://economic-calendar.tradingview.com/events"
	}
	if c.Calendar.Countries == "" {
		c.Calendar.Countries = "US,EU,GB,JP,CA,CH,AU,NZ"
	}
	if c.Calendar.Timeout == 0 {
		c.Calendar.Timeout = 8 * time.Second
	}
	if c.Calendar.CacheTTL == 0 {
		c.Calendar.CacheTTL = 15 * time.Minute
	}
	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://feeds.finance.yahoo.com/rss/2.0/headline"
	}
	if c.News.Timeout == 0 {
		c.News.Timeout = 6 * time.Second
	}
	if c.News.CacheTTL == 0 {
		c.News.CacheTTL = 10 * time.Minute
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
}

// Validate checks the knobs that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Market.CacheTTL < 0 || c.Market.PaceDelay < 0 {
		return fmt.Errorf("market durations must be non-negative")
	}
	if c.Briefing.MaxAssets <= 0 {
		return fmt.Errorf("briefing.max_assets must be positive")
	}
	return nil
}
