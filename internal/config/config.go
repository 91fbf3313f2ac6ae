package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Simulation struct {
		NumPaths           int   `yaml:"num_paths"`
		ForecastDays       int   `yaml:"forecast_days"`
		HistoricalDays     int   `yaml:"historical_days"`
		TradingDaysPerYear int   `yaml:"trading_days_per_year"`
		Workers            int   `yaml:"workers"`
		Seed               int64 `yaml:"seed"`
	} `yaml:"simulation"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
	Schedule struct {
		Cron      string   `yaml:"cron"`
		Watchlist []string `yaml:"watchlist"`
	} `yaml:"schedule"`
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
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
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("NUM_PATHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.NumPaths = n
		}
	}
	if v := os.Getenv("FORECAST_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.ForecastDays = n
		}
	}

	// Defaults
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash-001"
	}
	if cfg.Simulation.NumPaths == 0 {
		cfg.Simulation.NumPaths = 100000
	}
	if cfg.Simulation.ForecastDays == 0 {
		cfg.Simulation.ForecastDays = 63
	}
	if cfg.Simulation.HistoricalDays == 0 {
		cfg.Simulation.HistoricalDays = 252
	}
	if cfg.Simulation.TradingDaysPerYear == 0 {
		cfg.Simulation.TradingDaysPerYear = 252
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/price_prophet.db"
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and in range.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if c.Simulation.NumPaths < 1 {
		return fmt.Errorf("simulation.num_paths must be >= 1")
	}
	if c.Simulation.ForecastDays < 1 {
		return fmt.Errorf("simulation.forecast_days must be >= 1")
	}
	if c.Simulation.HistoricalDays < 2 {
		return fmt.Errorf("simulation.historical_days must be >= 2")
	}
	if c.Simulation.TradingDaysPerYear < 1 {
		return fmt.Errorf("simulation.trading_days_per_year must be >= 1")
	}
	if c.Schedule.Cron != "" && len(c.Schedule.Watchlist) == 0 {
		return fmt.Errorf("schedule.watchlist is required when schedule.cron is set")
	}
	return nil
}
