package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.NumPaths != 100000 {
		t.Errorf("num_paths = %d, want 100000", cfg.Simulation.NumPaths)
	}
	if cfg.Simulation.ForecastDays != 63 {
		t.Errorf("forecast_days = %d, want 63", cfg.Simulation.ForecastDays)
	}
	if cfg.Simulation.HistoricalDays != 252 {
		t.Errorf("historical_days = %d, want 252", cfg.Simulation.HistoricalDays)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash-001" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("listen = %q, want :8080", cfg.Server.Listen)
	}
}

func TestLoad_YAMLValues(t *testing.T) {
	path := writeConfig(t, `
gemini:
  api_key: file-key
simulation:
  num_paths: 5000
  forecast_days: 21
schedule:
  cron: "0 0 18 * * 1-5"
  watchlist:
    - RELIANCE.NS
    - INFY.NS
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "file-key" {
		t.Errorf("api_key = %q", cfg.Gemini.APIKey)
	}
	if cfg.Simulation.NumPaths != 5000 || cfg.Simulation.ForecastDays != 21 {
		t.Errorf("simulation = %+v", cfg.Simulation)
	}
	if len(cfg.Schedule.Watchlist) != 2 {
		t.Errorf("watchlist = %v", cfg.Schedule.Watchlist)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
gemini:
  api_key: file-key
simulation:
  num_paths: 5000
`)
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("NUM_PATHS", "777")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("api_key = %q, want env override", cfg.Gemini.APIKey)
	}
	if cfg.Simulation.NumPaths != 777 {
		t.Errorf("num_paths = %d, want 777", cfg.Simulation.NumPaths)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		cfg.Gemini.APIKey = "key"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Gemini.APIKey = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Errorf("missing api_key: %v", err)
	}

	cfg = base()
	cfg.Simulation.NumPaths = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero num_paths accepted")
	}

	cfg = base()
	cfg.Schedule.Cron = "0 0 18 * * *"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "watchlist") {
		t.Errorf("cron without watchlist: %v", err)
	}
}
