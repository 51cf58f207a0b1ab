package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration. Values come from an optional
// YAML file (AERA_CONFIG) with environment variables taking precedence.
type Config struct {
	Port          string
	DBPath        string
	GeminiAPIKey  string
	Model         string
	SearchTimeout time.Duration
	LocalesDir    string
	Language      string
}

// fileConfig is the YAML shape; durations are strings like "30s".
type fileConfig struct {
	Port          string `yaml:"port"`
	DBPath        string `yaml:"db_path"`
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	Model         string `yaml:"model"`
	SearchTimeout string `yaml:"search_timeout"`
	LocalesDir    string `yaml:"locales_dir"`
	Language      string `yaml:"language"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:          "8090",
		DBPath:        "aera.db",
		Model:         "gemini-2.5-flash",
		SearchTimeout: 30 * time.Second,
		LocalesDir:    "locales",
		Language:      "en",
	}
}

// Load builds the configuration from defaults, the optional config file,
// and the environment, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("AERA_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if err := file.apply(&cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func (f fileConfig) apply(cfg *Config) error {
	if f.Port != "" {
		cfg.Port = f.Port
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = f.GeminiAPIKey
	}
	if f.Model != "" {
		cfg.Model = f.Model
	}
	if f.SearchTimeout != "" {
		d, err := time.ParseDuration(f.SearchTimeout)
		if err != nil {
			return fmt.Errorf("parse search_timeout: %w", err)
		}
		cfg.SearchTimeout = d
	}
	if f.LocalesDir != "" {
		cfg.LocalesDir = f.LocalesDir
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("AERA_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("AERA_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AERA_SEARCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SearchTimeout = d
		}
	}
	if v := os.Getenv("AERA_LOCALES_DIR"); v != "" {
		cfg.LocalesDir = v
	}
	if v := os.Getenv("AERA_LANG"); v != "" {
		cfg.Language = v
	}
}
