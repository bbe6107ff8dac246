package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultListen       = ":8080"
	defaultGammaBaseURL = "https://gamma-api.polymarket.com"
	defaultDataBaseURL  = "https://data-api.polymarket.com"
)

// Config holds the process configuration. Resolution order: defaults,
// then the optional YAML file, then environment variables.
type Config struct {
	Listen             string    `yaml:"listen"`
	GammaBaseURL       string    `yaml:"gamma_base_url"`
	DataBaseURL        string    `yaml:"data_base_url"`
	DefaultUserAddress string    `yaml:"default_user_address"`
	Log                LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	OutputFile string `yaml:"output_file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Load builds the config. path may be empty; a missing file at a non-empty
// path is an error, since the operator asked for it explicitly.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Listen:       defaultListen,
		GammaBaseURL: defaultGammaBaseURL,
		DataBaseURL:  defaultDataBaseURL,
		Log:          LogConfig{Level: "info"},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	cfg.GammaBaseURL = strings.TrimRight(cfg.GammaBaseURL, "/")
	cfg.DataBaseURL = strings.TrimRight(cfg.DataBaseURL, "/")
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setIfEnv(&cfg.Listen, "POLYDASH_LISTEN")
	setIfEnv(&cfg.GammaBaseURL, "POLYMARKET_GAMMA_API_BASE_URL")
	setIfEnv(&cfg.DataBaseURL, "POLYMARKET_DATA_API_BASE_URL")
	setIfEnv(&cfg.DefaultUserAddress, "POLYMARKET_USER_ADDRESS")
	setIfEnv(&cfg.Log.Level, "POLYDASH_LOG_LEVEL")
	setIfEnv(&cfg.Log.OutputFile, "POLYDASH_LOG_FILE")
}

func setIfEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
