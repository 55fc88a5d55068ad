package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to talk to the broker. Values come
// from a YAML file, overridden by environment variables (a .env file is
// picked up if present). Precedence: environment > config file > defaults.
type Config struct {
	AppID       string `yaml:"app_id"`
	SecretKey   string `yaml:"secret_key"`
	RedirectURI string `yaml:"redirect_uri"`
	AccessToken string `yaml:"access_token"`
	Sandbox     bool   `yaml:"sandbox"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	OutputFile string `yaml:"output_file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Load reads the optional YAML file at path ("" skips it), applies
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FYERS_APP_ID"); v != "" {
		cfg.AppID = v
	}
	if v := os.Getenv("FYERS_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("FYERS_REDIRECT_URI"); v != "" {
		cfg.RedirectURI = v
	}
	if v := os.Getenv("FYERS_ACCESS_TOKEN"); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv("FYERS_SANDBOX"); v != "" {
		cfg.Sandbox = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("FYERS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate reports every missing required key at once.
func (c *Config) Validate() error {
	var missing []string
	if c.AppID == "" {
		missing = append(missing, "app_id (FYERS_APP_ID)")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secret_key (FYERS_SECRET_KEY)")
	}
	if c.RedirectURI == "" {
		missing = append(missing, "redirect_uri (FYERS_REDIRECT_URI)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}
