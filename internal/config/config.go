package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const FileName = "roomseed.config.json"

type Config struct {
	Schema   string         `json:"schema" mapstructure:"schema"`
	Seed     int64          `json:"seed" mapstructure:"seed"`
	Preserve []string       `json:"preserve" mapstructure:"preserve"`
	Counts   map[string]int `json:"counts,omitempty" mapstructure:"counts"`
	Database Database       `json:"database" mapstructure:"database"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
}

// DefaultConfig returns the configuration used when no file overrides it.
// The preserve list names the catalog tables every truncation path must
// leave untouched.
func DefaultConfig() *Config {
	return &Config{
		Schema: "public",
		Seed:   424242,
		Preserve: []string{
			"room_type_catalog",
			"amenity_catalog",
			"currency_catalog",
			"country_catalog",
		},
		Database: Database{URLEnv: "DATABASE_URL"},
	}
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Schema == "" {
		cfg.Schema = "public"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultConfig().Seed
	}

	return cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	if c.Schema == "" {
		return fmt.Errorf("schema cannot be empty")
	}
	if c.Database.URLEnv == "" {
		return fmt.Errorf("database url_env cannot be empty")
	}
	return nil
}

// CountFor returns the configured row count for kind, or fallback.
func (c *Config) CountFor(kind string, fallback int) int {
	if n, ok := c.Counts[kind]; ok && n > 0 {
		return n
	}
	return fallback
}

// WriteDefault creates roomseed.config.json in the working directory. It
// refuses to overwrite an existing file.
func WriteDefault() error {
	if _, err := os.Stat(FileName); err == nil {
		return fmt.Errorf("%s already exists", FileName)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(FileName, append(data, '\n'), 0644)
}
