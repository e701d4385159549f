package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/yuxishi/aws-quota-checker/internal/model"
)

type Config struct {
	DefaultRegion  string           `yaml:"default_region"`
	Regions        []string         `yaml:"regions"`
	Profile        string           `yaml:"profile"`
	MaxConcurrency int              `yaml:"max_concurrency"`
	LogLevel       string           `yaml:"log_level"`
	Server         ServerConfig     `yaml:"server"`
	Cache          CacheConfig      `yaml:"cache"`
	Thresholds     model.Thresholds `yaml:"thresholds"`

	// Overrides replace the resolved maximum of a check, by check key.
	Overrides map[string]int64 `yaml:"overrides"`
	// Defaults replace the published AWS default of a check, by check key.
	Defaults map[string]int64 `yaml:"defaults"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

// Default configuration
func Default() *Config {
	return &Config{
		DefaultRegion: "us-east-1",
		Server: ServerConfig{
			Port: "8080",
		},
		Cache: CacheConfig{
			TTLMinutes: 5,
		},
		MaxConcurrency: 10,
		LogLevel:       "info",
		Thresholds: model.Thresholds{
			Warning: 0.8,
			Error:   0.9,
		},
		Regions: []string{},
	}
}

// Load configuration from file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", filename)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", filename)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", filename)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DefaultRegion == "" {
		return errors.New("default_region must be set")
	}
	if c.Thresholds.Warning < 0 || c.Thresholds.Error < 0 {
		return errors.New("thresholds must not be negative")
	}
	if c.Thresholds.Warning > 0 && c.Thresholds.Error > 0 && c.Thresholds.Warning > c.Thresholds.Error {
		return errors.New("warning threshold is above error threshold")
	}
	return nil
}

// GetCacheTTL returns the cache TTL as a duration
func (c *Config) GetCacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// GetPort returns the server port, checking environment variable first
func (c *Config) GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return c.Server.Port
}

// GetRegions returns the configured regions, or the default region alone.
func (c *Config) GetRegions() []string {
	if len(c.Regions) > 0 {
		return c.Regions
	}
	return []string{c.DefaultRegion}
}
