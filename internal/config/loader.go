package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from multiple sources in priority order:
//  1. Built-in defaults.
//  2. An optional TOML file at configPath (skipped entirely if configPath
//     is empty, or if the file does not exist).
//  3. Environment variables prefixed RTVCTL_.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		if err := loadFile(v, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	v.SetEnvPrefix("RTVCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configPath = v.ConfigFileUsed()

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFile(v *viper.Viper, configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	return nil
}

// Validate checks a loaded Config for internally-inconsistent values that
// viper's unmarshal step cannot catch on its own.
func Validate(cfg *Config) error {
	switch cfg.Store.Backend {
	case "pebble", "leveldb":
	default:
		return fmt.Errorf("store.backend must be \"pebble\" or \"leveldb\", got %q", cfg.Store.Backend)
	}
	if cfg.Store.CacheSize <= 0 {
		return fmt.Errorf("store.cache_size must be positive, got %d", cfg.Store.CacheSize)
	}
	if cfg.Bench.Workers <= 0 {
		return fmt.Errorf("bench.workers must be positive, got %d", cfg.Bench.Workers)
	}
	if cfg.Bench.PushBatchSize <= 0 {
		return fmt.Errorf("bench.push_batch_size must be positive, got %d", cfg.Bench.PushBatchSize)
	}
	return nil
}
