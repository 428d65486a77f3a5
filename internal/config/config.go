// Package config loads rtvctl's configuration from defaults, an optional
// TOML file, and environment variables, following the same layering as
// this repository's main configuration loader.
package config

// Config is rtvctl's complete configuration.
type Config struct {
	Store   StoreConfig   `toml:"store" mapstructure:"store"`
	Catalog CatalogConfig `toml:"catalog" mapstructure:"catalog"`
	Bench   BenchConfig   `toml:"bench" mapstructure:"bench"`
	Debug   DebugConfig   `toml:"debug" mapstructure:"debug"`

	configPath string
}

// StoreConfig selects and configures the blob store backend.
type StoreConfig struct {
	// Backend is either "pebble" or "leveldb".
	Backend string `toml:"backend" mapstructure:"backend"`
	// Path is the on-disk directory the backend opens.
	Path string `toml:"path" mapstructure:"path"`
	// CacheSize is the maximum number of decoded vectors the node cache
	// keeps resident.
	CacheSize int `toml:"cache_size" mapstructure:"cache_size"`
}

// CatalogConfig configures the relational catalog.
type CatalogConfig struct {
	// DSN is a github.com/lib/pq-compatible PostgreSQL connection string.
	// An empty DSN disables the catalog commands.
	DSN string `toml:"dsn" mapstructure:"dsn"`
}

// BenchConfig configures `rtvctl bench`.
type BenchConfig struct {
	// PushBatchSize is the number of pushes each simulated writer performs
	// per clone before popping back down, matching the concurrency stress
	// scenario's shape.
	PushBatchSize int `toml:"push_batch_size" mapstructure:"push_batch_size"`
	// Workers is the number of concurrent clones to exercise.
	Workers int `toml:"workers" mapstructure:"workers"`
}

// DebugConfig toggles the structural-invariant audit from the CLI side,
// independent of the rtvdebug build tag.
type DebugConfig struct {
	// ValidateAfterEachOp runs the full audit after every mutating rtvctl
	// subcommand, regardless of the rtvdebug build tag.
	ValidateAfterEachOp bool `toml:"validate_after_each_op" mapstructure:"validate_after_each_op"`
}

// ConfigPath returns the file path the config was loaded from, or "" if it
// was loaded purely from defaults and the environment.
func (c *Config) ConfigPath() string {
	return c.configPath
}
