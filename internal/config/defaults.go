package config

import "github.com/spf13/viper"

// setDefaults sets every value a freshly-created Config needs if neither
// the config file nor the environment supplies it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", "pebble")
	v.SetDefault("store.path", "rtv-data")
	v.SetDefault("store.cache_size", 256)

	v.SetDefault("catalog.dsn", "")

	v.SetDefault("bench.push_batch_size", 2000)
	v.SetDefault("bench.workers", 8)

	v.SetDefault("debug.validate_after_each_op", false)
}
