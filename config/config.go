// Package config loads enhancer configurations from files and the
// environment.
package config

import (
	"github.com/spf13/viper"

	enhancer "github.com/promptforge/enhancer"
)

var keys = []string{"provider", "api_key", "model", "base_url"}

// Load reads an enhancer configuration from an optional YAML file, with
// ENHANCER_* environment variables taking precedence over file values.
//
// Passing an empty path skips the file entirely, in which case the
// environment must carry the whole configuration. A configuration that comes
// out empty is reported as enhancer.ErrNoConfiguration.
func Load(path string) (enhancer.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ENHANCER")
	v.AutomaticEnv()

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return enhancer.Config{}, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return enhancer.Config{}, err
		}
	}

	var cfg enhancer.Config

	if err := v.Unmarshal(&cfg); err != nil {
		return enhancer.Config{}, err
	}

	if cfg.IsZero() {
		return enhancer.Config{}, enhancer.ErrNoConfiguration
	}

	return cfg, nil
}
