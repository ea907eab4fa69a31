// Package config loads the client configuration from files, environment
// variables and defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
	"github.com/aaronfloresserna/assistantUACH/pkg/api"
	"github.com/aaronfloresserna/assistantUACH/pkg/schema"
)

const (
	configName = "amigo"
	configType = "yaml"
	envPrefix  = "AMIGO"
)

// Load reads the configuration, merging (lowest to highest precedence)
// defaults, amigo.yaml from $HOME/.config/amigo and the working directory, and
// AMIGO_* environment variables. A .env file in the working directory is
// loaded first so AMIGO_* vars can live there during development.
func Load() (schema.Configuration, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return schema.Configuration{}, errors.Wrap(err, "failed to read configuration")
		}
		// No config file found; defaults and env vars apply.
	}

	var cfg schema.Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return schema.Configuration{}, errors.Wrap(err, "failed to parse configuration")
	}

	if cfg.API.BaseURL == "" {
		return schema.Configuration{}, errUtils.ErrMissingBaseURL
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.timeout_seconds", api.DefaultTimeoutSeconds)
	v.SetDefault("chat.top_k", api.DefaultTopK)
	v.SetDefault("logs.level", "info")
}
