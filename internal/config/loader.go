package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "GO_REMIT"

// Load reads config.yaml from the given search paths and layers
// GO_REMIT_* environment variables on top. The result is passed around by
// value; nothing re-reads the environment after bootstrap.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = []string{"/config", "./config", "."}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		// env-only configuration is fine in containers
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "go-remit"
	}
	if cfg.App.HTTPPort == 0 {
		cfg.App.HTTPPort = 9560
	}
	if cfg.App.GracefulTimeout == 0 {
		cfg.App.GracefulTimeout = 10 * time.Second
	}
	if cfg.ExponentialBackoff.MaxRetries == 0 {
		cfg.ExponentialBackoff.MaxRetries = 3
	}
	if cfg.ExponentialBackoff.BaseDelay == 0 {
		cfg.ExponentialBackoff.BaseDelay = 250 * time.Millisecond
	}
	if cfg.Release.IdempotencyTTL == 0 {
		cfg.Release.IdempotencyTTL = 24 * time.Hour
	}
	if cfg.Reconciliation.MaxMatchAttempts == 0 {
		cfg.Reconciliation.MaxMatchAttempts = 10
	}
	if cfg.Reconciliation.UnmatchedRetentionDays == 0 {
		cfg.Reconciliation.UnmatchedRetentionDays = 14
	}
	if cfg.DLQ.Bucket == "" {
		cfg.DLQ.Bucket = "go-remit-dlq"
	}
}
