package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "kalimdor"
	configFileType = "yaml"
	envPrefix      = "KALIMDOR"

	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"
	cfgKeyAllowedKinds = "allowed_kinds"
	cfgKeyWorkers      = "workers"
)

// config is the resolved CLI configuration.
type config struct {
	LogLevel     string
	LogFormat    string
	AllowedKinds []string
	Workers      int
}

// loadConfig reads kalimdor.yaml from configDir, then KALIMDOR_* environment
// variables. A missing file is not an error.
func loadConfig(configDir string) (*config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetDefault(cfgKeyAllowedKinds, []string{"number", "string", "boolean"})
	v.SetDefault(cfgKeyWorkers, 0)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &config{
		LogLevel:     v.GetString(cfgKeyLogLevel),
		LogFormat:    v.GetString(cfgKeyLogFormat),
		AllowedKinds: v.GetStringSlice(cfgKeyAllowedKinds),
		Workers:      v.GetInt(cfgKeyWorkers),
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%s must be >= 0, got %d", cfgKeyWorkers, cfg.Workers)
	}
	return cfg, nil
}
