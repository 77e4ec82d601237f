// config/base.go
package config

import (
	"github.com/spf13/viper"
)

type BaseConfig struct {
	WebhookToken string `mapstructure:"WEBHOOK_TOKEN"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

func LoadBase() (*BaseConfig, error) {
	v := viper.New()

	v.SetConfigName("base")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// Default values. WEBHOOK_TOKEN deliberately defaults to empty: an
	// unset secret is the misconfigured state, not something to paper over
	// with a dev fallback.
	v.SetDefault("WEBHOOK_TOKEN", "")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional, env vars are the primary source
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config BaseConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
