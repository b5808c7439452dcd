package main

import (
	"errors"

	"github.com/spf13/viper"
)

// config is the driver's own configuration, independent of anything the
// interpreted program does. File settings are overridden by the CRAFTY_
// environment variables, which are in turn overridden by command-line
// flags: the standard viper precedence order.
type config struct {
	Debug       bool   `mapstructure:"debug"`
	FloatFormat string `mapstructure:"float_format"`
}

// loadConfig reads .crafty.yaml (or the file named by explicitPath) from
// the current directory, layers in CRAFTY_* environment variables, and
// returns the merged result. A missing config file is not an error; an
// explicitly named one that can't be read is.
func loadConfig(explicitPath string) (*config, error) {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("float_format", "auto")

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(".crafty")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CRAFTY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
