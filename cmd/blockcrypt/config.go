package main

import (
	"github.com/spf13/viper"
)

type Config struct {
	Passphrase string `mapstructure:"passphrase"`
	KeyFile    string `mapstructure:"key_file"`
	Compress   bool   `mapstructure:"compress"`
	LogDB      string `mapstructure:"log_db"`
}

func DefaultConfig() *Config {
	return &Config{
		Compress: false,
	}
}

// LoadConfig loads configuration from file and environment. An
// explicit configFile wins over the search paths; a missing config
// file is not an error.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("blockcrypt")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.blockcrypt")
	}
	viper.SetEnvPrefix("BLOCKCRYPT") // BLOCKCRYPT_PASSPHRASE etc.
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file found; defaults and environment apply.
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
