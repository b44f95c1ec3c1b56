package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds service settings. Values come from defaults, an optional
// config file, and CONTRACT_SIM_* environment variables, in increasing
// precedence.
type Config struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	LogMode        string `mapstructure:"log_mode"`
}

const envPrefix = "CONTRACT_SIM"

// Load reads configuration. A missing config file is not an error; an
// unreadable or malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("max_upload_bytes", int64(10<<20))
	v.SetDefault("log_mode", "production")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("contract-sim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// An explicit path must exist; implicit lookup may come up empty.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("max_upload_bytes must be positive")
	}
	switch c.LogMode {
	case "production", "development":
	default:
		return fmt.Errorf("log_mode must be production or development, got %q", c.LogMode)
	}
	return nil
}
