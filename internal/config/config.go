package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds the CLI settings. Values come from, lowest priority first:
// defaults, the config file, PCSET_* environment variables and flags.
type Config struct {
	Format      string `mapstructure:"format"`
	Concurrency int    `mapstructure:"concurrency"`
	Debug       bool   `mapstructure:"debug"`
}

func Default() *Config {
	return &Config{
		Format:      FormatTable,
		Concurrency: 4,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("debug", d.Debug)
}

// LoadConfig reads configPath, or .pcset.yaml from the home directory or the
// working directory when configPath is empty. A missing default file is not
// an error; a missing explicit one is.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".pcset")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PCSET")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q, want one of %s, %s, %s", c.Format, FormatTable, FormatJSON, FormatYAML)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency should be at least 1, got %d", c.Concurrency)
	}

	return nil
}
