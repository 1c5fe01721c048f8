// Package config loads swapplan settings from an optional YAML file and
// SWAPPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/swapplan/internal/db"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/spf13/viper"
)

const envPrefix = "SWAPPLAN"

// Config holds process-wide settings.
type Config struct {
	DBPath              string   `mapstructure:"db_path"`
	CatalogFiles        []string `mapstructure:"catalog_files"`
	DefaultUse          string   `mapstructure:"default_use"`
	DefaultTransmission string   `mapstructure:"default_transmission"`
	LogUseCases         bool     `mapstructure:"log_use_cases"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DBPath:              db.MemoryPath,
		CatalogFiles:        []string{},
		DefaultUse:          string(domain.UseStreet),
		DefaultTransmission: "Keep Current",
	}
}

// Load reads configuration. When path is empty, swapplan.yaml is looked up
// in the working directory and ~/.config/swapplan; a missing file is not an
// error. Environment variables override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := DefaultConfig()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("catalog_files", def.CatalogFiles)
	v.SetDefault("default_use", def.DefaultUse)
	v.SetDefault("default_transmission", def.DefaultTransmission)
	v.SetDefault("log_use_cases", def.LogUseCases)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("swapplan")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "swapplan"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	if _, ok := domain.ParseUseCase(c.DefaultUse); !ok {
		return fmt.Errorf("default_use: unknown use case %q", c.DefaultUse)
	}
	if strings.TrimSpace(c.DefaultTransmission) == "" {
		return fmt.Errorf("default_transmission must not be empty")
	}
	return nil
}
