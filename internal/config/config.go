package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	appDir          = "gophpass"
	profilesFile    = "profiles.yaml"
	defaultLogLevel = "warn"
)

// Config holds runtime settings for the CLI.
//
// DefaultLength and DefaultCounter apply to `gen` when neither a flag nor a
// stored profile sets them.
type Config struct {
	LogLevel       string `validate:"oneof=debug info warn error"`
	ProfilesPath   string `validate:"required"`
	DefaultLength  uint8  `validate:"min=4"`
	DefaultCounter uint64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = defaultLogLevel
	c.ProfilesPath = defaultProfilesPath()
	c.DefaultLength = 16
	c.DefaultCounter = 1
}

func defaultProfilesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return profilesFile
	}
	return filepath.Join(dir, appDir, profilesFile)
}

// Validate checks c with its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validation error: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q (got: %v)", e.Field(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("configuration validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file named in args (if any). Flags are applied later by the caller.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	return cfg
}
