// Package config loads tk.yaml and TK_ environment overrides.
//
// Layers, lowest precedence first:
//
//  1. built-in defaults,
//  2. tk.yaml in the working directory, or the file named by --config,
//  3. environment variables prefixed TK_, where "__" maps to "."
//     (TK_FACTORY__NAME_LEN -> factory.name_len).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/go-drift/tk/pkg/factory"
	"github.com/go-drift/tk/pkg/ui"
)

// DefaultFile is read when no config path is given.
const DefaultFile = "tk.yaml"

// EnvPrefix marks environment overrides.
const EnvPrefix = "TK_"

// Config is the resolved CLI configuration.
type Config struct {
	Factory Factory `koanf:"factory"`
	UI      UI      `koanf:"ui"`
	Log     Log     `koanf:"log"`

	// Source is the file Load read, or "" when none was found.
	Source string `koanf:"-"`
}

// Factory mirrors factory.Options.
type Factory struct {
	NameLen     int  `koanf:"name_len" validate:"min=1,max=255"`
	StrictNames bool `koanf:"strict_names"`
	MaxTypes    int  `koanf:"max_types" validate:"min=0"`
}

// UI controls document building.
type UI struct {
	SkipUnknown bool `koanf:"skip_unknown"`
}

// Log selects where and how much the CLI logs.
type Log struct {
	Level      string `koanf:"level" validate:"oneof=debug info warn error"`
	Format     string `koanf:"format" validate:"oneof=console json"`
	File       string `koanf:"file"` // JSON logs rotated by size, when set
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"min=1"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Factory: Factory{NameLen: factory.DefaultNameLen},
		Log: Log{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

var validate = validator.New()

// Load merges defaults, the YAML file at path and TK_ environment
// overrides. An empty path means DefaultFile, which may be absent; an
// explicit path must exist. Load does not log; the file it read is
// reported in Config.Source.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	k := koanf.New(".")
	def := Default()
	for key, val := range map[string]any{
		"factory.name_len": def.Factory.NameLen,
		"log.level":        def.Log.Level,
		"log.format":       def.Log.Format,
		"log.max_size_mb":  def.Log.MaxSizeMB,
		"log.max_backups":  def.Log.MaxBackups,
	} {
		if err := k.Set(key, val); err != nil {
			return nil, err
		}
	}

	source := ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		source = path
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Source = source
	return &cfg, nil
}

// FactoryOptions converts the factory section.
func (c *Config) FactoryOptions(log *zap.Logger) factory.Options {
	return factory.Options{
		NameLen:     c.Factory.NameLen,
		StrictNames: c.Factory.StrictNames,
		MaxTypes:    c.Factory.MaxTypes,
		Logger:      log,
	}
}

// UIOptions converts the ui section. The factory is left to the caller.
func (c *Config) UIOptions(log *zap.Logger) ui.Options {
	return ui.Options{SkipUnknown: c.UI.SkipUnknown, Logger: log}
}
