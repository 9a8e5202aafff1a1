// Package config loads zident settings from defaults, an optional YAML file
// and ZIDENT_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/registry"
)

const (
	appName   = "zident"
	envPrefix = "zident"
	fileName  = "config.yaml"
)

// Config holds every tunable setting.
type Config struct {
	DataDir        string   `json:"data_dir" yaml:"data_dir" envconfig:"DATA_DIR"`
	DefaultCountry string   `json:"default_country" yaml:"default_country" envconfig:"DEFAULT_COUNTRY"`
	MaxBatch       int      `json:"max_batch" yaml:"max_batch" envconfig:"MAX_BATCH"`
	Workers        int      `json:"workers" yaml:"workers" envconfig:"WORKERS"`
	AvatarServices []string `json:"avatar_services" yaml:"avatar_services" envconfig:"AVATAR_SERVICES"`
	ServeAddr      string   `json:"serve_addr" yaml:"serve_addr" envconfig:"SERVE_ADDR"`
	LogLevel       string   `json:"log_level" yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:        DataDir(),
		DefaultCountry: string(registry.Default),
		MaxBatch:       identity.DefaultMaxBatch,
		Workers:        4,
		ServeAddr:      "127.0.0.1:8080",
		LogLevel:       "info",
	}
}

// DataDir returns the default data directory for zident.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".local", "share", appName)
}

// Path returns the default config file location.
func Path() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, appName, fileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, ".config", appName, fileName)
}

// Load builds the configuration. An empty path reads the default location
// when it exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = Path()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults and environment only
	default:
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.DefaultCountry, validation.By(func(v any) error {
			if s, _ := v.(string); s == "" {
				return nil
			}
			if _, ok := registry.ParseCode(v.(string)); !ok {
				return fmt.Errorf("unsupported country %q", v)
			}
			return nil
		})),
		validation.Field(&c.MaxBatch, validation.Required, validation.Min(1)),
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(256)),
		validation.Field(&c.ServeAddr, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// Country returns the configured default country.
func (c Config) Country() registry.Code {
	code, _ := registry.ParseCode(c.DefaultCountry)
	return code
}

// GeneratorOptions translates the settings into generator options.
func (c Config) GeneratorOptions() []identity.Option {
	opts := []identity.Option{
		identity.WithMaxBatch(c.MaxBatch),
		identity.WithWorkers(c.Workers),
	}
	if len(c.AvatarServices) > 0 {
		opts = append(opts, identity.WithAvatarServices(c.AvatarServices...))
	}
	return opts
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.level()}))
}

func (c Config) level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
