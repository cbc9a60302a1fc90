// Package config loads movekit's layered configuration: embedded TOML
// defaults, an optional user config file from the XDG config directory, and
// MOVEKIT_-prefixed environment variables, in increasing precedence.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	mkerrors "github.com/movekit/movekit/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the resolved movekit configuration
type Config struct {
	Project   ProjectConfig   `koanf:"project" toml:"project"`
	Templates TemplatesConfig `koanf:"templates" toml:"templates"`
	Installer InstallerConfig `koanf:"installer" toml:"installer"`
	Telemetry TelemetryConfig `koanf:"telemetry" toml:"telemetry"`
}

// ProjectConfig holds project-name defaults
type ProjectConfig struct {
	DefaultName string `koanf:"default_name" toml:"default_name"`
}

// TemplatesConfig holds template lookup settings
type TemplatesConfig struct {
	Root string `koanf:"root" toml:"root"`
}

// InstallerConfig holds dependency-installer settings
type InstallerConfig struct {
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
	Skip    bool     `koanf:"skip" toml:"skip"`
}

// TelemetryConfig holds telemetry settings
type TelemetryConfig struct {
	Endpoint string `koanf:"endpoint" toml:"endpoint"`
	Disabled bool   `koanf:"disabled" toml:"disabled"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves the configuration from defaults, user file, and environment
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, mkerrors.Wrap(err, mkerrors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config from XDG config dir, if present
	userConfigPath := getUserConfigPath()
	if userConfigPath != "" {
		if _, err := os.Stat(userConfigPath); err == nil {
			if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
				return nil, mkerrors.Wrapf(err, mkerrors.ErrConfigLoad,
					"failed to load user config from %s", userConfigPath)
			}
		}
	}

	// 3. Environment variables: MOVEKIT_TELEMETRY_DISABLED -> telemetry.disabled
	if err := k.Load(env.Provider("MOVEKIT_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "MOVEKIT_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, mkerrors.Wrap(err, mkerrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, mkerrors.Wrap(err, mkerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// getUserConfigPath returns the path of the optional user config file
func getUserConfigPath() string {
	if xdg.ConfigHome == "" {
		return ""
	}
	return filepath.Join(xdg.ConfigHome, "movekit", "movekit.toml")
}
