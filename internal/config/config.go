// Package config provides configuration management for tvdocs using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration file is .tvdocs.yml, looked up in the working directory
// and then in $XDG_CONFIG_HOME/tvdocs. Every key can be overridden with a
// TVDOCS_ prefixed environment variable (TVDOCS_EXPORT_OUTPUT_DIR, ...).
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	tverrors "github.com/conneroisu/tvdocs/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "TVDOCS"
	// ConfigName is the config file name without extension.
	ConfigName = ".tvdocs"

	DefaultOutputDir = "public/brand"
	DefaultDebounce  = 200 * time.Millisecond
)

type Config struct {
	Logo   LogoConfig   `mapstructure:"logo" yaml:"logo" json:"logo"`
	Export ExportConfig `mapstructure:"export" yaml:"export" json:"export"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch" json:"watch"`
	Log    LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
}

// LogoConfig holds defaults applied to CLI renders.
type LogoConfig struct {
	Class string `mapstructure:"class" yaml:"class" json:"class"`
}

type ExportConfig struct {
	OutputDir   string `mapstructure:"output_dir" yaml:"output_dir" json:"output_dir"`
	Manifest    string `mapstructure:"manifest" yaml:"manifest" json:"manifest"`
	Fingerprint bool   `mapstructure:"fingerprint" yaml:"fingerprint" json:"fingerprint"`
	Verify      bool   `mapstructure:"verify" yaml:"verify" json:"verify"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("export.output_dir", DefaultOutputDir)
	v.SetDefault("export.manifest", "")
	v.SetDefault("export.fingerprint", false)
	v.SetDefault("export.verify", true)
	v.SetDefault("watch.debounce", DefaultDebounce)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// SearchPaths returns the directories searched for the config file, in order.
func SearchPaths() []string {
	return []string{".", filepath.Join(xdg.ConfigHome, "tvdocs")}
}

// Setup points v at a config file. An explicit path wins; otherwise the
// search paths are used. Environment overrides are always enabled.
func Setup(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(ConfigName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, tverrors.NewConfigError(tverrors.ErrCodeConfigInvalid, "cannot decode configuration").
			WithContext("cause", err.Error())
	}

	config.Log.Format = strings.ToLower(strings.TrimSpace(config.Log.Format))
	config.Export.OutputDir = strings.TrimSpace(config.Export.OutputDir)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
