// Package config holds runtime configuration for the kudu CLI and the
// file-based override loading that backs it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gokudu/kudu/internal/util"
)

// CLI verbosity values. Mapped onto [util.LogLevel] when merged; see
// [Config.Merge].
const (
	ErrorVerbose = 1
	WarnVerbose  = 2
	InfoVerbose  = 3
	DebugVerbose = 4
	TraceVerbose = 5
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultTimeout disables the per-request timeout. Zip downloads of a
	// large site can legitimately run for minutes, so there is no safe
	// fixed default.
	DefaultTimeout = 0

	// DefaultLogLvl matches verbose level 3 (info)
	DefaultLogLvl = util.InfoLevel
)

// Config contains runtime configuration values for talking to a site's
// SCM endpoint.
type Config struct {
	Site     string // App name without the host suffix (Required)
	Username string // Deployment username for basic auth
	Password string // Deployment password for basic auth
	Token    string // Pre-encoded basic auth token; takes precedence over Username/Password
	Timeout  int    // Per-request timeout in seconds, 0 disables (Default 0)

	LogLvl util.LogLevel // Internal log level (Default info)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	Site     *string `yaml:"site,omitempty" json:"site,omitempty"`
	Username *string `yaml:"username,omitempty" json:"username,omitempty"`
	Password *string `yaml:"password,omitempty" json:"password,omitempty"`
	Token    *string `yaml:"token,omitempty" json:"token,omitempty"`
	Timeout  *int    `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// Verbose is the CLI verbosity between 1 (error) and 5 (trace); values
	// outside the range are clamped. Converted to LogLvl during Merge.
	Verbose *int `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Timeout: DefaultTimeout,
		LogLvl:  DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults unchanged.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Site != nil {
		c.Site = *override.Site
	}
	if override.Username != nil {
		c.Username = *override.Username
	}
	if override.Password != nil {
		c.Password = *override.Password
	}
	if override.Token != nil {
		c.Token = *override.Token
	}
	if override.Timeout != nil {
		c.Timeout = *override.Timeout
	}
	if override.Verbose != nil {
		v := *override.Verbose
		if v < ErrorVerbose {
			v = ErrorVerbose
		}
		if v > TraceVerbose {
			v = TraceVerbose
		}
		logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
		c.LogLvl = logLvls[v-ErrorVerbose]
	}
}

// Validate reports whether the config carries enough to authenticate
// against a site.
func (c *Config) Validate() error {
	if c.Site == "" {
		return errors.New("site is required")
	}
	if c.Token == "" && (c.Username == "" || c.Password == "") {
		return errors.New("credentials are required: set token or username and password")
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
