package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr           string   `json:"addr" yaml:"addr" toml:"addr"`
	ModulesDir     string   `json:"modules_dir" yaml:"modules_dir" toml:"modules_dir"`
	DefaultVersion string   `json:"default_version" yaml:"default_version" toml:"default_version"`
	Versions       []string `json:"versions" yaml:"versions" toml:"versions"`
	CacheDir       string   `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	NoPreload      bool     `json:"no_preload" yaml:"no_preload" toml:"no_preload"`

	LogLevel     string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format" toml:"log_format"`
	HTTPLogLevel string `json:"http_log_level" yaml:"http_log_level" toml:"http_log_level"`

	MaxBodyBytes       int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	ExecTimeoutSeconds int   `json:"exec_timeout_seconds" yaml:"exec_timeout_seconds" toml:"exec_timeout_seconds"`
	MaxQueueDepth      int   `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth"`
	MaxWaitSeconds     int   `json:"max_wait_seconds" yaml:"max_wait_seconds" toml:"max_wait_seconds"`

	CORS CORS `json:"cors" yaml:"cors" toml:"cors"`
}

// CORS configures the opt-in CORS middleware.
type CORS struct {
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	Origins []string `json:"origins" yaml:"origins" toml:"origins"`
	Methods []string `json:"methods" yaml:"methods" toml:"methods"`
	Headers []string `json:"headers" yaml:"headers" toml:"headers"`
}

// Defaults for unset fields.
const (
	DefaultAddr       = ":8080"
	DefaultModulesDir = "~/.local/share/rregexd/modules"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
)

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ModulesDir == "" {
		c.ModulesDir = DefaultModulesDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", c.LogFormat)
	}
	if c.MaxBodyBytes < 0 || c.ExecTimeoutSeconds < 0 || c.MaxQueueDepth < 0 || c.MaxWaitSeconds < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	return nil
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
