// Package config loads the billing tool configuration from a YAML
// file and wires process-wide logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"github.com/airis-ai/airis-billing/internal/util"
)

// ConfigPathEnv overrides the config file location when set.
const ConfigPathEnv = "AIRIS_BILLING_CONFIG"

// DefaultConfigFile is the config file name searched for when no path
// is given.
const DefaultConfigFile = "config.yaml"

// APIConfig points the tool at the billing API.
type APIConfig struct {
	BaseURL        string `yaml:"base-url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout-seconds"`
}

// Timeout returns the request timeout, or zero for the client default.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DatabaseConfig locates the local snapshot database.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// LogConfig controls log level and optional file rotation.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
}

// Config is the root configuration document.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ResolveConfigPath decides which config file to use: an explicit
// path wins, then the environment override, then the writable path,
// then the working directory.
func ResolveConfigPath(explicit string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed
	}
	if fromEnv := strings.TrimSpace(os.Getenv(ConfigPathEnv)); fromEnv != "" {
		return fromEnv
	}
	if writable := util.WritablePath(); writable != "" {
		return filepath.Join(writable, DefaultConfigFile)
	}
	return DefaultConfigFile
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, errRead)
	}

	var cfg Config
	if errParse := yaml.Unmarshal(data, &cfg); errParse != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, errParse)
	}
	applyDefaults(&cfg)

	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return nil, fmt.Errorf("config: api.base-url is required")
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		base := util.WritablePath()
		if base == "" {
			base = "."
		}
		cfg.Database.DSN = filepath.Join(base, "airis-billing.db")
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = 20
	}
	if cfg.Log.MaxBackups <= 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Log.MaxAgeDays <= 0 {
		cfg.Log.MaxAgeDays = 14
	}
}

// SetupLogging applies the log configuration to the global logger.
// With a file configured, output goes through size-based rotation;
// otherwise it stays on stderr.
func SetupLogging(cfg LogConfig) {
	level, errParse := log.ParseLevel(cfg.Level)
	if errParse != nil {
		level = log.InfoLevel
		log.WithField("level", cfg.Level).Warn("unknown log level, falling back to info")
	}
	log.SetLevel(level)

	if strings.TrimSpace(cfg.File) != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
}

// Describe returns a loggable one-line summary with the token masked.
func (c *Config) Describe() string {
	return fmt.Sprintf("api=%s token=%s db=%s", c.API.BaseURL, util.MaskToken(c.API.Token), c.Database.DSN)
}
