package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mfsim/internal/common"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	DataDir       string `yaml:"data_dir"`
	SourceDir     string `yaml:"source_dir"`
	DatabasePath  string `yaml:"database_path"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
	AutosaveSpec  string `yaml:"autosave"`
	SnapshotLimit int    `yaml:"snapshot_limit"`

	PreferencesFile string         `yaml:"-"`
	Logger          zerolog.Logger `yaml:"-"`

	logWriter io.Closer
}

// GetConfigPath returns the configuration file location
func GetConfigPath() string {
	if path := os.Getenv("MFSIM_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(defaultDataDir(), common.ConfigFileName)
}

// defaultSnapshotLimit applies when snapshot_limit is absent; 0 keeps every snapshot.
const defaultSnapshotLimit = 20

// Load reads the configuration file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Config{SnapshotLimit: defaultSnapshotLimit}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvironmentOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.PreferencesFile = filepath.Join(cfg.DataDir, common.PreferencesFileName)
	cfg.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	return &cfg, nil
}

// New loads the configuration from the default location and sets up logging
func New() (*Config, error) {
	cfg, err := Load(GetConfigPath())
	if err != nil {
		return nil, err
	}

	if err := cfg.setupLogger(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Close releases the log file
func (c *Config) Close() error {
	if c.logWriter == nil {
		return nil
	}
	err := c.logWriter.Close()
	c.logWriter = nil
	return err
}

func (c *Config) setupLogger() error {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.LogFile), common.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	c.logWriter = file

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	c.Logger = zerolog.New(zerolog.MultiLevelWriter(console, file)).
		Level(level).
		With().
		Timestamp().
		Str("app", common.AppName).
		Logger()

	return nil
}

// applyDefaults sets default values for missing fields
func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = defaultSourceDir()
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, common.DatabaseFileName)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, common.LogFileName)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AutosaveSpec == "" {
		cfg.AutosaveSpec = "@every 5m"
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if dir := os.Getenv("MFSIM_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
		cfg.DatabasePath = filepath.Join(dir, common.DatabaseFileName)
		cfg.LogFile = filepath.Join(dir, common.LogFileName)
	}
	if dir := os.Getenv("MFSIM_SOURCE_DIR"); dir != "" {
		cfg.SourceDir = dir
	}
	if level := os.Getenv("MFSIM_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
}

// validate checks the configuration for correctness
func validate(cfg *Config) error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	if cfg.SnapshotLimit < 0 {
		return fmt.Errorf("snapshot_limit must not be negative, got %d", cfg.SnapshotLimit)
	}
	if cfg.AutosaveSpec != "off" {
		if _, err := cron.ParseStandard(cfg.AutosaveSpec); err != nil {
			return fmt.Errorf("invalid autosave schedule %q: %w", cfg.AutosaveSpec, err)
		}
	}
	return nil
}

func defaultDataDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, common.DataDirectoryName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, common.DataDirectoryName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, common.DataDirectoryName)
}

func defaultSourceDir() string {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}
	return filepath.Join(workingDir, common.SourceDirectoryName)
}
