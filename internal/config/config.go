package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"arkmotors/internal/logger"
)

// Default file and folder names used by the business
const (
	DefaultSourceFile = "amotors_master_data.xlsx"
	DefaultLegacyDir  = "amotors_V2"
)

type Config struct {
	// Consolidated workbook path or Google Sheets URL
	Source string

	// Folder holding the five legacy workbooks
	LegacyDir string

	// Optional YAML file replacing the classification keyword rules
	RulesFile string

	// How long a loaded snapshot is reused while its files are unchanged
	CacheTTL time.Duration

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("ARK_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ARK_CACHE_TTL: %w", err)
	}

	config := &Config{
		Source:        getEnv("ARK_SOURCE", defaultSource()),
		LegacyDir:     getEnv("ARK_LEGACY_DIR", defaultLegacyDir()),
		RulesFile:     getEnv("ARK_RULES_FILE", ""),
		CacheTTL:      ttl,
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks the values that cannot be defaulted sensibly
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" && strings.TrimSpace(c.LegacyDir) == "" {
		return fmt.Errorf("ARK_SOURCE or ARK_LEGACY_DIR is required")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got %s", c.CacheTTL)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format '%s': must be one of [console json]", c.LogFormat)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// defaultSource places the consolidated workbook next to the executable
func defaultSource() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultSourceFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultSourceFile)
}

// defaultLegacyDir is the folder the legacy workbooks were kept in: ~/Desktop/amotors_V2
func defaultLegacyDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultLegacyDir
	}
	return filepath.Join(home, "Desktop", DefaultLegacyDir)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
