package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultFiles is the input list used when none is given
var DefaultFiles = []string{"SampleCSV.csv", "SamplePipe.txt"}

// Config holds all configuration for the application
type Config struct {
	App        AppConfig
	Log        LogConfig
	Process    ProcessConfig
	Prometheus PrometheusConfig
}

// AppConfig holds application settings
type AppConfig struct {
	Env          string
	Port         int
	Name         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
}

// ProcessConfig holds file processing settings
type ProcessConfig struct {
	Files []string
	// InputRoot confines paths accepted over HTTP; it is always absolute
	// after Load
	InputRoot string
	// OutputDir, when set, receives every output file instead of the
	// input file's own directory
	OutputDir string
}

// PrometheusConfig holds Prometheus settings
type PrometheusConfig struct {
	Enabled  bool
	Textfile string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:          getEnv("APP_ENV", "development"),
			Port:         getEnvAsInt("APP_PORT", 8080),
			Name:         getEnv("APP_NAME", "delimfmt"),
			ReadTimeout:  getEnvAsInt("APP_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("APP_WRITE_TIMEOUT", 60),
			IdleTimeout:  getEnvAsInt("APP_IDLE_TIMEOUT", 120),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Process: ProcessConfig{
			Files:     getEnvAsList("DELIMFMT_FILES", DefaultFiles),
			InputRoot: getEnv("DELIMFMT_INPUT_ROOT", "."),
			OutputDir: getEnv("DELIMFMT_OUTPUT_DIR", ""),
		},
		Prometheus: PrometheusConfig{
			Enabled:  getEnvAsBool("PROMETHEUS_ENABLED", true),
			Textfile: getEnv("METRICS_TEXTFILE", ""),
		},
	}

	root, err := filepath.Abs(cfg.Process.InputRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid input root %q: %w", cfg.Process.InputRoot, err)
	}
	cfg.Process.InputRoot = root

	return cfg, nil
}

// ValidateServer checks the settings only the HTTP server depends on
func (c *Config) ValidateServer() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.App.Port)
	}
	return nil
}

// EnsureOutputDir creates the output directory override if one is set.
// Call it once command line overrides have been applied.
func (c *Config) EnsureOutputDir() error {
	if c.Process.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Process.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// IsProduction returns true when running with APP_ENV=production
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(strValue)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getEnvAsList splits a comma-separated value, dropping blank entries
func getEnvAsList(key string, defaultValue []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(strValue, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return items
}
