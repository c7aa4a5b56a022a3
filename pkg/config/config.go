package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "LOGOFETCH_"

// Config holds all configuration options for the logo fetcher
type Config struct {
	// Image API settings
	SofaScore SofaScoreConfig `yaml:"sofascore" json:"sofascore"`

	// Console output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SofaScoreConfig holds settings for the image API requests
type SofaScoreConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
	Referer   string        `yaml:"referer" json:"referer"`
	Accept    string        `yaml:"accept" json:"accept"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
}

// OutputConfig holds console output preferences
type OutputConfig struct {
	Color       bool   `yaml:"color" json:"color"`
	ReminderDir string `yaml:"reminder_dir" json:"reminder_dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with the values the fetcher ships with
func DefaultConfig() *Config {
	return &Config{
		SofaScore: SofaScoreConfig{
			BaseURL:   "https://api.sofascore.com",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
			Referer:   "https://www.sofascore.com/",
			Accept:    "image/webp,image/apng,image/*,*/*;q=0.8",
			Timeout:   15 * time.Second,
		},
		Output: OutputConfig{
			Color:       true,
			ReminderDir: "assets/images/team_logos/",
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from LOGOFETCH_* environment variables
func (c *Config) LoadFromEnv() error {
	if baseURL := os.Getenv(envPrefix + "BASE_URL"); baseURL != "" {
		c.SofaScore.BaseURL = baseURL
	}
	if userAgent := os.Getenv(envPrefix + "USER_AGENT"); userAgent != "" {
		c.SofaScore.UserAgent = userAgent
	}
	if timeout := os.Getenv(envPrefix + "TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid %sTIMEOUT %q: %w", envPrefix, timeout, err)
		}
		c.SofaScore.Timeout = d
	}

	if color := os.Getenv(envPrefix + "COLOR"); color != "" {
		c.Output.Color = strings.ToLower(color) == "true"
	}
	// NO_COLOR is honoured regardless of its value.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.Color = false
	}

	if logLevel := os.Getenv(envPrefix + "LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv(envPrefix + "LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".logofetch.yaml",
		".logofetch.yml",
		filepath.Join(home, ".config", "logofetch", "config.yaml"),
		filepath.Join(home, ".config", "logofetch", "config.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.SofaScore.BaseURL == "" {
		errs = append(errs, errors.New("base URL is required"))
	} else if u, err := url.Parse(c.SofaScore.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid base URL %q", c.SofaScore.BaseURL))
	}
	if c.SofaScore.UserAgent == "" {
		errs = append(errs, errors.New("user agent is required"))
	}
	if c.SofaScore.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration.
// Only keys present in the map are applied.
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile, ok := flags["log-file"].(string); ok && logFile != "" {
		c.Logging.File = logFile
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok && timeout > 0 {
		c.SofaScore.Timeout = timeout
	}
	if noColor, ok := flags["no-color"].(bool); ok && noColor {
		c.Output.Color = false
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Missing .env files are fine
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".logofetch.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
