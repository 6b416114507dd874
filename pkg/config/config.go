package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the scraping engine
type Config struct {
	// Provider credentials and identification
	Provider ProviderConfig `yaml:"provider" json:"provider"`

	// Region and language preferences for metadata resolution
	Preferences PreferencesConfig `yaml:"preferences" json:"preferences"`

	// Rate limiting and retry configuration
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Cache settings
	Cache CacheConfig `yaml:"cache" json:"cache"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ProviderConfig holds the provider credential preamble. Every API call
// carries all of these as query parameters.
type ProviderConfig struct {
	DevID       string `yaml:"dev_id" json:"dev_id"`
	DevPassword string `yaml:"dev_password" json:"dev_password"`
	Softname    string `yaml:"softname" json:"softname"`
	UserID      string `yaml:"user_id" json:"user_id"`
	UserPass    string `yaml:"user_password" json:"user_password"`
}

// PreferencesConfig holds the user's preferred region and language codes.
// Each is promoted to the front of its fallback chain.
type PreferencesConfig struct {
	Region   string `yaml:"region" json:"region"`
	Language string `yaml:"language" json:"language"`
}

// RateLimitConfig holds request spacing and retry configuration
type RateLimitConfig struct {
	APIInterval    time.Duration `yaml:"api_interval" json:"api_interval"`
	AssetInterval  time.Duration `yaml:"asset_interval" json:"asset_interval"`
	RetryThreshold int           `yaml:"retry_threshold" json:"retry_threshold"`
}

// CacheConfig holds cache storage configuration
type CacheConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Softname: "romscraper",
		},
		Preferences: PreferencesConfig{
			Region:   "wor",
			Language: "en",
		},
		RateLimit: RateLimitConfig{
			APIInterval:    2 * time.Second,
			AssetInterval:  1200 * time.Millisecond,
			RetryThreshold: 3,
		},
		Cache: CacheConfig{
			Directory: "./cache",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if devID := os.Getenv("ROMSCRAPER_DEV_ID"); devID != "" {
		c.Provider.DevID = devID
	}
	if devPass := os.Getenv("ROMSCRAPER_DEV_PASSWORD"); devPass != "" {
		c.Provider.DevPassword = devPass
	}
	if softname := os.Getenv("ROMSCRAPER_SOFTNAME"); softname != "" {
		c.Provider.Softname = softname
	}
	if userID := os.Getenv("ROMSCRAPER_USER_ID"); userID != "" {
		c.Provider.UserID = userID
	}
	if userPass := os.Getenv("ROMSCRAPER_USER_PASSWORD"); userPass != "" {
		c.Provider.UserPass = userPass
	}
	if region := os.Getenv("ROMSCRAPER_REGION"); region != "" {
		c.Preferences.Region = region
	}
	if language := os.Getenv("ROMSCRAPER_LANGUAGE"); language != "" {
		c.Preferences.Language = language
	}
	if cacheDir := os.Getenv("ROMSCRAPER_CACHE_DIR"); cacheDir != "" {
		c.Cache.Directory = cacheDir
	}
	if logLevel := os.Getenv("ROMSCRAPER_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
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
	locations := []string{
		".romscraper.yaml",
		".romscraper.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "romscraper", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "romscraper", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".romscraper.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// HasUserCredentials reports whether the provider user account is
// configured. The engine refuses to scrape without it; this is not a
// Validate error because the condition is reported through the session
// result descriptor instead.
func (c *Config) HasUserCredentials() bool {
	return c.Provider.UserID != "" && c.Provider.UserPass != ""
}

// Validate checks if the configuration is structurally valid
func (c *Config) Validate() error {
	var errs []error

	if c.Provider.Softname == "" {
		errs = append(errs, errors.New("provider softname is required"))
	}
	if c.RateLimit.APIInterval < 0 {
		errs = append(errs, errors.New("api interval cannot be negative"))
	}
	if c.RateLimit.AssetInterval < 0 {
		errs = append(errs, errors.New("asset interval cannot be negative"))
	}
	if c.RateLimit.RetryThreshold < 0 {
		errs = append(errs, errors.New("retry threshold cannot be negative"))
	}
	if c.Cache.Directory == "" {
		errs = append(errs, errors.New("cache directory is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
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

	// Credentials live in here, keep it owner-only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Environment variables > .env file > Config file > Defaults
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".romscraper.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
