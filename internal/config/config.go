// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mark3labs/signup/internal/form"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults for the remote endpoints the wizard talks to.
const (
	DefaultSubmitURL   = "https://codebuddy.review/submit"
	DefaultPostsURL    = "https://codebuddy.review/posts"
	DefaultTimeout     = "30s"
	DefaultCountryCode = "+91"
)

// Config holds all configuration values for signup.
type Config struct {
	SubmitURL          string `mapstructure:"submit_url" yaml:"submit_url"`
	PostsURL           string `mapstructure:"posts_url" yaml:"posts_url"`
	Timeout            string `mapstructure:"timeout" yaml:"timeout"`
	DefaultCountryCode string `mapstructure:"default_country_code" yaml:"default_country_code"`
	LogLevel           string `mapstructure:"log_level" yaml:"log_level"`
	LogFile            string `mapstructure:"log_file" yaml:"log_file"`
	LogFormat          string `mapstructure:"log_format" yaml:"log_format"`
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		SubmitURL:          DefaultSubmitURL,
		PostsURL:           DefaultPostsURL,
		Timeout:            DefaultTimeout,
		DefaultCountryCode: DefaultCountryCode,
		LogLevel:           "info",
		LogFile:            "",
		LogFormat:          "console",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("signup")

	defaults := Default()
	v.SetDefault("submit_url", defaults.SubmitURL)
	v.SetDefault("posts_url", defaults.PostsURL)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("default_country_code", defaults.DefaultCountryCode)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_format", defaults.LogFormat)

	// Setup ENV binding with SIGNUP_ prefix
	v.SetEnvPrefix("SIGNUP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"submit_url",
		"posts_url",
		"timeout",
		"default_country_code",
		"log_level",
		"log_file",
		"log_format",
	} {
		if err := v.BindEnv(key, "SIGNUP_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that endpoints are absolute URLs, the timeout parses and
// the default country code is one the form offers.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{"submit_url": c.SubmitURL, "posts_url": c.PostsURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	if code := strings.TrimSpace(c.DefaultCountryCode); code != "" && !slices.Contains(form.CountryCodes(), code) {
		return fmt.Errorf("default_country_code must be one of %s, got %q",
			strings.Join(form.CountryCodes(), ", "), c.DefaultCountryCode)
	}
	return nil
}

// RequestTimeout parses Timeout. An empty value means no timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	return d, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/signup/signup.yml or $XDG_CONFIG_HOME/signup/signup.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "signup", "signup.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "signup", "signup.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "signup.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
