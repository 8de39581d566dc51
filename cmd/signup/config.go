package main

import (
	"fmt"

	"github.com/mark3labs/signup/internal/config"
	"github.com/mark3labs/signup/internal/logger"
	"github.com/spf13/cobra"
)

var endpointFlags struct {
	submitURL string
	postsURL  string
	timeout   string
	logLevel  string
	logFile   string
}

func addEndpointFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&endpointFlags.submitURL, "submit-url", "", "Registration endpoint (default from config)")
	f.StringVar(&endpointFlags.postsURL, "posts-url", "", "Post listing endpoint (default from config)")
	f.StringVar(&endpointFlags.timeout, "timeout", "", "HTTP timeout, e.g. 10s (default from config)")
	f.StringVar(&endpointFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&endpointFlags.logFile, "log-file", "", "Write logs to this file")
}

// loadConfig loads configuration, applies flag overrides, validates the
// result and initializes the default logger from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	override("submit-url", &cfg.SubmitURL, endpointFlags.submitURL)
	override("posts-url", &cfg.PostsURL, endpointFlags.postsURL)
	override("timeout", &cfg.Timeout, endpointFlags.timeout)
	override("log-level", &cfg.LogLevel, endpointFlags.logLevel)
	override("log-file", &cfg.LogFile, endpointFlags.logFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Format: cfg.LogFormat,
	})
	logger.Debug("config loaded: submit=%s posts=%s timeout=%s", cfg.SubmitURL, cfg.PostsURL, cfg.Timeout)
	return cfg, nil
}
