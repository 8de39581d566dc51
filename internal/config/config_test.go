package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME and the working directory at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmpDir))

	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name      string
		xdgConfig string
		want      string
	}{
		{
			name:      "with XDG_CONFIG_HOME set",
			xdgConfig: "/custom/config",
			want:      "/custom/config/signup/signup.yml",
		},
		{
			name:      "without XDG_CONFIG_HOME",
			xdgConfig: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			got := GlobalPath()
			if tt.want != "" {
				if got != tt.want {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.want)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("GlobalPath() should return absolute path, got %v", got)
			}
			if !strings.HasSuffix(got, filepath.Join(".config", "signup", "signup.yml")) {
				t.Errorf("GlobalPath() should end with .config/signup/signup.yml, got %v", got)
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "signup.yml" {
		t.Errorf("ProjectPath() = %v, want signup.yml", got)
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	require.False(t, Exists(), "no config files yet")

	require.NoError(t, WriteGlobal(Default()))
	require.True(t, Exists(), "global config written")

	require.NoError(t, os.Remove(GlobalPath()))
	require.NoError(t, WriteProject(Default()))
	require.True(t, Exists(), "project config written")
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	cfg := &Config{
		SubmitURL:          "https://example.test/submit",
		PostsURL:           "https://example.test/posts",
		Timeout:            "5s",
		DefaultCountryCode: "+1",
		LogLevel:           "debug",
		LogFile:            "/tmp/signup.log",
		LogFormat:          "json",
	}
	require.NoError(t, WriteGlobal(cfg))

	data, err := os.ReadFile(GlobalPath())
	require.NoError(t, err)

	content := string(data)
	for _, field := range []string{
		"submit_url: https://example.test/submit",
		"posts_url: https://example.test/posts",
		"timeout: 5s",
		`default_country_code: "+1"`,
		"log_level: debug",
		"log_file: /tmp/signup.log",
		"log_format: json",
	} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, Default(), cfg)
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	isolate(t)

	global := Default()
	global.SubmitURL = "https://global.test/submit"
	global.LogLevel = "warn"
	require.NoError(t, WriteGlobal(global))

	project := Default()
	project.SubmitURL = "https://project.test/submit"
	require.NoError(t, WriteProject(project))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://project.test/submit", cfg.SubmitURL)
	require.Equal(t, "info", cfg.LogLevel, "project file sets log_level too")
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	isolate(t)

	require.NoError(t, WriteProject(Default()))
	t.Setenv("SIGNUP_POSTS_URL", "https://env.test/posts")
	t.Setenv("SIGNUP_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://env.test/posts", cfg.PostsURL)
	d, err := cfg.RequestTimeout()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, d)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty timeout means none", mutate: func(c *Config) { c.Timeout = "" }},
		{name: "relative submit url", mutate: func(c *Config) { c.SubmitURL = "/submit" }, wantErr: true},
		{name: "empty posts url", mutate: func(c *Config) { c.PostsURL = "" }, wantErr: true},
		{name: "bad timeout", mutate: func(c *Config) { c.Timeout = "soon" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = "-1s" }, wantErr: true},
		{name: "other country code", mutate: func(c *Config) { c.DefaultCountryCode = "+1" }},
		{name: "empty country code", mutate: func(c *Config) { c.DefaultCountryCode = "" }},
		{name: "unsupported country code", mutate: func(c *Config) { c.DefaultCountryCode = "+44" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
