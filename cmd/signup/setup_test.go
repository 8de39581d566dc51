package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/mark3labs/signup/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSetupWith(t *testing.T, project, force bool) (string, error) {
	t.Helper()
	setupFlags.project, setupFlags.force = project, force
	t.Cleanup(func() { setupFlags.project, setupFlags.force = false, false })

	var out bytes.Buffer
	setupCmd.SetOut(&out)
	err := runSetup(setupCmd, nil)
	return out.String(), err
}

func TestSetup_Global(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out, err := runSetupWith(t, false, false)
	require.NoError(t, err)
	assert.Contains(t, out, config.GlobalPath())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSubmitURL, cfg.SubmitURL)

	_, err = runSetupWith(t, false, false)
	assert.ErrorContains(t, err, "already exists")

	_, err = runSetupWith(t, false, true)
	assert.NoError(t, err)
}

func TestSetup_Project(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := runSetupWith(t, true, false)
	require.NoError(t, err)

	_, err = os.Stat(config.ProjectPath())
	assert.NoError(t, err)
}
