package pioneer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "pioneer", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"install", "uninstall", "check", "fmt", "schema", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	for _, name := range []string{"verbose", "settings", "deploy-root", "shell-rc"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestLoadSettings_FlagOverrides(t *testing.T) {
	t.Setenv("PIONEER_DEPLOY_ROOT", "/from/env")
	flags := &globalFlags{
		settings:   t.TempDir() + "/missing.toml",
		deployRoot: "/from/flag",
	}

	s, err := flags.loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", s.DeployRoot)
	assert.Equal(t, "~/.bashrc", s.ShellRC)
}
