package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "a/b/c.txt", "content")
	assert.Equal(t, filepath.Join(dir, "a", "b", "c.txt"), path)
	assert.True(t, FileExists(t, path))
	assert.False(t, FileExists(t, filepath.Join(dir, "a")))
	assert.True(t, PathExists(t, filepath.Join(dir, "a")))
	assert.Equal(t, "content", ReadFile(t, path))

	require.NoError(t, os.Chmod(path, 0600))
	assert.Equal(t, os.FileMode(0600), FileMode(t, path))
}

func TestMockPackages(t *testing.T) {
	m := NewMockPackages("curl")
	m.Failing["curl"] = true
	ctx := context.Background()

	assert.NoError(t, m.Check(ctx, "curl"))
	err := m.Check(ctx, "git")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, []string{"curl", "git"}, m.Checked)

	err = m.Install(ctx, "curl")
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalTool))
	assert.Empty(t, m.Installed)
}

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	assert.Equal(t, filepath.Join(env.Home, ".distro"), env.Paths.DeployRoot())
	assert.Equal(t, filepath.Join(env.Home, ".bashrc"), env.Paths.ShellRC())
	assert.False(t, PathExists(t, env.Paths.DeployRoot()))

	path := env.WriteConfig("dev.toml", "x")
	assert.Equal(t, filepath.Join(env.ConfigDir, "dev.toml"), path)
	assert.False(t, env.Gate.Allows(context.Background(), "true"))
}
