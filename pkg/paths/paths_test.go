package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.distro", filepath.Join(home, ".distro")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := New(Layout{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".distro"), p.DeployRoot())
	assert.Equal(t, filepath.Join(home, ".bashrc"), p.ShellRC())
	assert.Equal(t, filepath.Join(home, ".distro", "allrc"), p.ProfilePath())
	assert.Equal(t, filepath.Join(home, ".distro", "dev"), p.InstallDir("dev"))
	assert.Equal(t, filepath.Join(home, ".distro", "dev", "bin"), p.BinDir("dev"))
}

func TestNew_Custom(t *testing.T) {
	root := t.TempDir()

	p, err := New(Layout{
		DeployRoot:  filepath.Join(root, "deploy", "..", "deploy"),
		ShellRC:     filepath.Join(root, "rc"),
		ProfileName: "profile.sh",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "deploy"), p.DeployRoot())
	assert.Equal(t, filepath.Join(root, "deploy", "profile.sh"), p.ProfilePath())
	assert.Equal(t, filepath.Join(root, "rc"), p.ShellRC())
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(Layout{DeployRoot: "/"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = New(Layout{DeployRoot: t.TempDir(), ProfileName: "a/b"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFromSettings(t *testing.T) {
	root := t.TempDir()

	p, err := FromSettings(&config.Settings{
		DeployRoot:  root,
		ShellRC:     filepath.Join(root, ".bashrc"),
		ProfileName: "allrc",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "allrc"), p.ProfilePath())
}

func TestConfigDir(t *testing.T) {
	dir, err := ConfigDir("/etc/pioneer/dev.toml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/pioneer", dir)

	dir, err = ConfigDir("dev.toml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
