package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/paths"
)

// TestEnvironment is an isolated home directory for one test.
type TestEnvironment struct {
	t *testing.T

	// Home holds the deploy root, the startup file and ConfigDir.
	Home      string
	ConfigDir string

	Paths    paths.Paths
	FS       *filesystem.FS
	Packages *MockPackages
	Gate     MockGate
}

// NewTestEnvironment lays out a home under t.TempDir with the deploy root
// at ~/.distro and the startup file at ~/.bashrc. Neither exists yet. The
// mock package manager knows curl and git.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	p, err := paths.New(paths.Layout{
		DeployRoot: filepath.Join(home, ".distro"),
		ShellRC:    filepath.Join(home, ".bashrc"),
	})
	if err != nil {
		t.Fatalf("Failed to build paths: %v", err)
	}

	return &TestEnvironment{
		t:         t,
		Home:      home,
		ConfigDir: CreateDir(t, home, "configs"),
		Paths:     p,
		FS:        filesystem.NewOS(),
		Packages:  NewMockPackages("curl", "git"),
		Gate:      MockGate{},
	}
}

// WriteConfig writes content at rel under ConfigDir and returns its path.
func (env *TestEnvironment) WriteConfig(rel, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.ConfigDir, rel, content)
}
