package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Defaults used when a field is left empty.
const (
	DefaultDeployRoot  = "~/.distro"
	DefaultShellRC     = "~/.bashrc"
	DefaultProfileName = "allrc"

	// BinDirName is the per-config directory receiving command items.
	BinDirName = "bin"
)

// Paths is the deploy layout of one run.
type Paths interface {
	DeployRoot() string
	InstallDir(configName string) string
	BinDir(configName string) string
	ProfilePath() string
	ShellRC() string
}

// Layout holds the inputs of New. Empty fields take the defaults.
type Layout struct {
	DeployRoot  string
	ShellRC     string
	ProfileName string
}

type paths struct {
	deployRoot  string
	shellRC     string
	profileName string
}

// New normalizes layout into a Paths.
func New(layout Layout) (Paths, error) {
	if layout.DeployRoot == "" {
		layout.DeployRoot = DefaultDeployRoot
	}
	if layout.ShellRC == "" {
		layout.ShellRC = DefaultShellRC
	}
	if layout.ProfileName == "" {
		layout.ProfileName = DefaultProfileName
	}
	if strings.ContainsRune(layout.ProfileName, filepath.Separator) {
		return nil, errors.Newf(errors.ErrInvalidInput, "profile name %q must not contain a path separator", layout.ProfileName).
			WithDetail("profile_name", layout.ProfileName)
	}

	root, err := NormalizePath(layout.DeployRoot)
	if err != nil {
		return nil, err
	}
	rc, err := NormalizePath(layout.ShellRC)
	if err != nil {
		return nil, err
	}
	if root == "/" {
		return nil, errors.New(errors.ErrInvalidInput, "deploy root must not be the filesystem root").
			WithDetail("deploy_root", layout.DeployRoot)
	}

	return &paths{
		deployRoot:  root,
		shellRC:     rc,
		profileName: layout.ProfileName,
	}, nil
}

// FromSettings builds the layout described by tool settings.
func FromSettings(s *config.Settings) (Paths, error) {
	return New(Layout{
		DeployRoot:  s.DeployRoot,
		ShellRC:     s.ShellRC,
		ProfileName: s.ProfileName,
	})
}

func (p *paths) DeployRoot() string {
	return p.deployRoot
}

// InstallDir returns <deploy-root>/<configName>.
func (p *paths) InstallDir(configName string) string {
	return filepath.Join(p.deployRoot, configName)
}

// BinDir returns <deploy-root>/<configName>/bin.
func (p *paths) BinDir(configName string) string {
	return filepath.Join(p.InstallDir(configName), BinDirName)
}

func (p *paths) ProfilePath() string {
	return filepath.Join(p.deployRoot, p.profileName)
}

func (p *paths) ShellRC() string {
	return p.shellRC
}

// ConfigDir returns the absolute directory holding the config file at
// configPath. Relative content paths of that config resolve against it.
func ConfigDir(configPath string) (string, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", configPath).
			WithDetail("path", configPath)
	}
	return filepath.Dir(abs), nil
}

// NormalizePath expands a leading ~, makes path absolute and cleans it.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	// Expand home directory
	expanded := ExpandHome(path)

	// Make absolute
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	// Clean the path
	return filepath.Clean(abs), nil
}

// ExpandHome replaces a leading ~ or ~/ with the user's home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
