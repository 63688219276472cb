// Package dispatcher expands a parsed configuration into its install items.
//
// Categories are expanded in the fixed order apt, alias, command, env, envrc,
// files, and entries within a category in declaration order. Every entry
// becomes exactly one item.
package dispatcher

import (
	"path/filepath"

	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/items"
	"github.com/arthur-debert/pioneer/pkg/paths"
	"github.com/arthur-debert/pioneer/pkg/types"
)

// Options carries what items need beyond the config itself.
type Options struct {
	// ConfigDir is the directory of the config file; relative content paths
	// resolve against it.
	ConfigDir string
	// InstallDir is <deploy-root>/<name>.
	InstallDir string
	Packages   items.PackageInstaller
	FS         *filesystem.FS
}

// Expand returns the install items of cfg in dispatch order.
func Expand(cfg *types.Config, opts Options) []items.Item {
	l := cfg.Install
	out := make([]items.Item, 0, len(l.Apt)+l.Alias.Len()+l.Command.Len()+l.Env.Len()+len(l.Envrc)+l.Files.Len())

	for _, name := range l.Apt {
		out = append(out, items.NewPackage(name, opts.Packages))
	}

	for _, e := range l.Alias.Entries() {
		out = append(out, items.NewAlias(e.Key, e.Value))
	}

	binDir := filepath.Join(opts.InstallDir, paths.BinDirName)
	for _, e := range l.Command.Entries() {
		out = append(out, items.NewCommand(e.Key, e.Value, opts.ConfigDir, filepath.Join(binDir, e.Key), opts.FS))
	}

	for _, e := range l.Env.Entries() {
		out = append(out, items.NewEnvVar(e.Key, e.Value))
	}

	for _, c := range l.Envrc {
		out = append(out, items.NewRcSnippet(c, opts.ConfigDir, opts.FS))
	}

	for _, e := range l.Files.Entries() {
		out = append(out, items.NewFile(e.Key, e.Value, opts.ConfigDir, FileTarget(opts.InstallDir, e.Key), opts.FS))
	}

	return out
}

// FileTarget is installDir/path for a relative path and path itself otherwise.
func FileTarget(installDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(installDir, path)
}
