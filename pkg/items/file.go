package items

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/types"
)

// File places content at a path, under the install directory when the
// declared path is relative.
type File struct {
	Path      string
	Content   types.ContentOrString
	ConfigDir string
	Target    string
	fs        *filesystem.FS
}

func NewFile(path string, content types.ContentOrString, configDir, target string, fs *filesystem.FS) *File {
	return &File{Path: path, Content: content, ConfigDir: configDir, Target: target, fs: fs}
}

func (f *File) Kind() Kind { return KindFile }

func (f *File) String() string { return "file " + f.Path + " -> " + f.Target }

// Validate only reads. The target is first created by Apply.
func (f *File) Validate(context.Context) error {
	if err := checkContent(f.fs, f.ConfigDir, f.Content.Content); err != nil {
		return err
	}
	return checkTarget(f.fs, f.Target)
}

func (f *File) Apply(context.Context) (types.Installed, error) {
	if err := f.fs.Mkdir(filepath.Dir(f.Target)); err != nil {
		return types.Installed{}, err
	}
	if err := install(f.fs, f.ConfigDir, f.Content.Content, f.Target, regularMode); err != nil {
		return types.Installed{}, err
	}
	return types.NewFileWritten(f.Target), nil
}
