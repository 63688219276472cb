package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/spf13/afero"
)

const (
	dirMode  fs.FileMode = 0755
	fileMode fs.FileMode = 0644
)

// FS wraps an afero filesystem with pioneer's file primitives.
type FS struct {
	fs afero.Fs
}

// New wraps fsys.
func New(fsys afero.Fs) *FS {
	return &FS{fs: fsys}
}

// NewOS returns primitives backed by the OS filesystem.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// Afero exposes the underlying filesystem.
func (f *FS) Afero() afero.Fs {
	return f.fs
}

// Exists reports whether anything exists at path.
func (f *FS) Exists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (f *FS) IsDir(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is an existing regular file.
func (f *FS) IsFile(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the contents of path.
func (f *FS) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}
	return data, nil
}

// Mkdir creates path and any missing parents. An existing directory is fine;
// anything else already at path is an error.
func (f *FS) Mkdir(path string) error {
	if !f.Exists(path) {
		if err := f.fs.MkdirAll(path, dirMode); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", path).
				WithDetail("path", path)
		}
	}
	if !f.IsDir(path) {
		return errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", path).
			WithDetail("path", path)
	}
	return nil
}

// Write stores data at path, creating parent directories. When mode is given
// the file is chmod-ed to it afterwards, so an existing file's bits change too.
func (f *FS) Write(path string, data []byte, mode *fs.FileMode) error {
	if err := f.Mkdir(filepath.Dir(path)); err != nil {
		return err
	}

	perm := fileMode
	if mode != nil {
		perm = *mode
	}
	if err := afero.WriteFile(f.fs, path, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	if mode != nil {
		if err := f.fs.Chmod(path, *mode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to set permissions of %s", path).
				WithDetail("path", path)
		}
	}
	return nil
}

// Copy copies the regular file src to dst keeping src's permission bits.
// When dst is an existing directory the file lands inside it under its own
// name. Returns the path written.
func (f *FS) Copy(src, dst string) (string, error) {
	info, err := f.fs.Stat(src)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", src).
			WithDetail("path", src)
	}
	if !info.Mode().IsRegular() {
		return "", errors.Newf(errors.ErrFileAccess, "%s is not a regular file", src).
			WithDetail("path", src)
	}

	if f.IsDir(dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	} else if err := f.Mkdir(filepath.Dir(dst)); err != nil {
		return "", err
	}

	in, err := f.fs.Open(src)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", src).
			WithDetail("path", src)
	}
	defer func() { _ = in.Close() }()

	// The previous copy may carry read-only bits, so it is replaced rather
	// than truncated.
	if f.IsFile(dst) {
		if err := f.fs.Remove(dst); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", dst).
				WithDetail("path", dst)
		}
	}

	perm := info.Mode().Perm()
	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dst).
			WithDetail("path", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s to %s", src, dst).
			WithDetail("path", dst)
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to close %s", dst).
			WithDetail("path", dst)
	}

	if err := f.fs.Chmod(dst, perm); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to copy permissions to %s", dst).
			WithDetail("path", dst)
	}
	return dst, nil
}

// RemoveAll removes path and everything below it. A missing path is not an error.
func (f *FS) RemoveAll(path string) error {
	if err := f.fs.RemoveAll(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Mode returns a pointer to m, for Write.
func Mode(m fs.FileMode) *fs.FileMode {
	return &m
}
