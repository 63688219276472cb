package items

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/arthur-debert/pioneer/pkg/types"
)

var log = logging.GetLogger("items")

// Kind names an install item variant.
type Kind string

const (
	KindPackage Kind = "package"
	KindAlias   Kind = "alias"
	KindEnv     Kind = "env"
	KindRc      Kind = "rc"
	KindCommand Kind = "command"
	KindFile    Kind = "file"
)

// Item is one unit of deployment work derived from one configuration entry.
type Item interface {
	Kind() Kind
	String() string
	Validate(ctx context.Context) error
	Apply(ctx context.Context) (types.Installed, error)
}

// PackageInstaller is the package-manager context package items run against.
type PackageInstaller interface {
	Check(ctx context.Context, name string) error
	Install(ctx context.Context, name string) error
}

const (
	executableMode os.FileMode = 0755
	regularMode    os.FileMode = 0644
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidIdentifier reports whether name may be used as an alias, env or
// command name.
func ValidIdentifier(name string) bool {
	return name != "" && !strings.Contains(name, "=") && identifierPattern.MatchString(name)
}

func checkIdentifier(kind Kind, name string) error {
	if ValidIdentifier(name) {
		return nil
	}
	return errors.Newf(errors.ErrValidation,
		"invalid %s name %q: only letters, digits, underscores and hyphens are allowed, and it must not start with a digit or hyphen",
		kind, name).
		WithDetail("identifier", name)
}

// sourcePath resolves a File content path against the config directory.
func sourcePath(configDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}

// checkContent verifies that content can be read at apply time.
func checkContent(fs *filesystem.FS, configDir string, content types.Content) error {
	switch content.Kind {
	case types.ContentRaw:
		return nil
	case types.ContentFile:
		path := sourcePath(configDir, content.Value)
		if !fs.Exists(path) {
			return errors.Newf(errors.ErrValidation, "%s does not exist", path).
				WithDetail("path", path)
		}
		if !fs.IsFile(path) {
			return errors.Newf(errors.ErrValidation, "%s is not a file", path).
				WithDetail("path", path)
		}
		return nil
	case types.ContentURL:
		return unsupported(content)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown content kind %q", content.Kind)
	}
}

// readContent returns the bytes content stands for.
func readContent(fs *filesystem.FS, configDir string, content types.Content) ([]byte, error) {
	switch content.Kind {
	case types.ContentRaw:
		return []byte(content.Value), nil
	case types.ContentFile:
		return fs.ReadFile(sourcePath(configDir, content.Value))
	case types.ContentURL:
		return nil, unsupported(content)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown content kind %q", content.Kind)
	}
}

func unsupported(content types.Content) error {
	return errors.Newf(errors.ErrUnsupported, "unsupported content source %s", content).
		WithDetail("url", content.Value)
}

// checkTarget rejects a target path occupied by a directory.
func checkTarget(fs *filesystem.FS, target string) error {
	if fs.IsDir(target) {
		return errors.Newf(errors.ErrValidation, "%s is a directory", target).
			WithDetail("path", target)
	}
	return nil
}

// install puts content at target: raw text is written with mode, a File
// source is copied keeping its own permissions.
func install(fs *filesystem.FS, configDir string, content types.Content, target string, mode os.FileMode) error {
	switch content.Kind {
	case types.ContentFile:
		_, err := fs.Copy(sourcePath(configDir, content.Value), target)
		return err
	default:
		data, err := readContent(fs, configDir, content)
		if err != nil {
			return err
		}
		return fs.Write(target, data, filesystem.Mode(mode))
	}
}
