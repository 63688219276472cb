package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoadFile reads and parses the document at path on the OS filesystem.
func LoadFile(path string) (*types.Config, error) {
	return LoadFileFS(filesystem.NewOS(), path)
}

// LoadFileFS reads and parses the document at path through fsys. Errors carry
// the path in their "path" detail.
func LoadFileFS(fsys *filesystem.FS, path string) (*types.Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path).
			WithDetail("path", path)
	}

	cfg, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "%s is invalid", path).
			WithDetail("path", path)
	}

	log.Debug().
		Str("path", path).
		Str("name", cfg.Info.Name).
		Msg("Loaded configuration")
	return cfg, nil
}

// Load is LoadFile followed by Check.
func Load(path string) (*types.Config, error) {
	return LoadFS(filesystem.NewOS(), path)
}

// LoadFS is LoadFileFS followed by Check.
func LoadFS(fsys *filesystem.FS, path string) (*types.Config, error) {
	cfg, err := LoadFileFS(fsys, path)
	if err != nil {
		return nil, err
	}
	if err := Check(cfg); err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Check validates the information table. Install entries are validated by
// their install items.
func Check(cfg *types.Config) error {
	err := validate.Struct(cfg.Info)
	if err == nil {
		return nil
	}

	var problems []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			problems = append(problems, describeFieldError(fe))
		}
	} else {
		problems = append(problems, err.Error())
	}
	return errors.Wrapf(err, errors.ErrConfigValid, "invalid information table: %s", strings.Join(problems, "; ")).
		WithDetail("name", cfg.Info.Name)
}

func describeFieldError(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "excludesall":
		return fmt.Sprintf("%s must not contain %q", field, fe.Param())
	case "ne":
		return fmt.Sprintf("%s must not be %q", field, fe.Param())
	default:
		return fmt.Sprintf("%s fails %s", field, fe.Tag())
	}
}

func fieldName(goName string) string {
	switch goName {
	case "Name":
		return "name"
	case "InstallWhile":
		return "install_while"
	case "Description":
		return "description"
	default:
		return goName
	}
}

// Report is the outcome of checking one file.
type Report struct {
	Path   string
	Config *types.Config
	Err    error
}

// CheckFiles loads every path without stopping at the first failure.
// Nothing beyond the documents themselves is inspected.
func CheckFiles(paths []string) []Report {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		cfg, err := Load(path)
		reports = append(reports, Report{Path: path, Config: cfg, Err: err})
	}
	return reports
}

// Failed counts the reports carrying an error.
func Failed(reports []Report) int {
	n := 0
	for _, r := range reports {
		if r.Err != nil {
			n++
		}
	}
	return n
}
