package items

import (
	"context"

	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/types"
)

// RcSnippet adds shell code, literal or read from a file, to the generated profile.
type RcSnippet struct {
	Content   types.Content
	ConfigDir string
	fs        *filesystem.FS
}

func NewRcSnippet(content types.Content, configDir string, fs *filesystem.FS) *RcSnippet {
	return &RcSnippet{Content: content, ConfigDir: configDir, fs: fs}
}

func (r *RcSnippet) Kind() Kind { return KindRc }

func (r *RcSnippet) String() string { return "rc " + r.Content.String() }

func (r *RcSnippet) Validate(context.Context) error {
	return checkContent(r.fs, r.ConfigDir, r.Content)
}

func (r *RcSnippet) Apply(context.Context) (types.Installed, error) {
	data, err := readContent(r.fs, r.ConfigDir, r.Content)
	if err != nil {
		return types.Installed{}, err
	}
	return types.NewRcLine(string(data)), nil
}
