package items

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/types"
)

// Command installs an executable into the config's bin directory, which the
// generated profile puts on PATH.
type Command struct {
	Name      string
	Content   types.ContentOrString
	ConfigDir string
	// Target is <install-dir>/bin/<name>.
	Target string
	fs     *filesystem.FS
}

func NewCommand(name string, content types.ContentOrString, configDir, target string, fs *filesystem.FS) *Command {
	return &Command{Name: name, Content: content, ConfigDir: configDir, Target: target, fs: fs}
}

func (c *Command) Kind() Kind { return KindCommand }

func (c *Command) String() string { return "command " + c.Name + " -> " + c.Target }

func (c *Command) Validate(context.Context) error {
	log.Debug().Str("command", c.Name).Msg("Checking command")

	if err := checkIdentifier(KindCommand, c.Name); err != nil {
		return err
	}
	if err := checkContent(c.fs, c.ConfigDir, c.Content.Content); err != nil {
		return err
	}
	return checkTarget(c.fs, c.Target)
}

// Apply writes raw content as an executable, or copies a File source with its
// own permissions.
func (c *Command) Apply(context.Context) (types.Installed, error) {
	dir := filepath.Dir(c.Target)
	if err := c.fs.Mkdir(dir); err != nil {
		return types.Installed{}, err
	}
	if err := install(c.fs, c.ConfigDir, c.Content.Content, c.Target, executableMode); err != nil {
		return types.Installed{}, err
	}
	return types.NewPathContribution(dir), nil
}
