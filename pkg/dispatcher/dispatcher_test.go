package dispatcher

import (
	"testing"

	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/items"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
[information]
name = "dev"

[install]
envrc = [{ raw = "set -o vi" }]
apt = ["curl", "git"]

[install.files]
"conf/app.toml" = { raw = "x = 1" }
"/etc/motd" = "hello"

[install.env]
FOO = "bar"

[install.command]
zeta = "echo z"
alpha = { file = "bin/alpha" }

[install.alias]
ll = "ls -la"
`

func expand(t *testing.T) []items.Item {
	t.Helper()
	cfg, err := config.Parse([]byte(doc), config.FormatTOML)
	require.NoError(t, err)

	return Expand(cfg, Options{
		ConfigDir:  "/configs",
		InstallDir: "/deploy/dev",
		FS:         filesystem.New(afero.NewMemMapFs()),
	})
}

func TestExpand_Order(t *testing.T) {
	got := expand(t)

	var names []string
	for _, item := range got {
		names = append(names, item.String())
	}
	assert.Equal(t, []string{
		"package curl",
		"package git",
		"alias ll",
		"command zeta -> /deploy/dev/bin/zeta",
		"command alpha -> /deploy/dev/bin/alpha",
		"env FOO",
		`rc raw:"set -o vi"`,
		"file conf/app.toml -> /deploy/dev/conf/app.toml",
		"file /etc/motd -> /etc/motd",
	}, names)
}

func TestExpand_Kinds(t *testing.T) {
	var kinds []items.Kind
	for _, item := range expand(t) {
		kinds = append(kinds, item.Kind())
	}
	assert.Equal(t, []items.Kind{
		items.KindPackage, items.KindPackage,
		items.KindAlias,
		items.KindCommand, items.KindCommand,
		items.KindEnv,
		items.KindRc,
		items.KindFile, items.KindFile,
	}, kinds)
}

func TestExpand_CarriesConfigDir(t *testing.T) {
	for _, item := range expand(t) {
		switch it := item.(type) {
		case *items.Command:
			assert.Equal(t, "/configs", it.ConfigDir)
		case *items.File:
			assert.Equal(t, "/configs", it.ConfigDir)
		case *items.RcSnippet:
			assert.Equal(t, "/configs", it.ConfigDir)
		}
	}
}

func TestExpand_Empty(t *testing.T) {
	cfg, err := config.Parse([]byte("[information]\nname = \"empty\"\n"), config.FormatTOML)
	require.NoError(t, err)

	assert.Empty(t, Expand(cfg, Options{InstallDir: "/deploy/empty"}))
}

func TestFileTarget(t *testing.T) {
	assert.Equal(t, "/deploy/dev/a/b", FileTarget("/deploy/dev", "a/b"))
	assert.Equal(t, "/etc/b", FileTarget("/deploy/dev", "/etc/b"))
}
