package config

import (
	"testing"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullTOML = `
[information]
name = "dev"
description = "dev box"
install_while = "test -f /etc/debian_version"

[install]
apt = ["curl", "git"]
envrc = [{ raw = "set -o vi" }, { file = "rc/prompt.sh" }]

[install.alias]
zz = "ls -la"
ll = "ls -l"
aa = "ls -a"

[install.command]
hello = "echo hello"
tool = { file = "bin/tool" }
boxed = { raw = "echo boxed" }

[install.env]
EDITOR = "vim"
PAGER = "less"

[install.files]
"conf/app.toml" = { raw = "x = 1" }
"/etc/motd" = "hello"
`

func TestParse_TOML(t *testing.T) {
	cfg, err := Parse([]byte(fullTOML), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, types.Info{
		Name:         "dev",
		Description:  "dev box",
		InstallWhile: "test -f /etc/debian_version",
	}, cfg.Info)

	assert.Equal(t, []string{"curl", "git"}, cfg.Install.Apt)
	assert.Equal(t, []types.Content{
		types.RawContent("set -o vi"),
		types.FileContent("rc/prompt.sh"),
	}, cfg.Install.Envrc)

	// declaration order, not sorted
	assert.Equal(t, []string{"zz", "ll", "aa"}, cfg.Install.Alias.Keys())
	assert.Equal(t, []string{"hello", "tool", "boxed"}, cfg.Install.Command.Keys())
	assert.Equal(t, []string{"EDITOR", "PAGER"}, cfg.Install.Env.Keys())
	assert.Equal(t, []string{"conf/app.toml", "/etc/motd"}, cfg.Install.Files.Keys())

	hello, _ := cfg.Install.Command.Get("hello")
	assert.Equal(t, types.StringContent("echo hello"), hello)
	tool, _ := cfg.Install.Command.Get("tool")
	assert.Equal(t, types.ObjectContent(types.FileContent("bin/tool")), tool)
	boxed, _ := cfg.Install.Command.Get("boxed")
	assert.Equal(t, types.ObjectContent(types.RawContent("echo boxed")), boxed)
}

func TestParse_AbsentSectionsAreEmpty(t *testing.T) {
	cfg, err := Parse([]byte("[information]\nname = \"bare\"\n"), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "bare", cfg.Info.Name)
	assert.True(t, cfg.Install.IsEmpty())
	assert.Nil(t, cfg.Install.Apt)
	assert.Equal(t, types.InstallList{}, cfg.Install)
}

func TestParse_LegacyInformationSpelling(t *testing.T) {
	cfg, err := Parse([]byte("[infomation]\nname = \"old\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "old", cfg.Info.Name)

	both := "[information]\nname = \"new\"\n[infomation]\nname = \"old\"\n"
	cfg, err = Parse([]byte(both), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "new", cfg.Info.Name)
}

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	doc := `
future = true

[information]
name = "dev"
owner = "someone"

[install]
brew = ["jq"]

[install.env]
FOO = "bar"
`
	cfg, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Info.Name)
	v, ok := cfg.Install.Env.Get("FOO")
	assert.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains string
	}{
		{
			name:     "malformed toml",
			doc:      "[information\nname = 1",
			contains: "malformed",
		},
		{
			name:     "non string name",
			doc:      "[information]\nname = 1\n",
			contains: "information.name must be a string",
		},
		{
			name:     "apt not a list",
			doc:      "[install]\napt = \"curl\"\n",
			contains: "install.apt must be a list of strings",
		},
		{
			name:     "env value not a string",
			doc:      "[install.env]\nFOO = 1\n",
			contains: "install.env.FOO must be a string",
		},
		{
			name:     "content with two sources",
			doc:      "[install.command]\nx = { raw = \"a\", file = \"b\" }\n",
			contains: "more than one",
		},
		{
			name:     "content with no source",
			doc:      "[install.command]\nx = { text = \"a\" }\n",
			contains: "must declare one of raw, file or url",
		},
		{
			name:     "envrc plain string",
			doc:      "[install]\nenvrc = [\"set -o vi\"]\n",
			contains: "install.envrc[0]",
		},
		{
			name:     "content with extra key",
			doc:      "[install.files]\nx = { raw = \"a\", mode = \"0644\" }\n",
			contains: "unexpected keys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatTOML)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_UrlContentIsAccepted(t *testing.T) {
	cfg, err := Parse([]byte("[install.files]\nx = { url = \"https://example.com/x\" }\n"), FormatTOML)
	require.NoError(t, err)

	x, ok := cfg.Install.Files.Get("x")
	require.True(t, ok)
	assert.Equal(t, types.ContentURL, x.Kind)
}

func TestParse_YAML(t *testing.T) {
	doc := `
information:
  name: dev
  description: dev box
install:
  apt: [curl, git]
  alias:
    zz: ls -la
    aa: ls -a
  command:
    hello: echo hello
    tool:
      file: bin/tool
  env:
    FOO: bar
  envrc:
    - raw: set -o vi
  files:
    conf/app.toml:
      raw: "x = 1"
`
	cfg, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Info.Name)
	assert.Equal(t, []string{"curl", "git"}, cfg.Install.Apt)
	assert.Equal(t, []string{"zz", "aa"}, cfg.Install.Alias.Keys())
	tool, _ := cfg.Install.Command.Get("tool")
	assert.Equal(t, types.ObjectContent(types.FileContent("bin/tool")), tool)
	assert.Equal(t, []types.Content{types.RawContent("set -o vi")}, cfg.Install.Envrc)
	app, _ := cfg.Install.Files.Get("conf/app.toml")
	assert.Equal(t, types.ObjectContent(types.RawContent("x = 1")), app)
}

func TestParse_YAMLRejectsNonMappingRoot(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"), FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestParse_YAMLEmptyDocument(t *testing.T) {
	cfg, err := Parse([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, &types.Config{}, cfg)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("dev.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("dev"))
	assert.Equal(t, FormatYAML, FormatForPath("dev.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("DEV.YML"))

	_, err := ParseFormat("json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
