package config

import (
	"strings"
	"testing"

	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() *types.Config {
	cfg := &types.Config{
		Info: types.Info{
			Name:         "dev",
			Description:  "it's a \"dev\" box",
			InstallWhile: "test -f /etc/debian_version",
		},
	}
	l := &cfg.Install
	l.Apt = []string{"curl", "git"}
	l.Alias.Set("zz", "ls -la")
	l.Alias.Set("ll", "ls -l | grep 'x'")
	l.Command.Set("hello", types.StringContent("#!/bin/sh\necho hello\n"))
	l.Command.Set("boxed", types.ObjectContent(types.RawContent("echo boxed")))
	l.Command.Set("tool", types.ObjectContent(types.FileContent("bin/tool")))
	l.Env.Set("PAGER", "less")
	l.Env.Set("EDITOR", "vim")
	l.Envrc = []types.Content{types.RawContent("set -o vi"), types.FileContent("rc/prompt.sh")}
	l.Files.Set("conf/app.toml", types.ObjectContent(types.RawContent("x = 1")))
	l.Files.Set("/etc/motd", types.StringContent("true"))
	l.Files.Set("remote", types.ObjectContent(types.URLContent("https://example.com/r")))
	return cfg
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			cfg := sampleConfig()

			data, err := Encode(cfg, format)
			require.NoError(t, err)

			back, err := Parse(data, format)
			require.NoError(t, err, string(data))
			assert.Equal(t, cfg, back, string(data))
		})
	}
}

func TestEncode_MinimalRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			cfg := &types.Config{Info: types.Info{Name: "bare"}}

			data, err := Encode(cfg, format)
			require.NoError(t, err)

			back, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg, back)
		})
	}
}

func TestEncode_TOMLSectionLayout(t *testing.T) {
	data, err := Encode(sampleConfig(), FormatTOML)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "[information]\n")
	assert.Contains(t, out, "[install]\n")
	assert.Contains(t, out, "[install.alias]\n")
	assert.Contains(t, out, "[install.command]\n")
	assert.Contains(t, out, "[install.env]\n")
	assert.Contains(t, out, "[install.files]\n")
	assert.Less(t, strings.Index(out, "PAGER"), strings.Index(out, "EDITOR"))
}

func TestEncode_TranscodesBetweenFormats(t *testing.T) {
	cfg, err := Parse([]byte(fullTOML), FormatTOML)
	require.NoError(t, err)

	data, err := Encode(cfg, FormatYAML)
	require.NoError(t, err)

	back, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
