package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/configs/dev.toml", []byte("[information]\nname = \"dev\"\n"), 0644))
	fsys := filesystem.New(mem)

	cfg, err := LoadFS(fsys, "/configs/dev.toml")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Info.Name)

	// the OS filesystem is never consulted
	_, err = LoadFS(fsys, "/configs/missing.toml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
	assert.Equal(t, "/configs/missing.toml", errors.GetErrorDetails(err)["path"])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, dir, "dev.toml", "[information]\nname = \"dev\"\n")
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.Info.Name)
	})

	t.Run("yaml by extension", func(t *testing.T) {
		path := writeFile(t, dir, "dev.yml", "information:\n  name: dev\n")
		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "dev", cfg.Info.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.toml")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, dir, "bad.toml", "[information\n")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
		assert.Contains(t, err.Error(), path)
	})
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		info    types.Info
		wantErr bool
	}{
		{name: "valid", info: types.Info{Name: "dev"}},
		{name: "dotted name", info: types.Info{Name: "dev.box"}},
		{name: "missing name", info: types.Info{}, wantErr: true},
		{name: "slash", info: types.Info{Name: "a/b"}, wantErr: true},
		{name: "dot", info: types.Info{Name: "."}, wantErr: true},
		{name: "dot dot", info: types.Info{Name: ".."}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(&types.Config{Info: tt.info})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_ChecksInformation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "noname.toml", "[install]\napt = [\"curl\"]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), "name is required")
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", "[information]\nname = \"good\"\n")
	bad := writeFile(t, dir, "bad.toml", "[information]\nname = 3\n")
	missing := filepath.Join(dir, "missing.toml")

	reports := CheckFiles([]string{good, bad, missing})
	require.Len(t, reports, 3)

	assert.NoError(t, reports[0].Err)
	assert.Equal(t, "good", reports[0].Config.Info.Name)
	assert.True(t, errors.IsErrorCode(reports[1].Err, errors.ErrConfigParse))
	assert.True(t, errors.IsErrorCode(reports[2].Err, errors.ErrConfigLoad))
	assert.Equal(t, 2, Failed(reports))
}
