package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	perrors "github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

const (
	envPrefix      = "PIONEER_"
	settingsEnvVar = "PIONEER_SETTINGS"
)

// Settings are the tool's own knobs, as opposed to configuration documents.
type Settings struct {
	DeployRoot           string `koanf:"deploy_root" validate:"required"`
	ShellRC              string `koanf:"shell_rc" validate:"required"`
	ProfileName          string `koanf:"profile_name" validate:"required,excludesall=/"`
	PackageManager       string `koanf:"package_manager" validate:"required"`
	Escalator            string `koanf:"escalator" validate:"required"`
	PermissionDeniedCode int    `koanf:"permission_denied_code" validate:"min=1,max=255"`
	Shell                string `koanf:"shell" validate:"required"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// SettingsPath returns the settings file location: $PIONEER_SETTINGS when
// set, else settings.toml in the pioneer XDG config directory.
func SettingsPath() string {
	if p := os.Getenv(settingsEnvVar); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "pioneer", "settings.toml")
}

// LoadSettings loads settings from SettingsPath with overrides applied last.
func LoadSettings(overrides map[string]interface{}) (*Settings, error) {
	return LoadSettingsFrom(SettingsPath(), overrides)
}

// LoadSettingsFrom layers the embedded defaults, the file at path (skipped
// when absent), PIONEER_* environment variables and overrides.
func LoadSettingsFrom(path string, overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrInternal, "failed to load default settings")
	}

	// 2. Load settings file if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, perrors.Wrapf(err, perrors.ErrConfigLoad, "failed to load settings from %s", path).
					WithDetail("path", path)
			}
			log.Debug().Str("path", path).Msg("Loaded settings file")
		}
	}

	// 3. Load env vars
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load settings from environment")
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, perrors.Wrap(err, perrors.ErrInternal, "failed to apply settings overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigValid, "failed to decode settings")
	}

	if err := validate.Struct(s); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigValid, "invalid settings")
	}

	return &s, nil
}
