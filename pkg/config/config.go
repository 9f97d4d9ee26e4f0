package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/launchpath/appicon/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile overrides the config file location
	EnvConfigFile = "APPICON_CONFIG"

	// EnvPrefix is the prefix for all settings overrides, e.g.
	// APPICON_PIXMAPS_DIR
	EnvPrefix = "APPICON_"
)

// ConfigFileName is the name of the optional user configuration file,
// looked up under the XDG config directory.
const ConfigFileName = "appicon.toml"

// Settings holds the resolver's configurable knobs. The defaults
// reproduce the conventional freedesktop layout; changing them does
// not alter resolution semantics, only where the resolver looks.
type Settings struct {
	// Themes lists the icon theme names searched under <root>/icons,
	// in discovery order.
	Themes []string `koanf:"themes"`

	// IconsDir is the generic icons directory name under the base root.
	IconsDir string `koanf:"icons_dir"`

	// PixmapsDir is the pixmaps fallback directory name. A trailing
	// separator is permitted and normalized away during joining.
	PixmapsDir string `koanf:"pixmaps_dir"`

	// Extensions is the ordered set of image extensions probed for
	// extensionless icon names. Order encodes format preference.
	Extensions []string `koanf:"extensions"`

	// Context is the index.theme Context value a stanza must carry.
	Context string `koanf:"context"`
}

// Default returns the built-in settings without consulting the config
// file or environment. Library callers that only want spec-default
// behavior use this.
func Default() Settings {
	s, _ := load(false)
	return s
}

// Load returns settings layered from the embedded defaults, the user
// config file (if any), and APPICON_* environment variables.
func Load() (Settings, error) {
	return load(true)
}

func load(withOverrides bool) (Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if withOverrides {
		// 2. User config file, if one exists
		if path := findConfigFile(); path != "" {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return Settings{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
			}
		}

		// 3. Environment overrides. List-valued keys accept
		// comma-separated values.
		envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
			name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			switch name {
			case "themes", "extensions":
				return name, splitList(value)
			}
			return name, value
		})
		if err := k.Load(envProvider, nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	return s, nil
}

// findConfigFile returns the config file path to load, or "" when no
// file exists. APPICON_CONFIG takes precedence over the XDG location.
func findConfigFile() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	path := filepath.Join(xdg.ConfigHome, "appicon", ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
