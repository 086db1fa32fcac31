// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SFXPOOL_OUTPUT_BACKEND.
const EnvPrefix = "SFXPOOL"

// Load reads the config file at path (YAML, TOML or JSON by extension),
// applies environment overrides and defaults, and appends the sounds of
// the manifest when one is named. An empty path loads defaults and
// environment only. The result is validated.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault("assets_dir", def.AssetsDir)
	v.SetDefault("manifest", def.Manifest)
	v.SetDefault("stop_policy", def.StopPolicy)
	v.SetDefault("output.backend", def.Output.Backend)
	v.SetDefault("output.sample_rate", def.Output.SampleRate)
	v.SetDefault("output.channels", def.Output.Channels)

	base := ""
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		base = filepath.Dir(path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}

	cfg.AssetsDir = relativeTo(base, cfg.AssetsDir)

	if cfg.Manifest != "" {
		cfg.Manifest = relativeTo(base, cfg.Manifest)

		sounds, err := ReadManifest(cfg.Manifest)
		if err != nil {
			return Config{}, err
		}
		cfg.Sounds = append(cfg.Sounds, sounds...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func relativeTo(base, p string) string {
	if p == "" || base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// WriteDefault writes the commented default config to path. It never
// overwrites an existing file.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.WriteString(DefaultTemplate()); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

// DefaultTemplate returns the default config as YAML with comments.
func DefaultTemplate() string {
	return `# sfxpool configuration

# Sound paths are relative to this directory (relative to this file).
# assets_dir: assets

# Optional YAML file with more sounds, same format as the list below.
# manifest: sounds.yaml

# What stop-all does to voices that are still counting down:
#   force-expire - free them immediately (default)
#   mute-only    - keep them busy until their time runs out
stop_policy: force-expire

output:
  backend: oto        # oto, ebiten or headless
  sample_rate: 44100
  channels: 2         # ebiten requires 2

# Every sound gets max_concurrency voices (default 10). Voice i plays at
# base_volume * ratio^i, where the ratio keeps the sum of all voices at
# 1/base_volume. base_volume defaults to 1.0.
sounds: []
#  - id: jump
#    path: sfx/jump.wav
#    max_concurrency: 4
#    base_volume: 0.5
`
}
