// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/sfxpool/playback"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sfx.yaml", `
assets_dir: assets
stop_policy: mute-only
output:
  backend: headless
  sample_rate: 22050
  channels: 1
sounds:
  - id: ping
    path: ping.wav
    max_concurrency: 3
    base_volume: 2
  - id: coin
    path: coin.ogg
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "assets"), cfg.AssetsDir)
	assert.Equal(t, "mute-only", cfg.StopPolicy)
	assert.Equal(t, OutputConfig{Backend: BackendHeadless, SampleRate: 22050, Channels: 1}, cfg.Output)
	require.Len(t, cfg.Sounds, 2)
	assert.Equal(t, Sound{ID: "ping", Path: "ping.wav", MaxConcurrency: 3, BaseVolume: 2}, cfg.Sounds[0])

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, playback.StopMuteOnly, policy)
}

func TestLoad_TOMLAndDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sfx.toml", `
[[sounds]]
id = "door"
path = "/abs/door.aiff"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.StopPolicy, cfg.StopPolicy)
	assert.Empty(t, cfg.AssetsDir)
	require.Len(t, cfg.Sounds, 1)
	assert.Equal(t, "/abs/door.aiff", cfg.Sounds[0].Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SFXPOOL_OUTPUT_BACKEND", "headless")
	t.Setenv("SFXPOOL_STOP_POLICY", "mute-only")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendHeadless, cfg.Output.Backend)
	assert.Equal(t, "mute-only", cfg.StopPolicy)
}

func TestLoad_Manifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sounds.yaml", `
sounds:
  - id: laser
    path: laser.wav
    max_concurrency: 8
`)
	path := writeFile(t, dir, "sfx.yaml", `
manifest: sounds.yaml
output:
  backend: headless
sounds:
  - id: jump
    path: jump.wav
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Sounds, 2)
	assert.Equal(t, "jump", cfg.Sounds[0].ID)
	assert.Equal(t, "laser", cfg.Sounds[1].ID)
	assert.Equal(t, filepath.Join(dir, "sounds.yaml"), cfg.Manifest)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
		substr  string
	}{
		{
			name:    "unknown backend",
			content: "output:\n  backend: alsa\n",
			wantErr: ErrUnknownBackend,
		},
		{
			name:    "bad stop policy",
			content: "stop_policy: fade\n",
			wantErr: playback.ErrUnknownStopPolicy,
		},
		{
			name:    "sound without path",
			content: "sounds:\n  - id: x\n",
			wantErr: ErrMissingPath,
		},
		{
			name:    "missing manifest",
			content: "manifest: nope.yaml\n",
			substr:  "opening manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".yaml", tt.content)

			_, err := Load(path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.substr != "" {
				assert.Contains(t, err.Error(), tt.substr)
			}
		})
	}

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_ReportsEverything(t *testing.T) {
	t.Parallel()

	cfg := Config{
		StopPolicy: "bogus",
		Output:     OutputConfig{Backend: BackendEbiten, SampleRate: 0, Channels: 1},
		Sounds: []Sound{
			{Path: "a.wav"},
			{ID: "b", Path: "b.wav", MaxConcurrency: -1, BaseVolume: -2},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	assert.ErrorIs(t, err, playback.ErrUnknownStopPolicy)
	assert.ErrorIs(t, err, ErrMissingID)
	for _, want := range []string{"sample_rate", "ebiten", "max_concurrency", "base_volume"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestSound_Limits(t *testing.T) {
	t.Parallel()

	n, vol := Sound{}.Limits()
	assert.Equal(t, playback.DefaultMaxConcurrency, n)
	assert.InDelta(t, playback.DefaultBaseVolume, vol, 0)

	n, vol = Sound{MaxConcurrency: 3, BaseVolume: 0.4}.Limits()
	assert.Equal(t, 3, n)
	assert.InDelta(t, 0.4, vol, 0)
}

func TestManifest_RoundTripsThroughYAML(t *testing.T) {
	t.Parallel()

	sounds := []Sound{
		{ID: "ping", Path: "sfx/ping.wav", MaxConcurrency: 3, BaseVolume: 2},
		{ID: "coin", Path: "sfx/coin.ogg"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, sounds))
	assert.NotContains(t, buf.String(), "max_concurrency: 0")

	got, err := ParseManifest(&buf)
	require.NoError(t, err)
	assert.Equal(t, sounds, got)
}

func TestParseManifest_Rejects(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest(strings.NewReader("sounds:\n  - id: a\n    path: a.wav\n    volume: 3\n"))
	assert.Error(t, err, "unknown key should be rejected")

	_, err = ParseManifest(strings.NewReader("sounds:\n  - path: a.wav\n"))
	assert.ErrorIs(t, err, ErrMissingID)

	sounds, err := ParseManifest(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sounds)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfxpool.yaml")

	require.NoError(t, WriteDefault(path))
	assert.ErrorIs(t, WriteDefault(path), ErrConfigExists)

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.StopPolicy, cfg.StopPolicy)
	assert.Empty(t, cfg.Sounds)
}
