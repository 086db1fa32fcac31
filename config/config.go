// SPDX-License-Identifier: EPL-2.0

// Package config loads the sound registration list and output settings.
package config

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ik5/sfxpool/playback"
)

// Backend names accepted in output.backend.
const (
	BackendOto      = "oto"
	BackendEbiten   = "ebiten"
	BackendHeadless = "headless"
)

// Config holds everything needed to build a registry.
type Config struct {
	// AssetsDir is the directory sound paths are relative to. A relative
	// AssetsDir is taken relative to the config file.
	AssetsDir string `mapstructure:"assets_dir" yaml:"assets_dir,omitempty"`

	// Manifest optionally names a YAML file with more sounds. Its entries
	// are appended after the inline ones.
	Manifest string `mapstructure:"manifest" yaml:"manifest,omitempty"`

	// StopPolicy is "force-expire" (default) or "mute-only".
	StopPolicy string `mapstructure:"stop_policy" yaml:"stop_policy"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Sounds []Sound      `mapstructure:"sounds" yaml:"sounds"`
}

// OutputConfig selects the audio backend and the format clips are rendered in.
type OutputConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	SampleRate int    `mapstructure:"sample_rate" yaml:"sample_rate"`
	Channels   int    `mapstructure:"channels" yaml:"channels"`
}

// Sound registers one sound id. Zero MaxConcurrency and BaseVolume take the
// registry defaults.
type Sound struct {
	ID             string  `mapstructure:"id" yaml:"id"`
	Path           string  `mapstructure:"path" yaml:"path"`
	MaxConcurrency int     `mapstructure:"max_concurrency" yaml:"max_concurrency,omitempty"`
	BaseVolume     float64 `mapstructure:"base_volume" yaml:"base_volume,omitempty"`
}

// Limits returns the voice count and base volume with defaults applied.
func (s Sound) Limits() (int, float64) {
	n, vol := s.MaxConcurrency, s.BaseVolume
	if n == 0 {
		n = playback.DefaultMaxConcurrency
	}
	if vol == 0 {
		vol = playback.DefaultBaseVolume
	}

	return n, vol
}

// Defaults returns a Config with sensible default values and no sounds.
func Defaults() Config {
	return Config{
		StopPolicy: playback.StopForceExpire.String(),
		Output: OutputConfig{
			Backend:    BackendOto,
			SampleRate: 44100,
			Channels:   2,
		},
	}
}

// Policy parses StopPolicy.
func (c Config) Policy() (playback.StopPolicy, error) {
	return playback.ParseStopPolicy(c.StopPolicy)
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains([]string{BackendOto, BackendEbiten, BackendHeadless}, c.Output.Backend) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownBackend, c.Output.Backend))
	}
	if c.Output.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("output.sample_rate must be positive, got %d", c.Output.SampleRate))
	}
	if c.Output.Channels < 1 || c.Output.Channels > 8 {
		errs = append(errs, fmt.Errorf("output.channels must be between 1 and 8, got %d", c.Output.Channels))
	}
	if c.Output.Backend == BackendEbiten && c.Output.Channels != 2 {
		errs = append(errs, fmt.Errorf("output.channels must be 2 for the ebiten backend, got %d", c.Output.Channels))
	}

	if err := ValidateSounds(c.Sounds); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateSounds checks sound entries. Repeated ids are allowed; the later
// entry replaces the earlier one at registration.
func ValidateSounds(sounds []Sound) error {
	var errs []error

	for i, s := range sounds {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("sound %d: %w", i, ErrMissingID))
		}
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("sound %d (%s): %w", i, s.ID, ErrMissingPath))
		}
		if s.MaxConcurrency < 0 {
			errs = append(errs, fmt.Errorf("sound %d (%s): max_concurrency must not be negative, got %d",
				i, s.ID, s.MaxConcurrency))
		}
		if s.BaseVolume < 0 || math.IsNaN(s.BaseVolume) || math.IsInf(s.BaseVolume, 0) {
			errs = append(errs, fmt.Errorf("sound %d (%s): base_volume must be a non-negative number, got %v",
				i, s.ID, s.BaseVolume))
		}
	}

	return errors.Join(errs...)
}
