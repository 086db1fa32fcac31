// SPDX-License-Identifier: EPL-2.0

package sfxpool

import (
	"fmt"
	"log/slog"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/config"
	"github.com/ik5/sfxpool/formats/aiff"
	"github.com/ik5/sfxpool/formats/mp3"
	"github.com/ik5/sfxpool/formats/vorbis"
	"github.com/ik5/sfxpool/formats/wav"
	"github.com/ik5/sfxpool/loader"
	"github.com/ik5/sfxpool/playback"
)

// DefaultCodecs returns a codec registry with every bundled decoder.
func DefaultCodecs() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// NewLoader returns a file loader rendering clips in cfg's output format,
// rooted at cfg.AssetsDir.
func NewLoader(cfg config.Config, log *slog.Logger) *loader.FileLoader {
	return loader.NewFileLoader(DefaultCodecs(), cfg.Output.SampleRate, cfg.Output.Channels,
		loader.WithRoot(cfg.AssetsDir),
		loader.WithLogger(log),
	)
}

// New builds a registry playing through out and registers every sound in
// cfg. Clips are resolved lazily on first play.
func New(cfg config.Config, out playback.Output, log *slog.Logger) (*playback.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sfxpool: %w", err)
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("sfxpool: %w", err)
	}

	reg := playback.NewRegistry(NewLoader(cfg, log), out,
		playback.WithLogger(log),
		playback.WithStopPolicy(policy),
	)

	if err := RegisterAll(reg, cfg.Sounds); err != nil {
		return nil, err
	}

	return reg, nil
}

// RegisterAll registers sounds in order, applying the default voice count
// and base volume where they are zero.
func RegisterAll(reg *playback.Registry, sounds []config.Sound) error {
	for _, s := range sounds {
		n, vol := s.Limits()
		if err := reg.Register(s.ID, s.Path, n, vol); err != nil {
			return fmt.Errorf("sfxpool: %w", err)
		}
	}

	return nil
}
