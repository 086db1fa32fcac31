// SPDX-License-Identifier: EPL-2.0

package sfxpool

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/config"
	"github.com/ik5/sfxpool/formats/wav"
	"github.com/ik5/sfxpool/internal/audiotest"
	"github.com/ik5/sfxpool/loader"
	"github.com/ik5/sfxpool/playback"
)

// writeWAV stores a mono sine burst at 8 kHz.
func writeWAV(t *testing.T, path string, seconds float64) {
	t.Helper()

	clip := &audio.Clip{SampleRate: 8000, Channels: 1, Samples: make([]float32, int(seconds*8000))}
	for i := range clip.Samples {
		clip.Samples[i] = float32(0.3 * math.Sin(float64(i)/4))
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := wav.Encode(f, clip); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
}

func testConfig(dir string, sounds ...config.Sound) config.Config {
	cfg := config.Defaults()
	cfg.AssetsDir = dir
	cfg.Output = config.OutputConfig{Backend: config.BackendHeadless, SampleRate: 8000, Channels: 2}
	cfg.Sounds = sounds
	return cfg
}

func TestDefaultCodecs(t *testing.T) {
	t.Parallel()

	r := DefaultCodecs()
	for _, ext := range []string{"wav", ".WAV", "mp3", "ogg", "oga", "aiff", "aif"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("no decoder for %q", ext)
		}
	}
	if _, ok := r.ForPath("music.flac"); ok {
		t.Error("flac should not be registered")
	}
}

func TestNew_PlaysFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "ping.wav"), 0.5)

	out := &audiotest.Output{}
	reg, err := New(testConfig(dir,
		config.Sound{ID: "ping", Path: "ping.wav", MaxConcurrency: 3, BaseVolume: 0.5},
		config.Sound{ID: "default", Path: "ping.wav"},
	), out, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := reg.PlayDetailed("ping")
	if err != nil {
		t.Fatalf("PlayDetailed() error = %v", err)
	}
	if math.Abs(res.Duration-0.05) > 1e-9 {
		t.Errorf("Duration = %v, want 0.05", res.Duration)
	}
	if len(out.Plays) != 1 || out.Plays[0].Clip.Channels != 2 || out.Plays[0].Clip.SampleRate != 8000 {
		t.Fatalf("output plays = %+v, want one stereo 8 kHz clip", out.Plays)
	}

	st, _ := reg.Stats("default")
	if st.Size != playback.DefaultMaxConcurrency {
		t.Errorf("default pool size = %d, want %d", st.Size, playback.DefaultMaxConcurrency)
	}
}

func TestNew_MissingFileFailsOnPlay(t *testing.T) {
	t.Parallel()

	reg, err := New(testConfig(t.TempDir(), config.Sound{ID: "ghost", Path: "ghost.wav"}), &audiotest.Output{}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if reg.Play("ghost") {
		t.Error("Play() = true for a missing file")
	}
	if _, err := reg.PlayDetailed("ghost"); !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("error = %v, want loader.ErrNotFound", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig("", config.Sound{ID: "x"})
	if _, err := New(cfg, &audiotest.Output{}, nil); !errors.Is(err, config.ErrMissingPath) {
		t.Errorf("New() error = %v, want config.ErrMissingPath", err)
	}
}

func TestNew_StopPolicyFromConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.StopPolicy = "mute-only"

	reg, err := New(cfg, &audiotest.Output{}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if reg.Policy() != playback.StopMuteOnly {
		t.Errorf("Policy() = %v, want mute-only", reg.Policy())
	}
}
