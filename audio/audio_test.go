// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSource(audiotest.Silence(44100, 2, 100)), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_ExtensionNormalization(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	decoder := &mockDecoder{name: "ogg"}
	registry.Register(".OGG", decoder)

	for _, key := range []string{"ogg", ".ogg", "OGG", ".Ogg"} {
		got, ok := registry.Get(key)
		if !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)

	tests := []struct {
		path   string
		want   audio.Decoder
		wantOK bool
	}{
		{"sounds/ping.wav", wavDecoder, true},
		{"/abs/dir/Jump.MP3", mp3Decoder, true},
		{"noext", nil, false},
		{"music.flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := registry.ForPath(tt.path)
			if ok != tt.wantOK {
				t.Errorf("Registry.ForPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.ForPath(%q) returned wrong decoder", tt.path)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	decoder1 := &mockDecoder{name: "first"}
	decoder2 := &mockDecoder{name: "second"}

	registry.Register("wav", decoder1)
	registry.Register("wav", decoder2)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != decoder2 {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("AIFF", &mockDecoder{})
	registry.Register(".mp3", &mockDecoder{})

	want := []string{"aiff", "mp3", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
	}
	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(audio.ErrInvalidDstSize, audio.ErrInvalidFormat) {
		t.Error("ErrInvalidDstSize must not match ErrInvalidFormat")
	}

	wrapped := errors.Join(audio.ErrInvalidDstSize, errors.New("additional context"))
	if !errors.Is(wrapped, audio.ErrInvalidDstSize) {
		t.Error("errors.Is() failed for wrapped ErrInvalidDstSize")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := audio.NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
