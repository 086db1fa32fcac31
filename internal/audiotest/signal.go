// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: generated
// clips, a Source that streams a clip back, and fakes for the playback
// layer.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/sfxpool/audio"
)

// Generate builds a clip of frames frames. gen is called once per sample
// with its frame index and channel.
func Generate(sampleRate, channels, frames int, gen func(frame, channel int) float32) *audio.Clip {
	clip := &audio.Clip{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    make([]float32, frames*channels),
	}
	for f := range frames {
		for c := range channels {
			clip.Samples[f*channels+c] = gen(f, c)
		}
	}

	return clip
}

// Sine is a full-scale sine at freq Hz on every channel.
func Sine(sampleRate, channels, frames int, freq float64) *audio.Clip {
	w := 2 * math.Pi * freq / float64(sampleRate)
	return Generate(sampleRate, channels, frames, func(f, _ int) float32 {
		return float32(math.Sin(w * float64(f)))
	})
}

func Constant(sampleRate, channels, frames int, v float32) *audio.Clip {
	return Generate(sampleRate, channels, frames, func(int, int) float32 { return v })
}

func Silence(sampleRate, channels, frames int) *audio.Clip {
	return Constant(sampleRate, channels, frames, 0)
}

// Channel copies one channel of interleaved samples out of a clip.
func Channel(clip *audio.Clip, ch int) []float32 {
	out := make([]float32, 0, clip.Frames())
	for i := ch; i < len(clip.Samples); i += clip.Channels {
		out = append(out, clip.Samples[i])
	}

	return out
}

// Peak is the largest absolute sample of channel ch.
func Peak(clip *audio.Clip, ch int) float64 {
	var peak float64
	for _, s := range Channel(clip, ch) {
		peak = max(peak, math.Abs(float64(s)))
	}

	return peak
}

// Frequency estimates the fundamental of channel ch by counting sign
// changes. Good enough for clean tones, useless for noise.
func Frequency(clip *audio.Clip, ch int) float64 {
	samples := Channel(clip, ch)
	if len(samples) < 2 || clip.SampleRate <= 0 {
		return 0
	}

	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}

	return float64(crossings) / 2 / clip.Length()
}

// Source streams a clip as an audio.Source.
type Source struct {
	clip   *audio.Clip
	pos    int // next sample
	chunk  int // max frames per read, 0 for unlimited
	closed bool
}

func NewSource(clip *audio.Clip) *Source {
	return &Source{clip: clip}
}

// Chunked caps every read at frames frames, to exercise callers that must
// cope with short reads.
func (s *Source) Chunked(frames int) *Source {
	s.chunk = frames
	return s
}

func (s *Source) SampleRate() int { return s.clip.SampleRate }
func (s *Source) Channels() int   { return s.clip.Channels }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.clip.Samples) {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.clip.Channels
	if s.chunk > 0 {
		want = min(want, s.chunk*s.clip.Channels)
	}

	n := copy(dst[:want], s.clip.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.clip.Samples) {
		return n, io.EOF
	}

	return n, nil
}

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (s *Source) Closed() bool { return s.closed }
