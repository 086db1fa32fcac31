// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM decoders of github.com/go-audio to
// audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is the part of the go-audio wav and aiff decoders that Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source normalizes integer samples of a fixed bit depth to float32 in [-1,1].
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
	done       bool
}

func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      float32(int64(1) << (bitDepth - 1)),
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	// a short read means the data chunk is exhausted
	if n == 0 || n < len(dst) || err == io.EOF {
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when r
// cannot seek. The go-audio decoders require seeking.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.NewReader(data), nil
}
