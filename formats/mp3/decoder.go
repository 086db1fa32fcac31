// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/utils"
)

// go-mp3 always emits interleaved stereo.
const outputChannels = 2

// mp3Reader is the subset of gomp3.Decoder the source reads from.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// go-mp3 may split a sample across two reads
	pending    byte
	hasPending bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := 0
	if s.hasPending {
		s.buf[0] = s.pending
		s.hasPending = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding mp3 frame: %w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	if n%2 == 1 && err == nil {
		s.pending = s.buf[n-1]
		s.hasPending = true
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
