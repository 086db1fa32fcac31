// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const (
	renderFrames = 4096

	// maxEmptyReads bounds how many (0, nil) reads a source may return in
	// a row before it is considered stuck.
	maxEmptyReads = 64
)

// Clip is a fully decoded sound held in memory as interleaved float32
// samples, ready to be handed to an output backend.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []float32
}

// Frames is the number of sample frames (samples per channel).
func (c *Clip) Frames() int {
	if c == nil || c.Channels <= 0 {
		return 0
	}

	return len(c.Samples) / c.Channels
}

// Length is the playing time of the clip in seconds.
func (c *Clip) Length() float64 {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}

	return float64(c.Frames()) / float64(c.SampleRate)
}

// Render drains src into a Clip with the requested sample rate and channel
// count. The pipeline is src -> Resampler (when rates differ) ->
// ChannelMixer (when channel counts differ). Render does not close src.
func Render(src Source, sampleRate, channels int) (*Clip, error) {
	if sampleRate <= 0 || channels <= 0 || src.SampleRate() <= 0 || src.Channels() <= 0 {
		return nil, ErrInvalidFormat
	}

	var s Source = src
	if s.SampleRate() != sampleRate {
		s = NewResampler(s, sampleRate)
	}
	if s.Channels() != channels {
		s = NewChannelMixer(s, channels)
	}

	clip := &Clip{
		SampleRate: sampleRate,
		Channels:   channels,
	}
	buf := make([]float32, renderFrames*channels)

	empty := 0
	for {
		n, err := s.ReadSamples(buf)
		if n > 0 {
			clip.Samples = append(clip.Samples, buf[:n]...)
			empty = 0
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}

		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, fmt.Errorf("render: %w", io.ErrNoProgress)
			}
		}
	}

	return clip, nil
}
