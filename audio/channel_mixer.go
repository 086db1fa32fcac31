// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer converts a source to a different channel count.
// Down-mixing to mono averages all input channels, up-mixing a mono source
// copies it to every output channel, and any other combination folds input
// channel i onto output channel i % out (averaging when several land on the
// same output) or repeats input channels cyclically when widening.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewChannelMixer(src Source, channels int) *ChannelMixer {
	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 8192),
	}
}

// NewMonoMixer down-mixes src to a single channel.
func NewMonoMixer(src Source) *ChannelMixer {
	return NewChannelMixer(src, 1)
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	tmp := m.tmp[:need]

	n, err := m.src.ReadSamples(tmp)
	if n == 0 {
		return 0, err
	}
	frames = n / in

	switch {
	case m.channels == 1:
		inv := 1 / float32(in)
		for f := range frames {
			sum := float32(0)
			for _, s := range tmp[f*in : f*in+in] {
				sum += s
			}
			dst[f] = sum * inv
		}
	case in == 1:
		for f := range frames {
			out := dst[f*m.channels : f*m.channels+m.channels]
			for c := range out {
				out[c] = tmp[f]
			}
		}
	case in > m.channels:
		for f := range frames {
			out := dst[f*m.channels : f*m.channels+m.channels]
			clear(out)
			frame := tmp[f*in : f*in+in]
			for c, s := range frame {
				out[c%m.channels] += s
			}
			for c := range out {
				out[c] /= float32(foldCount(in, m.channels, c))
			}
		}
	default:
		for f := range frames {
			frame := tmp[f*in : f*in+in]
			out := dst[f*m.channels : f*m.channels+m.channels]
			for c := range out {
				out[c] = frame[c%in]
			}
		}
	}

	return frames * m.channels, err
}

// foldCount is how many of in channels map onto output channel c.
func foldCount(in, out, c int) int {
	n := in / out
	if c < in%out {
		n++
	}

	return n
}
