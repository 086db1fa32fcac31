// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sfxpool/utils"
)

// smoothingAlpha is the coefficient of the one-pole low-pass applied to
// incoming frames when downsampling.
const smoothingAlpha = 0.5

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves channel count.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames advanced per output frame

	// hist holds four consecutive source frames: t-1, t0, t+1, t+2.
	// Output is interpolated between hist[1] and hist[2] at fraction pos.
	// real marks frames that came from src rather than edge padding.
	hist [4][]float32
	real [4]bool
	pos  float64

	in     []float32
	inPos  int
	inLen  int
	primed bool
	eof    bool

	smooth bool
	warm   bool
	state  []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		step:     step,
		in:       make([]float32, 1024*channels),
		smooth:   step > 1,
		state:    make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		t := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], t)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

// prime fills the history window. The first frame doubles as t-1 and
// missing look-ahead frames repeat the last real one.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.hist[0], r.hist[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < len(r.hist); i++ {
		ok, err := r.readFrame(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.real[i] = ok
	}

	return nil
}

// shift slides the history window one source frame forward.
func (r *Resampler) shift() error {
	oldest := r.hist[0]
	copy(r.hist[:3], r.hist[1:])
	r.hist[3] = oldest
	copy(r.real[:3], r.real[1:])

	ok, err := r.readFrame(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.real[3] = ok

	return nil
}

// readFrame copies the next source frame into dst. It reports false once
// the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	empty := 0
	for r.inPos >= r.inLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inLen = n - n%r.channels
		r.inPos = 0

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if r.inLen == 0 && !r.eof {
			empty++
			if empty > maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.smooth {
		if !r.warm {
			// seed with the first frame to avoid a fade-in transient
			copy(r.state, dst)
			r.warm = true
		}
		for c := range dst {
			dst[c] = smoothingAlpha*dst[c] + (1-smoothingAlpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}
