// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"io/fs"

	"github.com/ik5/sfxpool/audio"
)

// OneShot records a single PlayOneShot call.
type OneShot struct {
	Clip   *audio.Clip
	Volume float64
}

// Output records every call made by the playback layer.
type Output struct {
	Plays []OneShot
	Stops int
}

func (o *Output) PlayOneShot(clip *audio.Clip, volume float64) {
	o.Plays = append(o.Plays, OneShot{Clip: clip, Volume: volume})
}

func (o *Output) StopAll() { o.Stops++ }

// Volumes lists the volume of each recorded one-shot in call order.
func (o *Output) Volumes() []float64 {
	out := make([]float64, len(o.Plays))
	for i, p := range o.Plays {
		out[i] = p.Volume
	}

	return out
}

// Loader is an in-memory resource loader. Refs missing from Clips resolve
// to an error wrapping fs.ErrNotExist, refs present in Fail return that
// error until removed. Lengths overrides the reported clip length.
type Loader struct {
	Clips   map[string]*audio.Clip
	Fail    map[string]error
	Lengths map[string]float64
	Calls   map[string]int
}

func NewLoader() *Loader {
	return &Loader{
		Clips:   make(map[string]*audio.Clip),
		Fail:    make(map[string]error),
		Lengths: make(map[string]float64),
		Calls:   make(map[string]int),
	}
}

// Add registers a silent mono clip of the given length in seconds at 100 Hz.
func (l *Loader) Add(ref string, seconds float64) *audio.Clip {
	clip := &audio.Clip{
		SampleRate: 100,
		Channels:   1,
		Samples:    make([]float32, int(seconds*100)),
	}
	l.Clips[ref] = clip

	return clip
}

func (l *Loader) Resolve(ref string) (*audio.Clip, float64, error) {
	l.Calls[ref]++

	if err, ok := l.Fail[ref]; ok {
		return nil, 0, err
	}

	clip, ok := l.Clips[ref]
	if !ok {
		return nil, 0, fmt.Errorf("%s: %w", ref, fs.ErrNotExist)
	}

	if length, ok := l.Lengths[ref]; ok {
		return clip, length, nil
	}

	return clip, clip.Length(), nil
}
