// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding pipeline behind sound loading.
//
// # Source Interface
//
// Every decoder and processor is a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]. ReadSamples returns the
// number of values written, not frames, and io.EOF once the stream is
// finished.
//
// # Rendering Clips
//
// Sound effects are short, so they are decoded once into a Clip held in
// memory. Render drains a source through a Resampler and a ChannelMixer as
// needed:
//
//	clip, err := audio.Render(src, 44100, 2)
//	fmt.Println(clip.Frames(), clip.Length())
//
// Render stops with io.ErrNoProgress when a source keeps returning no data
// without reaching io.EOF.
//
// # Resampling
//
// Resampler converts the sample rate with cubic interpolation over a four
// frame window. When downsampling, a one-pole low-pass filter runs ahead of
// the interpolation to reduce aliasing.
//
// # Channel Mixing
//
// ChannelMixer maps any channel count to any other. Mono output averages
// all inputs, mono input is copied to every output, and other layouts fold
// or repeat channels in order. NewMonoMixer is shorthand for one channel.
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("sfx/jump.WAV")
package audio
