// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Samples come out interleaved as float32 in [-1.0, 1.0] with the stream's
// own channel count and sample rate. ReadSamples only ever returns whole
// frames, so a destination buffer shorter than one frame reads nothing.
//
//	file, _ := os.Open("door.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	clip, err := audio.Render(source, 44100, 2)
package vorbis
