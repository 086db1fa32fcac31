// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// The returned audio.Source always reports two channels, since go-mp3
// upmixes mono streams, and yields float32 samples in [-1.0, 1.0]:
//
//	file, _ := os.Open("coin.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	clip, err := audio.Render(source, 44100, 2)
//
// Decoding errors from go-mp3 are wrapped, so errors.Is works against the
// underlying io errors.
package mp3
