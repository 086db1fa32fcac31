// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF WAVE files through
// github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 16, 24 or 32 bits with any channel count
// and sample rate. Samples come out as float32 in [-1.0, 1.0]:
//
//	file, _ := os.Open("laser.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Float and compressed formats fail with ErrOnlyPCMSupported, other sample
// sizes with ErrUnsupportedBitDepth.
//
// # Encoding
//
// Encode writes an audio.Clip as 16-bit PCM. The destination must be an
// io.WriteSeeker because the RIFF sizes are patched after the data chunk:
//
//	out, _ := os.Create("laser-22k.wav")
//	err := wav.Encode(out, clip)
package wav
