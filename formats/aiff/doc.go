// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF audio through
// github.com/go-audio/aiff.
//
// 16, 24 and 32-bit integer PCM are accepted; samples are normalized to
// float32 in [-1.0, 1.0]. go-audio needs to seek, so a reader that cannot
// seek is buffered into memory first.
//
//	file, _ := os.Open("bell.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 8-bit and compressed AIFC files end up here
//	}
package aiff
