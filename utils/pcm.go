// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts a sample in [-1,1] to signed 16-bit PCM.
// Out of range input is clamped first.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the scale symmetric
	return int16(x * 32767.0)
}

// Int16ToFloat32 is the decoding counterpart of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// AppendInt16LE scales samples by gain and appends them to dst as
// little-endian int16 PCM. Scaled values beyond [-1,1] clip.
func AppendInt16LE(dst []byte, samples []float32, gain float32) []byte {
	start := len(dst)
	need := start + len(samples)*2
	if cap(dst) < need {
		grown := make([]byte, start, need)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:need]

	out := dst[start:]
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(Float32ToInt16(s*gain)))
	}

	return dst
}
