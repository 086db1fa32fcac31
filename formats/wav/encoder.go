// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/utils"
)

// Encode writes clip as a 16-bit PCM WAV file. The header sizes are patched
// once all samples are written, which is why w must be seekable.
func Encode(w io.WriteSeeker, clip *audio.Clip) error {
	if clip == nil || clip.SampleRate <= 0 || clip.Channels <= 0 {
		return ErrInvalidClip
	}

	data := make([]int, len(clip.Samples))
	for i, s := range clip.Samples {
		data[i] = int(utils.Float32ToInt16(s))
	}

	enc := gowav.NewEncoder(w, clip.SampleRate, 16, clip.Channels, wavAudioFormatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: clip.Channels,
			SampleRate:  clip.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
