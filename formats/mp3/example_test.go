// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/formats/mp3"
	"github.com/ik5/sfxpool/formats/wav"
)

// ExampleDecoder_Decode decodes an MP3 effect into a mono 22.05 kHz clip and
// stores it as WAV.
func ExampleDecoder_Decode() {
	in, err := os.Open("coin.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := mp3.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	clip, err := audio.Render(src, 22050, 1)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("coin.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := wav.Encode(out, clip); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.2fs of audio\n", clip.Length())
}
