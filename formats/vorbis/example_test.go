// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/formats/vorbis"
)

// ExampleDecoder_Decode renders an Ogg Vorbis effect at the mixer's rate.
func ExampleDecoder_Decode() {
	f, err := os.Open("door.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	clip, err := audio.Render(src, 48000, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d frames at %d Hz\n", clip.Frames(), clip.SampleRate)
}
