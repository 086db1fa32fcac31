// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/sfxpool"
	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/formats/wav"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var (
		rate     int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "render <input> <output.wav>",
		Short: "Decode a sound, resample and remix it, and write 16-bit WAV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			codecs := sfxpool.DefaultCodecs()
			dec, ok := codecs.ForPath(in)
			if !ok {
				return fmt.Errorf("unsupported format %q (known: %s)", in, strings.Join(codecs.Formats(), ", "))
			}

			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()

			src, err := dec.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", in, err)
			}
			defer src.Close()

			root.log.Debug("decoded", "path", in, "rate", src.SampleRate(), "channels", src.Channels())

			clip, err := audio.Render(src, rate, channels)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", in, err)
			}

			dst, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := wav.Encode(dst, clip); err != nil {
				dst.Close()
				return err
			}
			if err := dst.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d frames, %d Hz, %d channels, %.3fs\n",
				out, clip.Frames(), clip.SampleRate, clip.Channels, clip.Length())

			return nil
		},
	}

	cmd.Flags().IntVarP(&rate, "rate", "r", 8000, "output sample rate in Hz")
	cmd.Flags().IntVar(&channels, "channels", 1, "output channel count")

	return cmd
}
