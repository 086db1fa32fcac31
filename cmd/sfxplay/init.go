// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/sfxpool"
	"github.com/ik5/sfxpool/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a commented default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := "sfxpool.yaml"
			if len(args) == 1 {
				p = args[0]
			}

			if err := config.WriteDefault(p); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "wrote", p)
			return nil
		},
	}
}

func newManifestCmd() *cobra.Command {
	var (
		outPath string
		voices  int
		baseVol float64
	)

	cmd := &cobra.Command{
		Use:   "manifest <dir>",
		Short: "List the sound files under dir as a YAML manifest",
		Long: `Walk dir and emit one manifest entry per file with a supported extension.
The id is the slash-separated path without its extension; paths are
relative to dir, so point assets_dir at it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sounds, err := scanSounds(args[0], voices, baseVol)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return config.WriteManifest(w, sounds)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&voices, "max-concurrency", 0, "max_concurrency for every entry (0 keeps the default)")
	cmd.Flags().Float64Var(&baseVol, "base-volume", 0, "base_volume for every entry (0 keeps the default)")

	return cmd
}

func scanSounds(dir string, voices int, baseVol float64) ([]config.Sound, error) {
	codecs := sfxpool.DefaultCodecs()

	var sounds []config.Sound
	err := fs.WalkDir(os.DirFS(dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := codecs.ForPath(p); !ok {
			return nil
		}

		sounds = append(sounds, config.Sound{
			ID:             p[:len(p)-len(path.Ext(p))],
			Path:           filepath.FromSlash(p),
			MaxConcurrency: voices,
			BaseVolume:     baseVol,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	return sounds, nil
}
