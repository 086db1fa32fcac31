// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/sfxpool/attenuation"
	"github.com/ik5/sfxpool/playback"
)

func newSolveCmd() *cobra.Command {
	var (
		voices int
		volume float64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the attenuation ratio and voice volumes for a pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if voices < 1 {
				return fmt.Errorf("--voices must be at least 1, got %d", voices)
			}
			if volume <= 0 {
				return fmt.Errorf("--volume must be positive, got %v", volume)
			}

			w := cmd.OutOrStdout()
			raw := attenuation.Solve(voices, 1/volume)
			ratio := attenuation.Ratio(voices, volume)

			fmt.Fprintf(w, "voices %d  base volume %g  budget %g\n", voices, volume, 1/volume)
			fmt.Fprintf(w, "ratio  %.6f", ratio)
			switch {
			case !raw.Converged:
				fmt.Fprintf(w, "  (not converged after %d iterations, last iterate %.6f)\n", raw.Iterations, raw.Ratio)
			case raw.Ratio != ratio:
				fmt.Fprintf(w, "  (clamped from %.6f)\n", raw.Ratio)
			default:
				fmt.Fprintf(w, "  (converged in %d iterations)\n", raw.Iterations)
			}

			var total float64
			fmt.Fprintln(w, "voice  volume")
			for i, v := range attenuation.Volumes(voices, volume, ratio) {
				total += v
				fmt.Fprintf(w, "%-6d %.6f\n", i, v)
			}
			fmt.Fprintf(w, "total  %.6f\n", total)

			return nil
		},
	}

	cmd.Flags().IntVarP(&voices, "voices", "n", playback.DefaultMaxConcurrency, "max concurrent voices")
	cmd.Flags().Float64VarP(&volume, "volume", "v", playback.DefaultBaseVolume, "base volume of voice 0")

	return cmd
}
