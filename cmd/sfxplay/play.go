// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/sfxpool"
	"github.com/ik5/sfxpool/playback"
)

var errNoSounds = errors.New("no sounds configured")

type playOptions struct {
	bursts   int
	interval time.Duration
	fps      int
	linger   time.Duration
	preload  bool
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play [id...]",
		Short: "Play configured sounds in a frame loop",
		Long: `Run a frame loop that ticks the registry and plays the given sound ids
(all configured ids when none are given) in bursts. Every burst plays each
id once; bursts closer together than a voice's hold time show the voice
ladder and pool exhaustion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, root, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.bursts, "bursts", "n", 5, "number of bursts")
	flags.DurationVarP(&opts.interval, "interval", "i", 50*time.Millisecond, "time between bursts")
	flags.IntVar(&opts.fps, "fps", 60, "frame rate of the tick loop")
	flags.DurationVar(&opts.linger, "linger", time.Second, "time to keep ticking after the last burst")
	flags.BoolVar(&opts.preload, "preload", false, "decode every sound before the first frame")

	return cmd
}

func runPlay(cmd *cobra.Command, root *rootOptions, opts *playOptions, ids []string) error {
	if opts.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", opts.fps)
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	out, err := openOutput(cfg, root.log)
	if err != nil {
		return fmt.Errorf("opening %s output: %w", cfg.Output.Backend, err)
	}

	reg, err := sfxpool.New(cfg, out, root.log)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		ids = reg.IDs()
	}
	if len(ids) == 0 {
		return errNoSounds
	}
	for _, id := range ids {
		if _, ok := reg.Stats(id); !ok {
			return fmt.Errorf("%w: %q", playback.ErrUnknownID, id)
		}
	}

	if opts.preload {
		if err := reg.Preload(); err != nil {
			return err
		}
	}

	clock := playback.NewWallClock(nil)
	clock.Delta()

	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()

	return playLoop(cmd.Context(), cmd.OutOrStdout(), reg, ids, opts, clock, ticker.C)
}

// playLoop advances reg by clock on every frame, plays a burst of ids each
// interval and stops once linger has passed after the last burst. Burst
// timing follows the frame timestamps, voice timing follows the clock.
func playLoop(ctx context.Context, w io.Writer, reg *playback.Registry, ids []string,
	opts *playOptions, clock playback.Clock, frames <-chan time.Time,
) error {
	var (
		done  int
		next  time.Time
		until time.Time
	)

	for {
		select {
		case <-ctx.Done():
			reg.StopAll()
			return nil

		case now := <-frames:
			reg.Advance(clock)

			if done < opts.bursts && !now.Before(next) {
				for _, id := range ids {
					res, err := reg.PlayDetailed(id)
					printResult(w, res, err)
				}
				done++
				next = now.Add(opts.interval)
				until = now.Add(opts.linger)
			}

			if done >= opts.bursts && !now.Before(until) {
				reg.StopAll()
				printStats(w, reg, ids)
				return nil
			}
		}
	}
}

func printResult(w io.Writer, res playback.Result, err error) {
	switch {
	case err != nil:
		fmt.Fprintf(w, "%-12s error      %v\n", res.ID, err)
	case res.Outcome == playback.Exhausted:
		fmt.Fprintf(w, "%-12s exhausted\n", res.ID)
	default:
		fmt.Fprintf(w, "%-12s played     voice %-3d volume %.3f  hold %.3fs\n",
			res.ID, res.Voice.Index, res.Voice.Volume, res.Duration)
	}
}

func printStats(w io.Writer, reg *playback.Registry, ids []string) {
	fmt.Fprintln(w)
	for _, id := range ids {
		st, _ := reg.Stats(id)
		fmt.Fprintf(w, "%-12s %d voices, %d idle, ratio %.4f\n", id, st.Size, st.Idle, st.Ratio)
	}
}
