// SPDX-License-Identifier: EPL-2.0

// Package ebitenout plays one-shots through an ebiten audio context, for
// hosts that already run an ebiten game loop.
package ebitenout

import (
	"errors"
	"fmt"
	"log/slog"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/ik5/sfxpool/output"
)

// ebiten players always take 16-bit stereo.
const channels = 2

// ErrSampleRateMismatch indicates an existing ebiten audio context running
// at another rate
var ErrSampleRateMismatch = errors.New("ebiten audio context already runs at a different sample rate")

type Output struct {
	*output.Players

	ctx *ebaudio.Context
}

// New reuses the current ebiten audio context or creates one at
// sampleRate. Clips must be rendered in stereo at that rate.
func New(sampleRate int, log *slog.Logger) (*Output, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	} else if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("%w: %d, want %d", ErrSampleRateMismatch, ctx.SampleRate(), sampleRate)
	}

	open := func(pcm []byte) output.Player {
		return ctx.NewPlayerFromBytes(pcm)
	}

	return &Output{
		Players: output.NewPlayers(open, sampleRate, channels, log),
		ctx:     ctx,
	}, nil
}

// Channels is the channel count clips must be rendered with.
func Channels() int { return channels }
