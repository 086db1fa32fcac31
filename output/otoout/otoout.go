// SPDX-License-Identifier: EPL-2.0

// Package otoout plays one-shots through github.com/ebitengine/oto/v3.
package otoout

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/sfxpool/output"
)

// Output owns the process-wide oto context. oto allows a single context per
// process, so create one Output and share it.
type Output struct {
	*output.Players

	ctx *oto.Context
}

// New opens the audio device at sampleRate Hz with the given channel count.
// It blocks until the device is ready.
func New(sampleRate, channels int, log *slog.Logger) (*Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("creating oto context: %w", err)
	}
	<-ready

	open := func(pcm []byte) output.Player {
		return ctx.NewPlayer(bytes.NewReader(pcm))
	}

	return &Output{
		Players: output.NewPlayers(open, sampleRate, channels, log),
		ctx:     ctx,
	}, nil
}

// Suspend pauses the device until Resume.
func (o *Output) Suspend() error { return o.ctx.Suspend() }
func (o *Output) Resume() error  { return o.ctx.Resume() }
