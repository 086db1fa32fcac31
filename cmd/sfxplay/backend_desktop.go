// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package main

import (
	"fmt"
	"log/slog"

	"github.com/ik5/sfxpool/config"
	"github.com/ik5/sfxpool/output/ebitenout"
	"github.com/ik5/sfxpool/output/otoout"
	"github.com/ik5/sfxpool/playback"
)

func openDevice(cfg config.Config, log *slog.Logger) (playback.Output, error) {
	switch cfg.Output.Backend {
	case config.BackendOto:
		out, err := otoout.New(cfg.Output.SampleRate, cfg.Output.Channels, log)
		if err != nil {
			return nil, err
		}
		return out, nil
	case config.BackendEbiten:
		out, err := ebitenout.New(cfg.Output.SampleRate, log)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Output.Backend)
	}
}
