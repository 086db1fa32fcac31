// SPDX-License-Identifier: EPL-2.0

//go:build headless

package main

import (
	"fmt"
	"log/slog"

	"github.com/ik5/sfxpool/config"
	"github.com/ik5/sfxpool/playback"
)

func openDevice(cfg config.Config, _ *slog.Logger) (playback.Output, error) {
	return nil, fmt.Errorf("%w: %q (built with the headless tag)", config.ErrUnknownBackend, cfg.Output.Backend)
}
