// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"

	"github.com/ik5/sfxpool/config"
	"github.com/ik5/sfxpool/output"
	"github.com/ik5/sfxpool/playback"
)

// openOutput returns the backend named in cfg. Device backends live in
// backend_desktop.go and are compiled out with the headless build tag.
func openOutput(cfg config.Config, log *slog.Logger) (playback.Output, error) {
	if cfg.Output.Backend == config.BackendHeadless {
		return &output.Discard{}, nil
	}

	return openDevice(cfg, log)
}
