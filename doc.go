// SPDX-License-Identifier: EPL-2.0

// Package sfxpool plays game sound effects through per-sound voice pools.
//
// Each registered sound owns a fixed number of voices. Voice 0 plays at the
// sound's base volume and every further concurrent voice is quieter by a
// constant ratio, chosen so that all voices together stay within a loudness
// budget. When every voice is busy, further plays are dropped until a voice
// expires.
//
// # Packages
//
//   - attenuation: the Newton-Raphson ratio solver
//   - voice: the fixed-size voice pool
//   - playback: the sound registry, stop policies and clocks
//   - loader: decodes files into clips through formats/* and audio
//   - output: headless, oto and ebiten backends
//   - config: YAML/TOML/JSON configuration and sound manifests
//
// # Quick Start
//
//	cfg, err := config.Load("sfxpool.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := otoout.New(cfg.Output.SampleRate, cfg.Output.Channels, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := sfxpool.New(cfg, out, slog.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	clock := playback.NewWallClock(nil)
//	for running {
//	    reg.Advance(clock)
//	    if fired {
//	        reg.Play("laser")
//	    }
//	}
//
// # Supported Formats
//
// DefaultCodecs registers:
//   - WAV (16, 24 and 32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (16, 24 and 32-bit PCM) via formats/aiff
//
// Every clip is rendered once to the output's sample rate and channel
// count, so one-shots start without any per-play conversion.
package sfxpool
