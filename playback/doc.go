// SPDX-License-Identifier: EPL-2.0

// Package playback maps sound ids to voice pools and drives them frame by
// frame.
//
// A Registry is built once at startup. Every sound is registered before the
// first play of a registered id; afterwards Register fails with ErrSealed.
// Playing an unknown id changes nothing.
//
//	reg := playback.NewRegistry(loader, out, playback.WithLogger(logger))
//	reg.Register("ping", "sfx/ping.wav", 3, 0.5)
//
//	// once per frame
//	reg.Advance(clock)
//	if jumped {
//	    reg.Play("ping")
//	}
//
// Clips are resolved through the ResourceLoader on first play and cached. A
// failed resolution leaves the sound unresolved and the next play retries.
// Each voice is held for a tenth of the clip's length (DurationDivisor), so
// a burst of plays fans out across the voice ladder instead of stacking at
// full volume.
//
// Play returns true for an exhausted pool even though nothing sounds;
// PlayDetailed reports Exhausted for callers that care.
//
// StopAll always silences the Output. What happens to voice bookkeeping is
// set by the StopPolicy: StopForceExpire (the default) returns every voice
// to idle, StopMuteOnly lets them run out while muted.
package playback
