// SPDX-License-Identifier: EPL-2.0

// Package output holds the pieces shared by the audio backends.
//
// Discard is a headless backend for tests and servers. Players implements
// fire-and-forget playback on top of any player type with the usual
// SetVolume/Play/IsPlaying/Pause/Close methods; the otoout and ebitenout
// subpackages plug github.com/ebitengine/oto/v3 and
// github.com/hajimehoshi/ebiten/v2/audio into it.
//
// Voice volumes above 1 are legal (a pool's base volume may exceed unity).
// Players cannot amplify, so PCM bakes such gains into the samples instead.
package output
