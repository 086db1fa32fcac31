// SPDX-License-Identifier: EPL-2.0

package output

import (
	"log/slog"
	"sync"

	"github.com/ik5/sfxpool/audio"
)

// Player is the part of oto and ebiten audio players that Players drives.
type Player interface {
	SetVolume(volume float64)
	Play()
	IsPlaying() bool
	Pause()
	Close() error
}

// Players starts one player per one-shot and keeps the live ones so they
// can be silenced together. Finished players are closed the next time a
// one-shot starts.
type Players struct {
	mu         sync.Mutex
	open       func(pcm []byte) Player
	pcm        *PCM
	sampleRate int
	channels   int
	live       []Player
	log        *slog.Logger
}

// NewPlayers returns a backend whose players are created by open. Clips
// must match sampleRate and channels; others are dropped with a warning.
func NewPlayers(open func(pcm []byte) Player, sampleRate, channels int, log *slog.Logger) *Players {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Players{
		open:       open,
		pcm:        NewPCM(),
		sampleRate: sampleRate,
		channels:   channels,
		log:        log,
	}
}

func (p *Players) PlayOneShot(clip *audio.Clip, volume float64) {
	if clip == nil || clip.SampleRate != p.sampleRate || clip.Channels != p.channels {
		p.log.Warn("clip does not match output format, dropped",
			"want_rate", p.sampleRate, "want_channels", p.channels)
		return
	}

	data, vol := p.pcm.Bytes(clip, volume)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.prune()

	pl := p.open(data)
	pl.SetVolume(vol)
	pl.Play()
	p.live = append(p.live, pl)
}

// prune closes finished players. Callers hold mu.
func (p *Players) prune() {
	kept := p.live[:0]
	for _, pl := range p.live {
		if pl.IsPlaying() {
			kept = append(kept, pl)
			continue
		}
		if err := pl.Close(); err != nil {
			p.log.Debug("closing finished player", "error", err)
		}
	}
	clear(p.live[len(kept):])
	p.live = kept
}

// StopAll pauses and closes every live player.
func (p *Players) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pl := range p.live {
		pl.Pause()
		if err := pl.Close(); err != nil {
			p.log.Debug("closing stopped player", "error", err)
		}
	}
	clear(p.live)
	p.live = p.live[:0]
}

// Live counts the players that have not been pruned yet.
func (p *Players) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.live)
}
