// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/ik5/sfxpool/attenuation"
)

// Voice is one playable slot of a pool. Remaining is only meaningful while
// the voice is active.
type Voice struct {
	Index     int
	Volume    float64
	Remaining float64
}

// Stats is a snapshot of a pool's membership.
type Stats struct {
	Size   int
	Idle   int
	Active int
	Ratio  float64
}

// Pool is a fixed arena of voices. Idle membership is a bitset, so the
// lowest idle index is found in O(N/64); active membership is a dense list
// of indices, so Tick only visits sounding voices.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	voices []Voice
	idle   []uint64
	active []int
	base   float64
	ratio  float64
}

// NewPool allocates n voices with volumes baseVolume * ratio^i, all idle.
func NewPool(n int, baseVolume float64) (*Pool, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, n)
	}
	if baseVolume <= 0 || math.IsNaN(baseVolume) || math.IsInf(baseVolume, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidVolume, baseVolume)
	}

	ratio := attenuation.Ratio(n, baseVolume)
	vols := attenuation.Volumes(n, baseVolume, ratio)

	p := &Pool{
		voices: make([]Voice, n),
		idle:   make([]uint64, (n+63)/64),
		active: make([]int, 0, n),
		base:   baseVolume,
		ratio:  ratio,
	}
	for i := range p.voices {
		p.voices[i] = Voice{Index: i, Volume: vols[i]}
		p.setIdle(i)
	}

	return p, nil
}

func (p *Pool) setIdle(i int)   { p.idle[i>>6] |= 1 << (uint(i) & 63) }
func (p *Pool) clearIdle(i int) { p.idle[i>>6] &^= 1 << (uint(i) & 63) }

func (p *Pool) isIdle(i int) bool {
	return p.idle[i>>6]&(1<<(uint(i)&63)) != 0
}

// lowestIdle returns the smallest idle index, or -1.
func (p *Pool) lowestIdle() int {
	for w, word := range p.idle {
		if word != 0 {
			return w<<6 + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// Acquire activates the loudest idle voice for duration seconds. ok is false
// when every voice is already active.
func (p *Pool) Acquire(duration float64) (v Voice, ok bool) {
	i := p.lowestIdle()
	if i < 0 {
		return Voice{}, false
	}

	p.clearIdle(i)
	p.voices[i].Remaining = duration
	p.active = append(p.active, i)

	return p.voices[i], true
}

// Tick advances every active voice by dt seconds and returns those whose
// time ran out to the idle set. It returns how many voices expired.
func (p *Pool) Tick(dt float64) int {
	expired := 0
	kept := p.active[:0]

	for _, i := range p.active {
		p.voices[i].Remaining -= dt
		if p.voices[i].Remaining <= 0 {
			p.setIdle(i)
			expired++
			continue
		}
		kept = append(kept, i)
	}
	p.active = kept

	return expired
}

// ForceExpireAll returns every active voice to idle and reports how many
// there were.
func (p *Pool) ForceExpireAll() int {
	n := len(p.active)
	for _, i := range p.active {
		p.voices[i].Remaining = 0
		p.setIdle(i)
	}
	p.active = p.active[:0]

	return n
}

func (p *Pool) Len() int            { return len(p.voices) }
func (p *Pool) Active() int         { return len(p.active) }
func (p *Pool) Idle() int           { return len(p.voices) - len(p.active) }
func (p *Pool) Ratio() float64      { return p.ratio }
func (p *Pool) BaseVolume() float64 { return p.base }

// Volume returns the fixed gain of voice i.
func (p *Pool) Volume(i int) float64 { return p.voices[i].Volume }

// IsActive reports whether voice i is currently sounding.
func (p *Pool) IsActive(i int) bool { return !p.isIdle(i) }

// Voice returns a copy of voice i.
func (p *Pool) Voice(i int) Voice { return p.voices[i] }

func (p *Pool) Stats() Stats {
	return Stats{
		Size:   len(p.voices),
		Idle:   p.Idle(),
		Active: len(p.active),
		Ratio:  p.ratio,
	}
}
