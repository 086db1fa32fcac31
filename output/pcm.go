// SPDX-License-Identifier: EPL-2.0

package output

import (
	"math"
	"sync"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/utils"
)

// PCM encodes clips as signed 16-bit little-endian bytes, the format both
// oto and ebiten consume. The unity-gain encoding of each clip is cached.
type PCM struct {
	mu    sync.Mutex
	unity map[*audio.Clip][]byte
}

func NewPCM() *PCM {
	return &PCM{unity: make(map[*audio.Clip][]byte)}
}

// Bytes returns the encoded clip and the volume to set on the player.
// Player volumes cannot exceed 1, so louder gains are baked into the
// samples (clipping at full scale) and the player volume becomes 1.
func (p *PCM) Bytes(clip *audio.Clip, volume float64) ([]byte, float64) {
	if volume < 0 || math.IsNaN(volume) {
		volume = 0
	}

	if volume > 1 {
		return utils.AppendInt16LE(nil, clip.Samples, float32(volume)), 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	b, ok := p.unity[clip]
	if !ok {
		b = utils.AppendInt16LE(nil, clip.Samples, 1)
		p.unity[clip] = b
	}

	return b, volume
}

// Len is the number of cached encodings.
func (p *PCM) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.unity)
}
