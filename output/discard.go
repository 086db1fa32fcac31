// SPDX-License-Identifier: EPL-2.0

package output

import (
	"sync/atomic"

	"github.com/ik5/sfxpool/audio"
)

// Discard is a silent backend that only counts calls.
type Discard struct {
	plays atomic.Int64
	stops atomic.Int64
}

func (d *Discard) PlayOneShot(*audio.Clip, float64) { d.plays.Add(1) }
func (d *Discard) StopAll()                         { d.stops.Add(1) }

func (d *Discard) Plays() int64 { return d.plays.Load() }
func (d *Discard) Stops() int64 { return d.stops.Load() }
