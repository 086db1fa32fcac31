// SPDX-License-Identifier: EPL-2.0

// Package voice implements the per-sound voice pool.
//
// A Pool owns a fixed number of voices, each with a volume computed once by
// the attenuation package. Every voice is either idle or active. Acquire
// always hands out the lowest idle index, which is also the loudest voice
// still available; Tick counts active voices down and returns expired ones
// to the idle set:
//
//	p, _ := voice.NewPool(3, 0.5)
//	v, ok := p.Acquire(0.25) // v.Index == 0, v.Volume == 0.5
//	p.Tick(1.0 / 60)
//
// A voice whose remaining time reaches zero or below during a tick expires
// on that tick. The pool never grows, so Acquire reports ok == false once all
// voices are active.
package voice
