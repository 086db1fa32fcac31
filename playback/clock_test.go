// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"testing"
	"time"
)

func TestWallClock(t *testing.T) {
	t.Parallel()

	base := time.Unix(1_700_000_000, 0)
	ticks := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(50 * time.Millisecond),
		base.Add(40 * time.Millisecond),
	}
	i := 0
	c := NewWallClock(func() time.Time {
		now := ticks[i]
		i++
		return now
	})

	want := []float64{0, 0.016, 0.034, 0}
	for n, w := range want {
		if got := c.Delta(); got < w-1e-9 || got > w+1e-9 {
			t.Errorf("Delta #%d = %v, want %v", n, got, w)
		}
	}
}

func TestManualClock(t *testing.T) {
	t.Parallel()

	c := &ManualClock{Step: 0.5}
	c.Push(1, 2)

	for n, want := range []float64{1, 2, 0.5, 0.5} {
		if got := c.Delta(); got != want {
			t.Errorf("Delta #%d = %v, want %v", n, got, want)
		}
	}
}

func TestParseStopPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    StopPolicy
		wantErr bool
	}{
		{in: "", want: StopForceExpire},
		{in: "force-expire", want: StopForceExpire},
		{in: "Mute-Only", want: StopMuteOnly},
		{in: " mute-only ", want: StopMuteOnly},
		{in: "pause", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStopPolicy(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownStopPolicy) {
				t.Errorf("ParseStopPolicy(%q) error = %v, want ErrUnknownStopPolicy", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStopPolicy(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
		if round, _ := ParseStopPolicy(got.String()); round != got {
			t.Errorf("String() of %v does not parse back", got)
		}
	}
}
