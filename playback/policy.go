// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"strings"
)

// StopPolicy decides what StopAll does to voice bookkeeping.
type StopPolicy int

const (
	// StopForceExpire silences output and returns every active voice to idle,
	// so the next Play starts again from the loudest voice.
	StopForceExpire StopPolicy = iota
	// StopMuteOnly silences output but leaves voices counting down; muted
	// voices stay unavailable until their time runs out.
	StopMuteOnly
)

func (p StopPolicy) String() string {
	switch p {
	case StopForceExpire:
		return "force-expire"
	case StopMuteOnly:
		return "mute-only"
	default:
		return fmt.Sprintf("StopPolicy(%d)", int(p))
	}
}

// ParseStopPolicy accepts the names printed by String, case-insensitively.
// The empty string selects StopForceExpire.
func ParseStopPolicy(s string) (StopPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "force-expire":
		return StopForceExpire, nil
	case "mute-only":
		return StopMuteOnly, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStopPolicy, s)
	}
}
