// SPDX-License-Identifier: EPL-2.0

package voice

import "errors"

var (
	// ErrInvalidConcurrency indicates a pool size below one
	ErrInvalidConcurrency = errors.New("max concurrency must be at least 1")

	// ErrInvalidVolume indicates a base volume that is not a positive finite number
	ErrInvalidVolume = errors.New("base volume must be positive and finite")
)
