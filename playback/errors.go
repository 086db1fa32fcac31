// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrUnknownID indicates a sound id that was never registered
	ErrUnknownID = errors.New("unknown sound id")

	// ErrEmptyID indicates registration with an empty sound id
	ErrEmptyID = errors.New("sound id must not be empty")

	// ErrSealed indicates registration after the first play
	ErrSealed = errors.New("registry is sealed: register all sounds before the first play")

	// ErrUnknownStopPolicy indicates an unrecognized stop policy name
	ErrUnknownStopPolicy = errors.New("unknown stop policy")
)
