// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	// ErrNotFound indicates the referenced file does not exist
	ErrNotFound = errors.New("sound resource not found")

	// ErrUnsupportedFormat indicates no decoder is registered for the file extension
	ErrUnsupportedFormat = errors.New("unsupported sound format")
)
