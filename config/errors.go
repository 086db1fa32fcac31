// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown output backend")
	ErrMissingID      = errors.New("id is required")
	ErrMissingPath    = errors.New("path is required")
	ErrConfigExists   = errors.New("config file already exists")
)
