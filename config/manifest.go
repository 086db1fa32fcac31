// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type manifest struct {
	Sounds []Sound `yaml:"sounds"`
}

// ParseManifest decodes a YAML sound list:
//
//	sounds:
//	  - id: coin
//	    path: sfx/coin.ogg
//	    max_concurrency: 6
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseManifest(r io.Reader) ([]Sound, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := ValidateSounds(m.Sounds); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return m.Sounds, nil
}

// ReadManifest parses the manifest file at path.
func ReadManifest(path string) ([]Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	sounds, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sounds, nil
}

// WriteManifest encodes sounds in the format ParseManifest reads.
func WriteManifest(w io.Writer, sounds []Sound) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(manifest{Sounds: sounds}); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return enc.Close()
}
