// SPDX-License-Identifier: EPL-2.0

// Package loader resolves sound references to decoded, output-ready clips.
//
// The decoder is picked from an audio.Registry by file extension. The
// decoded stream is resampled and channel-mixed to the loader's output
// format through audio.Render, then cached with github.com/patrickmn/go-cache
// without expiry.
//
//	codecs := sfxpool.DefaultCodecs()
//	l := loader.NewFileLoader(codecs, 44100, 2, loader.WithRoot("assets"))
//	clip, seconds, err := l.Resolve("sfx/ping.wav")
//	if errors.Is(err, loader.ErrNotFound) {
//	    // the file is missing
//	}
package loader
