// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ik5/sfxpool/audio"
)

// FileLoader decodes sound files into clips at a fixed output format.
// Clips are cached by reference for the life of the loader, so ids sharing
// a file decode it once.
type FileLoader struct {
	codecs     *audio.Registry
	sampleRate int
	channels   int
	root       string
	fsys       fs.FS
	cache      *cache.Cache
	log        *slog.Logger
}

type Option func(*FileLoader)

// WithRoot resolves relative references against dir.
func WithRoot(dir string) Option {
	return func(l *FileLoader) { l.root = dir }
}

// WithFS reads references from fsys instead of the OS file system. Root is
// ignored when an fs.FS is set.
func WithFS(fsys fs.FS) Option {
	return func(l *FileLoader) { l.fsys = fsys }
}

func WithLogger(log *slog.Logger) Option {
	return func(l *FileLoader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewFileLoader returns a loader rendering every clip at sampleRate Hz with
// the given channel count.
func NewFileLoader(codecs *audio.Registry, sampleRate, channels int, opts ...Option) *FileLoader {
	l := &FileLoader{
		codecs:     codecs,
		sampleRate: sampleRate,
		channels:   channels,
		cache:      cache.New(cache.NoExpiration, 0),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Resolve returns the clip for ref and its length in seconds.
func (l *FileLoader) Resolve(ref string) (*audio.Clip, float64, error) {
	if v, ok := l.cache.Get(ref); ok {
		clip := v.(*audio.Clip)
		return clip, clip.Length(), nil
	}

	dec, ok := l.codecs.ForPath(ref)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q (known: %s)",
			ErrUnsupportedFormat, ref, strings.Join(l.codecs.Formats(), ", "))
	}

	f, err := l.open(ref)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %q: %w", ErrNotFound, ref, err)
		}
		return nil, 0, fmt.Errorf("opening %q: %w", ref, err)
	}
	defer f.Close()

	start := time.Now()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %q: %w", ref, err)
	}
	defer src.Close()

	clip, err := audio.Render(src, l.sampleRate, l.channels)
	if err != nil {
		return nil, 0, fmt.Errorf("rendering %q: %w", ref, err)
	}

	l.cache.Set(ref, clip, cache.NoExpiration)
	l.log.Debug("sound decoded",
		"ref", ref,
		"source_rate", src.SampleRate(),
		"source_channels", src.Channels(),
		"seconds", clip.Length(),
		"took", time.Since(start))

	return clip, clip.Length(), nil
}

func (l *FileLoader) open(ref string) (io.ReadCloser, error) {
	if l.fsys != nil {
		name := strings.TrimPrefix(path.Clean(filepath.ToSlash(ref)), "/")
		return l.fsys.Open(name)
	}

	name := ref
	if l.root != "" && !filepath.IsAbs(ref) {
		name = filepath.Join(l.root, ref)
	}

	return os.Open(name)
}

// Cached reports how many clips are held in memory.
func (l *FileLoader) Cached() int { return l.cache.ItemCount() }

// Forget drops every cached clip.
func (l *FileLoader) Forget() { l.cache.Flush() }
