// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"

	"github.com/ik5/sfxpool/audio"
	"github.com/ik5/sfxpool/voice"
)

const (
	// DurationDivisor scales a clip's length down to its voice hold time.
	DurationDivisor = 10

	DefaultMaxConcurrency = 10
	DefaultBaseVolume     = 1.0
)

// ResourceLoader turns a resource reference into a decoded clip and its
// length in seconds.
type ResourceLoader interface {
	Resolve(ref string) (*audio.Clip, float64, error)
}

// Output starts fire-and-forget playback and silences everything at once.
type Output interface {
	PlayOneShot(clip *audio.Clip, volume float64)
	StopAll()
}

// Outcome tells a successful play apart from an exhausted pool.
type Outcome int

const (
	Played Outcome = iota
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Played:
		return "played"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result describes a single play request.
type Result struct {
	ID       string
	Outcome  Outcome
	Voice    voice.Voice
	Duration float64
}

type sound struct {
	ref    string
	pool   *voice.Pool
	clip   *audio.Clip
	length float64
}

func (s *sound) resolved() bool { return s.clip != nil }

// Registry maps sound ids to voice pools. All Register calls must happen
// before the first Play; after that the set of ids is fixed and only voice
// state changes.
//
// A Registry is driven from a single goroutine, normally the host's frame
// callback, and is not safe for concurrent use.
type Registry struct {
	loader ResourceLoader
	out    Output
	log    *slog.Logger
	policy StopPolicy
	sounds map[string]*sound
	sealed bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithStopPolicy selects what StopAll does to active voices.
func WithStopPolicy(p StopPolicy) Option {
	return func(r *Registry) { r.policy = p }
}

func NewRegistry(loader ResourceLoader, out Output, opts ...Option) *Registry {
	r := &Registry{
		loader: loader,
		out:    out,
		log:    slog.New(slog.DiscardHandler),
		policy: StopForceExpire,
		sounds: make(map[string]*sound),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register creates a pool of maxConcurrency voices for id. Registering an
// existing id replaces its pool and drops any resolved clip.
func (r *Registry) Register(id, ref string, maxConcurrency int, baseVolume float64) error {
	if id == "" {
		return ErrEmptyID
	}
	if r.sealed {
		return fmt.Errorf("registering %q: %w", id, ErrSealed)
	}

	pool, err := voice.NewPool(maxConcurrency, baseVolume)
	if err != nil {
		return fmt.Errorf("registering %q: %w", id, err)
	}

	if old, ok := r.sounds[id]; ok {
		r.log.Info("sound re-registered, previous pool replaced",
			"id", id, "old_ref", old.ref, "ref", ref)
	}

	r.sounds[id] = &sound{ref: ref, pool: pool}
	r.log.Debug("sound registered",
		"id", id, "ref", ref, "voices", maxConcurrency,
		"base_volume", baseVolume, "ratio", pool.Ratio())

	return nil
}

// Play triggers id and reports whether the request was accepted. An
// exhausted pool still counts as accepted; use PlayDetailed to tell the two
// apart.
func (r *Registry) Play(id string) bool {
	_, err := r.PlayDetailed(id)
	return err == nil
}

// PlayDetailed triggers id. It fails with ErrUnknownID for unregistered ids
// and with the loader's error when the clip cannot be resolved; in both
// cases no voice is touched.
func (r *Registry) PlayDetailed(id string) (Result, error) {
	s, ok := r.sounds[id]
	if !ok {
		return Result{ID: id}, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	r.sealed = true

	if err := r.resolve(id, s); err != nil {
		return Result{ID: id}, err
	}

	duration := s.length / DurationDivisor

	v, ok := s.pool.Acquire(duration)
	if !ok {
		r.log.Debug("all voices busy", "id", id, "voices", s.pool.Len())
		return Result{ID: id, Outcome: Exhausted, Duration: duration}, nil
	}

	r.out.PlayOneShot(s.clip, v.Volume)

	return Result{ID: id, Outcome: Played, Voice: v, Duration: duration}, nil
}

func (r *Registry) resolve(id string, s *sound) error {
	if s.resolved() {
		return nil
	}

	clip, length, err := r.loader.Resolve(s.ref)
	if err != nil {
		r.log.Warn("resolving sound failed", "id", id, "ref", s.ref, "error", err)
		return fmt.Errorf("resolving %q: %w", id, err)
	}
	if clip == nil {
		return fmt.Errorf("resolving %q: %w", id, audio.ErrInvalidFormat)
	}
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return fmt.Errorf("resolving %q: length %v: %w", id, length, audio.ErrInvalidFormat)
	}

	s.clip = clip
	s.length = length

	return nil
}

// Resolve loads the clip for id now instead of on its first play. It is a
// no-op for an already resolved id.
func (r *Registry) Resolve(id string) error {
	s, ok := r.sounds[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	return r.resolve(id, s)
}

// Preload resolves every registered sound and joins the failures. Sounds
// that failed stay unresolved and are retried on their next play.
func (r *Registry) Preload() error {
	var errs []error
	for _, id := range r.IDs() {
		if err := r.resolve(id, r.sounds[id]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Tick advances every pool by dt seconds and returns how many voices
// expired in total.
func (r *Registry) Tick(dt float64) int {
	expired := 0
	for _, s := range r.sounds {
		expired += s.pool.Tick(dt)
	}

	return expired
}

// Advance ticks the registry by the clock's delta.
func (r *Registry) Advance(c Clock) int {
	return r.Tick(c.Delta())
}

// StopAll silences the output. Under StopForceExpire every active voice is
// also returned to idle.
func (r *Registry) StopAll() {
	r.out.StopAll()

	if r.policy != StopForceExpire {
		return
	}

	freed := 0
	for _, s := range r.sounds {
		freed += s.pool.ForceExpireAll()
	}
	r.log.Debug("stopped all sounds", "policy", r.policy, "voices_freed", freed)
}

// Stats returns the voice counts of id.
func (r *Registry) Stats(id string) (voice.Stats, bool) {
	s, ok := r.sounds[id]
	if !ok {
		return voice.Stats{}, false
	}

	return s.pool.Stats(), true
}

// Resolved reports whether id's clip has been loaded.
func (r *Registry) Resolved(id string) bool {
	s, ok := r.sounds[id]
	return ok && s.resolved()
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.sounds))
}

func (r *Registry) Len() int           { return len(r.sounds) }
func (r *Registry) Policy() StopPolicy { return r.policy }
func (r *Registry) Sealed() bool       { return r.sealed }
