// Package session keeps per-session in-memory state for the interactive
// features. Nothing here outlives the process.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry owns one state value per session id. Access goes through With,
// which serialises all calls for the same session so that each user action
// is applied as a single transition.
type Registry[T any] struct {
	mu        sync.Mutex
	entries   map[uuid.UUID]*entry[T]
	newState  func() *T
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type entry[T any] struct {
	mu       sync.Mutex
	state    *T
	lastSeen time.Time
}

// NewRegistry creates a registry. A ttl of zero keeps entries until Forget.
func NewRegistry[T any](newState func() *T, ttl time.Duration) *Registry[T] {
	return &Registry[T]{
		entries:  make(map[uuid.UUID]*entry[T]),
		newState: newState,
		ttl:      ttl,
		now:      time.Now,
	}
}

// With runs fn against the session's state, creating it on first use.
func (r *Registry[T]) With(id uuid.UUID, fn func(state *T) error) error {
	e := r.acquire(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

func (r *Registry[T]) acquire(id uuid.UUID) *entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.ttl > 0 && now.Sub(r.lastSweep) >= r.ttl {
		r.sweepLocked(now)
		r.lastSweep = now
	}

	e, ok := r.entries[id]
	if !ok {
		e = &entry[T]{state: r.newState()}
		r.entries[id] = e
	}
	e.lastSeen = now
	return e
}

func (r *Registry[T]) Forget(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Sweep drops sessions idle for longer than the ttl and reports how many
// were removed.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

func (r *Registry[T]) sweepLocked(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	removed := 0
	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
