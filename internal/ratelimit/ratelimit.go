// Package ratelimit provides fixed-window request limiting keyed by client
// identifier: up to max requests per identifier within a window, counter
// reset wholesale at the window boundary.
package ratelimit

import (
	"sync"
	"time"
)

// Store decides whether a request from the given client is allowed at the
// given time. Implementations own whatever state the decision needs.
type Store interface {
	Allow(id string, now time.Time) bool
}

type entry struct {
	count     int
	resetTime time.Time
}

// MemoryStore is an in-process fixed-window Store. Entries are overwritten
// in place when a fresh window starts but never evicted, so the map grows
// with the number of distinct client identifiers seen.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int
}

func NewMemoryStore(window time.Duration, max int) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
	}
}

// Allow reports whether the client may proceed and records the request if
// so. The mutex covers the read-modify-write so the count can never exceed
// max within a live window, even under concurrent handlers.
func (s *MemoryStore) Allow(id string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || now.After(e.resetTime) {
		s.entries[id] = &entry{count: 1, resetTime: now.Add(s.window)}
		return true
	}
	if e.count >= s.max {
		return false
	}
	e.count++
	return true
}
