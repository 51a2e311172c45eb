package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mind-engage/gradecalc/internal/grading"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	sess     *grading.Session
	lastSeen time.Time
}

// Store keeps one grading.Session per browser in memory. Every access runs
// under a single lock, so events for a session are applied one at a time.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

// NewStore returns a store that forgets sessions idle for longer than ttl.
// A zero ttl keeps sessions until the process exits.
func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{ttl: ttl, now: now, entries: map[string]*entry{}}
}

// Create starts a fresh session and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.entries[id] = &entry{sess: grading.NewSession(), lastSeen: s.now()}
	s.mu.Unlock()
	return id
}

// Exists reports whether id names a live session.
func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	return ok && !s.expired(e)
}

// Update runs fn against the session while holding the store lock. fn must
// not retain the pointer after returning.
func (s *Store) Update(id string, fn func(*grading.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		return ErrNotFound
	}
	e.lastSeen = s.now()
	return fn(e.sess)
}

// Len is the number of sessions held, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("session sweep: dropped %d idle sessions", n)
			}
		}
	}
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}
