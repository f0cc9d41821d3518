// Package session keeps each shopper's in-progress order in memory.
package session

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"ultrapopular/internal/domain"
)

type entry struct {
	state    *domain.Session
	lastSeen time.Time
}

// Store maps session ids to their state. Every access runs under one lock,
// so a session never sees two overlapping mutations. Nothing is persisted.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewStore keeps at most max sessions; sessions idle longer than ttl are
// treated as ended. The least recently used session is evicted when full.
func NewStore(max int, ttl time.Duration) (*Store, error) {
	c, err := lru.New(max)
	if err != nil {
		return nil, err
	}
	return &Store{cache: c, ttl: ttl, now: time.Now}, nil
}

// SetClock overrides the time source (tests).
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// lookup returns the live entry for id, creating a fresh one if missing or expired.
func (s *Store) lookup(id string) *entry {
	now := s.now()
	if v, ok := s.cache.Get(id); ok {
		e := v.(*entry)
		if s.ttl <= 0 || now.Sub(e.lastSeen) <= s.ttl {
			e.lastSeen = now
			return e
		}
		s.cache.Remove(id)
	}
	e := &entry{state: domain.NewSession(), lastSeen: now}
	s.cache.Add(id, e)
	return e
}

// View returns a copy of the session state.
func (s *Store) View(id string) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(id).state.Clone()
}

// Update applies fn to the session and returns a copy of the resulting state.
// fn must not retain the pointer.
func (s *Store) Update(id string, fn func(*domain.Session) error) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(id)
	err := fn(e.state)
	return e.state.Clone(), err
}

// Settle runs fn on a copy of the session while holding the lock and, when
// fn succeeds, empties the cart. Store, customer data and addendum are kept
// for the next order. Other requests for any session wait until it returns.
func (s *Store) Settle(id string, fn func(domain.Session) error) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.lookup(id)
	if err := fn(e.state.Clone()); err != nil {
		return e.state.Clone(), err
	}
	e.state.Cart = domain.Cart{}
	return e.state.Clone(), nil
}

// Len is the number of tracked sessions, expired ones included until touched.
func (s *Store) Len() int {
	return s.cache.Len()
}
