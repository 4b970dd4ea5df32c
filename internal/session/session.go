// Package session owns the upload lifecycle and gates searches on it.
package session

import (
	"errors"
	"sync"
)

// ErrNoDataLoaded is returned when a search is attempted before any
// successful upload. The search request is never issued in that case.
var ErrNoDataLoaded = errors.New("no data loaded")

// State is the client's view of whether purchase data has been loaded.
type State int

// The two states. There is no in-app path back to StateEmpty; a fresh
// process starts over.
const (
	StateEmpty State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "empty"
}

// Session is the single process-wide upload flag plus the totals from
// the last successful upload. Only the Controller writes it; everything
// else reads.
type Session struct {
	mu          sync.RWMutex
	state       State
	totalItems  int
	totalOrders int
}

// NewSession starts a session in StateEmpty.
func NewSession() *Session {
	return &Session{}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loaded reports whether data has been loaded.
func (s *Session) Loaded() bool {
	return s.State() == StateLoaded
}

// Totals returns the item and order counts reported on load.
func (s *Session) Totals() (items, orders int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalItems, s.totalOrders
}

// EnsureLoaded returns ErrNoDataLoaded unless data has been loaded.
func (s *Session) EnsureLoaded() error {
	if !s.Loaded() {
		return ErrNoDataLoaded
	}
	return nil
}

// markLoaded flips the session to StateLoaded. One-way.
func (s *Session) markLoaded(items, orders int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoaded
	s.totalItems = items
	s.totalOrders = orders
}
