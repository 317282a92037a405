package theme

import (
	"slices"
	"strings"
	"sync"
)

// CookieName holds the visitor's chosen mode.
const CookieName = "color_mode"

// HintHeader is the client hint carrying the system color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// State owns the active mode. All mutation goes through Set; observers
// registered with Subscribe see every change.
type State struct {
	mu        sync.RWMutex
	mode      Mode
	observers []func(old, new Mode)
}

// NewState returns a State starting in initial. An invalid initial mode
// falls back to Light.
func NewState(initial Mode) *State {
	if !initial.Valid() {
		initial = Light
	}
	return &State{mode: initial}
}

// Mode returns the active mode.
func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Set changes the active mode. Setting the current mode is a no-op and
// does not notify observers.
func (s *State) Set(m Mode) error {
	m, err := ParseMode(string(m))
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.mode
	if old == m {
		s.mu.Unlock()
		return nil
	}
	s.mode = m
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(old, m)
	}
	return nil
}

// Toggle flips the mode and returns the new one.
func (s *State) Toggle() Mode {
	next := s.Mode().Toggle()
	_ = s.Set(next)
	return next
}

// Subscribe registers fn to be called after every mode change.
func (s *State) Subscribe(fn func(old, new Mode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Assets returns the illustration assets for the active mode.
func (s *State) Assets() map[Illustration]string {
	// Mode is always valid here, so Select cannot fail.
	m, _ := Select(s.Mode())
	return m
}

// Resolve picks the starting mode for a visitor: an explicit cookie wins,
// then the system color scheme hint, then def.
func Resolve(cookie, hint string, def Mode) Mode {
	if m, err := ParseMode(cookie); err == nil {
		return m
	}
	if m, err := ParseMode(strings.Trim(hint, `"`)); err == nil {
		return m
	}
	if def.Valid() {
		return def
	}
	return Light
}
