// Package theme tracks the light/dark display mode and tells subscribers when it changes.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Mode is a display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("invalid theme %q (want light or dark)", s)
}

// Source holds the current mode. Components that care receive it explicitly
// and subscribe for changes.
type Source struct {
	mu     sync.Mutex
	mode   Mode
	nextID int
	subs   map[int]func(Mode)
}

func NewSource(initial Mode) *Source {
	return &Source{mode: initial, subs: make(map[int]func(Mode))}
}

// Current returns the active mode.
func (s *Source) Current() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Set changes the mode and notifies subscribers if it actually changed.
func (s *Source) Set(m Mode) {
	s.mu.Lock()
	if m == s.mode {
		s.mu.Unlock()
		return
	}
	s.mode = m
	fns := make([]func(Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(m)
	}
}

// Toggle switches between light and dark.
func (s *Source) Toggle() Mode {
	next := Dark
	if s.Current() == Dark {
		next = Light
	}
	s.Set(next)
	return next
}

// Subscribe registers fn for mode changes. The returned func unsubscribes.
func (s *Source) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
