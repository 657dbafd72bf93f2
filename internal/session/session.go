// Package session ties the loaded passages, the visit history and the
// presentation config together for one run of the viewer.
package session

import (
	"verse-tui/internal/dataset"
	"verse-tui/internal/history"
	"verse-tui/internal/theme"
)

// Session is the single owner of the per-run state.
type Session struct {
	Config theme.Config

	store *dataset.Store
	nav   *history.Navigator
}

// New creates a session with the initial presentation config. Navigation
// is possible once Start has attached the loaded passages.
func New(cfg theme.Config) *Session {
	return &Session{Config: cfg}
}

// Start attaches the loaded store and begins an empty history over it.
func (s *Session) Start(store *dataset.Store, rnd history.RandomSource) {
	s.store = store
	s.nav = history.New(store.Len(), rnd)
}

// Ready reports whether passages are attached.
func (s *Session) Ready() bool { return s.store != nil }

// Next returns the passage to show after moving forward.
func (s *Session) Next() dataset.Passage {
	return s.store.At(s.nav.Advance())
}

// Prev returns the previous passage. ok is false at the start of history.
func (s *Session) Prev() (dataset.Passage, bool) {
	idx, ok := s.nav.Retreat()
	if !ok {
		return dataset.Passage{}, false
	}
	return s.store.At(idx), true
}

// Current returns the passage under the history cursor.
func (s *Session) Current() (dataset.Passage, bool) {
	idx, ok := s.nav.Current()
	if !ok {
		return dataset.Passage{}, false
	}
	return s.store.At(idx), true
}

func (s *Session) Navigator() *history.Navigator { return s.nav }
