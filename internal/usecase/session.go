package usecase

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
)

// Session is the per-user selection state owned by a presentation surface.
// The displayed table and the league/season it belongs to are swapped together.
type Session struct {
	id string

	mu       sync.RWMutex
	selected league.Entry
	current  leaguestanding.Table

	fetching atomic.Bool
}

func NewSession(id string) *Session {
	return &Session{id: strings.TrimSpace(id)}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) SelectedLeague() (league.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected.ExternalID != ""
}

// Standings returns a copy of the table currently on display.
func (s *Session) Standings() leaguestanding.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.current
	out.Rows = make([]leaguestanding.Row, len(s.current.Rows))
	copy(out.Rows, s.current.Rows)
	return out
}

// Fetching reports whether a standings request is outstanding for this session.
func (s *Session) Fetching() bool {
	return s.fetching.Load()
}

func (s *Session) selectLeague(entry league.Entry) {
	s.mu.Lock()
	s.selected = entry
	s.mu.Unlock()
}

func (s *Session) beginFetch() error {
	if !s.fetching.CompareAndSwap(false, true) {
		return ErrFetchInProgress
	}
	return nil
}

func (s *Session) endFetch() {
	s.fetching.Store(false)
}

func (s *Session) replaceStandings(table leaguestanding.Table) {
	s.mu.Lock()
	s.current = table
	s.mu.Unlock()
}
