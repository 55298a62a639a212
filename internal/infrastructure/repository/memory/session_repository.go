package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

type sessionItem struct {
	session  *usecase.Session
	lastSeen time.Time
}

// SessionRepository keeps API sessions in process memory. Nothing survives a restart.
type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]*sessionItem
	now   func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		items: make(map[string]*sessionItem),
		now:   time.Now,
	}
}

func (r *SessionRepository) Create(_ context.Context) (*usecase.Session, error) {
	session := usecase.NewSession(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[session.ID()] = &sessionItem{session: session, lastSeen: r.now()}
	return session, nil
}

func (r *SessionRepository) GetByID(_ context.Context, sessionID string) (*usecase.Session, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[sessionID]
	if !ok {
		return nil, false, nil
	}
	item.lastSeen = r.now()
	return item.session, true, nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID = strings.TrimSpace(sessionID)
	if _, ok := r.items[sessionID]; !ok {
		return false
	}
	delete(r.items, sessionID)
	return true
}

// PruneIdle drops sessions not used for longer than idle. Sessions with a fetch in flight
// are kept.
func (r *SessionRepository) PruneIdle(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	removed := 0
	for id, item := range r.items {
		if item.lastSeen.Before(cutoff) && !item.session.Fetching() {
			delete(r.items, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
