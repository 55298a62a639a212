package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository()
	session, err := repo.Create(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := uuid.Parse(session.ID()); err != nil {
		t.Fatalf("session id must be a uuid, got %q", session.ID())
	}

	got, ok, err := repo.GetByID(context.Background(), " "+session.ID()+" ")
	if err != nil || !ok {
		t.Fatalf("get session: ok=%v err=%v", ok, err)
	}
	if got != session {
		t.Fatalf("expected the same session instance")
	}

	if _, ok, _ := repo.GetByID(context.Background(), "not-a-uuid"); ok {
		t.Fatalf("malformed id must not resolve")
	}
	if _, ok, _ := repo.GetByID(context.Background(), uuid.NewString()); ok {
		t.Fatalf("unknown id must not resolve")
	}
}

func TestSessionRepository_PruneIdle(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := NewSessionRepository()
	repo.now = func() time.Time { return now }

	stale, _ := repo.Create(context.Background())
	now = now.Add(20 * time.Minute)
	fresh, _ := repo.Create(context.Background())

	if removed := repo.PruneIdle(10 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 pruned session, got %d", removed)
	}
	if _, ok, _ := repo.GetByID(context.Background(), stale.ID()); ok {
		t.Fatalf("stale session should be gone")
	}
	if _, ok, _ := repo.GetByID(context.Background(), fresh.ID()); !ok {
		t.Fatalf("fresh session should remain")
	}
	if repo.Len() != 1 {
		t.Fatalf("unexpected size %d", repo.Len())
	}
	if !repo.Delete(context.Background(), fresh.ID()) || repo.Len() != 0 {
		t.Fatalf("delete should remove the session")
	}
}
