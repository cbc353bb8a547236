package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/user-system/internal/core/domain"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingAuditRepo) Record(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitForEvents(t *testing.T, repo *recordingAuditRepo, n int) []domain.AuditEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if events := repo.snapshot(); len(events) >= n {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", n, len(repo.snapshot()))
	return nil
}

func TestAuditDispatcher_RecordsEvents(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewAuditDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	now := time.Now().UTC()
	d.Enqueue(domain.AuditEvent{Kind: domain.AuditLoginSucceeded, Email: "a@x.com", UserID: "u1", Timestamp: now})
	d.Enqueue(domain.AuditEvent{Kind: domain.AuditLoginBadPassword, Email: "b@x.com", Timestamp: now})
	d.Enqueue(domain.AuditEvent{Kind: domain.AuditAdminCreated, Email: "c@x.com", UserID: "u3", Timestamp: now})

	events := waitForEvents(t, repo, 3)
	kinds := make(map[domain.AuditKind]bool, len(events))
	for _, e := range events {
		kinds[e.Kind] = true
	}
	for _, want := range []domain.AuditKind{domain.AuditLoginSucceeded, domain.AuditLoginBadPassword, domain.AuditAdminCreated} {
		if !kinds[want] {
			t.Fatalf("event %q not recorded", want)
		}
	}
}

func TestAuditDispatcher_SameEmailOrdering(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewAuditDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	base := time.Now().UTC()
	for i := 0; i < 10; i++ {
		kind := domain.AuditLoginBadPassword
		if i == 9 {
			kind = domain.AuditLoginSucceeded
		}
		d.Enqueue(domain.AuditEvent{Kind: kind, Email: "same@x.com", Timestamp: base.Add(time.Duration(i))})
	}

	events := waitForEvents(t, repo, 10)
	if events[len(events)-1].Kind != domain.AuditLoginSucceeded {
		t.Fatalf("events for one email arrived out of order: last is %q", events[len(events)-1].Kind)
	}
}

func TestAuditDispatcher_DefaultWorkers(t *testing.T) {
	d := NewAuditDispatcher(0, &recordingAuditRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
