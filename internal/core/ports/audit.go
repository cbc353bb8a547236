package ports

import (
	"context"

	"github.com/clinicore/user-system/internal/core/domain"
)

// AuditSink accepts audit events for asynchronous recording. Implementations
// must not block request handling beyond transient buffering.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
