package domain

import "time"

// AuditKind identifies what an audit event records.
type AuditKind string

const (
	AuditLoginSucceeded    AuditKind = "login_succeeded"
	AuditLoginUnknownEmail AuditKind = "login_unknown_email"
	AuditLoginBadPassword  AuditKind = "login_bad_password"
	AuditAdminCreated      AuditKind = "admin_created"
)

// AuditEvent is an append-only record of a security-relevant action.
// Events are written asynchronously and never affect request outcomes.
type AuditEvent struct {
	Kind      AuditKind
	Email     string
	UserID    string
	Timestamp time.Time
}
