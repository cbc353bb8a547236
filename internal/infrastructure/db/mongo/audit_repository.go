package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicore/user-system/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository persists audit events to the audit_events collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	doc := bson.M{
		"kind":        string(event.Kind),
		"email":       event.Email,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.UserID != "" {
		doc["user_id"] = event.UserID
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
