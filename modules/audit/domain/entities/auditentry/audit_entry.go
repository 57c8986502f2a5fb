package auditentry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded administrative action, scoped to a company.
type Entry struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	Action     string
	TargetType string
	TargetID   string
	TargetName string
	Details    json.RawMessage
	CreatedAt  time.Time
}

type FindParams struct {
	Action     string
	TargetType string
	Limit      int
	Offset     int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*Entry, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, entry *Entry) error
}

// RecordedEvent is published by services after a successful mutation. The
// audit recorder subscribes to it and persists the entry fire-and-forget:
// a failed write never affects the mutation that produced the event.
type RecordedEvent struct {
	CompanyID  uuid.UUID
	Action     string
	TargetType string
	TargetID   string
	TargetName string
	Details    map[string]interface{}
}
