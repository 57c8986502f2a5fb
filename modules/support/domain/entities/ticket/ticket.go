package ticket

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen      = "open"
	DefaultPriority = "medium"
	// RecentLimit caps the "my tickets" list.
	RecentLimit = 10
)

type Ticket struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Category    string
	Priority    string
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}

type Repository interface {
	// ListRecent returns at most limit tickets, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Ticket, error)
	Create(ctx context.Context, data *Ticket) error
}
