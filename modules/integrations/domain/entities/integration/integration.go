package integration

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrSystemNotFound = errors.New("external system not found")
	ErrNoToken        = errors.New("no api token generated")
)

const DefaultSystemType = "webhook"

// ExternalSystem is a connected third-party endpoint the company pushes
// data to.
type ExternalSystem struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	SystemName string
	SystemType string
	Endpoint   string
	IsActive   bool
	LastSyncAt *time.Time
	CreatedAt  time.Time
}

type SystemRepository interface {
	// List returns the company's systems, newest first.
	List(ctx context.Context) ([]*ExternalSystem, error)
	Create(ctx context.Context, system *ExternalSystem) error
	Delete(ctx context.Context, id uuid.UUID) (*ExternalSystem, error)
}

// TokenRepository manages the company's single API token, stored on the
// company row.
type TokenRepository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
}
