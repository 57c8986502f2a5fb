package member

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrMemberNotFound = errors.New("team member not found")

const StatusPending = "pending"

type Member struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
	Status    string
	CreatedAt time.Time
}

// InvitationToken is a one-time account setup token mailed to a newly
// invited member.
type InvitationToken struct {
	ID        uuid.UUID
	MemberID  uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	List(ctx context.Context) ([]*Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	Create(ctx context.Context, data *Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvitationRepository interface {
	Create(ctx context.Context, token *InvitationToken) error
}
