package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrWorkflowNotFound = errors.New("approval workflow not found")

// ApprovalWorkflow assigns one approver per department; a company has at
// most one workflow row per department.
type ApprovalWorkflow struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	DepartmentID uuid.UUID
	ApproverID   uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository interface {
	List(ctx context.Context) ([]*ApprovalWorkflow, error)
	// Upsert writes the workflow keyed on (company_id, department_id).
	Upsert(ctx context.Context, data *ApprovalWorkflow) error
	Delete(ctx context.Context, id uuid.UUID) error
}
