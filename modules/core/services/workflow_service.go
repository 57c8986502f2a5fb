package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/workflow"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type WorkflowService struct {
	repo      workflow.Repository
	publisher eventbus.EventBus
}

func NewWorkflowService(repo workflow.Repository, publisher eventbus.EventBus) *WorkflowService {
	return &WorkflowService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *WorkflowService) List(ctx context.Context) ([]*workflow.ApprovalWorkflow, error) {
	return s.repo.List(ctx)
}

// Save upserts the approver for a department; a second save for the same
// department replaces the approver instead of adding a row.
func (s *WorkflowService) Save(ctx context.Context, data *workflow.ApprovalWorkflow) error {
	if data.DepartmentID == uuid.Nil {
		return serrors.NewValidationError("department_id")
	}
	if data.ApproverID == uuid.Nil {
		return serrors.NewValidationError("approver_id")
	}
	if err := s.repo.Upsert(ctx, data); err != nil {
		return err
	}
	s.publishAudit(ctx, "save_approval_workflow", data.ID.String())
	return nil
}

func (s *WorkflowService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_approval_workflow", id.String())
	return nil
}

func (s *WorkflowService) publishAudit(ctx context.Context, action, targetID string) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: "approval_workflow",
		TargetID:   targetID,
	})
}
