package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/workflow"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/infrastructure/persistence/models"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

type WorkflowRepository struct{}

func NewWorkflowRepository() workflow.Repository {
	return &WorkflowRepository{}
}

func (r *WorkflowRepository) List(ctx context.Context) ([]*workflow.ApprovalWorkflow, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, company_id, department_id, approver_id, created_at, updated_at
		FROM approval_workflows
		WHERE company_id = $1
		ORDER BY created_at
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workflows []*workflow.ApprovalWorkflow
	for rows.Next() {
		var row models.ApprovalWorkflow
		if err := rows.Scan(
			&row.ID,
			&row.CompanyID,
			&row.DepartmentID,
			&row.ApproverID,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		workflows = append(workflows, toDomainWorkflow(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workflows, nil
}

func (r *WorkflowRepository) Upsert(ctx context.Context, data *workflow.ApprovalWorkflow) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	data.CompanyID = companyID

	return tx.QueryRow(ctx, `
		INSERT INTO approval_workflows (company_id, department_id, approver_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id, department_id) DO UPDATE
		SET approver_id = EXCLUDED.approver_id, updated_at = now()
		RETURNING id, created_at, updated_at
	`,
		data.CompanyID,
		data.DepartmentID,
		data.ApproverID,
	).Scan(&data.ID, &data.CreatedAt, &data.UpdatedAt)
}

func (r *WorkflowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM approval_workflows WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workflow.ErrWorkflowNotFound
	}
	return nil
}
