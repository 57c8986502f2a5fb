package persistence

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/member"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/workflow"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/infrastructure/persistence/models"
)

func toDomainMember(row *models.TeamMember) *member.Member {
	return &member.Member{
		ID:        uuid.MustParse(row.ID),
		CompanyID: uuid.MustParse(row.CompanyID),
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Role:      row.Role,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func toDomainRole(row *models.CustomRole) (*role.Role, error) {
	data := &role.Role{
		ID:           uuid.MustParse(row.ID),
		CompanyID:    uuid.MustParse(row.CompanyID),
		RoleName:     row.RoleName,
		Description:  row.Description,
		DisplayOrder: row.DisplayOrder,
		IsPredefined: row.IsPredefined,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if len(row.Permissions) > 0 {
		if err := json.Unmarshal(row.Permissions, &data.Permissions); err != nil {
			return nil, err
		}
	}
	if len(row.DetailedPermissions) > 0 {
		if err := json.Unmarshal(row.DetailedPermissions, &data.DetailedPermissions); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func toDBRolePermissions(data *role.Role) ([]byte, []byte, error) {
	permissions, err := json.Marshal(data.Permissions)
	if err != nil {
		return nil, nil, err
	}
	detailed, err := json.Marshal(data.DetailedPermissions)
	if err != nil {
		return nil, nil, err
	}
	return permissions, detailed, nil
}

func toDomainWorkflow(row *models.ApprovalWorkflow) *workflow.ApprovalWorkflow {
	return &workflow.ApprovalWorkflow{
		ID:           uuid.MustParse(row.ID),
		CompanyID:    uuid.MustParse(row.CompanyID),
		DepartmentID: uuid.MustParse(row.DepartmentID),
		ApproverID:   uuid.MustParse(row.ApproverID),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
