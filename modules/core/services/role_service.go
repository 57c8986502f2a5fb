package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/audit/domain/entities/auditentry"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

type RoleService struct {
	repo      role.Repository
	publisher eventbus.EventBus
}

func NewRoleService(repo role.Repository, publisher eventbus.EventBus) *RoleService {
	return &RoleService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *RoleService) List(ctx context.Context) ([]*role.Role, error) {
	return s.repo.List(ctx)
}

// Create adds a custom role with an empty (deny-all) capability matrix. The
// caller needs the user & role management capability.
func (s *RoleService) Create(ctx context.Context, roleName, description string) (*role.Role, error) {
	if err := authorizeSettings(ctx, s.repo); err != nil {
		return nil, err
	}
	roleName = strings.TrimSpace(roleName)
	if roleName == "" {
		return nil, serrors.NewValidationError("role_name")
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	detailed := role.DetailedPermissions{}
	data := &role.Role{
		RoleName:            roleName,
		Description:         strings.TrimSpace(description),
		DetailedPermissions: detailed,
		Permissions:         detailed.Legacy(),
		DisplayOrder:        len(existing),
	}
	if err := s.repo.Create(ctx, data); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "create_role", data.ID.String(), roleName, nil)
	return data, nil
}

func (s *RoleService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*role.Role, error) {
	data, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data.Description = strings.TrimSpace(description)
	if err := s.repo.Update(ctx, data); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "update_role", data.ID.String(), data.RoleName, nil)
	return data, nil
}

// UpdateDetailedPermission flips one capability and rewrites the derived
// legacy map in the same update.
func (s *RoleService) UpdateDetailedPermission(ctx context.Context, roleName, category, permission string, value bool) (*role.Role, error) {
	data, err := s.repo.GetByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if err := data.DetailedPermissions.Set(category, permission, value); err != nil {
		return nil, serrors.NewError("UNKNOWN_PERMISSION", err.Error(), "")
	}
	data.Permissions = data.DetailedPermissions.Legacy()
	if err := s.repo.Update(ctx, data); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "update_role_permissions", data.ID.String(), roleName, map[string]interface{}{
		"category":   category,
		"permission": permission,
		"value":      value,
	})
	return data, nil
}

// UpdateLegacyPermission serves the older flat-toggle path. The role row is
// created on first toggle when it does not exist yet.
func (s *RoleService) UpdateLegacyPermission(ctx context.Context, roleName, area string, value bool) (*role.Role, error) {
	data, err := s.repo.GetByName(ctx, roleName)
	if err != nil {
		if !errors.Is(err, role.ErrRoleNotFound) {
			return nil, err
		}
		data = &role.Role{RoleName: roleName, IsPredefined: role.IsPredefined(roleName)}
	}
	if err := data.Permissions.Set(area, value); err != nil {
		return nil, serrors.NewError("UNKNOWN_PERMISSION", err.Error(), "")
	}
	if err := s.repo.Upsert(ctx, data); err != nil {
		return nil, err
	}
	s.publishAudit(ctx, "update_role_permissions", data.ID.String(), roleName, map[string]interface{}{
		"area":  area,
		"value": value,
	})
	return data, nil
}

// Delete removes a custom role. Predefined roles are rejected before any
// repository call.
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	data, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if data.IsPredefined || role.IsPredefined(data.RoleName) {
		return serrors.NewError("ROLE_PREDEFINED", "predefined roles cannot be deleted", data.RoleName)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishAudit(ctx, "delete_role", id.String(), data.RoleName, nil)
	return nil
}

func (s *RoleService) publishAudit(ctx context.Context, action, targetID, targetName string, details map[string]interface{}) {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(auditentry.RecordedEvent{
		CompanyID:  companyID,
		Action:     action,
		TargetType: "role",
		TargetID:   targetID,
		TargetName: targetName,
		Details:    details,
	})
}
