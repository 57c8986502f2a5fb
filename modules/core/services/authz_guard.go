package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/serrors"
)

var authorizeSettingsFn = defaultAuthorizeSettings

// authorizeSettings allows the call when the acting user's role carries the
// settings.user_role_management capability.
func authorizeSettings(ctx context.Context, roles role.Repository) error {
	return authorizeSettingsFn(ctx, roles)
}

func defaultAuthorizeSettings(ctx context.Context, roles role.Repository) error {
	actor, ok := composables.UseActor(ctx)
	if !ok || actor.Role == "" {
		return serrors.NewError("AUTHZ_FORBIDDEN", "permission denied", "Authorization.PermissionDenied")
	}

	data, err := roles.GetByName(ctx, actor.Role)
	if err != nil {
		// Admin is granted everything even before the predefined role rows
		// are seeded for the company.
		if errors.Is(err, role.ErrRoleNotFound) && actor.Role == "Admin" {
			return nil
		}
		return serrors.NewError("AUTHZ_FORBIDDEN", "permission denied", "Authorization.PermissionDenied")
	}
	if !data.DetailedPermissions.Settings.UserRoleManagement {
		return serrors.NewError("AUTHZ_FORBIDDEN", "permission denied", "Authorization.PermissionDenied")
	}
	return nil
}
