package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/infrastructure/persistence/models"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

type RoleRepository struct{}

func NewRoleRepository() role.Repository {
	return &RoleRepository{}
}

const roleColumns = `id, company_id, role_name, description, permissions, detailed_permissions, display_order, is_predefined, created_at, updated_at`

func (r *RoleRepository) List(ctx context.Context) ([]*role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+roleColumns+`
		FROM custom_roles
		WHERE company_id = $1
		ORDER BY display_order, role_name
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*role.Role
	for rows.Next() {
		data, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, data)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*role.Role, error) {
	return r.getOne(ctx, `id = $2`, id)
}

func (r *RoleRepository) GetByName(ctx context.Context, roleName string) (*role.Role, error) {
	return r.getOne(ctx, `role_name = $2`, roleName)
}

func (r *RoleRepository) getOne(ctx context.Context, cond string, arg interface{}) (*role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+roleColumns+`
		FROM custom_roles
		WHERE company_id = $1 AND `+cond,
		companyID, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, role.ErrRoleNotFound
	}
	return scanRole(rows)
}

func (r *RoleRepository) Create(ctx context.Context, data *role.Role) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	data.CompanyID = companyID

	permissions, detailed, err := toDBRolePermissions(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode role permissions")
	}
	return tx.QueryRow(ctx, `
		INSERT INTO custom_roles (company_id, role_name, description, permissions, detailed_permissions, display_order, is_predefined)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		data.CompanyID,
		data.RoleName,
		data.Description,
		permissions,
		detailed,
		data.DisplayOrder,
		data.IsPredefined,
	).Scan(&data.ID, &data.CreatedAt, &data.UpdatedAt)
}

func (r *RoleRepository) Update(ctx context.Context, data *role.Role) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	permissions, detailed, err := toDBRolePermissions(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode role permissions")
	}
	tag, err := tx.Exec(ctx, `
		UPDATE custom_roles
		SET description = $1, permissions = $2, detailed_permissions = $3, updated_at = now()
		WHERE id = $4 AND company_id = $5
	`, data.Description, permissions, detailed, data.ID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) Upsert(ctx context.Context, data *role.Role) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	data.CompanyID = companyID

	permissions, detailed, err := toDBRolePermissions(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode role permissions")
	}
	return tx.QueryRow(ctx, `
		INSERT INTO custom_roles (company_id, role_name, description, permissions, detailed_permissions, display_order, is_predefined)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, role_name) DO UPDATE
		SET description = EXCLUDED.description,
		    permissions = EXCLUDED.permissions,
		    detailed_permissions = EXCLUDED.detailed_permissions,
		    updated_at = now()
		RETURNING id, created_at, updated_at
	`,
		data.CompanyID,
		data.RoleName,
		data.Description,
		permissions,
		detailed,
		data.DisplayOrder,
		data.IsPredefined,
	).Scan(&data.ID, &data.CreatedAt, &data.UpdatedAt)
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM custom_roles WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

func scanRole(rows pgx.Rows) (*role.Role, error) {
	var row models.CustomRole
	if err := rows.Scan(
		&row.ID,
		&row.CompanyID,
		&row.RoleName,
		&row.Description,
		&row.Permissions,
		&row.DetailedPermissions,
		&row.DisplayOrder,
		&row.IsPredefined,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return toDomainRole(&row)
}
