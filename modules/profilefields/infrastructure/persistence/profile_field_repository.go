package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/profilefields/domain/entities/profilefield"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

const (
	selectProfileFieldsQuery = `
		SELECT id, company_id, field_name, field_label, field_type,
		       extracted_from_resume, is_required, display_order, created_at, updated_at
		FROM profile_fields
		WHERE company_id = $1
		ORDER BY display_order`
	countProfileFieldsQuery = `SELECT COUNT(*) FROM profile_fields WHERE company_id = $1`
	insertProfileFieldQuery = `
		INSERT INTO profile_fields (
			company_id, field_name, field_label, field_type,
			extracted_from_resume, is_required, display_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	updateProfileFieldQuery = `
		UPDATE profile_fields
		SET field_label = $1,
		    field_type = $2,
		    extracted_from_resume = $3,
		    is_required = $4,
		    updated_at = now()
		WHERE id = $5 AND company_id = $6`
	deleteProfileFieldQuery = `DELETE FROM profile_fields WHERE id = $1 AND company_id = $2`
)

type ProfileFieldRepository struct{}

func NewProfileFieldRepository() profilefield.Repository {
	return &ProfileFieldRepository{}
}

func (r *ProfileFieldRepository) List(ctx context.Context) ([]*profilefield.Field, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectProfileFieldsQuery, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []*profilefield.Field
	for rows.Next() {
		var field profilefield.Field
		if err := rows.Scan(
			&field.ID,
			&field.CompanyID,
			&field.FieldName,
			&field.FieldLabel,
			&field.FieldType,
			&field.ExtractedFromResume,
			&field.IsRequired,
			&field.DisplayOrder,
			&field.CreatedAt,
			&field.UpdatedAt,
		); err != nil {
			return nil, err
		}
		fields = append(fields, &field)
	}
	return fields, rows.Err()
}

func (r *ProfileFieldRepository) Count(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return 0, err
	}
	var count int
	if err := tx.QueryRow(ctx, countProfileFieldsQuery, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileFieldRepository) Create(ctx context.Context, field *profilefield.Field) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	field.CompanyID = companyID

	return tx.QueryRow(
		ctx,
		insertProfileFieldQuery,
		field.CompanyID,
		field.FieldName,
		field.FieldLabel,
		field.FieldType,
		field.ExtractedFromResume,
		field.IsRequired,
		field.DisplayOrder,
	).Scan(&field.ID, &field.CreatedAt, &field.UpdatedAt)
}

func (r *ProfileFieldRepository) Update(ctx context.Context, id uuid.UUID, data profilefield.UpdateData) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(
		ctx,
		updateProfileFieldQuery,
		data.FieldLabel,
		data.FieldType,
		data.ExtractedFromResume,
		data.IsRequired,
		id,
		companyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profilefield.ErrFieldNotFound
	}
	return nil
}

func (r *ProfileFieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, deleteProfileFieldQuery, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profilefield.ErrFieldNotFound
	}
	return nil
}
