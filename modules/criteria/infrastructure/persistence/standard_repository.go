package persistence

import (
	"context"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/domain/entities/standard"
	"github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/persistence/models"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

type StandardRepository struct{}

func NewStandardRepository() standard.Repository {
	return &StandardRepository{}
}

func (r *StandardRepository) List(ctx context.Context) ([]*standard.Selection, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, company_id, iso_code, iso_name, is_custom, is_active, created_at
		FROM company_iso_standards
		WHERE company_id = $1
		ORDER BY created_at
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []*standard.Selection
	for rows.Next() {
		var row models.StandardSelection
		if err := rows.Scan(
			&row.ID,
			&row.CompanyID,
			&row.ISOCode,
			&row.ISOName,
			&row.IsCustom,
			&row.IsActive,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		selections = append(selections, toDomainStandard(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *StandardRepository) Upsert(ctx context.Context, data *standard.Selection) error {
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
		INSERT INTO company_iso_standards (company_id, iso_code, iso_name, is_custom, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, iso_code) DO UPDATE
		SET iso_name = EXCLUDED.iso_name,
		    is_custom = EXCLUDED.is_custom,
		    is_active = EXCLUDED.is_active
		RETURNING id, created_at
	`,
		data.CompanyID,
		data.ISOCode,
		data.ISOName,
		data.IsCustom,
		data.IsActive,
	).Scan(&data.ID, &data.CreatedAt)
}

func (r *StandardRepository) Delete(ctx context.Context, isoCode string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM company_iso_standards
		WHERE company_id = $1 AND iso_code = $2
	`, companyID, isoCode)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return standard.ErrStandardNotFound
	}
	return nil
}
