package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/taxonomy/domain/entities/taxonomy"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

// TaxonomyRepository serves every taxonomy collection with the same four
// statements. Table and column names are interpolated, never parameterized:
// they come from the fixed collection catalog, not from request input.
type TaxonomyRepository struct{}

func NewTaxonomyRepository() taxonomy.Repository {
	return &TaxonomyRepository{}
}

func (r *TaxonomyRepository) List(ctx context.Context, col taxonomy.Collection) ([]*taxonomy.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT id, company_id, %s, created_at FROM %s WHERE company_id = $1 ORDER BY %s`,
		col.NameColumn, col.Table, col.NameColumn,
	)
	rows, err := tx.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*taxonomy.Item
	for rows.Next() {
		var item taxonomy.Item
		if err := rows.Scan(&item.ID, &item.CompanyID, &item.Name, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *TaxonomyRepository) Create(ctx context.Context, col taxonomy.Collection, item *taxonomy.Item) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	item.CompanyID = companyID

	query := fmt.Sprintf(
		`INSERT INTO %s (company_id, %s) VALUES ($1, $2) RETURNING id, created_at`,
		col.Table, col.NameColumn,
	)
	return tx.QueryRow(ctx, query, item.CompanyID, item.Name).Scan(&item.ID, &item.CreatedAt)
}

func (r *TaxonomyRepository) Update(ctx context.Context, col taxonomy.Collection, item *taxonomy.Item) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`UPDATE %s SET %s = $1 WHERE id = $2 AND company_id = $3`,
		col.Table, col.NameColumn,
	)
	tag, err := tx.Exec(ctx, query, item.Name, item.ID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return taxonomy.ErrItemNotFound
	}
	return nil
}

func (r *TaxonomyRepository) Delete(ctx context.Context, col taxonomy.Collection, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND company_id = $2`, col.Table)
	tag, err := tx.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return taxonomy.ErrItemNotFound
	}
	return nil
}
