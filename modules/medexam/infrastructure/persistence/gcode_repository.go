package persistence

import (
	"context"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/medexam/domain/entities/gcode"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
)

const (
	selectGInvestigationsQuery = `SELECT name FROM g_investigations WHERE company_id = $1 ORDER BY created_at`
	deleteGInvestigationsQuery = `DELETE FROM g_investigations WHERE company_id = $1`
	insertGInvestigationQuery  = `INSERT INTO g_investigations (company_id, name) VALUES ($1, $2)`
)

type GCodeRepository struct{}

func NewGCodeRepository() gcode.Repository {
	return &GCodeRepository{}
}

func (r *GCodeRepository) ListNames(ctx context.Context) ([]string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectGInvestigationsQuery, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Replace runs delete and re-insert in one transaction so a failed save
// never leaves the company with a half-written set.
func (r *GCodeRepository) Replace(ctx context.Context, names []string) error {
	companyID, err := composables.UseCompanyID(ctx)
	if err != nil {
		return err
	}
	return composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(txCtx, deleteGInvestigationsQuery, companyID); err != nil {
			return err
		}
		for _, name := range names {
			if _, err := tx.Exec(txCtx, insertGInvestigationQuery, companyID, name); err != nil {
				return err
			}
		}
		return nil
	})
}
