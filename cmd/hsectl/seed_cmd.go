package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/TheEightboys/hsehubfinal-sub002/modules/core/domain/entities/role"
	corepersistence "github.com/TheEightboys/hsehubfinal-sub002/modules/core/infrastructure/persistence"
	criteriapersistence "github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/infrastructure/persistence"
	criteriaservices "github.com/TheEightboys/hsehubfinal-sub002/modules/criteria/services"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/composables"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/eventbus"
)

// newSeedCmd creates a company with the predefined role set and the ISO
// 45001 criteria catalog, ready for first login.
func newSeedCmd() *cobra.Command {
	var companyName string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a company with predefined roles and the ISO 45001 catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			pool, err := pgxpool.New(cmd.Context(), conf.Database.Opts)
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			companyID, err := createCompany(ctx, pool, companyName)
			if err != nil {
				return err
			}
			ctx = composables.WithCompanyID(ctx, companyID)

			if err := seedRoles(ctx); err != nil {
				return err
			}
			if err := seedCriteria(ctx, conf); err != nil {
				return err
			}
			fmt.Printf("seeded company %s (%s)\n", companyName, companyID)
			return nil
		},
	}

	cmd.Flags().StringVar(&companyName, "name", "Demo GmbH", "Company name")
	return cmd
}

func createCompany(ctx context.Context, pool *pgxpool.Pool, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := pool.QueryRow(ctx, `INSERT INTO companies (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	return id, err
}

func seedRoles(ctx context.Context) error {
	repo := corepersistence.NewRoleRepository()
	for i, name := range role.PredefinedRoles {
		data := &role.Role{
			RoleName:     name,
			IsPredefined: true,
			DisplayOrder: i,
		}
		if name == "Admin" {
			data.DetailedPermissions = role.AllGranted()
		}
		data.Permissions = data.DetailedPermissions.Legacy()
		if err := repo.Upsert(ctx, data); err != nil {
			return err
		}
	}
	return nil
}

func seedCriteria(ctx context.Context, conf *configuration.Configuration) error {
	service := criteriaservices.NewTreeService(
		criteriapersistence.NewCriteriaRepository(),
		eventbus.NewEventPublisher(conf.Logger()),
	)
	if _, err := service.ImportStandard(ctx, "ISO_45001"); err != nil {
		return err
	}
	_, err := service.ApplyGermanTranslations(ctx)
	return err
}
