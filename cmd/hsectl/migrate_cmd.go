package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/TheEightboys/hsehubfinal-sub002/migrations"
	"github.com/TheEightboys/hsehubfinal-sub002/pkg/configuration"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	cmd.AddCommand(
		newMigrateStepCmd("up", "Apply all pending migrations", goose.Up),
		newMigrateStepCmd("down", "Roll back the last migration", goose.Down),
		newMigrateStepCmd("status", "Print migration status", goose.Status),
	)
	return cmd
}

func newMigrateStepCmd(use, short string, step func(*sql.DB, string, ...goose.OptionsFunc) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			return step(db, ".")
		},
	}
}

func openDB() (*sql.DB, error) {
	conf := configuration.Use()
	db, err := sql.Open("postgres", conf.Database.Opts)
	if err != nil {
		return nil, err
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
