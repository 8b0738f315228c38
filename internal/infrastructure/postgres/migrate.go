package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/controle-epi-api/migrations"
	"github.com/jhoicas/controle-epi-api/pkg/config"
)

// Migrate aplica o comando goose (up, down, status, version, redo, reset) sobre as migrações embutidas.
func Migrate(ctx context.Context, cfg config.DBConfig, command string, args ...string) error {
	connConfig, err := pgx.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("migrate: parse DSN: %w", err)
	}
	if cfg.ForceIPv4 {
		connConfig.DialFunc = dialIPv4
	}
	db := stdlib.OpenDB(*connConfig)
	defer db.Close()
	return runMigrations(ctx, db, command, args...)
}

func runMigrations(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: dialeto: %w", err)
	}
	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
