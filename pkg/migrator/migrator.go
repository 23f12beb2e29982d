package migrator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migrator обёртка над goose для применения SQL миграций
type Migrator struct {
	db             *sql.DB
	migrationsPath string
}

// New создаёт новый мигратор
func New(db *sql.DB, migrationsPath string) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("migrator: set goose dialect: %w", err)
	}

	return &Migrator{db: db, migrationsPath: migrationsPath}, nil
}

// Run применяет все pending миграции
func (m *Migrator) Run(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, m.migrationsPath); err != nil {
		return fmt.Errorf("migrator: apply migrations: %w", err)
	}
	return nil
}

// Version возвращает текущую версию миграций
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("migrator: get version: %w", err)
	}
	return version, nil
}
