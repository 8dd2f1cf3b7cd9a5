package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes if they do not exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Developers + ` (
			id          BIGSERIAL PRIMARY KEY,
			name        VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			website     VARCHAR(500) NOT NULL DEFAULT '',
			phone       VARCHAR(50) NOT NULL DEFAULT '',
			email       VARCHAR(255) NOT NULL DEFAULT '',
			logo_url    TEXT,
			is_active   BOOLEAN NOT NULL DEFAULT TRUE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id           BIGSERIAL PRIMARY KEY,
			name         VARCHAR(255) NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			address      VARCHAR(500) NOT NULL DEFAULT '',
			ward         VARCHAR(255) NOT NULL DEFAULT '',
			district     VARCHAR(255) NOT NULL DEFAULT '',
			developer_id BIGINT REFERENCES ` + tables.Developers + `(id),
			type         VARCHAR(32) NOT NULL,
			status       VARCHAR(32) NOT NULL,
			area         DOUBLE PRECISION NOT NULL DEFAULT 0,
			price_from   BIGINT NOT NULL DEFAULT 0,
			price_to     BIGINT NOT NULL DEFAULT 0,
			total_units  INTEGER NOT NULL DEFAULT 0,
			is_active    BOOLEAN NOT NULL DEFAULT TRUE,
			thumbnail    TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id            BIGSERIAL PRIMARY KEY,
			username      VARCHAR(50) NOT NULL UNIQUE,
			email         VARCHAR(255) NOT NULL UNIQUE,
			full_name     VARCHAR(255) NOT NULL DEFAULT '',
			phone         VARCHAR(50) NOT NULL DEFAULT '',
			role          VARCHAR(32) NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Projects + `_type_active ON ` + tables.Projects + `(type, is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Projects + `_developer ON ` + tables.Projects + `(developer_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropTables removes every table of the prefix, dependents first
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.Projects, tables.Users, tables.Developers} {
		if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS `+table+` CASCADE`); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

// TruncateTables removes all rows and resets identities
func TruncateTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	_, err := pool.Exec(ctx, fmt.Sprintf(`TRUNCATE %s, %s, %s RESTART IDENTITY CASCADE`,
		tables.Projects, tables.Developers, tables.Users))
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}
