package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Each statement must be idempotent;
// ALTER TABLE ... ADD COLUMN is tolerated when the column already exists.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scenarios (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		country    TEXT NOT NULL DEFAULT '',
		data       TEXT NOT NULL,
		active     INTEGER NOT NULL DEFAULT 0 CHECK(active IN (0,1)),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`ALTER TABLE scenarios ADD COLUMN source TEXT NOT NULL DEFAULT 'json'`,

	`CREATE TABLE IF NOT EXISTS predictions (
		id             TEXT PRIMARY KEY,
		scenario_id    TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		stakeholder_id TEXT NOT NULL,
		text           TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_scenario
		ON predictions(scenario_id, stakeholder_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateSingleActiveScenario(db); err != nil {
		return fmt.Errorf("enforcing single active scenario: %w", err)
	}
	return nil
}

// migrateSingleActiveScenario keeps only the most recently updated scenario
// active, then adds the partial unique index that enforces it from now on.
// Databases written before the index existed may hold several active rows.
func migrateSingleActiveScenario(db *sql.DB) error {
	ctx := context.Background()

	var exists int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_scenarios_single_active'`,
	).Scan(&exists); err != nil {
		return fmt.Errorf("checking active index: %w", err)
	}
	if exists > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `UPDATE scenarios SET active = 0
		WHERE active = 1 AND id <> (
			SELECT id FROM scenarios WHERE active = 1
			ORDER BY updated_at DESC, id DESC LIMIT 1
		)`); err != nil {
		return fmt.Errorf("deactivating stale scenarios: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX idx_scenarios_single_active ON scenarios(active) WHERE active = 1`,
	); err != nil {
		return fmt.Errorf("creating active index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}
	committed = true
	return nil
}
