package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/alexanderramin/scenariodialogue/internal/db"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo. Values are stored as JSON.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

type settingRow struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = ?`, key)
	var sr settingRow
	if err := row.Scan(&sr.Key, &sr.Value, &sr.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("setting %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning setting: %w", err)
	}
	return &domain.Setting{Key: sr.Key, Value: sr.Value, UpdatedAt: parseTime(sr.UpdatedAt)}, nil
}

// Set stores value under key, replacing any previous value.
func (r *SQLiteSettingsRepo) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %s: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), formatTime(nowUTC()))
	if err != nil {
		return fmt.Errorf("upserting setting: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting: %w", err)
	}
	return nil
}

// List returns every setting ordered by key.
func (r *SQLiteSettingsRepo) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	var scanned []settingRow
	if err := sqlx.StructScan(rows, &scanned); err != nil {
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	out := make([]domain.Setting, 0, len(scanned))
	for _, sr := range scanned {
		out = append(out, domain.Setting{Key: sr.Key, Value: sr.Value, UpdatedAt: parseTime(sr.UpdatedAt)})
	}
	return out, nil
}

// GetInto decodes the JSON value stored under key into dest.
func GetInto(ctx context.Context, repo SettingsRepo, key string, dest any) error {
	s, err := repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(s.Value), dest); err != nil {
		return fmt.Errorf("decoding setting %s: %w", key, err)
	}
	return nil
}
