package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/db"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// SQLiteScenarioRepo implements ScenarioRepo. The scenario document is kept
// as JSON in the data column; name and country are copied out for listing.
type SQLiteScenarioRepo struct {
	db db.DBTX
}

func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: conn}
}

const scenarioColumns = `id, data, source, active, created_at, updated_at`

// Upsert inserts or replaces s. Activating s while another scenario is
// active violates the single-active index; call DeactivateAll first in the
// same transaction.
func (r *SQLiteScenarioRepo) Upsert(ctx context.Context, s *domain.StoredScenario) error {
	data, err := json.Marshal(s.Scenario)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = nowUTC()
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = s.CreatedAt
	}
	if s.Source == "" {
		s.Source = domain.SourceJSON
	}

	query := `INSERT INTO scenarios (id, name, country, data, source, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			country = excluded.country,
			data = excluded.data,
			source = excluded.source,
			active = excluded.active,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Scenario.Metadata.ScenarioName,
		s.Scenario.Metadata.Country,
		string(data),
		string(s.Source),
		boolToInt(s.Active),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) DeactivateAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE scenarios SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("deactivating scenarios: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetActive(ctx context.Context) (*domain.StoredScenario, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios WHERE active = 1 LIMIT 1`)
	s, err := scanScenario(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active scenario: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning active scenario: %w", err)
	}
	return s, nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.StoredScenario, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios WHERE id = ?`, id)
	s, err := scanScenario(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}
	return s, nil
}

// List returns every stored scenario, most recently updated first.
func (r *SQLiteScenarioRepo) List(ctx context.Context) ([]*domain.StoredScenario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+scenarioColumns+` FROM scenarios ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var out []*domain.StoredScenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning scenario: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes the scenario and its predictions.
func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE scenario_id = ?`, id); err != nil {
		return fmt.Errorf("deleting scenario predictions: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*domain.StoredScenario, error) {
	var (
		s                    domain.StoredScenario
		data, source         string
		active               int
		createdAt, updatedAt string
	)
	if err := row.Scan(&s.ID, &data, &source, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &s.Scenario); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", s.ID, err)
	}
	s.Source = domain.ScenarioSource(source)
	s.Active = intToBool(active)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}
