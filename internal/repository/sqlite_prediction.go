package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/alexanderramin/scenariodialogue/internal/db"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// SQLitePredictionRepo implements PredictionRepo. Multi-row reads are mapped
// onto predictionRow with sqlx.StructScan.
type SQLitePredictionRepo struct {
	db db.DBTX
}

func NewSQLitePredictionRepo(conn db.DBTX) *SQLitePredictionRepo {
	return &SQLitePredictionRepo{db: conn}
}

type predictionRow struct {
	ID            string `db:"id"`
	ScenarioID    string `db:"scenario_id"`
	StakeholderID string `db:"stakeholder_id"`
	Text          string `db:"text"`
	CreatedAt     string `db:"created_at"`
}

func (p predictionRow) toDomain() *domain.Prediction {
	return &domain.Prediction{
		ID:            p.ID,
		ScenarioID:    p.ScenarioID,
		StakeholderID: domain.StakeholderID(p.StakeholderID),
		Text:          p.Text,
		CreatedAt:     parseTime(p.CreatedAt),
	}
}

func (r *SQLitePredictionRepo) Create(ctx context.Context, p *domain.Prediction) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = nowUTC()
	}
	query := `INSERT INTO predictions (id, scenario_id, stakeholder_id, text, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ScenarioID,
		string(p.StakeholderID),
		p.Text,
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting prediction: %w", err)
	}
	return nil
}

// ListByScenario returns the scenario's predictions, oldest first.
func (r *SQLitePredictionRepo) ListByScenario(ctx context.Context, scenarioID string) ([]*domain.Prediction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, scenario_id, stakeholder_id, text, created_at
		FROM predictions WHERE scenario_id = ? ORDER BY created_at, id`, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("listing predictions: %w", err)
	}
	defer rows.Close()

	var scanned []predictionRow
	if err := sqlx.StructScan(rows, &scanned); err != nil {
		return nil, fmt.Errorf("scanning predictions: %w", err)
	}
	out := make([]*domain.Prediction, 0, len(scanned))
	for _, pr := range scanned {
		out = append(out, pr.toDomain())
	}
	return out, nil
}

func (r *SQLitePredictionRepo) LatestForStakeholder(ctx context.Context, scenarioID string, id domain.StakeholderID) (*domain.Prediction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, scenario_id, stakeholder_id, text, created_at
		FROM predictions WHERE scenario_id = ? AND stakeholder_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`, scenarioID, string(id))

	var pr predictionRow
	err := row.Scan(&pr.ID, &pr.ScenarioID, &pr.StakeholderID, &pr.Text, &pr.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("prediction for %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prediction: %w", err)
	}
	return pr.toDomain(), nil
}

// DeleteByScenario removes every prediction of the scenario and reports how
// many were deleted.
func (r *SQLitePredictionRepo) DeleteByScenario(ctx context.Context, scenarioID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE scenario_id = ?`, scenarioID)
	if err != nil {
		return 0, fmt.Errorf("deleting predictions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting predictions: %w", err)
	}
	return n, nil
}
