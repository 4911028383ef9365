package repository

import (
	"context"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

type ScenarioRepo interface {
	Upsert(ctx context.Context, s *domain.StoredScenario) error
	DeactivateAll(ctx context.Context) error
	GetActive(ctx context.Context) (*domain.StoredScenario, error)
	GetByID(ctx context.Context, id string) (*domain.StoredScenario, error)
	List(ctx context.Context) ([]*domain.StoredScenario, error)
	Delete(ctx context.Context, id string) error
}

type PredictionRepo interface {
	Create(ctx context.Context, p *domain.Prediction) error
	ListByScenario(ctx context.Context, scenarioID string) ([]*domain.Prediction, error)
	LatestForStakeholder(ctx context.Context, scenarioID string, id domain.StakeholderID) (*domain.Prediction, error)
	DeleteByScenario(ctx context.Context, scenarioID string) (int64, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.Setting, error)
}
