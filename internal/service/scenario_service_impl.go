package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/scenariodialogue/internal/db"
	"github.com/alexanderramin/scenariodialogue/internal/derive"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/importer"
	"github.com/alexanderramin/scenariodialogue/internal/repository"
)

type scenarioService struct {
	scenarios repository.ScenarioRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewScenarioService(scenarios repository.ScenarioRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ScenarioService {
	return &scenarioService{
		scenarios: scenarios,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ImportFile imports a .csv export or a JSON scenario file. For CSV files an
// empty scenario name defaults to the file name without extension.
func (s *scenarioService) ImportFile(ctx context.Context, path string, csvOpts importer.CSVOptions) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		csvOpts.ScenarioName = domain.CoalesceStr(csvOpts.ScenarioName, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		return s.ImportCSV(ctx, f, csvOpts)
	}
	return s.ImportJSON(ctx, f)
}

func (s *scenarioService) ImportJSON(ctx context.Context, r io.Reader) (res *ImportResult, err error) {
	fields := map[string]any{"source": domain.SourceJSON}
	ctx, finish := useCase(ctx, s.observer, "import-scenario", fields)
	defer func() { finish(err) }()

	input, err := importer.DecodeScenario(r)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, input, domain.SourceJSON, fields)
}

func (s *scenarioService) ImportCSV(ctx context.Context, r io.Reader, opts importer.CSVOptions) (res *ImportResult, err error) {
	fields := map[string]any{"source": domain.SourceCSV}
	ctx, finish := useCase(ctx, s.observer, "import-scenario", fields)
	defer func() { finish(err) }()

	input, err := importer.ParseCSV(r, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	fields["format"] = input.Metadata.ModelVersion
	return s.store(ctx, input, domain.SourceCSV, fields)
}

// store validates, normalizes and saves input as the only active scenario.
func (s *scenarioService) store(ctx context.Context, input *domain.ScenarioInput, source domain.ScenarioSource, fields map[string]any) (*ImportResult, error) {
	if errs := importer.ValidateScenario(input); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	normalized := importer.Normalize(input)

	now := s.now()
	stored := &domain.StoredScenario{
		ID:        uuid.NewString(),
		Scenario:  *normalized,
		Source:    source,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteScenarioRepo(tx)
		if err := repo.DeactivateAll(ctx); err != nil {
			return err
		}
		return repo.Upsert(ctx, stored)
	})
	if err != nil {
		return nil, fmt.Errorf("saving scenario: %w", err)
	}

	fields["scenario_id"] = stored.ID
	fields["milestones"] = len(normalized.Milestones)
	return &ImportResult{Stored: stored, Derived: derive.Calculate(normalized)}, nil
}

func (s *scenarioService) Active(ctx context.Context) (*ActiveScenario, error) {
	stored, err := s.scenarios.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveScenario
		}
		return nil, fmt.Errorf("loading active scenario: %w", err)
	}
	return &ActiveScenario{Stored: stored, Derived: derive.Calculate(&stored.Scenario)}, nil
}

func (s *scenarioService) List(ctx context.Context) ([]*domain.StoredScenario, error) {
	return s.scenarios.List(ctx)
}

// Activate makes the stored scenario id the active one.
func (s *scenarioService) Activate(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "activate-scenario", map[string]any{"scenario_id": id})
	defer func() { finish(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteScenarioRepo(tx)
		stored, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.DeactivateAll(ctx); err != nil {
			return err
		}
		stored.Active = true
		stored.UpdatedAt = s.now()
		return repo.Upsert(ctx, stored)
	})
}

func (s *scenarioService) Delete(ctx context.Context, id string) (err error) {
	ctx, finish := useCase(ctx, s.observer, "delete-scenario", map[string]any{"scenario_id": id})
	defer func() { finish(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScenarioRepo(tx).Delete(ctx, id)
	})
}
