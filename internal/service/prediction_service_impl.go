package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/repository"
)

type predictionService struct {
	catalog     *profiles.Catalog
	predictions repository.PredictionRepo
	scenarios   ScenarioService
	dialogue    DialogueService
	observer    UseCaseObserver
	now         func() time.Time
}

func NewPredictionService(
	catalog *profiles.Catalog,
	predictions repository.PredictionRepo,
	scenarios ScenarioService,
	dialogue DialogueService,
	observers ...UseCaseObserver,
) PredictionService {
	return &predictionService{
		catalog:     catalog,
		predictions: predictions,
		scenarios:   scenarios,
		dialogue:    dialogue,
		observer:    useCaseObserverOrNoop(observers),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Record stores the user's guess at how id will react to the active scenario.
func (s *predictionService) Record(ctx context.Context, id domain.StakeholderID, text string) (p *domain.Prediction, err error) {
	ctx, finish := useCase(ctx, s.observer, "record-prediction", map[string]any{"stakeholder": id})
	defer func() { finish(err) }()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyPrediction
	}
	if _, ok := s.catalog.Get(id); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStakeholder, id)
	}
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return nil, err
	}

	p = &domain.Prediction{
		ID:            uuid.NewString(),
		ScenarioID:    active.Stored.ID,
		StakeholderID: id,
		Text:          text,
		CreatedAt:     s.now(),
	}
	if err := s.predictions.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("recording prediction: %w", err)
	}
	return p, nil
}

// Compare reveals id's response and lines it up with the latest prediction.
func (s *predictionService) Compare(ctx context.Context, id domain.StakeholderID, opts RevealOptions) (c *Comparison, err error) {
	fields := map[string]any{"stakeholder": id}
	ctx, finish := useCase(ctx, s.observer, "compare-prediction", fields)
	defer func() { finish(err) }()

	if _, ok := s.catalog.Get(id); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStakeholder, id)
	}
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return nil, err
	}
	pred, err := s.predictions.LatestForStakeholder(ctx, active.Stored.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w for %s", ErrNoPrediction, id)
		}
		return nil, fmt.Errorf("loading prediction: %w", err)
	}
	resp, err := s.dialogue.Reveal(ctx, id, opts)
	if err != nil {
		return nil, err
	}

	matched, missed := matchConcerns(pred.Text, resp.Concerns)
	fields["matched"] = len(matched)
	fields["missed"] = len(missed)
	return &Comparison{
		Prediction:      pred,
		Response:        *resp,
		MatchedConcerns: matched,
		MissedConcerns:  missed,
	}, nil
}

func (s *predictionService) List(ctx context.Context) ([]*domain.Prediction, error) {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return nil, err
	}
	return s.predictions.ListByScenario(ctx, active.Stored.ID)
}

var stopWords = map[string]bool{
	"about": true, "after": true, "also": true, "been": true, "could": true,
	"from": true, "have": true, "into": true, "more": true, "much": true,
	"over": true, "than": true, "that": true, "their": true, "there": true,
	"they": true, "this": true, "very": true, "what": true, "when": true,
	"will": true, "with": true, "would": true,
}

// keywords returns the distinct lower-cased words of four or more letters,
// minus stop words.
func keywords(text string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	out := make(map[string]bool, len(words))
	for _, w := range words {
		if len([]rune(w)) >= 4 && !stopWords[w] {
			out[w] = true
		}
	}
	return out
}

// matchConcerns splits concerns into those the prediction anticipated, by
// sharing at least one keyword with the concern text, and those it missed.
func matchConcerns(prediction string, concerns []domain.Concern) (matched, missed []domain.Concern) {
	predicted := keywords(prediction)
	for _, c := range concerns {
		hit := false
		for w := range keywords(c.Text) {
			if predicted[w] {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, c)
		} else {
			missed = append(missed, c)
		}
	}
	return matched, missed
}
