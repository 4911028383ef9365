package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/repository"
)

const (
	settingEnhancedContext = "enhanced.context"
	settingEnhancedVariant = "enhanced.variant"
)

type preferencesService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewPreferencesService(settings repository.SettingsRepo, observers ...UseCaseObserver) PreferencesService {
	return &preferencesService{settings: settings, observer: useCaseObserverOrNoop(observers)}
}

// EnhancedDefaults returns the stored defaults. Unset fields are empty.
func (s *preferencesService) EnhancedDefaults(ctx context.Context) (EnhancedDefaults, error) {
	var out EnhancedDefaults
	var c, v string
	if err := s.get(ctx, settingEnhancedContext, &c); err != nil {
		return out, err
	}
	if err := s.get(ctx, settingEnhancedVariant, &v); err != nil {
		return out, err
	}
	out.Context = domain.DevelopmentContext(c)
	out.Variant = domain.Variant(v)
	return out, nil
}

// SetEnhancedDefaults stores the non-empty fields of d after validating them.
func (s *preferencesService) SetEnhancedDefaults(ctx context.Context, d EnhancedDefaults) (err error) {
	ctx, finish := useCase(ctx, s.observer, "set-enhanced-defaults", map[string]any{"context": d.Context, "variant": d.Variant})
	defer func() { finish(err) }()

	if d.Context != "" && !domain.ValidContexts[string(d.Context)] {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, d.Context)
	}
	if d.Variant != "" && !domain.ValidVariants[string(d.Variant)] {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, d.Variant)
	}
	if d.Context != "" {
		if err := s.settings.Set(ctx, settingEnhancedContext, d.Context); err != nil {
			return err
		}
	}
	if d.Variant != "" {
		if err := s.settings.Set(ctx, settingEnhancedVariant, d.Variant); err != nil {
			return err
		}
	}
	return nil
}

// ResetEnhancedDefaults removes the stored defaults.
func (s *preferencesService) ResetEnhancedDefaults(ctx context.Context) (err error) {
	ctx, finish := useCase(ctx, s.observer, "reset-enhanced-defaults", nil)
	defer func() { finish(err) }()

	for _, key := range []string{settingEnhancedContext, settingEnhancedVariant} {
		if err := s.settings.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *preferencesService) get(ctx context.Context, key string, dest *string) error {
	err := repository.GetInto(ctx, s.settings, key, dest)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
