package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/alexanderramin/scenariodialogue/internal/observability"
)

// useCase starts a span for name and returns a finish function that ends the
// span and reports the use-case event. Fields added to the map before finish
// runs are attached to both.
func useCase(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any) (context.Context, func(err error)) {
	startedAt := time.Now().UTC()
	ctx, span := observability.Tracer().Start(ctx, "service."+name)
	return ctx, func(err error) {
		for k, v := range fields {
			span.SetAttributes(attribute.String(k, fmt.Sprint(v)))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%w (%d errors):%s", ErrInvalidScenario, len(errs), b.String())
}
