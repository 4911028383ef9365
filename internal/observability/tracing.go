// Package observability sets up OpenTelemetry tracing for the CLI and API.
// Tracing is off unless OTEL_ENABLED is set; services always call the global
// tracer, which is a no-op until Init installs a provider.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used by every span in the module.
const TracerName = "github.com/alexanderramin/scenariodialogue"

// Config controls tracer setup. Zero values are filled from the environment.
type Config struct {
	ServiceName string
	Version     string
	// StdoutWriter receives spans when no OTLP endpoint is configured.
	// Nil discards them.
	StdoutWriter io.Writer
}

var (
	initOnce sync.Once
	shutdown = func(context.Context) error { return nil }
)

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Enabled reports whether OTEL_ENABLED asks for tracing.
func Enabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OTEL_ENABLED"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Init installs a tracer provider when tracing is enabled and returns the
// shutdown function. It is safe to call more than once; only the first call
// has an effect. Exporter failures are logged and tracing continues without
// export.
func Init(ctx context.Context, log *slog.Logger, cfg Config) func(context.Context) error {
	initOnce.Do(func() {
		if !Enabled() {
			return
		}
		if log == nil {
			log = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		name := strings.TrimSpace(cfg.ServiceName)
		if name == "" {
			name = "dialogue"
		}
		res, err := resource.New(ctx, resource.WithAttributes(
			attribute.String("service.name", name),
			attribute.String("service.version", strings.TrimSpace(cfg.Version)),
		))
		if err != nil {
			log.Warn("otel resource init failed", "error", err)
		}

		opts := []sdktrace.TracerProviderOption{
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio()))),
			sdktrace.WithResource(res),
		}
		exporter, err := buildExporter(ctx, cfg.StdoutWriter)
		if err != nil {
			log.Warn("otel exporter init failed", "error", err)
		}
		if exporter != nil {
			opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
		}
		tp := sdktrace.NewTracerProvider(opts...)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		shutdown = tp.Shutdown
		log.Info("otel tracing initialized", "service", name, "endpoint", endpoint())
	})
	return shutdown
}

func sampleRatio() float64 {
	raw := strings.TrimSpace(os.Getenv("OTEL_SAMPLER_RATIO"))
	if raw == "" {
		return 1
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 1
	}
	return min(max(f, 0), 1)
}

func endpoint() string {
	return strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
}

func buildExporter(ctx context.Context, stdout io.Writer) (sdktrace.SpanExporter, error) {
	if ep := endpoint(); ep != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(ep)}
		if insecure() {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return exp, nil
	}
	if stdout == nil {
		return nil, nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(stdout), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func insecure() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
