// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "torchcrawl"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "torchcrawl"
)

// Environment variables read by ConfigureEnv.
const (
	EnvAPIKey  = "HONEYCOMB_TORCHCRAWL_API_KEY"
	EnvDataset = "HONEYCOMB_TORCHCRAWL_DATASET"
)

// ConfigureEnv translates the Honeycomb variables into the standard OTEL_*
// exporter variables. It returns false when no API key is set, in which case
// nothing is changed and telemetry should stay disabled.
func ConfigureEnv(getenv func(string) string, setenv func(string, string) error) (bool, error) {
	apiKey := getenv(EnvAPIKey)
	if apiKey == "" {
		return false, nil
	}

	dataset := getenv(EnvDataset)
	if dataset == "" {
		dataset = defaultDataset
	}

	// The .env file may hold an unexpanded header reference, so the headers
	// are always rebuilt from the key.
	if err := setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint); err != nil {
		return false, err
	}
	headers := fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset)
	if err := setenv("OTEL_EXPORTER_OTLP_HEADERS", headers); err != nil {
		return false, err
	}
	return true, nil
}

// Setup initializes OpenTelemetry with OTLP HTTP exporter.
// It reads configuration from standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: Honeycomb endpoint (https://api.honeycomb.io)
//   - OTEL_EXPORTER_OTLP_HEADERS: Headers including x-honeycomb-team=<api-key>
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	// Create OTLP HTTP exporter - automatically uses OTEL_* env vars
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Our own resource, not merged with Default(), to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
// Until Setup succeeds the global provider hands out no-op tracers, so
// instrumented code runs unchanged with telemetry disabled.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
