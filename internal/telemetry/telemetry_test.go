package telemetry

import (
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestConfigureEnvWithoutKey(t *testing.T) {
	set := map[string]string{}
	ok, err := ConfigureEnv(func(string) string { return "" }, func(k, v string) error {
		set[k] = v
		return nil
	})
	if err != nil || ok {
		t.Fatalf("ConfigureEnv = (%v, %v), want (false, nil)", ok, err)
	}
	if len(set) != 0 {
		t.Errorf("variables set without an API key: %v", set)
	}
}

func TestConfigureEnvWithKey(t *testing.T) {
	env := map[string]string{EnvAPIKey: "secret"}
	set := map[string]string{}
	ok, err := ConfigureEnv(func(k string) string { return env[k] }, func(k, v string) error {
		set[k] = v
		return nil
	})
	if err != nil || !ok {
		t.Fatalf("ConfigureEnv = (%v, %v), want (true, nil)", ok, err)
	}

	if set["OTEL_EXPORTER_OTLP_ENDPOINT"] != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", set["OTEL_EXPORTER_OTLP_ENDPOINT"])
	}
	headers := set["OTEL_EXPORTER_OTLP_HEADERS"]
	if !strings.Contains(headers, "x-honeycomb-team=secret") || !strings.Contains(headers, "x-honeycomb-dataset=torchcrawl") {
		t.Errorf("headers = %q", headers)
	}
}

func TestTracerRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := Tracer("test").Start(context.Background(), "unit")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if ended[0].Name() != "unit" {
		t.Errorf("span name = %q, want unit", ended[0].Name())
	}
	if got := ended[0].InstrumentationScope().Name; got != "torchcrawl/test" {
		t.Errorf("tracer name = %q, want torchcrawl/test", got)
	}
}
