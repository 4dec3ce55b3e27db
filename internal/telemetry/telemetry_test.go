package telemetry

import (
	"context"
	"testing"
)

func TestInitDisabled(t *testing.T) {
	cleanup, err := Init(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Init disabled returned error: %v", err)
	}
	if err := cleanup(context.Background()); err != nil {
		t.Errorf("noop cleanup returned error: %v", err)
	}
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Run("endpoint set enables telemetry", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
		t.Setenv("OTEL_SERVICE_NAME", "")

		cfg := GetConfigFromEnv()
		if !cfg.Enabled {
			t.Error("Enabled = false, want true when the endpoint is set")
		}
		if cfg.Endpoint != "collector:4317" {
			t.Errorf("Endpoint = %q", cfg.Endpoint)
		}
		if cfg.ServiceName != DefaultServiceName {
			t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, DefaultServiceName)
		}
	})

	t.Run("no endpoint stays disabled", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

		cfg := GetConfigFromEnv()
		if cfg.Enabled {
			t.Error("Enabled = true, want false without an endpoint")
		}
		if cfg.Endpoint == "" {
			t.Error("Endpoint must keep its default for config display")
		}
	})

	t.Run("service name override", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
		t.Setenv("OTEL_SERVICE_NAME", "pc-search-staging")

		if cfg := GetConfigFromEnv(); cfg.ServiceName != "pc-search-staging" {
			t.Errorf("ServiceName = %q", cfg.ServiceName)
		}
	})
}
