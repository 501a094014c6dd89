package otel

import (
	"context"
	"testing"
)

func TestNewProvidersEmptyEndpoint(t *testing.T) {
	p, err := NewProviders(context.Background(), "", "defguard-core", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	if p.TracerProvider == nil || p.MeterProvider == nil {
		t.Fatal("no-op providers missing")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("no-op Shutdown: %v", err)
	}
}

func TestNewProvidersInvalidEndpoint(t *testing.T) {
	if _, err := NewProviders(context.Background(), "://", "defguard-core", false); err == nil {
		t.Error("invalid endpoint accepted")
	}
}

func TestNewProvidersStripsPath(t *testing.T) {
	p, err := NewProviders(context.Background(), "http://localhost:4317/v1/traces", "defguard-core", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	// Exporters dial lazily; creation must succeed without a collector.
	_ = p.Shutdown(context.Background())
}
