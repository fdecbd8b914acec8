// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"testing"
)

func TestInitDisabled(t *testing.T) {
	cleanup, err := Init(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("Init must not fail when disabled: %v", err)
	}
	cleanup()
}

func TestGetTracer(t *testing.T) {
	// Must not panic even when Init was never called.
	tracer := GetTracer()
	if tracer == nil {
		t.Fatal("GetTracer should never return nil")
	}

	_, span := tracer.Start(context.Background(), "test-span")
	span.End()
}

func TestFromEnvDefaultsOff(t *testing.T) {
	t.Setenv("CAPTAIN_TELEMETRY", "")
	t.Setenv("CAPTAIN_TELEMETRY_URL", "")

	cfg := FromEnv()
	if cfg.Enabled {
		t.Error("telemetry must be opt-in")
	}
	if cfg.ServiceName != "captain" {
		t.Errorf("unexpected service name %q", cfg.ServiceName)
	}
}

func TestFromEnvEnabled(t *testing.T) {
	t.Setenv("CAPTAIN_TELEMETRY", "true")
	t.Setenv("CAPTAIN_TELEMETRY_URL", "collector:4318")

	cfg := FromEnv()
	if !cfg.Enabled {
		t.Error("expected telemetry enabled")
	}
	if cfg.ExporterURL != "collector:4318" {
		t.Errorf("unexpected exporter URL %q", cfg.ExporterURL)
	}
}
