package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradebook.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Error writing config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfig with missing file: %v", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
pass_threshold: 50
output_format: markdown
log_level: debug
server:
  name: ClassroomGrades
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := defaultConfig()
	want.PassThreshold = 50
	want.OutputFormat = "markdown"
	want.LogLevel = "debug"
	want.Server.Name = "ClassroomGrades"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "pass_threshold: 50\n")
	t.Setenv(envPassThreshold, "62.5")
	t.Setenv(envOutputFormat, "json")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.PassThreshold != 62.5 || cfg.OutputFormat != "json" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "BadYAML", body: "pass_threshold: [1, 2"},
		{name: "UnknownFormat", body: "output_format: xml\n"},
		{name: "FlameGraphIsNotADefault", body: "output_format: flamegraph-json\n"},
		{name: "BadLogLevel", body: "log_level: loud\n"},
		{name: "BadThresholdEnv", body: "", env: map[string]string{envPassThreshold: "forty"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := loadConfig(writeConfig(t, tc.body)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
