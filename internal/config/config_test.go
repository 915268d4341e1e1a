package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")
	if got := Get("CONFIG_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("expected set value, got %q", got)
	}
	if got := Get("CONFIG_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestGetFloat(t *testing.T) {
	t.Setenv("CONFIG_TEST_FLOAT", "40.75")
	if got := GetFloat("CONFIG_TEST_FLOAT", 1.0); got != 40.75 {
		t.Errorf("expected 40.75, got %v", got)
	}

	t.Setenv("CONFIG_TEST_FLOAT", "not a float")
	if got := GetFloat("CONFIG_TEST_FLOAT", 1.0); got != 1.0 {
		t.Errorf("expected fallback for unparsable value, got %v", got)
	}
}

func TestNYCBoundsDefaults(t *testing.T) {
	b := NYCBounds()
	if b.North != 40.9176 || b.South != 40.4774 || b.East != -73.7004 || b.West != -74.2591 {
		t.Errorf("unexpected default bounds: %+v", b)
	}
}

func TestLoadRankingPolicyDefaults(t *testing.T) {
	policy, err := LoadRankingPolicy("")
	if err != nil {
		t.Fatalf("LoadRankingPolicy failed: %v", err)
	}
	if policy.MaxTimeSeconds != 7200 || policy.TimeWeight != 0.4 {
		t.Errorf("unexpected defaults: %+v", policy)
	}

	policy, err = LoadRankingPolicy(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("expected missing file to keep defaults, got %v", err)
	}
	if policy.MaxDistanceMeters != 50000 {
		t.Errorf("unexpected defaults for missing file: %+v", policy)
	}
}

func TestLoadRankingPolicyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	data := []byte(`
max_time_seconds: 3600
max_distance_meters: 25000
max_delay_seconds: 900
time_weight: 0.5
distance_weight: 0.25
delay_weight: 0.25
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	policy, err := LoadRankingPolicy(path)
	if err != nil {
		t.Fatalf("LoadRankingPolicy failed: %v", err)
	}
	if policy.MaxTimeSeconds != 3600 || policy.TimeWeight != 0.5 {
		t.Errorf("overrides not applied: %+v", policy)
	}
}

func TestLoadRankingPolicyRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	data := []byte(`
max_time_seconds: 3600
max_distance_meters: 25000
max_delay_seconds: 900
time_weight: 0.9
distance_weight: 0.9
delay_weight: 0.9
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	if _, err := LoadRankingPolicy(path); err == nil {
		t.Error("expected error for weights that do not sum to 1")
	}
}
