package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Station != "HOB" {
		t.Errorf("Station = %q, want HOB", cfg.Station)
	}
	if cfg.PollBaselineSeconds != 30 {
		t.Errorf("PollBaselineSeconds = %d, want 30", cfg.PollBaselineSeconds)
	}
	if cfg.JitterRatio != 0.1 {
		t.Errorf("JitterRatio = %v, want 0.1", cfg.JitterRatio)
	}
	if cfg.StaleNoChangePolls != 3 || cfg.StaleFailurePolls != 3 {
		t.Error("Stale poll thresholds should default to 3")
	}
	if cfg.MaxCards != 5 {
		t.Errorf("MaxCards = %d, want 5", cfg.MaxCards)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"station": "NWK", "poll_baseline_seconds": 20}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Station != "NWK" {
		t.Errorf("Station = %q, want NWK", cfg.Station)
	}
	if cfg.PollBaselineSeconds != 20 {
		t.Errorf("PollBaselineSeconds = %d, want 20", cfg.PollBaselineSeconds)
	}
	// Keys missing from the file keep their defaults
	if cfg.PollRelaxedSeconds != 90 {
		t.Errorf("PollRelaxedSeconds = %d, want default 90", cfg.PollRelaxedSeconds)
	}
	if cfg.TTLSeconds != 45 {
		t.Errorf("TTLSeconds = %d, want default 45", cfg.TTLSeconds)
	}
}

func TestLoadMalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Malformed config should not error, got %v", err)
	}
	if cfg != Default() {
		t.Error("Malformed config should fall back to full defaults")
	}
}

func TestLoadMissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Error("Missing config should yield defaults")
	}

	// The defaults are persisted for on-site editing
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}

	// And the created file round-trips
	again, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error re-loading: %v", err)
	}
	if again != cfg {
		t.Error("Created config should load back identically")
	}
}
