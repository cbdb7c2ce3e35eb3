// Package config loads the kiosk configuration from a JSON file,
// merging it over declared defaults.
package config

import (
	"encoding/json"
	"os"
)

// Config holds all polling and staleness tuning knobs.
// All durations are expressed in seconds to match the on-disk format.
type Config struct {
	Station                    string  `json:"station"`
	PollBaselineSeconds        int     `json:"poll_baseline_seconds"`
	PollAggressiveSeconds      int     `json:"poll_aggressive_seconds"`
	PollRelaxedSeconds         int     `json:"poll_relaxed_seconds"`
	PollBackgroundSeconds      int     `json:"poll_background_seconds"`
	AggressiveThresholdSeconds int     `json:"aggressive_threshold_seconds"`
	RelaxedThresholdSeconds    int     `json:"relaxed_threshold_seconds"`
	JitterRatio                float64 `json:"jitter_ratio"`
	TTLSeconds                 int     `json:"ttl_seconds"`
	TTLAggressiveSeconds       int     `json:"ttl_aggressive_seconds"`
	StaleNoChangePolls         int     `json:"stale_no_change_polls"`
	StaleFailurePolls          int     `json:"stale_failure_polls"`
	StaleAfterSeconds          int     `json:"stale_after_seconds"` // legacy fixed-TTL key, superseded by the adaptive knobs
	MaxCards                   int     `json:"max_cards"`
}

// Default returns the documented default configuration
func Default() Config {
	return Config{
		Station:                    "HOB",
		PollBaselineSeconds:        30,
		PollAggressiveSeconds:      15,
		PollRelaxedSeconds:         90,
		PollBackgroundSeconds:      300,
		AggressiveThresholdSeconds: 300,
		RelaxedThresholdSeconds:    900,
		JitterRatio:                0.1,
		TTLSeconds:                 45,
		TTLAggressiveSeconds:       20,
		StaleNoChangePolls:         3,
		StaleFailurePolls:          3,
		StaleAfterSeconds:          120,
		MaxCards:                   5,
	}
}

// Load reads config from path, or returns defaults.
// A missing file is created with the defaults so the kiosk has a config
// to edit on site. A file that fails to parse falls back to full
// defaults rather than aborting startup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			writeDefaults(path, cfg)
			return cfg, nil
		}
		return Default(), err
	}

	// Unmarshal over defaults so keys missing from the file keep
	// their default values.
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// writeDefaults persists the default config. Best effort: a read-only
// filesystem just means the kiosk runs on defaults.
func writeDefaults(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}
