// Package status decides whether the displayed arrivals are live or
// stale. Evaluate is a pure function; Tracker accumulates the poll
// history feeding it.
package status

import (
	"time"

	"github.com/jusunglee/pathboard/internal/config"
	"github.com/jusunglee/pathboard/internal/models"
)

// Inputs is everything Evaluate needs about the poll history
type Inputs struct {
	Snapshot            *models.Snapshot // nil before the first successful fetch
	LastFetchOK         bool
	LastSuccess         time.Time // zero if never
	ConsecutiveFailures int
	UnchangedPolls      int
}

// Evaluate reports whether the display should be flagged stale.
// Status is binary: any one condition is sufficient.
func Evaluate(in Inputs, cfg config.Config, now time.Time) bool {
	hasMessages := in.Snapshot != nil && len(in.Snapshot.Messages) > 0

	// Effective TTL: tighten when an arrival is imminent (the feed
	// should be changing quickly), otherwise widen to at least 1.5x
	// the baseline poll interval so a slow network doesn't flap the
	// pill between polls.
	ttlSeconds := cfg.TTLSeconds
	if hasMessages {
		soonest, _ := in.Snapshot.Soonest()
		if soonest < cfg.AggressiveThresholdSeconds {
			ttlSeconds = cfg.TTLAggressiveSeconds
		} else if widened := cfg.PollBaselineSeconds * 3 / 2; widened > ttlSeconds {
			ttlSeconds = widened
		}
	}

	staleDueAge := true
	if !in.LastSuccess.IsZero() {
		staleDueAge = now.Sub(in.LastSuccess) > time.Duration(ttlSeconds)*time.Second
	}

	return !in.LastFetchOK ||
		staleDueAge ||
		!hasMessages ||
		in.UnchangedPolls >= cfg.StaleNoChangePolls ||
		in.ConsecutiveFailures >= cfg.StaleFailurePolls
}

// Tracker accumulates poll outcomes for one consumer context. It is
// not safe for concurrent use; the owning context (the UI loop, or a
// lock-holding store) must serialize calls.
type Tracker struct {
	cfg config.Config

	snapshot       *models.Snapshot
	lastFetchOK    bool
	lastSuccess    time.Time
	failures       int
	unchangedPolls int
	fingerprint    string
}

// NewTracker creates a tracker with no poll history; Stale is true
// until the first successful fetch.
func NewTracker(cfg config.Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// RecordSuccess stores a fresh snapshot and updates the unchanged-poll
// run: an identical fingerprint to the previous poll extends the run,
// anything else resets it.
func (t *Tracker) RecordSuccess(snapshot models.Snapshot, now time.Time) {
	t.snapshot = &snapshot
	t.lastFetchOK = true
	t.failures = 0
	t.lastSuccess = now

	fp := snapshot.Fingerprint()
	if fp == t.fingerprint {
		t.unchangedPolls++
	} else {
		t.unchangedPolls = 0
		t.fingerprint = fp
	}
}

// RecordFailure notes a failed poll cycle
func (t *Tracker) RecordFailure() {
	t.lastFetchOK = false
	t.failures++
}

// Stale evaluates the current staleness status
func (t *Tracker) Stale(now time.Time) bool {
	return Evaluate(t.Inputs(), t.cfg, now)
}

// Inputs exposes the accumulated state for Evaluate
func (t *Tracker) Inputs() Inputs {
	return Inputs{
		Snapshot:            t.snapshot,
		LastFetchOK:         t.lastFetchOK,
		LastSuccess:         t.lastSuccess,
		ConsecutiveFailures: t.failures,
		UnchangedPolls:      t.unchangedPolls,
	}
}

// Snapshot returns the latest snapshot, or nil before the first success
func (t *Tracker) Snapshot() *models.Snapshot {
	return t.snapshot
}

// LastSuccess returns the time of the last successful fetch
func (t *Tracker) LastSuccess() time.Time {
	return t.lastSuccess
}

// ConsecutiveFailures returns the current failure run length
func (t *Tracker) ConsecutiveFailures() int {
	return t.failures
}

// UnchangedPolls returns the current unchanged-poll run length
func (t *Tracker) UnchangedPolls() int {
	return t.unchangedPolls
}
