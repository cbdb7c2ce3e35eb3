package store

import (
	"sync"
	"time"

	"github.com/jusunglee/pathboard/internal/config"
	"github.com/jusunglee/pathboard/internal/models"
	"github.com/jusunglee/pathboard/internal/status"
)

// Status is the derived live/stale view served to API consumers
type Status struct {
	Live                bool      `json:"live"`
	HasData             bool      `json:"has_data"`
	LastSuccess         time.Time `json:"last_success,omitempty"`
	AgeSeconds          int       `json:"age_seconds"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	UnchangedPolls      int       `json:"unchanged_polls"`
}

// Store holds the latest snapshot and poll history behind a lock, for
// consumers outside the poller's own context (the HTTP API). The UI
// path uses a bare status.Tracker instead since it is single-threaded.
type Store struct {
	mu      sync.RWMutex
	tracker *status.Tracker
}

// NewStore creates a new store instance
func NewStore(cfg config.Config) *Store {
	return &Store{tracker: status.NewTracker(cfg)}
}

// RecordSuccess stores a fresh snapshot from the poller
func (s *Store) RecordSuccess(snapshot models.Snapshot, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.RecordSuccess(snapshot, now)
}

// RecordFailure notes a failed poll cycle
func (s *Store) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.RecordFailure()
}

// Latest returns a copy of the latest snapshot. ok is false before the
// first successful fetch.
func (s *Store) Latest() (models.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.tracker.Snapshot()
	if snap == nil {
		return models.Snapshot{}, false
	}

	out := models.Snapshot{
		Messages:    make([]models.TrainMessage, len(snap.Messages)),
		LastUpdated: snap.LastUpdated,
	}
	copy(out.Messages, snap.Messages)
	return out, true
}

// LastUpdate returns the time of the last successful fetch
func (s *Store) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.LastSuccess()
}

// Status evaluates the live/stale view as of now
func (s *Store) Status(now time.Time) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	in := s.tracker.Inputs()
	age := 0
	if !in.LastSuccess.IsZero() {
		age = int(now.Sub(in.LastSuccess).Seconds())
	}
	return Status{
		Live:                !s.tracker.Stale(now),
		HasData:             in.Snapshot != nil,
		LastSuccess:         in.LastSuccess,
		AgeSeconds:          age,
		ConsecutiveFailures: in.ConsecutiveFailures,
		UnchangedPolls:      in.UnchangedPolls,
	}
}
