package feed

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/jusunglee/pathboard/internal/config"
	"github.com/jusunglee/pathboard/internal/logging"
	"github.com/jusunglee/pathboard/internal/models"
)

// FeedURL is the public ridepath arrivals feed
const FeedURL = "https://www.panynj.gov/bin/portauthority/ridepath.json"

const (
	fetchTimeout = 5 * time.Second
	minDelay     = 5 * time.Second
	maxBackoff   = 60 * time.Second
	stopTimeout  = 2 * time.Second
)

// Event is the single notification type the poller emits: a snapshot on
// success, or a non-nil Err on failure. One event per poll cycle,
// delivered in order, never coalesced.
type Event struct {
	Snapshot models.Snapshot
	Err      error
}

// Manager runs the background poll loop against the arrivals feed.
// All polling state (backoff, next delay) is owned by the loop
// goroutine; consumers only ever see complete snapshots via Events.
type Manager struct {
	feedURL    string
	cfg        config.Config
	httpClient *http.Client
	events     chan Event
	stopCh     chan struct{}
	wg         sync.WaitGroup
	backoff    time.Duration
}

// NewManager creates a new feed manager
func NewManager(cfg config.Config) *Manager {
	return &Manager{
		feedURL: FeedURL,
		cfg:     cfg,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		events:  make(chan Event, 8),
		stopCh:  make(chan struct{}),
		backoff: minDelay,
	}
}

// Events returns the notification channel. It is closed when the poll
// loop exits.
func (m *Manager) Events() <-chan Event {
	return m.events
}

// Start begins the poll loop
func (m *Manager) Start() {
	m.wg.Add(1)
	go m.loop()
}

// Stop signals the loop and waits (bounded) for it to exit. An
// in-flight fetch is not aborted; the loop simply stops scheduling
// further cycles.
func (m *Manager) Stop() {
	close(m.stopCh)

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(stopTimeout):
		logging.Warn("poll loop did not exit before timeout")
	}
}

func (m *Manager) loop() {
	defer m.wg.Done()
	defer close(m.events)

	var delay time.Duration
	for {
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-m.stopCh:
				timer.Stop()
				return
			case <-timer.C:
			}
		} else {
			select {
			case <-m.stopCh:
				return
			default:
			}
		}

		snapshot, err := m.fetchOnce()
		if err != nil {
			logging.Warn("fetch failed", "error", err)
			if !m.emit(Event{Err: err}) {
				return
			}
			delay = m.failureDelay()
			continue
		}

		if !m.emit(Event{Snapshot: snapshot}) {
			return
		}
		m.backoff = minDelay
		delay = m.successDelay(snapshot)
	}
}

// emit delivers an event in order, giving up only when a stop has been
// requested and the consumer is no longer draining.
func (m *Manager) emit(ev Event) bool {
	select {
	case m.events <- ev:
		return true
	case <-m.stopCh:
		return false
	}
}

func (m *Manager) fetchOnce() (models.Snapshot, error) {
	resp, err := m.httpClient.Get(m.feedURL)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Snapshot{}, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("read feed body: %w", err)
	}

	return Parse(body, m.cfg.Station), nil
}

// baseDelay selects the un-jittered polling interval for a snapshot:
// empty snapshots poll on the background interval, an imminent arrival
// polls aggressively, a distant one relaxes, everything else uses the
// baseline.
func (m *Manager) baseDelay(snapshot models.Snapshot) time.Duration {
	soonest, ok := snapshot.Soonest()
	var seconds int
	switch {
	case !ok:
		seconds = m.cfg.PollBackgroundSeconds
	case soonest < m.cfg.AggressiveThresholdSeconds:
		seconds = m.cfg.PollAggressiveSeconds
	case soonest > m.cfg.RelaxedThresholdSeconds:
		seconds = m.cfg.PollRelaxedSeconds
	default:
		seconds = m.cfg.PollBaselineSeconds
	}
	return time.Duration(seconds) * time.Second
}

// successDelay applies multiplicative jitter to the base interval,
// floored at 5s. Jitter keeps multiple kiosks from hitting the shared
// public feed in lockstep.
func (m *Manager) successDelay(snapshot models.Snapshot) time.Duration {
	base := m.baseDelay(snapshot)
	jitter := 1 + (rand.Float64()*2-1)*m.cfg.JitterRatio
	delay := time.Duration(float64(base) * jitter)
	if delay < minDelay {
		delay = minDelay
	}
	return delay
}

// failureDelay returns the next retry delay and advances the backoff:
// doubled each consecutive failure, floored at 5s, capped at 60s.
func (m *Manager) failureDelay() time.Duration {
	if m.backoff < minDelay {
		m.backoff = minDelay
	}
	delay := m.backoff
	if delay > maxBackoff {
		delay = maxBackoff
	}
	m.backoff = min(maxBackoff, m.backoff*2)
	return delay
}
