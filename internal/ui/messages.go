package ui

import (
	"time"

	"github.com/jusunglee/pathboard/internal/models"
)

// Messages for Bubble Tea

// SnapshotMsg is sent when the poller completes a successful fetch
type SnapshotMsg struct {
	Snapshot models.Snapshot
}

// FetchFailedMsg is sent when a poll cycle fails
type FetchFailedMsg struct {
	Err string
}

// TickMsg drives the clock and the staleness re-evaluation, once per
// second
type TickMsg time.Time
