package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// DefaultLineColor is used when the feed provides no color for a line
const DefaultLineColor = "#999999"

// TrainMessage represents one upcoming train at a station
type TrainMessage struct {
	Label            string     `json:"label"`
	Target           string     `json:"target"`
	SecondsToArrival int        `json:"seconds_to_arrival"`
	ArrivalText      string     `json:"arrival_text"`
	LineColors       []string   `json:"line_colors"`
	Headsign         string     `json:"headsign"`
	LastUpdated      *time.Time `json:"last_updated,omitempty"`
}

// DisplayHeadsign returns the headsign, falling back to the target code
func (m TrainMessage) DisplayHeadsign() string {
	if m.Headsign != "" {
		return m.Headsign
	}
	return m.Target
}

// DisplayArrival returns the feed's arrival phrase, or a computed
// "N min" string when the feed didn't provide one
func (m TrainMessage) DisplayArrival() string {
	if m.ArrivalText != "" {
		return m.ArrivalText
	}
	return fmt.Sprintf("%d min", m.SecondsToArrival/60)
}

// Snapshot is one fetch cycle's view of a station's upcoming arrivals.
// Messages are sorted ascending by seconds to arrival. LastUpdated is
// the maximum of all per-message timestamps, or nil if none carry one.
// Snapshots are built fresh each fetch and never mutated.
type Snapshot struct {
	Messages    []TrainMessage `json:"messages"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
}

// Soonest returns the minimum seconds-to-arrival across all messages.
// The second return value is false when the snapshot is empty.
func (s Snapshot) Soonest() (int, bool) {
	if len(s.Messages) == 0 {
		return 0, false
	}
	soonest := s.Messages[0].SecondsToArrival
	for _, m := range s.Messages[1:] {
		if m.SecondsToArrival < soonest {
			soonest = m.SecondsToArrival
		}
	}
	return soonest, true
}

// Top returns the first n messages (the n most urgent arrivals)
func (s Snapshot) Top(n int) []TrainMessage {
	if n < 0 {
		n = 0
	}
	if n > len(s.Messages) {
		n = len(s.Messages)
	}
	return s.Messages[:n]
}

// Fingerprint derives a short hash over the ordered message content.
// Two snapshots with identical message sets produce equal fingerprints,
// which the staleness tracker uses to detect "no new information" runs.
func (s Snapshot) Fingerprint() string {
	h := sha256.New()
	for _, m := range s.Messages {
		fmt.Fprintf(h, "%s|%s|%d|%s|%s\n",
			m.Headsign, m.Target, m.SecondsToArrival, m.ArrivalText,
			strings.Join(m.LineColors, ","))
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}
