package models

import (
	"testing"
	"time"
)

func TestDisplayHeadsign(t *testing.T) {
	tests := []struct {
		name     string
		message  TrainMessage
		expected string
	}{
		{"headsign preferred", TrainMessage{Headsign: "33rd Street", Target: "33S"}, "33rd Street"},
		{"falls back to target", TrainMessage{Target: "33S"}, "33S"},
		{"both empty", TrainMessage{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.message.DisplayHeadsign(); got != tt.expected {
				t.Errorf("DisplayHeadsign() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDisplayArrival(t *testing.T) {
	tests := []struct {
		name     string
		message  TrainMessage
		expected string
	}{
		{"feed phrase preferred", TrainMessage{ArrivalText: "Boarding", SecondsToArrival: 30}, "Boarding"},
		{"computed from seconds", TrainMessage{SecondsToArrival: 300}, "5 min"},
		{"rounds down", TrainMessage{SecondsToArrival: 119}, "1 min"},
		{"zero seconds", TrainMessage{SecondsToArrival: 0}, "0 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.message.DisplayArrival(); got != tt.expected {
				t.Errorf("DisplayArrival() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSoonest(t *testing.T) {
	snapshot := Snapshot{Messages: []TrainMessage{
		{SecondsToArrival: 120},
		{SecondsToArrival: 300},
	}}

	soonest, ok := snapshot.Soonest()
	if !ok {
		t.Fatal("Expected ok for non-empty snapshot")
	}
	if soonest != 120 {
		t.Errorf("Soonest() = %d, want 120", soonest)
	}

	if _, ok := (Snapshot{}).Soonest(); ok {
		t.Error("Expected ok=false for empty snapshot")
	}
}

func TestTop(t *testing.T) {
	snapshot := Snapshot{Messages: []TrainMessage{
		{SecondsToArrival: 60},
		{SecondsToArrival: 120},
		{SecondsToArrival: 300},
	}}

	if got := snapshot.Top(2); len(got) != 2 || got[0].SecondsToArrival != 60 {
		t.Errorf("Top(2) = %v", got)
	}
	if got := snapshot.Top(10); len(got) != 3 {
		t.Errorf("Top(10) should clamp to 3, got %d", len(got))
	}
	if got := snapshot.Top(-1); len(got) != 0 {
		t.Errorf("Top(-1) should be empty, got %d", len(got))
	}
}

func TestFingerprint(t *testing.T) {
	now := time.Now()
	base := Snapshot{Messages: []TrainMessage{
		{Headsign: "33rd Street", Target: "33S", SecondsToArrival: 120, ArrivalText: "2 min", LineColors: []string{"#4D92FB"}},
		{Headsign: "World Trade Center", Target: "NWK", SecondsToArrival: 300, ArrivalText: "5 min", LineColors: []string{"#D93A30"}},
	}}

	same := Snapshot{Messages: append([]TrainMessage(nil), base.Messages...), LastUpdated: &now}
	if base.Fingerprint() != same.Fingerprint() {
		t.Error("Fingerprint should ignore the timestamp and depend only on message content")
	}

	changed := Snapshot{Messages: append([]TrainMessage(nil), base.Messages...)}
	changed.Messages[0].SecondsToArrival = 60
	if base.Fingerprint() == changed.Fingerprint() {
		t.Error("Fingerprint should change when seconds-to-arrival changes")
	}

	reordered := Snapshot{Messages: []TrainMessage{base.Messages[1], base.Messages[0]}}
	if base.Fingerprint() == reordered.Fingerprint() {
		t.Error("Fingerprint should be order-sensitive")
	}

	if (Snapshot{}).Fingerprint() == base.Fingerprint() {
		t.Error("Empty snapshot should not collide with a populated one")
	}
}
