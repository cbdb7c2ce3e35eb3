package feed

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jusunglee/pathboard/internal/models"
)

// Wire types for the ridepath JSON payload. The feed delivers numbers
// as strings, so every field decodes as a string and is converted
// afterwards.
type ridepathPayload struct {
	Results []ridepathResult `json:"results"`
}

type ridepathResult struct {
	ConsideredStation string                `json:"consideredStation"`
	Destinations      []ridepathDestination `json:"destinations"`
}

type ridepathDestination struct {
	Label    string            `json:"label"`
	Messages []ridepathMessage `json:"messages"`
}

type ridepathMessage struct {
	Target             string `json:"target"`
	SecondsToArrival   string `json:"secondsToArrival"`
	ArrivalTimeMessage string `json:"arrivalTimeMessage"`
	LineColor          string `json:"lineColor"`
	HeadSign           string `json:"headSign"`
	LastUpdated        string `json:"lastUpdated"`
}

// Parse converts a raw feed body into a Snapshot for one station.
// A malformed body or a payload missing the requested station yields an
// empty Snapshot rather than an error: only transport-level problems
// count as fetch failures. Messages with unparseable arrival seconds
// are skipped individually.
func Parse(raw []byte, station string) models.Snapshot {
	var payload ridepathPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.Snapshot{}
	}

	var entry *ridepathResult
	for i := range payload.Results {
		if payload.Results[i].ConsideredStation == station {
			entry = &payload.Results[i]
			break
		}
	}
	if entry == nil {
		return models.Snapshot{}
	}

	var messages []models.TrainMessage
	for _, dest := range entry.Destinations {
		for _, msg := range dest.Messages {
			seconds, err := strconv.Atoi(strings.TrimSpace(msg.SecondsToArrival))
			if err != nil {
				continue
			}
			messages = append(messages, models.TrainMessage{
				Label:            dest.Label,
				Target:           strings.TrimSpace(msg.Target),
				SecondsToArrival: seconds,
				ArrivalText:      strings.TrimSpace(msg.ArrivalTimeMessage),
				LineColors:       ParseLineColors(msg.LineColor),
				Headsign:         strings.TrimSpace(msg.HeadSign),
				LastUpdated:      parseLastUpdated(msg.LastUpdated),
			})
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SecondsToArrival < messages[j].SecondsToArrival
	})

	var lastUpdated *time.Time
	for _, m := range messages {
		if m.LastUpdated == nil {
			continue
		}
		if lastUpdated == nil || m.LastUpdated.After(*lastUpdated) {
			lastUpdated = m.LastUpdated
		}
	}

	return models.Snapshot{Messages: messages, LastUpdated: lastUpdated}
}

// ParseLineColors normalizes the feed's comma-separated color field to
// at most two "#RRGGBB" uppercase values, defaulting to neutral gray.
func ParseLineColors(raw string) []string {
	var colors []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colors = append(colors, normalizeColor(part))
	}
	if len(colors) == 0 {
		return []string{models.DefaultLineColor}
	}
	if len(colors) > 2 {
		colors = colors[:2]
	}
	return colors
}

func normalizeColor(value string) string {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if value == "" {
		return models.DefaultLineColor
	}
	// Expand 3-digit shorthand
	if len(value) == 3 {
		var b strings.Builder
		for _, ch := range value {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		value = b.String()
	}
	return "#" + strings.ToUpper(value)
}

// lastUpdatedLayouts are tried in order. The feed usually sends an
// offset, but naive timestamps show up too and are taken as UTC.
var lastUpdatedLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02T15:04:05", true},
}

func parseLastUpdated(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, l := range lastUpdatedLayouts {
		var t time.Time
		var err error
		if l.naive {
			t, err = time.ParseInLocation(l.layout, value, time.UTC)
		} else {
			t, err = time.Parse(l.layout, value)
		}
		if err == nil {
			return &t
		}
	}
	return nil
}
