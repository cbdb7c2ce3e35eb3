package feed

import (
	"encoding/json"
	"fmt"
)

// Helpers for building ridepath payloads in tests.

// MockMessage is one message entry in a built payload
type MockMessage struct {
	Target      string
	Seconds     string
	ArrivalText string
	LineColor   string
	HeadSign    string
	LastUpdated string
}

// CreateMockPayload builds a ridepath body with a single destination
// ("ToNY") for the given station
func CreateMockPayload(station string, messages ...MockMessage) []byte {
	msgs := make([]map[string]string, len(messages))
	for i, m := range messages {
		msgs[i] = map[string]string{
			"target":             m.Target,
			"secondsToArrival":   m.Seconds,
			"arrivalTimeMessage": m.ArrivalText,
			"lineColor":          m.LineColor,
			"headSign":           m.HeadSign,
			"lastUpdated":        m.LastUpdated,
		}
	}

	payload := map[string]interface{}{
		"results": []map[string]interface{}{
			{
				"consideredStation": station,
				"destinations": []map[string]interface{}{
					{"label": "ToNY", "messages": msgs},
				},
			},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("build mock payload: %v", err))
	}
	return data
}

// CreateHobokenPayload builds the standard two-train Hoboken fixture:
// a 33rd Street train in 120s and a World Trade Center train in 300s
func CreateHobokenPayload() []byte {
	return CreateMockPayload("HOB",
		MockMessage{
			Target:      "NWK",
			Seconds:     "300",
			ArrivalText: "5 min",
			LineColor:   "D93A30",
			HeadSign:    "World Trade Center",
			LastUpdated: "2025-06-01T12:00:10-04:00",
		},
		MockMessage{
			Target:      "33S",
			Seconds:     "120",
			ArrivalText: "2 min",
			LineColor:   "4D92FB,FF9900",
			HeadSign:    "33rd Street",
			LastUpdated: "2025-06-01T12:00:30-04:00",
		},
	)
}
