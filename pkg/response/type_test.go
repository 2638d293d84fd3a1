package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"nextact/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	// Hanoi is UTC+7.
	loc := time.FixedZone("ICT", 7*60*60)
	tm := time.Date(2024, 6, 11, 7, 0, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-06-11 00:00:00"` {
		t.Errorf("got %s", string(b))
	}

	b, err = json.Marshal(response.DateTime(time.Date(2024, 6, 10, 23, 30, 0, 0, loc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2024-06-10 16:30:00"` {
		t.Errorf("got %s", string(b))
	}
}

func TestDateTimeMarshalJSON_Zero(t *testing.T) {
	b, err := json.Marshal(response.DateTime(time.Time{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null for zero time, got %s", string(b))
	}
}
