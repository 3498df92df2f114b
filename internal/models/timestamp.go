package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is the single semantic time type used across the engine.
// Session documents written by older clients carry timestamps in several
// shapes (RFC 3339 strings, unix seconds, unix milliseconds); Timestamp
// normalizes all of them at the store boundary so the core never branches
// on source format. It always marshals as RFC 3339.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// MarshalJSON renders the timestamp as a quoted RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts RFC 3339 strings, unix seconds and unix
// milliseconds. Values above 1e12 are treated as milliseconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("invalid timestamp string %q: %w", raw, err)
		}
		t.Time = parsed.UTC()
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s", data)
	}
	if n > 1e12 {
		t.Time = time.UnixMilli(n).UTC()
	} else {
		t.Time = time.Unix(n, 0).UTC()
	}
	return nil
}
