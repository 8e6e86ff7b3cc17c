package task

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/unload/pkg/timeutil"
)

// ParseTime reads an ISO-8601 timestamp. Both second and fractional second
// precision are accepted.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with ISO-8601 JSON encoding.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// SameDay reports whether t and then fall on the same calendar day in the
// location of then.
func (t Timestamp) SameDay(then time.Time) bool {
	return timeutil.SameDay(t.Time, then)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339Nano))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
