package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Datetime wraps an absolute instant. Comparison uses time.Time's native
// ordering; adding or subtracting a Timedelta shifts the instant, and math
// against any other operand coerces both sides to seconds since the Unix
// epoch.
type Datetime struct {
	T time.Time
}

func (d Datetime) String() string {
	return d.T.UTC().Format(time.RFC3339)
}

// EpochSeconds returns fractional seconds since the Unix epoch, the
// numeric form math binary operators coerce a Datetime to.
func (d Datetime) EpochSeconds() float64 {
	return float64(d.T.UnixNano()) / 1e9
}

func (d Datetime) Add(delta Timedelta) Datetime {
	return Datetime{T: d.T.Add(delta.D)}
}

func (d Datetime) Compare(other Datetime) int {
	switch {
	case d.T.Before(other.T):
		return -1
	case d.T.After(other.T):
		return 1
	default:
		return 0
	}
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseDatetime accepts an ISO-8601 date-time (date/time separated by
// either "T" or a space, trailing "Z"/"z"/numeric offset, optional
// fractional seconds) or a bare integer string, interpreted as Unix epoch
// seconds in UTC.
func ParseDatetime(s string) (Datetime, error) {
	raw := strings.TrimSpace(s)

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Datetime{T: time.Unix(n, 0).UTC()}, nil
	}

	// Normalize a lowercase 'z' suffix; Go's time layouts only recognize
	// uppercase 'Z'.
	normalized := raw
	if strings.HasSuffix(normalized, "z") {
		normalized = normalized[:len(normalized)-1] + "Z"
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return Datetime{T: t.UTC()}, nil
		}
	}

	return Datetime{}, fmt.Errorf("domain: invalid datetime %q", s)
}

// KnownDatetimeFields are the IDEA field names the default compiler
// registry treats as carrying timestamps, consulted after clean_variable
// normalization strips numeric indices.
var KnownDatetimeFields = map[string]bool{
	"DetectTime":   true,
	"CreateTime":   true,
	"EventTime":    true,
	"CeaseTime":    true,
	"WinStartTime": true,
	"WinEndTime":   true,
}
