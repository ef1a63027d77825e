package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Timedelta wraps a relative duration. Math against a Datetime adds/
// subtracts it directly; math against a bare number coerces through
// Seconds().
type Timedelta struct {
	D time.Duration
}

func (d Timedelta) String() string {
	return d.D.String()
}

// Seconds returns the duration as fractional seconds, the numeric form
// math binary operators coerce a Timedelta to.
func (d Timedelta) Seconds() float64 {
	return d.D.Seconds()
}

// reClock matches "HH:MM:SS" with an optional "NNd"/"NND" day prefix.
var reClock = regexp.MustCompile(`^(?:(\d+)[dD])?(\d+):(\d+):(\d+)$`)

// ParseTimedelta accepts a bare integer string of seconds ("3600"), a
// clock-form duration ("15:15:15"), or a clock-form duration with a day
// prefix ("15d15:15:15"/"15D15:15:15").
func ParseTimedelta(s string) (Timedelta, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Timedelta{D: time.Duration(n) * time.Second}, nil
	}

	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return Timedelta{}, fmt.Errorf("domain: invalid duration %q", s)
	}

	var days int64
	if m[1] != "" {
		days, _ = strconv.ParseInt(m[1], 10, 64)
	}
	hours, _ := strconv.ParseInt(m[2], 10, 64)
	minutes, _ := strconv.ParseInt(m[3], 10, 64)
	seconds, _ := strconv.ParseInt(m[4], 10, 64)

	total := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second

	return Timedelta{D: total}, nil
}
