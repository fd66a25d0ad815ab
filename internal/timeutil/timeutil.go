// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodRange returns the start and end time of period relative to now. The
// all-time period has a zero start time.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)
	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return start, end
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
		return start, RoundToEnd(start)
	case PeriodAllTime:
		return time.Time{}, end
	default:
		return RoundToStart(now.AddDate(0, 0, Range[period])), end
	}
}

// FromStr parses a date expressed in absolute ("2025-03-01", "March 1") or
// relative ("yesterday", "3 days ago") terms.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	d, err := dps.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}
