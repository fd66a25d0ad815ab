package timeutil

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		period Period
		start  time.Time
		end    time.Time
	}{
		{PeriodToday, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), RoundToEnd(now)},
		{PeriodYesterday, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC)},
		{Period7Days, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), RoundToEnd(now)},
		{PeriodAllTime, time.Time{}, RoundToEnd(now)},
	}

	for _, tc := range cases {
		start, end := PeriodRange(tc.period, now)

		if !start.Equal(tc.start) || !end.Equal(tc.end) {
			t.Errorf("%s: got %v - %v, want %v - %v", tc.period, start, end, tc.start, tc.end)
		}
	}
}

func TestFromStr(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	got, err := FromStr("2025-03-01", now)
	if err != nil {
		t.Fatal(err)
	}

	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("unexpected date: %v", got)
	}

	got, err = FromStr("2 days ago", now)
	if err != nil {
		t.Fatal(err)
	}

	if got.Day() != 13 {
		t.Errorf("expected a relative date two days earlier, got %v", got)
	}

	if _, err := FromStr("not a date at all", now); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}
