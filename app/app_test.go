package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/internal/testutil"
	"github.com/ayoisaiah/quiver/interpret"
)

func init() {
	pterm.DisableColor()
}

func names(sessions []session.Session) []string {
	out := make([]string, len(sessions))
	for i := range sessions {
		out[i] = sessions[i].Name
	}

	return out
}

func sortFixtures() []session.Session {
	day := func(d int) time.Time {
		return testutil.Date.AddDate(0, 0, d)
	}

	return []session.Session{
		testutil.Session(session.Meta{Name: "round 10", Date: day(2)}, testutil.Repeat(7, 3)),
		testutil.Session(session.Meta{Name: "round 2", Date: day(0)}, testutil.Repeat(9, 3)),
		testutil.Session(session.Meta{Name: "round 1", Date: day(1)}, testutil.Repeat(8, 3)),
	}
}

func TestSortSessions(t *testing.T) {
	cases := []struct {
		by   string
		want []string
	}{
		{by: "date", want: []string{"round 2", "round 1", "round 10"}},
		{by: "", want: []string{"round 2", "round 1", "round 10"}},
		{by: "name", want: []string{"round 1", "round 2", "round 10"}},
		{by: "total", want: []string{"round 2", "round 1", "round 10"}},
	}

	for _, tc := range cases {
		t.Run(tc.by, func(t *testing.T) {
			sessions := sortFixtures()

			if err := sortSessions(sessions, tc.by); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.want, names(sessions)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if err := sortSessions(sortFixtures(), "score"); !errors.Is(err, errUnknownSort) {
		t.Errorf("unknown sort order: got %v", err)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]interpret.Unit{
		"":           interpret.Normalized,
		"normalized": interpret.Normalized,
		"mm":         interpret.Millimeters,
	} {
		got, err := parseUnit(in)
		if err != nil {
			t.Fatalf("parseUnit(%q): %v", in, err)
		}

		if got != want {
			t.Errorf("parseUnit(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseUnit("inches"); !errors.Is(err, errInvalidUnit) {
		t.Errorf("parseUnit(inches): got %v", err)
	}
}

func TestPrintSessionsTable(t *testing.T) {
	s := testutil.Full(session.Meta{
		Name:        "club shoot",
		Kind:        session.Training,
		Environment: session.Indoor,
		TargetType:  session.Trispot,
		Distance:    18,
	}, 9)
	s.ID = "abc"

	var buf bytes.Buffer

	printSessionsTable(&buf, []session.Session{s})

	out := buf.String()

	for _, want := range []string{"ID", "abc", "club shoot", "18m", "540", "60", "270"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q:\n%s", want, out)
		}
	}
}

func TestQuickScore(t *testing.T) {
	db := testutil.DB(t)

	s := session.New(session.Meta{Name: "quick", Date: testutil.Date})
	if err := db.Create(&s); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer

	stdout := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = stdout
	})

	if err := quickScore(db, &s, "10 X 9@0.5,0.5 m", 2); err != nil {
		t.Fatal(err)
	}

	got, err := db.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Volleys[0].Scored() != 0 {
		t.Errorf("first volley should be untouched, got %d arrows", got.Volleys[0].Scored())
	}

	if got.Volleys[1].Total != 29 {
		t.Errorf("second volley total = %d, want 29", got.Volleys[1].Total)
	}

	if got.Volleys[2].Total != 0 || got.Volleys[2].Scored() != 1 {
		t.Errorf("third volley should hold a single miss, got %+v", got.Volleys[2])
	}

	if !got.Volleys[1].Hits[1].IsX {
		t.Error("second arrow should be an inner ten")
	}

	if !strings.Contains(buf.String(), "quick") {
		t.Errorf("scorecard not printed:\n%s", buf.String())
	}
}

func TestQuickScoreInvalidInput(t *testing.T) {
	db := testutil.DB(t)

	s := session.New(session.Meta{Name: "quick", Date: testutil.Date})
	if err := db.Create(&s); err != nil {
		t.Fatal(err)
	}

	if err := quickScore(db, &s, "10 eleven", 0); err == nil {
		t.Fatal("expected an error for an invalid token")
	}
}
