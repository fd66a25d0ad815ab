package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/quiver/internal/session"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCursorNext(t *testing.T) {
	cases := []struct {
		in   Cursor
		want Cursor
	}{
		{Cursor{0, 0}, Cursor{0, 1}},
		{Cursor{0, 2}, Cursor{1, 0}},
		{Cursor{18, 2}, Cursor{19, 0}},
		{Cursor{19, 1}, Cursor{19, 2}},
		{Cursor{19, 2}, Cursor{19, 0}},
		{Cursor{-4, 9}, Cursor{1, 0}},
		{Cursor{40, 0}, Cursor{19, 1}},
	}

	for _, tc := range cases {
		if got := tc.in.Next(); got != tc.want {
			t.Errorf("%+v.Next() = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestCursorPrev(t *testing.T) {
	if got := (Cursor{0, 0}).Prev(); got != (Cursor{0, 0}) {
		t.Errorf("expected the first slot to be sticky, got %+v", got)
	}

	if got := (Cursor{3, 0}).Prev(); got != (Cursor{2, 2}) {
		t.Errorf("expected previous volley, got %+v", got)
	}
}

type recordTest struct {
	Name       string
	Cursor     Cursor
	Score      int
	Hit        *session.Hit
	WantScore  int
	WantHit    *session.Hit
	WantCursor Cursor
}

var recordTestCases = []recordTest{
	{
		Name:       "plain score",
		Cursor:     Cursor{0, 0},
		Score:      7,
		WantScore:  7,
		WantCursor: Cursor{0, 1},
	},
	{
		Name:       "quick inner ten",
		Cursor:     Cursor{4, 2},
		Score:      10,
		Hit:        session.XOnly(),
		WantScore:  10,
		WantHit:    session.XOnly(),
		WantCursor: Cursor{5, 0},
	},
	{
		Name:       "spatial hit",
		Cursor:     Cursor{1, 1},
		Score:      9,
		Hit:        session.At(0.53, 0.46, false),
		WantScore:  9,
		WantHit:    session.At(0.53, 0.46, false),
		WantCursor: Cursor{1, 2},
	},
	{
		Name:       "inner ten flag dropped below ten",
		Cursor:     Cursor{2, 0},
		Score:      9,
		Hit:        session.At(0.5, 0.5, true),
		WantScore:  9,
		WantHit:    session.At(0.5, 0.5, false),
		WantCursor: Cursor{2, 1},
	},
	{
		Name:       "inner ten flag without coordinates on a nine",
		Cursor:     Cursor{2, 0},
		Score:      9,
		Hit:        session.XOnly(),
		WantScore:  9,
		WantCursor: Cursor{2, 1},
	},
	{
		Name:       "score is clamped",
		Cursor:     Cursor{0, 0},
		Score:      14,
		WantScore:  10,
		WantCursor: Cursor{0, 1},
	},
	{
		Name:       "miss",
		Cursor:     Cursor{0, 0},
		Score:      -1,
		WantScore:  0,
		WantCursor: Cursor{0, 1},
	},
	{
		Name:       "last slot cycles within the last volley",
		Cursor:     Cursor{19, 2},
		Score:      8,
		WantScore:  8,
		WantCursor: Cursor{19, 0},
	},
	{
		Name:       "out of range cursor is clamped",
		Cursor:     Cursor{25, -3},
		Score:      6,
		WantScore:  6,
		WantCursor: Cursor{19, 1},
	},
}

func TestRecordScore(t *testing.T) {
	for _, tc := range recordTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			before := session.Session{}

			got, cursor := RecordScore(before, tc.Cursor, tc.Score, tc.Hit)

			if cursor != tc.WantCursor {
				t.Errorf("cursor = %+v, want %+v", cursor, tc.WantCursor)
			}

			c := tc.Cursor.Clamp()
			v := got.Volleys[c.Volley]

			if v.Arrows[c.Arrow] == nil || *v.Arrows[c.Arrow] != tc.WantScore {
				t.Fatalf("score = %v, want %d", v.Arrows[c.Arrow], tc.WantScore)
			}

			if diff := cmp.Diff(tc.WantHit, v.Hits[c.Arrow]); diff != "" {
				t.Errorf("hit mismatch (-want +got):\n%s", diff)
			}

			if v.Total != tc.WantScore {
				t.Errorf("total = %d, want %d", v.Total, tc.WantScore)
			}

			if diff := cmp.Diff(session.Session{}, before); diff != "" {
				t.Errorf("input session was modified:\n%s", diff)
			}
		})
	}
}

func TestRecordScoreOverwrite(t *testing.T) {
	var s session.Session

	c := Cursor{}

	s, c = RecordScore(s, c, 10, session.At(0.5, 0.5, true))
	s, _ = RecordScore(s, c, 9, nil)
	s, _ = RecordScore(s, Cursor{0, 0}, 3, nil)

	v := s.Volleys[0]

	if *v.Arrows[0] != 3 || v.Hits[0] != nil {
		t.Errorf("expected overwrite to replace score and hit, got %d %+v", *v.Arrows[0], v.Hits[0])
	}

	if v.Total != 12 {
		t.Errorf("expected total 12, got %d", v.Total)
	}
}

func TestRecordScoreKeepsTotalsConsistent(t *testing.T) {
	var s session.Session

	c := Cursor{}

	for i := 0; i < 200; i++ {
		s, c = RecordScore(s, c, (i*7)%12, nil)

		for k := range s.Volleys {
			if s.Volleys[k].Total != s.Volleys[k].Sum() {
				t.Fatalf("step %d: volley %d total out of sync", i, k)
			}
		}
	}

	if !IsComplete(&s) {
		t.Errorf("expected session to be complete")
	}
}

func TestIsComplete(t *testing.T) {
	var s session.Session

	if IsComplete(&s) {
		t.Fatal("empty session reported complete")
	}

	c := Cursor{}
	for i := 0; i < session.VolleyCount*session.ArrowsPerVolley-1; i++ {
		s, c = RecordScore(s, c, 5, nil)
	}

	if IsComplete(&s) {
		t.Fatal("session with one open slot reported complete")
	}

	if got := FirstOpen(&s); got != (Cursor{19, 2}) {
		t.Errorf("FirstOpen = %+v, want last slot", got)
	}

	s, _ = RecordScore(s, c, 5, nil)

	if !IsComplete(&s) {
		t.Fatal("full session reported incomplete")
	}

	if s.TotalScore() != 300 {
		t.Errorf("expected total 300, got %d", s.TotalScore())
	}
}

func TestFlattenHits(t *testing.T) {
	var s session.Session

	s.Volleys[0].Arrows = [3]*int{ptr(10), ptr(9), ptr(8)}
	s.Volleys[0].Hits = [3]*session.Hit{session.XOnly(), nil, session.At(0.4, 0.6, false)}
	s.Volleys[7].Arrows = [3]*int{ptr(7), nil, nil}
	s.Volleys[7].Hits = [3]*session.Hit{session.At(0.3, 0.3, false), nil, nil}

	want := []session.Hit{
		*session.XOnly(),
		*session.At(0.4, 0.6, false),
		*session.At(0.3, 0.3, false),
	}

	if diff := cmp.Diff(want, FlattenHits(&s)); diff != "" {
		t.Errorf("hits mismatch (-want +got):\n%s", diff)
	}
}
