package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/quiver/internal/session"
)

func circle(cx, cy, r float64, n int) []Point {
	points := make([]Point, n)

	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}

	return points
}

func TestMeanPoint(t *testing.T) {
	if _, ok := MeanPoint(nil); ok {
		t.Error("expected no centroid for no points")
	}

	c, _ := MeanPoint([]Point{{0.4, 0.6}, {0.6, 0.4}})
	if diff := cmp.Diff(Point{0.5, 0.5}, c, approx); diff != "" {
		t.Errorf("centroid mismatch:\n%s", diff)
	}
}

func TestRadialDispersionCircle(t *testing.T) {
	for _, r := range []float64{0.01, 0.05, 0.2} {
		got, ok := RadialDispersion(circle(0.5, 0.5, r, 36))
		if !ok {
			t.Fatalf("r=%v: expected a result", r)
		}

		if math.Abs(got-r*TargetFaceDiameterMM) > 1e-9 {
			t.Errorf("r=%v: expected %v mm, got %v", r, r*TargetFaceDiameterMM, got)
		}
	}
}

func TestComputeTechnicalSummary(t *testing.T) {
	if ComputeTechnicalSummary([]Point{{0.5, 0.5}}) != nil {
		t.Fatal("a single point must not produce a summary")
	}

	got := ComputeTechnicalSummary([]Point{{0.4, 0.5}, {0.6, 0.5}})

	want := &TechnicalSummary{
		ArrowsCount:      2,
		MeanX:            0.5,
		MeanY:            0.5,
		DispersionRadius: 50,
		SpreadX:          0.1,
		SpreadY:          0,
	}

	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestPointsBySpot(t *testing.T) {
	s := session.Session{Meta: session.Meta{TargetType: session.Trispot}}

	for v := 0; v < 3; v++ {
		s.Volleys[v].Arrows = [3]*int{ptr(9), ptr(9), ptr(10)}
		s.Volleys[v].Hits = [3]*session.Hit{
			session.At(0.5, 0.2, false),
			session.At(0.5, 0.5, false),
			session.XOnly(),
		}
	}

	s.Volleys[2].Hits[2] = session.At(0.5, 0.8, true)

	bySpot := PointsBySpot([]session.Session{s})

	if len(bySpot[SpotHigh]) != 3 || len(bySpot[SpotMiddle]) != 3 || len(bySpot[SpotLow]) != 1 {
		t.Errorf("unexpected split: %d %d %d",
			len(bySpot[SpotHigh]), len(bySpot[SpotMiddle]), len(bySpot[SpotLow]))
	}

	sum := ComputeTrispotSummary([]session.Session{s})
	if !sum.Any() || sum.Low != nil || sum.Get(SpotHigh) == nil {
		t.Errorf("unexpected trispot summary: %+v", sum)
	}

	if got := len(PointsFromSessions([]session.Session{s})); got != 7 {
		t.Errorf("expected 7 points with coordinates, got %d", got)
	}
}

func TestComputeTrispotSummaryIgnoresSingleFace(t *testing.T) {
	single := session.Session{Meta: session.Meta{TargetType: session.Face40cm}}

	for v := 0; v < 8; v++ {
		single.Volleys[v].Arrows = [3]*int{ptr(9), ptr(9), ptr(9)}
		single.Volleys[v].Hits = [3]*session.Hit{
			session.At(0.45, 0.5, false),
			session.At(0.5, 0.55, false),
			session.At(0.55, 0.5, false),
		}
	}

	trispot := session.Session{Meta: session.Meta{TargetType: session.Trispot}}

	sum := ComputeTrispotSummary([]session.Session{single, trispot})
	if sum.Any() {
		t.Errorf("single-face hits leaked into the trispot summary: %+v", sum)
	}
}
