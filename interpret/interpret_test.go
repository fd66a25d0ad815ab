package interpret

import (
	"testing"

	"github.com/ayoisaiah/quiver/stats"
)

func TestGrouping(t *testing.T) {
	cases := []struct {
		name    string
		summary *stats.TechnicalSummary
		want    string
	}{
		{
			name:    "compact group with even spread",
			summary: &stats.TechnicalSummary{DispersionRadius: 20, SpreadX: 0.03, SpreadY: 0.031},
			want:    GroupingCompact,
		},
		{
			name:    "compactness wins over a vertical bias",
			summary: &stats.TechnicalSummary{DispersionRadius: 24.9, SpreadX: 0.01, SpreadY: 0.05},
			want:    GroupingCompact,
		},
		{
			name:    "vertical spread",
			summary: &stats.TechnicalSummary{DispersionRadius: 40, SpreadX: 0.03, SpreadY: 0.06},
			want:    GroupingVertical,
		},
		{
			name:    "horizontal spread",
			summary: &stats.TechnicalSummary{DispersionRadius: 40, SpreadX: 0.06, SpreadY: 0.03},
			want:    GroupingHorizontal,
		},
		{
			name:    "wide but even",
			summary: &stats.TechnicalSummary{DispersionRadius: 40, SpreadX: 0.05, SpreadY: 0.06},
			want:    GroupingWide,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Grouping(tc.summary)
			if !ok || got != tc.want {
				t.Errorf("Grouping() = %q, want %q", got, tc.want)
			}
		})
	}

	if _, ok := Grouping(nil); ok {
		t.Error("expected no verdict without a summary")
	}
}

func TestDispersionLabel(t *testing.T) {
	cases := map[float64]string{
		10: DispersionExcellent,
		25: DispersionGood,
		44: DispersionGood,
		45: DispersionHigh,
	}

	for radius, want := range cases {
		got := DispersionLabel(&stats.TechnicalSummary{DispersionRadius: radius})
		if got != want {
			t.Errorf("radius %v: got %q, want %q", radius, got, want)
		}
	}

	if DispersionLabel(nil) != DispersionNotComputable {
		t.Error("expected a nil summary to be not computable")
	}
}

func spot(count int, radius float64) *stats.TechnicalSummary {
	return &stats.TechnicalSummary{ArrowsCount: count, DispersionRadius: radius}
}

func TestTrispot(t *testing.T) {
	cases := []struct {
		name    string
		summary *stats.TrispotSummary
		want    string
		ok      bool
	}{
		{
			name:    "nil summary",
			summary: nil,
		},
		{
			name:    "only one spot with enough hits",
			summary: &stats.TrispotSummary{High: spot(10, 20), Middle: spot(5, 60)},
		},
		{
			name:    "uniform",
			summary: &stats.TrispotSummary{High: spot(10, 20), Middle: spot(10, 25), Low: spot(10, 29)},
			want:    TrispotUniform,
			ok:      true,
		},
		{
			name:    "low spot worst",
			summary: &stats.TrispotSummary{High: spot(10, 20), Middle: spot(10, 25), Low: spot(10, 40)},
			want:    TrispotLow,
			ok:      true,
		},
		{
			name:    "high spot worst",
			summary: &stats.TrispotSummary{High: spot(6, 50), Low: spot(6, 20)},
			want:    TrispotHigh,
			ok:      true,
		},
		{
			name:    "middle spot worst",
			summary: &stats.TrispotSummary{High: spot(8, 20), Middle: spot(8, 35), Low: spot(8, 22)},
			want:    TrispotMiddle,
			ok:      true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Trispot(tc.summary)
			if ok != tc.ok || got != tc.want {
				t.Errorf("Trispot() = %q, %v, want %q, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestAdvice(t *testing.T) {
	technical := &stats.TechnicalSummary{DispersionRadius: 10}
	trispot := &stats.TrispotSummary{High: spot(10, 20), Low: spot(10, 40)}

	if got, _ := Advice(technical, trispot); got != TrispotLow {
		t.Errorf("expected trispot verdict to take precedence, got %q", got)
	}

	if got, _ := Advice(technical, &stats.TrispotSummary{}); got != GroupingCompact {
		t.Errorf("expected grouping verdict, got %q", got)
	}

	if _, ok := Advice(technical, &stats.TrispotSummary{High: spot(3, 20)}); ok {
		t.Error("expected an insufficient trispot summary to give no advice")
	}
}

func TestCenterMean(t *testing.T) {
	cases := []struct {
		name  string
		x, y  float64
		unit  Unit
		want  Direction
		align bool
	}{
		{name: "centred", x: 0.51, y: 0.49, unit: Normalized, align: true},
		{name: "drift up", x: 0.5, y: 0.4, unit: Normalized, want: Up},
		{name: "drift down", x: 0.52, y: 0.6, unit: Normalized, want: Down},
		{name: "drift left", x: 0.3, y: 0.45, unit: Normalized, want: Left},
		{name: "drift right", x: 0.6, y: 0.5, unit: Normalized, want: Right},
		{name: "millimetre threshold is tighter", x: 0.502, y: 0.5, unit: Millimeters, want: Right},
		{name: "millimetre aligned", x: 0.5001, y: 0.5001, unit: Millimeters, align: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := CenterMean(&stats.TechnicalSummary{MeanX: tc.x, MeanY: tc.y}, tc.unit)
			if !ok {
				t.Fatal("expected a verdict")
			}

			if v.Aligned != tc.align || v.Direction != tc.want {
				t.Errorf("got %+v, want direction %q aligned %v", v, tc.want, tc.align)
			}

			if v.String() == "" {
				t.Error("expected a display string")
			}
		})
	}

	if _, ok := CenterMean(nil, Normalized); ok {
		t.Error("expected no verdict without a summary")
	}
}
