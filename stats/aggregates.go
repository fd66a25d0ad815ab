// Package stats computes scoring and shot grouping metrics over archery
// sessions. Every function is pure and returns an explicit "no result" value
// when there is not enough data.
package stats

import (
	"math"
	"strconv"

	"github.com/ayoisaiah/quiver/internal/session"
)

// Mixed is reported by Context for an attribute that differs between
// sessions.
const Mixed = "mixed"

// Arrow is a scored arrow tagged with the volley it was shot in.
type Arrow struct {
	Score  int  `json:"score"`
	Volley int  `json:"volleyIndex"`
	IsX    bool `json:"isX"`
}

// SessionSummary holds scoring metrics over a set of arrows. Optional fields
// are nil when they cannot be computed.
type SessionSummary struct {
	AveragePerVolley *float64 `json:"averagePerVolley"`
	StdDeviation     *float64 `json:"stdDeviation"`
	FirstHalfAvg     *float64 `json:"firstHalfAvg"`
	SecondHalfAvg    *float64 `json:"secondHalfAvg"`
	ArrowsCount      int      `json:"arrowsCount"`
	TotalVolleys     int      `json:"totalVolleys"`
	XCount           int      `json:"xCount"`
	TenCount         int      `json:"tenCount"`
	AverageScore     float64  `json:"averageScore"`
	XPercentage      float64  `json:"xPercentage"`
	TenPercentage    float64  `json:"tenPercentage"`
}

// Scorebook is the per-session line shown in session listings.
type Scorebook struct {
	AveragePerVolley *float64 `json:"averagePerVolley"`
	Total            int      `json:"total"`
	FirstHalf        int      `json:"firstHalf"`
	SecondHalf       int      `json:"secondHalf"`
	Arrows           int      `json:"arrows"`
	Complete         bool     `json:"complete"`
}

// AnalysisContext describes the conditions shared by a set of sessions.
type AnalysisContext struct {
	Kind        string `json:"kind"`
	Distance    string `json:"distance"`
	Environment string `json:"environment"`
	Target      string `json:"target"`
	Sessions    int    `json:"sessions"`
}

// Mean returns the arithmetic mean of values. It reports false for an empty
// slice.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values)), true
}

// StandardDeviation returns the population standard deviation of values. The
// result is indeterminate, and reported as false, for fewer than two values.
func StandardDeviation(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}

	avg, _ := Mean(values)

	var variance float64
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}

	return math.Sqrt(variance / float64(len(values))), true
}

// Percentage returns part as a percentage of whole, or false when whole is 0.
func Percentage(part, whole int) (float64, bool) {
	if whole == 0 {
		return 0, false
	}

	return float64(part) / float64(whole) * 100, true
}

// ArrowsFromSessions returns every scored arrow of the sessions in shooting
// order.
func ArrowsFromSessions(sessions []session.Session) []Arrow {
	var arrows []Arrow

	for i := range sessions {
		for v := range sessions[i].Volleys {
			volley := &sessions[i].Volleys[v]

			for k, score := range volley.Arrows {
				if score == nil {
					continue
				}

				h := volley.Hits[k]

				arrows = append(arrows, Arrow{
					Score:  *score,
					Volley: v,
					IsX:    h != nil && h.IsX,
				})
			}
		}
	}

	return arrows
}

// ComputeSessionSummary summarizes arrows. It returns nil when arrows is
// empty.
func ComputeSessionSummary(arrows []Arrow) *SessionSummary {
	if len(arrows) == 0 {
		return nil
	}

	var (
		scores            = make([]float64, 0, len(arrows))
		firstHalf, second []float64
		total             int
	)

	sum := &SessionSummary{
		ArrowsCount:  len(arrows),
		TotalVolleys: len(arrows) / session.ArrowsPerVolley,
	}

	for _, a := range arrows {
		score := float64(a.Score)
		scores = append(scores, score)
		total += a.Score

		if a.IsX {
			sum.XCount++
		}

		if a.Score == session.MaxScore {
			sum.TenCount++
		}

		if a.Volley < session.HalfVolleys {
			firstHalf = append(firstHalf, score)
		} else {
			second = append(second, score)
		}
	}

	sum.AverageScore, _ = Mean(scores)
	sum.StdDeviation = optional(StandardDeviation(scores))
	sum.XPercentage, _ = Percentage(sum.XCount, sum.ArrowsCount)
	sum.TenPercentage, _ = Percentage(sum.TenCount, sum.ArrowsCount)
	sum.FirstHalfAvg = optional(Mean(firstHalf))
	sum.SecondHalfAvg = optional(Mean(second))

	if sum.TotalVolleys > 0 {
		sum.AveragePerVolley = optional(
			float64(total)/float64(sum.TotalVolleys),
			true,
		)
	}

	return sum
}

// AveragePerSession returns the mean of the per-session average volley score.
// Each session counts once, whatever the number of arrows it holds. Sessions
// without a complete volley's worth of arrows are ignored.
func AveragePerSession(sessions []session.Session) (float64, bool) {
	var averages []float64

	for i := range sessions {
		s := &sessions[i]

		var total, n int

		for v := range s.Volleys {
			for _, a := range s.Volleys[v].Arrows {
				if a != nil {
					total += *a
					n++
				}
			}
		}

		volleys := n / session.ArrowsPerVolley
		if volleys == 0 {
			continue
		}

		averages = append(averages, float64(total)/float64(volleys))
	}

	return Mean(averages)
}

// Totals returns the scorebook line for s. Stored volley totals are used.
func Totals(s *session.Session) Scorebook {
	var book Scorebook

	volleys := 0

	for i := range s.Volleys {
		v := &s.Volleys[i]

		if i < session.HalfVolleys {
			book.FirstHalf += v.Total
		} else {
			book.SecondHalf += v.Total
		}

		book.Arrows += v.Scored()

		if v.Scored() > 0 {
			volleys++
		}
	}

	book.Total = book.FirstHalf + book.SecondHalf
	book.Complete = book.Arrows == session.VolleyCount*session.ArrowsPerVolley

	if volleys > 0 {
		book.AveragePerVolley = optional(
			float64(book.Total)/float64(volleys),
			true,
		)
	}

	return book
}

// VolleyAverages returns, for each volley position, the mean total over the
// sessions that shot at least one arrow in it.
func VolleyAverages(sessions []session.Session) [session.VolleyCount]*float64 {
	var out [session.VolleyCount]*float64

	for v := range out {
		var totals []float64

		for i := range sessions {
			volley := &sessions[i].Volleys[v]
			if volley.Scored() > 0 {
				totals = append(totals, float64(volley.Total))
			}
		}

		out[v] = optional(Mean(totals))
	}

	return out
}

// Context describes the conditions shared by sessions. Each attribute is the
// common value, Mixed when sessions disagree, or empty when no session sets
// it. Context returns nil for an empty slice.
func Context(sessions []session.Session) *AnalysisContext {
	if len(sessions) == 0 {
		return nil
	}

	var kinds, distances, envs, targets []string

	for i := range sessions {
		s := &sessions[i]

		kinds = append(kinds, string(s.Kind))
		envs = append(envs, string(s.Environment))
		targets = append(targets, string(s.TargetType))

		if s.Distance > 0 {
			distances = append(distances, strconv.Itoa(s.Distance)+"m")
		}
	}

	return &AnalysisContext{
		Sessions:    len(sessions),
		Kind:        singleOrMixed(kinds),
		Distance:    singleOrMixed(distances),
		Environment: singleOrMixed(envs),
		Target:      singleOrMixed(targets),
	}
}

func singleOrMixed(values []string) string {
	var found string

	for _, v := range values {
		if v == "" {
			continue
		}

		if found != "" && v != found {
			return Mixed
		}

		found = v
	}

	return found
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}

	return &v
}
