// Package report composes the statistics and interpretation of a set of
// sessions into a single report that can be printed or serialized.
package report

import (
	"encoding/json"
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/interpret"
	"github.com/ayoisaiah/quiver/stats"
)

// Opts controls how a report is built.
type Opts struct {
	StartTime time.Time            `json:"startTime"`
	EndTime   time.Time            `json:"endTime"`
	Compare   stats.CompareOptions `json:"-"`
	Unit      interpret.Unit       `json:"-"`
}

// Report holds every statistic derived from a set of sessions. Fields that
// cannot be computed from the available data are nil.
type Report struct {
	Context           *stats.AnalysisContext        `json:"context"`
	Summary           *stats.SessionSummary         `json:"summary"`
	AveragePerSession *float64                      `json:"averagePerSession"`
	Technical         *stats.TechnicalSummary       `json:"technical"`
	Trispot           *stats.TrispotSummary         `json:"trispot,omitempty"`
	CenterMean        *interpret.CenterVerdict      `json:"centerMean"`
	Advice            *string                       `json:"advice"`
	Opts              Opts                          `json:"period"`
	DispersionLabel   string                        `json:"dispersionLabel"`
	Comparison        stats.Comparison              `json:"comparison"`
	VolleyAverages    [session.VolleyCount]*float64 `json:"volleyAverages"`
	Sessions          []session.Session             `json:"-"`
}

// New computes the report for sessions.
func New(sessions []session.Session, opts Opts) *Report {
	r := &Report{
		Opts:           opts,
		Sessions:       sessions,
		Context:        stats.Context(sessions),
		Summary:        stats.ComputeSessionSummary(stats.ArrowsFromSessions(sessions)),
		Technical:      stats.ComputeTechnicalSummary(stats.PointsFromSessions(sessions)),
		Comparison:     stats.CompareSubpopulations(sessions, opts.Compare),
		VolleyAverages: stats.VolleyAverages(sessions),
	}

	if avg, ok := stats.AveragePerSession(sessions); ok {
		r.AveragePerSession = &avg
	}

	if allTrispot(sessions) {
		r.Trispot = stats.ComputeTrispotSummary(sessions)
	}

	if v, ok := interpret.CenterMean(r.Technical, opts.Unit); ok {
		r.CenterMean = &v
	}

	r.DispersionLabel = interpret.DispersionLabel(r.Technical)

	if advice, ok := interpret.Advice(r.Technical, r.Trispot); ok {
		r.Advice = &advice
	}

	return r
}

// ToJSON serializes the report.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// allTrispot reports whether sessions is a non-empty set of trispot
// sessions. A mixed set is judged on its combined grouping.
func allTrispot(sessions []session.Session) bool {
	for i := range sessions {
		if !sessions[i].IsTrispot() {
			return false
		}
	}

	return len(sessions) > 0
}
