// Package interpret maps computed statistics to short diagnostic verdicts.
// The rules are evaluated in a fixed order and involve no randomness.
package interpret

import (
	"math"
	"sort"

	"github.com/ayoisaiah/quiver/stats"
)

const (
	compactRadiusMM  = 25
	goodRadiusMM     = 45
	directionalRatio = 1.3
	minSpotPoints    = 6
	uniformSpotGapMM = 10
)

// Grouping verdicts.
const (
	GroupingCompact    = "Very compact group, excellent stability."
	GroupingVertical   = "Vertical dispersion: check your draw and extension."
	GroupingHorizontal = "Horizontal dispersion: check your grip and centre shot."
	GroupingWide       = "Wide but even group: work on the consistency of your release."
)

// Trispot verdicts.
const (
	TrispotUniform = "Even grouping across all three spots: the shooting angle is well managed."
	TrispotLow     = "The low spot is the least compact: possible fatigue or loss of control on the descending angle."
	TrispotHigh    = "The high spot shows the most dispersion: check your visual reference and initial alignment."
	TrispotMiddle  = "The middle spot is the least stable: possible inconsistency in the release phase."
)

// Dispersion labels.
const (
	DispersionExcellent     = "Excellent compactness"
	DispersionGood          = "Good compactness"
	DispersionHigh          = "High dispersion"
	DispersionNotComputable = "Dispersion not computable"
)

// Grouping interprets the shape of a single-target group. Compactness takes
// precedence over directional spread. It reports false when t is nil.
func Grouping(t *stats.TechnicalSummary) (string, bool) {
	if t == nil {
		return "", false
	}

	switch {
	case t.DispersionRadius < compactRadiusMM:
		return GroupingCompact, true
	case t.SpreadY > t.SpreadX*directionalRatio:
		return GroupingVertical, true
	case t.SpreadX > t.SpreadY*directionalRatio:
		return GroupingHorizontal, true
	default:
		return GroupingWide, true
	}
}

// DispersionLabel grades the group size of t.
func DispersionLabel(t *stats.TechnicalSummary) string {
	if t == nil || math.IsNaN(t.DispersionRadius) ||
		math.IsInf(t.DispersionRadius, 0) {
		return DispersionNotComputable
	}

	switch {
	case t.DispersionRadius < compactRadiusMM:
		return DispersionExcellent
	case t.DispersionRadius < goodRadiusMM:
		return DispersionGood
	default:
		return DispersionHigh
	}
}

type spotDispersion struct {
	spot   stats.Spot
	radius float64
}

// Trispot compares the three faces of a trispot target and names the least
// consistent one. At least two faces need six or more hits; otherwise it
// reports false.
func Trispot(t *stats.TrispotSummary) (string, bool) {
	if t == nil {
		return "", false
	}

	var spots []spotDispersion

	for _, spot := range stats.Spots {
		s := t.Get(spot)
		if s == nil || s.ArrowsCount < minSpotPoints ||
			math.IsNaN(s.DispersionRadius) || math.IsInf(s.DispersionRadius, 0) {
			continue
		}

		spots = append(spots, spotDispersion{spot: spot, radius: s.DispersionRadius})
	}

	if len(spots) < 2 {
		return "", false
	}

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].radius < spots[j].radius
	})

	best, worst := spots[0], spots[len(spots)-1]

	if worst.radius-best.radius < uniformSpotGapMM {
		return TrispotUniform, true
	}

	switch worst.spot {
	case stats.SpotLow:
		return TrispotLow, true
	case stats.SpotHigh:
		return TrispotHigh, true
	default:
		return TrispotMiddle, true
	}
}

// Advice returns the headline technical advice for a set of sessions. A
// trispot verdict takes precedence whenever any face has a summary.
func Advice(
	technical *stats.TechnicalSummary,
	trispot *stats.TrispotSummary,
) (string, bool) {
	if trispot.Any() {
		return Trispot(trispot)
	}

	return Grouping(technical)
}
