package stats

import (
	"math"

	"github.com/ayoisaiah/quiver/internal/session"
)

// TargetFaceDiameterMM converts normalized target face offsets to
// millimetres.
const TargetFaceDiameterMM = 500

// minDispersionPoints is the smallest group with a defined dispersion.
const minDispersionPoints = 2

// Point is a hit position in normalized target face units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TechnicalSummary describes the shape of a group of hits. MeanX and MeanY
// are the centroid in normalized units, DispersionRadius is the RMS distance
// from the centroid in millimetres, and SpreadX and SpreadY are the RMS
// offsets along each axis in normalized units.
type TechnicalSummary struct {
	ArrowsCount      int     `json:"arrowsCount"`
	MeanX            float64 `json:"meanX"`
	MeanY            float64 `json:"meanY"`
	DispersionRadius float64 `json:"dispersionRadius"`
	SpreadX          float64 `json:"spreadX"`
	SpreadY          float64 `json:"spreadY"`
}

// Spot identifies one of the three faces of a trispot target. Arrows are
// shot at the spots in slot order.
type Spot int

const (
	SpotHigh Spot = iota
	SpotMiddle
	SpotLow
)

// Spots lists the trispot faces from top to bottom.
var Spots = []Spot{SpotHigh, SpotMiddle, SpotLow}

func (s Spot) String() string {
	switch s {
	case SpotHigh:
		return "high"
	case SpotMiddle:
		return "middle"
	case SpotLow:
		return "low"
	}

	return "unknown"
}

// TrispotSummary holds one technical summary per trispot face. A nil entry
// means the face has too few hits.
type TrispotSummary struct {
	High   *TechnicalSummary `json:"high"`
	Middle *TechnicalSummary `json:"middle"`
	Low    *TechnicalSummary `json:"low"`
}

// Get returns the summary for spot.
func (t *TrispotSummary) Get(spot Spot) *TechnicalSummary {
	switch spot {
	case SpotHigh:
		return t.High
	case SpotMiddle:
		return t.Middle
	case SpotLow:
		return t.Low
	}

	return nil
}

// Any reports whether at least one face has a summary.
func (t *TrispotSummary) Any() bool {
	return t != nil && (t.High != nil || t.Middle != nil || t.Low != nil)
}

// MeanPoint returns the centroid of points. It reports false for an empty
// slice.
func MeanPoint(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}

	var c Point

	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}

	n := float64(len(points))

	return Point{X: c.X / n, Y: c.Y / n}, true
}

// RadialDispersion returns the RMS distance of points from their centroid in
// millimetres. It reports false for fewer than two points.
func RadialDispersion(points []Point) (float64, bool) {
	if len(points) < minDispersionPoints {
		return 0, false
	}

	c, _ := MeanPoint(points)

	var sumSq float64

	for _, p := range points {
		dx := (p.X - c.X) * TargetFaceDiameterMM
		dy := (p.Y - c.Y) * TargetFaceDiameterMM
		sumSq += dx*dx + dy*dy
	}

	return math.Sqrt(sumSq / float64(len(points))), true
}

// ComputeTechnicalSummary summarizes a group of hits. It returns nil for
// fewer than two points.
func ComputeTechnicalSummary(points []Point) *TechnicalSummary {
	radius, ok := RadialDispersion(points)
	if !ok {
		return nil
	}

	c, _ := MeanPoint(points)

	var sx, sy float64

	for _, p := range points {
		sx += (p.X - c.X) * (p.X - c.X)
		sy += (p.Y - c.Y) * (p.Y - c.Y)
	}

	n := float64(len(points))

	return &TechnicalSummary{
		ArrowsCount:      len(points),
		MeanX:            c.X,
		MeanY:            c.Y,
		DispersionRadius: radius,
		SpreadX:          math.Sqrt(sx / n),
		SpreadY:          math.Sqrt(sy / n),
	}
}

// PointsFromSessions returns the position of every hit with coordinates, in
// shooting order.
func PointsFromSessions(sessions []session.Session) []Point {
	var points []Point

	for i := range sessions {
		for v := range sessions[i].Volleys {
			for _, h := range sessions[i].Volleys[v].Hits {
				if h.HasCoords() {
					points = append(points, Point{X: *h.X, Y: *h.Y})
				}
			}
		}
	}

	return points
}

// PointsBySpot splits the hits of sessions by arrow slot, which is the
// trispot face each arrow was shot at.
func PointsBySpot(
	sessions []session.Session,
) [session.ArrowsPerVolley][]Point {
	var out [session.ArrowsPerVolley][]Point

	for i := range sessions {
		for v := range sessions[i].Volleys {
			for k, h := range sessions[i].Volleys[v].Hits {
				if h.HasCoords() {
					out[k] = append(out[k], Point{X: *h.X, Y: *h.Y})
				}
			}
		}
	}

	return out
}

// ComputeTrispotSummary returns an independent technical summary for each
// trispot face. Sessions shot on a single face are ignored.
func ComputeTrispotSummary(sessions []session.Session) *TrispotSummary {
	trispot := make([]session.Session, 0, len(sessions))

	for i := range sessions {
		if sessions[i].IsTrispot() {
			trispot = append(trispot, sessions[i])
		}
	}

	bySpot := PointsBySpot(trispot)

	return &TrispotSummary{
		High:   ComputeTechnicalSummary(bySpot[SpotHigh]),
		Middle: ComputeTechnicalSummary(bySpot[SpotMiddle]),
		Low:    ComputeTechnicalSummary(bySpot[SpotLow]),
	}
}
