package interpret

import (
	"fmt"
	"math"

	"github.com/ayoisaiah/quiver/stats"
)

// Unit selects the scale a centre offset is expressed in.
type Unit int

const (
	// Normalized offsets are fractions of the target face.
	Normalized Unit = iota
	// Millimeters offsets are scaled by the target face diameter.
	Millimeters
)

// Alignment thresholds per unit. A centroid closer to the face centre than
// the threshold is considered aligned.
const (
	NormalizedThreshold = 0.05
	MillimeterThreshold = 0.7
)

// Threshold returns the alignment threshold for u.
func (u Unit) Threshold() float64 {
	if u == Millimeters {
		return MillimeterThreshold
	}

	return NormalizedThreshold
}

func (u Unit) String() string {
	if u == Millimeters {
		return "mm"
	}

	return "normalized"
}

// Direction is the dominant drift of a group's centroid.
type Direction string

const (
	Centered Direction = ""
	Up       Direction = "up"
	Down     Direction = "down"
	Left     Direction = "left"
	Right    Direction = "right"
)

// CenterVerdict describes how far the centroid of a group sits from the
// centre of the face. OffsetX grows to the right and OffsetY grows upwards.
type CenterVerdict struct {
	Direction Direction `json:"direction"`
	OffsetX   float64   `json:"offsetX"`
	OffsetY   float64   `json:"offsetY"`
	Unit      Unit      `json:"unit"`
	Aligned   bool      `json:"aligned"`
}

// CenterMean interprets the centroid of t in the given unit. It reports
// false when t is nil.
func CenterMean(t *stats.TechnicalSummary, unit Unit) (CenterVerdict, bool) {
	if t == nil {
		return CenterVerdict{}, false
	}

	dx := t.MeanX - 0.5
	dy := 0.5 - t.MeanY

	if unit == Millimeters {
		dx *= stats.TargetFaceDiameterMM
		dy *= stats.TargetFaceDiameterMM
	}

	v := CenterVerdict{
		OffsetX: dx,
		OffsetY: dy,
		Unit:    unit,
	}

	if math.Hypot(dx, dy) < unit.Threshold() {
		v.Aligned = true
		return v, true
	}

	switch {
	case math.Abs(dy) > math.Abs(dx) && dy > 0:
		v.Direction = Up
	case math.Abs(dy) > math.Abs(dx):
		v.Direction = Down
	case dx > 0:
		v.Direction = Right
	default:
		v.Direction = Left
	}

	return v, true
}

// Label is the short headline of the verdict.
func (v CenterVerdict) Label() string {
	if v.Aligned {
		return "Centroid aligned"
	}

	return "Mean drift " + string(v.Direction)
}

func (v CenterVerdict) String() string {
	if v.Aligned {
		return "Centroid aligned: no significant drift from the centre"
	}

	if v.Unit == Millimeters {
		return fmt.Sprintf(
			"%s (X %.1f mm / Y %.1f mm)",
			v.Label(),
			v.OffsetX,
			v.OffsetY,
		)
	}

	return fmt.Sprintf(
		"%s (X %.3f / Y %.3f)",
		v.Label(),
		v.OffsetX,
		v.OffsetY,
	)
}
