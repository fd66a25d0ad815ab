package session

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = time.RFC3339Nano

// dateLayouts lists the accepted formats for a stored session date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize turns a possibly partial or legacy record into a fully shaped
// session. Volley totals are recomputed from the arrows, which makes the
// result safe to edit. Normalize never fails: anything it cannot understand
// is replaced with an empty value.
func Normalize(r Record) Session {
	return normalize(r, false)
}

// NormalizeStored is like Normalize but keeps a stored volley total when it
// is a finite number. It is meant for read-only aggregation.
func NormalizeStored(r Record) Session {
	return normalize(r, true)
}

func normalize(r Record, keepTotals bool) Session {
	s := Session{
		ID: firstNonEmpty(string(r.ID), string(r.LegacyID)),
		Meta: Meta{
			Date:        parseDate(string(r.Date)),
			Name:        string(r.Name),
			Kind:        normalizeKind(string(r.Kind)),
			Environment: normalizeEnvironment(string(r.Environment)),
			TargetType:  normalizeTargetType(string(r.TargetType)),
			Distance:    normalizeDistance(string(r.Distance)),
		},
	}

	for i := 0; i < VolleyCount && i < len(r.Volleys); i++ {
		rv := r.Volleys[i]

		v := normalizeVolley(rv)
		v.Total = v.Sum()

		if keepTotals && rv.Total.Valid {
			v.Total = int(math.Round(rv.Total.Value))
		}

		s.Volleys[i] = v
	}

	return s
}

func normalizeVolley(rv RecVolley) Volley {
	var v Volley

	for k := 0; k < ArrowsPerVolley && k < len(rv.Arrows); k++ {
		slot := rv.Arrows[k]
		if !slot.Valid {
			continue
		}

		score := slot.Score
		v.Arrows[k] = &score

		var rh *RecHit
		if k < len(rv.Hits) {
			rh = rv.Hits[k]
		}

		if rh == nil && !slot.IsX {
			continue
		}

		h := &Hit{IsX: slot.IsX}

		if rh != nil {
			h.IsX = h.IsX || bool(rh.IsX)
			h.X, h.Y = firstFinitePair(rh)
		}

		v.Hits[k] = h
	}

	return fixVolley(v)
}

// firstFinitePair returns the current x/y pair, falling back to the legacy
// xNorm/yNorm pair. Both are nil when neither pair is complete.
func firstFinitePair(h *RecHit) (x, y *float64) {
	if h.X.Valid && h.Y.Valid {
		return h.X.ptr(), h.Y.ptr()
	}

	if h.XNorm.Valid && h.YNorm.Valid {
		return h.XNorm.ptr(), h.YNorm.ptr()
	}

	return nil, nil
}

func normalizeKind(s string) Kind {
	if k, ok := ParseKind(s); ok {
		return k
	}

	return Kind(strings.TrimSpace(s))
}

func normalizeEnvironment(s string) Environment {
	if e, ok := ParseEnvironment(s); ok {
		return e
	}

	return Environment(strings.TrimSpace(s))
}

func normalizeTargetType(s string) TargetType {
	if t, ok := ParseTargetType(s); ok {
		return t
	}

	return TargetType(strings.TrimSpace(s))
}

func normalizeDistance(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0 &&
		f <= math.MaxInt32 {
		return int(math.Round(f))
	}

	return ParseDistance(s)
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t
		}
	}

	return time.Time{}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}
