// Package scoring turns scoring actions into session mutations. The state
// machine itself is a set of pure functions over session snapshots; Recorder
// and Autosave wrap it for hosts that keep a live session in memory.
package scoring

import (
	"github.com/ayoisaiah/quiver/internal/session"
)

// Cursor is the slot the next scoring action fills.
type Cursor struct {
	Volley int `json:"volley"`
	Arrow  int `json:"arrow"`
}

// Clamp returns the cursor restricted to the valid slot range.
func (c Cursor) Clamp() Cursor {
	return Cursor{
		Volley: max(0, min(session.VolleyCount-1, c.Volley)),
		Arrow:  max(0, min(session.ArrowsPerVolley-1, c.Arrow)),
	}
}

// Next returns the slot after c. The volley index never advances past the
// last volley: once there, the cursor cycles through its three slots.
func (c Cursor) Next() Cursor {
	c = c.Clamp()

	if c.Arrow+1 < session.ArrowsPerVolley {
		c.Arrow++
		return c
	}

	return Cursor{
		Volley: min(c.Volley+1, session.VolleyCount-1),
		Arrow:  0,
	}
}

// Prev returns the slot before c, stopping at the first slot.
func (c Cursor) Prev() Cursor {
	c = c.Clamp()

	if c.Arrow > 0 {
		c.Arrow--
		return c
	}

	if c.Volley == 0 {
		return c
	}

	return Cursor{Volley: c.Volley - 1, Arrow: session.ArrowsPerVolley - 1}
}

// Input is a single scoring action. Hit is nil for a plain quick entry
// (including a miss), a coordinate-less inner ten for the quick X control, or
// a spatial hit when the score came from a tap on the target.
type Input struct {
	Hit   *session.Hit
	Score int
}

// RecordScore writes score (and the hit derived from it) into the slot under
// the cursor, recomputes the volley total and returns the updated session
// together with the advanced cursor. The input session is not modified.
//
// An out of range cursor is clamped rather than rejected.
func RecordScore(
	s session.Session,
	c Cursor,
	score int,
	hit *session.Hit,
) (session.Session, Cursor) {
	c = c.Clamp()
	score = session.ClampScore(score)

	v := s.Volleys[c.Volley]

	v.Arrows[c.Arrow] = &score
	v.Hits[c.Arrow] = storedHit(score, hit)
	v.Total = v.Sum()

	s.Volleys[c.Volley] = v

	return s, c.Next()
}

// Apply is RecordScore for an Input.
func Apply(s session.Session, c Cursor, in Input) (session.Session, Cursor) {
	return RecordScore(s, c, in.Score, in.Hit)
}

// storedHit derives the hit kept for a slot. The inner-ten flag is only kept
// for a score of ten.
func storedHit(score int, hit *session.Hit) *session.Hit {
	if hit == nil {
		return nil
	}

	isX := hit.IsX && score == session.MaxScore

	if hit.HasCoords() {
		return session.At(*hit.X, *hit.Y, isX)
	}

	if isX {
		return session.XOnly()
	}

	return nil
}

// IsComplete reports whether every slot of the session has been scored.
func IsComplete(s *session.Session) bool {
	for i := range s.Volleys {
		if s.Volleys[i].Scored() != session.ArrowsPerVolley {
			return false
		}
	}

	return true
}

// FlattenHits returns every recorded hit of the session in shooting order.
func FlattenHits(s *session.Session) []session.Hit {
	var hits []session.Hit

	for i := range s.Volleys {
		for _, h := range s.Volleys[i].Hits {
			if h != nil {
				hits = append(hits, *h)
			}
		}
	}

	return hits
}

// FirstOpen returns the first unscored slot, or the last volley when the
// session is complete.
func FirstOpen(s *session.Session) Cursor {
	for i := range s.Volleys {
		for k, a := range s.Volleys[i].Arrows {
			if a == nil {
				return Cursor{Volley: i, Arrow: k}
			}
		}
	}

	return Cursor{Volley: session.VolleyCount - 1}
}
