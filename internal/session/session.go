// Package session defines archery scoring sessions
package session

import (
	"math"
	"strings"
	"time"
)

const (
	// VolleyCount is the number of volleys (ends) in every session.
	VolleyCount = 20
	// ArrowsPerVolley is the number of arrow slots in every volley.
	ArrowsPerVolley = 3
	// HalfVolleys is the index of the first volley of the second half.
	HalfVolleys = VolleyCount / 2
	// MaxScore is the highest score a single arrow can be awarded.
	MaxScore = 10
)

// Kind represents the session type.
type Kind string

const (
	Training    Kind = "Training"
	Competition Kind = "Competition"
)

// Environment represents where the session was shot.
type Environment string

const (
	Indoor  Environment = "Indoor"
	Outdoor Environment = "Outdoor"
)

// TargetType represents the target face used for a session.
type TargetType string

const (
	Trispot   TargetType = "Trispot"
	Face40cm  TargetType = "40cm"
	Face60cm  TargetType = "60cm"
	Face120cm TargetType = "120cm"
)

var (
	Kinds        = []Kind{Training, Competition}
	Environments = []Environment{Indoor, Outdoor}
	TargetTypes  = []TargetType{Trispot, Face40cm, Face60cm, Face120cm}
	Distances    = []int{18, 25, 30, 50, 70, 90}
)

// legacyKinds maps the labels used by older records to their current kind.
var legacyKinds = map[string]Kind{
	"allenamento":  Training,
	"competizione": Competition,
	"gara":         Competition,
}

// Hit is the point of impact of an arrow. X and Y are normalized to the
// target face ([0,1] each, x to the right, y downwards) and are nil when the
// score was entered without spatial data.
type Hit struct {
	X   *float64 `json:"x"`
	Y   *float64 `json:"y"`
	IsX bool     `json:"isX"`
}

// HasCoords reports whether the hit carries a finite coordinate pair.
func (h *Hit) HasCoords() bool {
	return h != nil && isFinitePtr(h.X) && isFinitePtr(h.Y)
}

// At returns a spatial hit.
func At(x, y float64, isX bool) *Hit {
	return &Hit{X: &x, Y: &y, IsX: isX}
}

// XOnly returns an inner-ten hit without coordinates.
func XOnly() *Hit {
	return &Hit{IsX: true}
}

// Volley is a group of three consecutive arrows. A nil entry in Arrows means
// the arrow has not been shot yet.
type Volley struct {
	Arrows [ArrowsPerVolley]*int `json:"arrows"`
	Hits   [ArrowsPerVolley]*Hit `json:"hits"`
	Total  int                   `json:"total"`
}

// Sum returns the sum of the scored arrows in the volley.
func (v *Volley) Sum() int {
	var total int

	for _, a := range v.Arrows {
		if a != nil {
			total += *a
		}
	}

	return total
}

// Scored returns the number of arrows that have been shot in the volley.
func (v *Volley) Scored() int {
	var n int

	for _, a := range v.Arrows {
		if a != nil {
			n++
		}
	}

	return n
}

// Meta holds the descriptive fields of a session.
type Meta struct {
	Date        time.Time   `json:"date"`
	Name        string      `json:"name"`
	Kind        Kind        `json:"kind"`
	Environment Environment `json:"environment"`
	TargetType  TargetType  `json:"targetType"`
	Distance    int         `json:"distance"`
}

// Session is a single archery session. It always owns exactly VolleyCount
// volleys in shooting order.
type Session struct {
	ID string `json:"id,omitempty"`
	Meta
	Volleys [VolleyCount]Volley `json:"volleys"`
}

// New returns an empty session described by meta.
func New(meta Meta) Session {
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	if strings.TrimSpace(meta.Name) == "" {
		meta.Name = DefaultName(meta.Date, meta.Kind)
	}

	return Session{Meta: meta}
}

// DefaultName is the label given to sessions created without one.
func DefaultName(date time.Time, kind Kind) string {
	label := date.Format("02 Jan 2006")

	if kind == "" {
		return label
	}

	return label + " - " + string(kind)
}

// TotalScore returns the sum of all volley totals.
func (s *Session) TotalScore() int {
	var total int

	for i := range s.Volleys {
		total += s.Volleys[i].Total
	}

	return total
}

// ArrowCount returns the number of arrows shot in the session.
func (s *Session) ArrowCount() int {
	var n int

	for i := range s.Volleys {
		n += s.Volleys[i].Scored()
	}

	return n
}

// IsTrispot reports whether the session was shot on a three-spot face.
func (s *Session) IsTrispot() bool {
	return s.TargetType == Trispot
}

// Recompute returns a copy of the session with every volley total
// recalculated and the slot invariants re-applied.
func (s Session) Recompute() Session {
	for i := range s.Volleys {
		s.Volleys[i] = fixVolley(s.Volleys[i])
		s.Volleys[i].Total = s.Volleys[i].Sum()
	}

	return s
}

// fixVolley enforces the per-slot invariants: an unscored slot has no hit and
// only a ten may be flagged as an inner ten.
func fixVolley(v Volley) Volley {
	for i := range v.Arrows {
		a := v.Arrows[i]
		if a != nil {
			score := ClampScore(*a)
			a = &score
			v.Arrows[i] = a
		}

		h := v.Hits[i]

		if a == nil || h == nil {
			v.Hits[i] = nil
			continue
		}

		fixed := Hit{IsX: h.IsX && *a == MaxScore}

		if h.HasCoords() {
			x, y := *h.X, *h.Y
			fixed.X, fixed.Y = &x, &y
		}

		if fixed.X == nil && !fixed.IsX {
			v.Hits[i] = nil
			continue
		}

		v.Hits[i] = &fixed
	}

	return v
}

// ClampScore restricts a score to the valid 0-10 range.
func ClampScore(score int) int {
	return max(0, min(MaxScore, score))
}

// ParseKind returns the kind matching s. Legacy labels are accepted and the
// match is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	key := strings.ToLower(strings.TrimSpace(s))

	for _, k := range Kinds {
		if strings.ToLower(string(k)) == key {
			return k, true
		}
	}

	k, ok := legacyKinds[key]

	return k, ok
}

// ParseEnvironment returns the environment matching s case-insensitively.
func ParseEnvironment(s string) (Environment, bool) {
	key := strings.ToLower(strings.TrimSpace(s))

	for _, e := range Environments {
		if strings.ToLower(string(e)) == key {
			return e, true
		}
	}

	return "", false
}

// ParseTargetType returns the target type matching s, ignoring case and
// whitespace so that "40 cm" matches "40cm".
func ParseTargetType(s string) (TargetType, bool) {
	key := CompactLower(s)

	for _, t := range TargetTypes {
		if CompactLower(string(t)) == key {
			return t, true
		}
	}

	return "", false
}

// ParseDistance extracts the distance in metres from s, ignoring any
// character that is not a digit. It returns 0 when no digit is present.
func ParseDistance(s string) int {
	var n int

	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}

		n = n*10 + int(r-'0')
		if n > math.MaxInt32 {
			return 0
		}
	}

	return n
}

// CompactLower lowercases s and strips every whitespace character.
func CompactLower(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func isFinitePtr(f *float64) bool {
	return f != nil && !math.IsNaN(*f) && !math.IsInf(*f, 0)
}
