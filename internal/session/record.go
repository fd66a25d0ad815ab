package session

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is the lenient wire representation of a session. Decoding a Record
// does not fail because of unexpected field types: values that cannot be
// understood are left unset and filled in by Normalize.
type Record struct {
	ID          Text            `json:"id"`
	LegacyID    Text            `json:"_id"`
	Date        Text            `json:"date"`
	Name        Text            `json:"name"`
	Kind        Text            `json:"kind"`
	Environment Text            `json:"environment"`
	TargetType  Text            `json:"targetType"`
	Distance    Text            `json:"distance"`
	Volleys     List[RecVolley] `json:"volleys"`
}

// RecVolley is the wire representation of a volley.
type RecVolley struct {
	Arrows List[Slot]    `json:"arrows"`
	Hits   List[*RecHit] `json:"hits"`
	Total  Number        `json:"total"`
}

// RecHit is the wire representation of a hit. Older records store the
// coordinates as xNorm and yNorm.
type RecHit struct {
	X     Number `json:"x"`
	Y     Number `json:"y"`
	XNorm Number `json:"xNorm"`
	YNorm Number `json:"yNorm"`
	IsX   Flag   `json:"isX"`
}

// DecodeRecord parses a stored session. Invalid JSON yields an empty record.
func DecodeRecord(b []byte) Record {
	var r Record

	if err := json.Unmarshal(b, &r); err != nil {
		return Record{}
	}

	return r
}

// Text is a string that also accepts numbers and legacy object ids.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if json.Unmarshal(b, &s) == nil {
			*t = Text(strings.TrimSpace(s))
		}
	case '{':
		var oid struct {
			OID string `json:"$oid"`
		}

		if json.Unmarshal(b, &oid) == nil {
			*t = Text(oid.OID)
		}
	default:
		var f float64
		if json.Unmarshal(b, &f) == nil {
			*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}

	return nil
}

// Number is an optional finite number. Numeric strings are accepted.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a valid Number.
func Num(f float64) Number {
	return Number{Value: f, Valid: !math.IsNaN(f) && !math.IsInf(f, 0)}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}

	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	var f float64

	if err := json.Unmarshal(b, &f); err == nil {
		*n = Num(f)
		return nil
	}

	var s string

	if err := json.Unmarshal(b, &s); err == nil {
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			*n = Num(f)
		}
	}

	return nil
}

func (n Number) ptr() *float64 {
	if !n.Valid {
		return nil
	}

	v := n.Value

	return &v
}

// Slot is the wire representation of a single arrow score. Besides numbers it
// understands the legacy "X" (inner ten) and "M" (miss) markers.
type Slot struct {
	Score int
	Valid bool
	IsX   bool
}

// Scored returns a valid slot holding score.
func Scored(score int) Slot {
	return Slot{Score: ClampScore(score), Valid: true}
}

func (s *Slot) UnmarshalJSON(b []byte) error {
	*s = Slot{}

	var n Number

	_ = n.UnmarshalJSON(b)
	if n.Valid {
		*s = Scored(int(math.Round(n.Value)))
		return nil
	}

	var str string

	if json.Unmarshal(b, &str) != nil {
		return nil
	}

	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "X":
		*s = Slot{Score: MaxScore, Valid: true, IsX: true}
	case "M":
		*s = Scored(0)
	}

	return nil
}

// Flag is a boolean that is true only for a literal JSON true.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag(bytes.Equal(bytes.TrimSpace(b), []byte("true")))
	return nil
}

// List is a JSON array that tolerates non-array values and undecodable
// elements. A non-array decodes to an empty list and a bad element decodes to
// the zero value of T.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil

	var raw []json.RawMessage

	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	out := make(List[T], len(raw))

	for i := range raw {
		var v T
		if err := json.Unmarshal(raw[i], &v); err == nil {
			out[i] = v
		}
	}

	*l = out

	return nil
}

// Record returns the canonical wire form of the session.
func (s Session) Record() Record {
	r := Record{
		ID:          Text(s.ID),
		Name:        Text(s.Name),
		Kind:        Text(s.Kind),
		Environment: Text(s.Environment),
		TargetType:  Text(s.TargetType),
		Distance:    Text(strconv.Itoa(s.Distance)),
		Volleys:     make(List[RecVolley], len(s.Volleys)),
	}

	if !s.Date.IsZero() {
		r.Date = Text(s.Date.Format(dateLayout))
	}

	for i := range s.Volleys {
		v := &s.Volleys[i]

		rv := RecVolley{
			Arrows: make(List[Slot], ArrowsPerVolley),
			Hits:   make(List[*RecHit], ArrowsPerVolley),
			Total:  Num(float64(v.Total)),
		}

		for k := range v.Arrows {
			if v.Arrows[k] != nil {
				rv.Arrows[k] = Scored(*v.Arrows[k])
			}

			if h := v.Hits[k]; h != nil {
				rh := &RecHit{IsX: Flag(h.IsX)}

				if h.HasCoords() {
					rh.X, rh.Y = Num(*h.X), Num(*h.Y)
				}

				rv.Hits[k] = rh
			}
		}

		r.Volleys[i] = rv
	}

	return r
}
