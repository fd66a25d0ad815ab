package store

import (
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
)

// Query restricts the sessions returned by Find. Zero fields match every
// session.
type Query struct {
	From        time.Time
	To          time.Time
	Kind        session.Kind
	Environment session.Environment
	TargetType  session.TargetType
	Distance    int
}

// DB is the database storage interface.
type DB interface {
	// List returns every saved session ordered by date
	List() ([]session.Session, error)
	// Find returns the saved sessions matching q ordered by date
	Find(q *Query) ([]session.Session, error)
	// Create saves a new session and assigns its id
	Create(sess *session.Session) error
	// Get retrieves a single session
	Get(id string) (*session.Session, error)
	// Update overwrites an existing session
	Update(id string, sess *session.Session) error
	// Delete removes one or more sessions
	Delete(ids ...string) error
	// Close ends the database connection
	Close() error
}

// Match reports whether s satisfies q.
func (q *Query) Match(s *session.Session) bool {
	if q == nil {
		return true
	}

	if !q.From.IsZero() && s.Date.Before(q.From) {
		return false
	}

	if !q.To.IsZero() && s.Date.After(q.To) {
		return false
	}

	if q.Kind != "" && s.Kind != q.Kind {
		return false
	}

	if q.Environment != "" && s.Environment != q.Environment {
		return false
	}

	if q.TargetType != "" &&
		session.CompactLower(string(s.TargetType)) !=
			session.CompactLower(string(q.TargetType)) {
		return false
	}

	if q.Distance != 0 && s.Distance != q.Distance {
		return false
	}

	return true
}
