// Package testutil provides fixtures shared by quiver tests
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/store"
)

// Fixed date used by fixtures so that test output is stable.
var Date = time.Date(2025, 3, 8, 18, 0, 0, 0, time.UTC)

// Session returns a session described by meta whose volleys hold the given
// scores in order. Hits, when provided, are matched to scores by position.
func Session(meta session.Meta, scores []int, hits ...*session.Hit) session.Session {
	if meta.Date.IsZero() {
		meta.Date = Date
	}

	s := session.New(meta)

	for i, score := range scores {
		if i >= session.VolleyCount*session.ArrowsPerVolley {
			break
		}

		v, k := i/session.ArrowsPerVolley, i%session.ArrowsPerVolley

		sc := score
		s.Volleys[v].Arrows[k] = &sc

		if i < len(hits) {
			s.Volleys[v].Hits[k] = hits[i]
		}
	}

	return s.Recompute()
}

// Repeat returns n copies of score.
func Repeat(score, n int) []int {
	out := make([]int, n)

	for i := range out {
		out[i] = score
	}

	return out
}

// Full returns a complete session where every arrow scores score.
func Full(meta session.Meta, score int) session.Session {
	return Session(meta, Repeat(score, session.VolleyCount*session.ArrowsPerVolley))
}

// DB opens a temporary database that is closed when the test ends.
func DB(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "quiver.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}
