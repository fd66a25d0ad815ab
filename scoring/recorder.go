package scoring

import (
	"sync"

	"github.com/ayoisaiah/quiver/internal/session"
)

// Recorder holds a live session and its cursor. Each scoring action is
// applied as one atomic step so that concurrent readers never observe a
// half-updated volley.
type Recorder struct {
	sess   session.Session
	cursor Cursor
	mu     sync.RWMutex
}

// NewRecorder returns a recorder for s positioned at its first open slot.
func NewRecorder(s *session.Session) *Recorder {
	return &Recorder{
		sess:   *s,
		cursor: FirstOpen(s),
	}
}

// Record applies in at the current cursor and returns the resulting snapshot.
func (r *Recorder) Record(in Input) (session.Session, Cursor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess, r.cursor = Apply(r.sess, r.cursor, in)

	return r.sess, r.cursor
}

// Clear removes the score under the cursor without moving it.
func (r *Recorder) Clear() session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.cursor.Clamp()
	v := &r.sess.Volleys[c.Volley]

	v.Arrows[c.Arrow] = nil
	v.Hits[c.Arrow] = nil
	v.Total = v.Sum()

	return r.sess
}

// SetCursor moves the cursor, clamping it to the valid range.
func (r *Recorder) SetCursor(c Cursor) Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cursor = c.Clamp()

	return r.cursor
}

// SetMeta replaces the descriptive fields of the session, keeping its scores.
func (r *Recorder) SetMeta(meta session.Meta) session.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess.Meta = meta

	return r.sess
}

// Snapshot returns a copy of the session and the current cursor.
func (r *Recorder) Snapshot() (session.Session, Cursor) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sess, r.cursor
}

// Complete reports whether every slot has been scored.
func (r *Recorder) Complete() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return IsComplete(&r.sess)
}

// Replace swaps the live session for s, recomputing its totals, and moves the
// cursor to the first open slot.
func (r *Recorder) Replace(s *session.Session) (session.Session, Cursor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess = s.Recompute()
	r.cursor = FirstOpen(&r.sess)

	return r.sess, r.cursor
}
