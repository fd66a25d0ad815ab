package scoring

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
)

// DefaultAutosaveDelay is the quiet period after the last mutation before a
// session is persisted.
const DefaultAutosaveDelay = 500 * time.Millisecond

// Saver persists a session.
type Saver interface {
	Save(s *session.Session) error
}

// SaveFunc adapts a function to the Saver interface.
type SaveFunc func(s *session.Session) error

func (f SaveFunc) Save(s *session.Session) error {
	return f(s)
}

// Autosave debounces session writes: every Schedule call restarts the timer
// and only the latest snapshot is written once the delay has elapsed. Saves
// run one at a time in the order the snapshots were taken.
type Autosave struct {
	saver   Saver
	timer   *time.Timer
	pending *session.Session
	onError func(error)
	delay   time.Duration

	// gen identifies the latest Schedule call. A timer callback only
	// flushes while its generation is still current.
	gen    uint64
	mu     sync.Mutex
	saveMu sync.Mutex
}

// NewAutosave returns a debouncer writing through saver. A non-positive delay
// selects DefaultAutosaveDelay. onError, if set, is called when a save fails.
func NewAutosave(
	saver Saver,
	delay time.Duration,
	onError func(error),
) *Autosave {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}

	return &Autosave{
		saver:   saver,
		delay:   delay,
		onError: onError,
	}
}

// Schedule queues s for saving. Sessions without an id are drafts that have
// not been created in the store yet and are ignored.
func (a *Autosave) Schedule(s *session.Session) {
	if s.ID == "" {
		return
	}

	snapshot := *s

	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = &snapshot
	a.gen++

	if a.timer != nil {
		a.timer.Stop()
	}

	gen := a.gen

	a.timer = time.AfterFunc(a.delay, func() {
		_ = a.flush(gen, false)
	})
}

// Pending reports whether a snapshot is waiting to be saved.
func (a *Autosave) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.pending != nil
}

// Flush saves the pending snapshot immediately, if there is one.
func (a *Autosave) Flush() error {
	return a.flush(0, true)
}

// flush saves the pending snapshot. Unless force is set, nothing happens
// when gen is no longer the latest generation.
func (a *Autosave) flush(gen uint64, force bool) error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	a.mu.Lock()

	if !force && gen != a.gen {
		a.mu.Unlock()
		return nil
	}

	s := a.pending
	a.pending = nil

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	a.mu.Unlock()

	if s == nil {
		return nil
	}

	err := a.saver.Save(s)
	if err != nil {
		slog.Error("autosave failed",
			slog.String("session_id", s.ID),
			slog.Any("error", err),
		)

		if a.onError != nil {
			a.onError(err)
		}

		return err
	}

	slog.Debug("session autosaved", slog.String("session_id", s.ID))

	return nil
}

// Stop discards the pending snapshot without saving it.
func (a *Autosave) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	a.gen++
	a.pending = nil
}
