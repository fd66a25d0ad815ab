package scoring

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
)

type fakeSaver struct {
	saved []session.Session
	err   error
	done  chan struct{}
	mu    sync.Mutex
}

func (f *fakeSaver) Save(s *session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.saved = append(f.saved, *s)

	if f.done != nil {
		f.done <- struct{}{}
	}

	return nil
}

func (f *fakeSaver) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.saved)
}

func TestAutosaveDebounces(t *testing.T) {
	saver := &fakeSaver{done: make(chan struct{}, 4)}
	a := NewAutosave(saver, 20*time.Millisecond, nil)

	s := session.Session{ID: "abc"}
	c := Cursor{}

	for i := 0; i < 5; i++ {
		s, c = RecordScore(s, c, 9, nil)
		a.Schedule(&s)
	}

	select {
	case <-saver.done:
	case <-time.After(2 * time.Second):
		t.Fatal("autosave did not fire")
	}

	time.Sleep(50 * time.Millisecond)

	if n := saver.count(); n != 1 {
		t.Fatalf("expected exactly one save, got %d", n)
	}

	if saver.saved[0].ArrowCount() != 5 {
		t.Errorf("expected the latest snapshot to be saved, got %d arrows", saver.saved[0].ArrowCount())
	}
}

func TestAutosaveFlush(t *testing.T) {
	saver := &fakeSaver{}
	a := NewAutosave(saver, time.Hour, nil)

	a.Schedule(&session.Session{ID: "abc", Meta: session.Meta{Name: "first"}})
	a.Schedule(&session.Session{ID: "abc", Meta: session.Meta{Name: "second"}})

	if !a.Pending() {
		t.Fatal("expected a pending snapshot")
	}

	if err := a.Flush(); err != nil {
		t.Fatal(err)
	}

	if saver.count() != 1 || saver.saved[0].Name != "second" {
		t.Errorf("expected the latest snapshot to be flushed, got %+v", saver.saved)
	}

	if err := a.Flush(); err != nil || saver.count() != 1 {
		t.Error("expected a second flush to be a no-op")
	}
}

func TestAutosaveSkipsDrafts(t *testing.T) {
	saver := &fakeSaver{}
	a := NewAutosave(saver, time.Hour, nil)

	a.Schedule(&session.Session{})

	if a.Pending() {
		t.Error("a session without an id must not be scheduled")
	}
}

func TestAutosaveReportsErrors(t *testing.T) {
	errDisk := errors.New("disk full")
	saver := &fakeSaver{err: errDisk}

	var reported error

	a := NewAutosave(saver, time.Hour, func(err error) {
		reported = err
	})

	a.Schedule(&session.Session{ID: "abc"})

	if err := a.Flush(); !errors.Is(err, errDisk) {
		t.Fatalf("expected flush to return the save error, got %v", err)
	}

	if !errors.Is(reported, errDisk) {
		t.Errorf("expected error callback to be invoked, got %v", reported)
	}
}

func TestAutosaveStop(t *testing.T) {
	saver := &fakeSaver{}
	a := NewAutosave(saver, time.Hour, nil)

	a.Schedule(&session.Session{ID: "abc"})
	a.Stop()

	if err := a.Flush(); err != nil || saver.count() != 0 {
		t.Error("expected stopped autosave to discard the snapshot")
	}
}

func TestAutosaveIgnoresStaleTimers(t *testing.T) {
	saver := &fakeSaver{}
	a := NewAutosave(saver, time.Hour, nil)

	a.Schedule(&session.Session{ID: "abc", Meta: session.Meta{Name: "first"}})
	stale := a.gen

	a.Schedule(&session.Session{ID: "abc", Meta: session.Meta{Name: "second"}})

	if err := a.flush(stale, false); err != nil {
		t.Fatal(err)
	}

	if saver.count() != 0 || !a.Pending() {
		t.Fatal("a superseded timer must not save before the quiet period ends")
	}

	if err := a.flush(a.gen, false); err != nil {
		t.Fatal(err)
	}

	if saver.count() != 1 || saver.saved[0].Name != "second" {
		t.Errorf("expected the latest snapshot to be saved, got %+v", saver.saved)
	}
}

func TestAutosaveContinuesAfterFailure(t *testing.T) {
	errDisk := errors.New("disk full")
	saver := &fakeSaver{err: errDisk, done: make(chan struct{}, 4)}

	failures := make(chan error, 4)

	a := NewAutosave(saver, 10*time.Millisecond, func(err error) {
		failures <- err
	})

	s := session.Session{ID: "abc"}
	c := Cursor{}

	s, c = RecordScore(s, c, 9, nil)
	a.Schedule(&s)

	select {
	case err := <-failures:
		if !errors.Is(err, errDisk) {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("failed save was not reported")
	}

	// Scoring is unaffected by the failed save.
	s, _ = RecordScore(s, c, 8, nil)

	if s.ArrowCount() != 2 || s.Volleys[0].Total != 17 {
		t.Fatalf("scoring did not continue after a failed save: %+v", s.Volleys[0])
	}

	saver.mu.Lock()
	saver.err = nil
	saver.mu.Unlock()

	a.Schedule(&s)

	select {
	case <-saver.done:
	case <-time.After(2 * time.Second):
		t.Fatal("autosave did not resume after a failure")
	}

	if saver.count() != 1 || saver.saved[0].ArrowCount() != 2 {
		t.Errorf("expected the newest snapshot to be saved, got %+v", saver.saved)
	}
}
