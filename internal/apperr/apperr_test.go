package apperr

import (
	"errors"
	"io/fs"
	"testing"
)

var errSample = &Error{
	Message: "session not found",
}

func TestWrapMatchesSentinel(t *testing.T) {
	err := errSample.Wrap(fs.ErrNotExist)

	if !errors.Is(err, errSample) {
		t.Fatalf("expected wrapped error to match sentinel")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped error to expose its cause")
	}

	want := "session not found: file does not exist"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestFmt(t *testing.T) {
	tmpl := &Error{Message: "unknown kind: %s"}

	err := tmpl.Fmt("Sparring")

	if err.Error() != "unknown kind: Sparring" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	if tmpl.Message != "unknown kind: %s" {
		t.Errorf("Fmt must not mutate the template")
	}

	if !errors.Is(err.Wrap(fs.ErrPermission), tmpl) {
		t.Errorf("expected formatted error to match its template")
	}
}
