package store

import "github.com/ayoisaiah/quiver/internal/apperr"

var (
	errQuiverRunning = &apperr.Error{
		Message: "is quiver already running? Only one instance can access the database at a time",
	}

	errSessionNotFound = &apperr.Error{
		Message: "session %q not found",
	}

	errSessionExists = &apperr.Error{
		Message: "a session with id %q already exists",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the session database",
	}

	errSaveSession = &apperr.Error{
		Message: "unable to save session %q",
	}

	errMigrate = &apperr.Error{
		Message: "unable to upgrade the session database",
	}
)

// ErrSessionNotFound is returned when a session id does not exist.
var ErrSessionNotFound = errSessionNotFound
