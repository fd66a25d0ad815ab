package app

import "github.com/ayoisaiah/quiver/internal/apperr"

var (
	errNoSessions = &apperr.Error{
		Message: "no sessions have been recorded yet. Start one with 'quiver new'",
	}

	errMissingID = &apperr.Error{
		Message: "please provide the id of a session",
	}

	errNothingToDelete = &apperr.Error{
		Message: "provide session ids or at least one filter to select the sessions to delete",
	}

	errInvalidVolley = &apperr.Error{
		Message: "volley must be between 1 and %d, got %d",
	}

	errInvalidUnit = &apperr.Error{
		Message: "unknown unit %q (expected normalized or mm)",
	}

	errUnknownSort = &apperr.Error{
		Message: "unknown sort order %q (expected date, name or total)",
	}
)
