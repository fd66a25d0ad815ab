package scoring

import "github.com/ayoisaiah/quiver/internal/apperr"

var (
	errInvalidInput = &apperr.Error{
		Message: "invalid score %q: expected 0-10, X or M, optionally followed by @x,y",
	}

	errInvalidCoords = &apperr.Error{
		Message: "invalid hit coordinates %q: x and y must be between 0 and 1",
	}
)
