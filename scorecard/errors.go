package scorecard

import "github.com/ayoisaiah/quiver/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse the scoring.cmd option %q",
	}

	errRunCmd = &apperr.Error{
		Message: "the completion command failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to send the completion notification",
	}
)
