package server

import "github.com/ayoisaiah/quiver/internal/apperr"

var (
	errReadBody = &apperr.Error{
		Message: "unable to read the request body",
	}

	errInvalidBody = &apperr.Error{
		Message: "the request body is not valid JSON",
	}

	errInvalidCompareTarget = &apperr.Error{
		Message: "unknown comparison target %q",
	}

	errInvalidCompareDistance = &apperr.Error{
		Message: "invalid comparison distance %q",
	}

	errListen = &apperr.Error{
		Message: "the server stopped unexpectedly",
	}

	errUnsupportedPlatform = &apperr.Error{
		Message: "opening a browser is not supported on %s",
	}
)
