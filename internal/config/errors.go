package config

import "github.com/ayoisaiah/quiver/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidAutosaveDelay = &apperr.Error{
		Message: "autosave delay must be between %v and %v, got %v",
	}

	errInvalidDistance = &apperr.Error{
		Message: "%s distance must be between 1 and %d metres, got %d",
	}

	errUnknownKind = &apperr.Error{
		Message: "unknown session kind %q (expected Training or Competition)",
	}

	errUnknownEnvironment = &apperr.Error{
		Message: "unknown environment %q (expected Indoor or Outdoor)",
	}

	errUnknownTarget = &apperr.Error{
		Message: "unknown target type %q (expected Trispot, 40cm, 60cm or 120cm)",
	}

	errInvalidPort = &apperr.Error{
		Message: "server port must be between 1 and 65535, got %d",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "unknown time period %q",
	}

	errInvalidDate = &apperr.Error{
		Message: "could not understand the date %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}
)
