package config

import "github.com/ayoisaiah/ecofocus/internal/apperr"

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

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes, got %d",
	}

	errUnknownStorage = &apperr.Error{
		Message: "unknown storage backend %q (must be bolt or sqlite)",
	}

	errInvalidVolume = &apperr.Error{
		Message: "default volume must be between 0 and 1, got %v",
	}

	errInvalidHoldFrames = &apperr.Error{
		Message: "arcade hold frames must be at least 1, got %d",
	}

	errUnknownAmbientSound = &apperr.Error{
		Message: "unknown ambient sound: %s",
	}
)
