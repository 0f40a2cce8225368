package model

import "errors"

var (
	ErrUnsupportedLanguage   = errors.New("language not supported")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrInvalidRecommendation = errors.New("recommendation must be yes, no or absolutely")
	ErrMalformedSelection    = errors.New("malformed selection")
	ErrMissingConfig         = errors.New("environment variable not set")
)
