package domain

import "errors"

var (
	// ErrInvalidMode is returned when a conversion request carries a mode other
	// than fix or convert.
	ErrInvalidMode = errors.New("invalid conversion mode")

	// ErrUnknownLanguage is returned by ParseLanguage for unrecognized tags.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)
