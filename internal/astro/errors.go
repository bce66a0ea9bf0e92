package astro

import "errors"

var (
	// ErrUnsupportedVarga is returned for divisors outside the classical set.
	ErrUnsupportedVarga = errors.New("unsupported varga divisor")

	// ErrEmptyInput is returned when a chart or birth record is missing.
	ErrEmptyInput = errors.New("empty input")
)
