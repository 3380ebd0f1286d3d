package format

import "github.com/pkg/errors"

var (
	// ErrInvalidInput marks time anomalies such as timestamps too far in the future.
	// Display helpers clamp instead of returning it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFormat marks labels that do not parse. Callers render the raw label.
	ErrFormat = errors.New("unrecognized format")
)
