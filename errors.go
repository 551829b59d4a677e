package numseq

import "errors"

var (
	// ErrNegativeRounds is returned for a negative round count.
	ErrNegativeRounds = errors.New("rounds must not be negative")

	// ErrTooManyRounds is returned for a round count above MaxRounds.
	ErrTooManyRounds = errors.New("too many rounds")

	// ErrInvalidUTF8 is returned by strict encoders for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

	// ErrInvalidWorkers is returned for a worker count below one.
	ErrInvalidWorkers = errors.New("workers must be at least 1")
)
