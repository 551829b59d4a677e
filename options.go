package numseq

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Option configures an Encoder.
type Option interface{ apply(*Encoder) error }

type optFunc func(*Encoder) error

func (f optFunc) apply(e *Encoder) error { return f(e) }

// WithRounds sets how many times Encode applies the transform to its own output.
// Zero makes Encode the identity; the maximum is MaxRounds.
func WithRounds(n int) Option {
	return optFunc(func(e *Encoder) error {
		if err := validateRounds(n); err != nil {
			return err
		}
		e.rounds = n
		return nil
	})
}

// WithNormalization normalizes input to form before encoding, so that
// canonically equivalent strings produce the same sequence.
func WithNormalization(form norm.Form) Option {
	return optFunc(func(e *Encoder) error {
		e.normalize = true
		e.form = form
		return nil
	})
}

// WithStrictUTF8 makes Encode fail with ErrInvalidUTF8 instead of encoding
// invalid bytes as U+FFFD.
func WithStrictUTF8() Option {
	return optFunc(func(e *Encoder) error {
		e.strictUTF8 = true
		return nil
	})
}

// WithParallelism encodes large inputs on up to workers goroutines.
func WithParallelism(workers int) Option {
	return optFunc(func(e *Encoder) error {
		if workers < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
		}
		e.workers = workers
		return nil
	})
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return optFunc(func(e *Encoder) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		e.logger = logger
		return nil
	})
}
