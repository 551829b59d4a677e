// Package numseq implements numeric sequence encoding: a deterministic transform
// that turns every character of a string into four decimal digits.
//
// Each digit is derived from the character's code point by a chain of
// digit-sum rules (see the subtle package). The encoded string is the
// concatenation of the per-character digits, so its length is always four
// times the number of characters in the input.
//
// The transform is an obfuscation, not a cipher. It has no key, it is not
// reversible and it gives no security guarantee.
//
// Example usage:
//
//	digest := numseq.Encode("Dog")
//	// digest == "589711161388"
//
//	enc, err := numseq.New(numseq.WithRounds(2), numseq.WithNormalization(norm.NFC))
//	if err != nil {
//		log.Fatal(err)
//	}
//	digest, err = enc.Encode("Hello")
//	if err != nil {
//		log.Fatal(err)
//	}
package numseq

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/vdparikh/numseq/subtle"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultRounds is the number of encoding rounds of an Encoder built without WithRounds.
	DefaultRounds = 1

	// MaxRounds bounds multi-round encoding. Every round multiplies the output
	// length by four.
	MaxRounds = 8

	// defaultParallelThreshold is the smallest input, in runes, that is split
	// across workers when parallelism is enabled.
	defaultParallelThreshold = 4096
)

// Digits is one encoded character.
type Digits = subtle.Digits

// Class is the character class used by the fourth digit rule.
type Class = subtle.Class

// Encoder encodes strings into numeric sequences.
// An Encoder is immutable after New and safe for concurrent use.
type Encoder struct {
	rounds            int
	normalize         bool
	form              norm.Form
	strictUTF8        bool
	workers           int
	parallelThreshold int
	logger            *zap.Logger
}

// New creates an Encoder configured by opts.
func New(opts ...Option) (*Encoder, error) {
	e := &Encoder{
		rounds:            DefaultRounds,
		workers:           1,
		parallelThreshold: defaultParallelThreshold,
		logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt.apply(e); err != nil {
			return nil, fmt.Errorf("invalid encoder option: %w", err)
		}
	}
	return e, nil
}

// Rounds returns the number of times Encode applies the transform.
func (e *Encoder) Rounds() int {
	return e.rounds
}

// Encode returns the numeric sequence of text after the configured number of rounds.
func (e *Encoder) Encode(text string) (string, error) {
	return e.EncodeContext(context.Background(), text)
}

// EncodeContext is Encode with cancellation. The context is only consulted
// between rounds and between parallel chunks.
func (e *Encoder) EncodeContext(ctx context.Context, text string) (string, error) {
	if e.strictUTF8 && !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	if e.normalize {
		text = e.form.String(text)
	}

	out := text
	for round := 0; round < e.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		encoded, err := e.encodeOnce(ctx, out)
		if err != nil {
			return "", fmt.Errorf("failed to encode round %d: %w", round+1, err)
		}
		out = encoded
	}

	e.logger.Debug("encoded numeric sequence",
		zap.Int("input_bytes", len(text)),
		zap.Int("output_digits", len(out)),
		zap.Int("rounds", e.rounds),
	)
	return out, nil
}

// Encode returns the single-round numeric sequence of text.
// Encode("Dog") is "589711161388" and Encode("") is "".
func Encode(text string) string {
	return string(appendSequence(make([]byte, 0, 4*utf8.RuneCountInString(text)), text))
}

// EncodeRounds applies Encode n times, each round encoding the digits produced
// by the previous one. Zero rounds return text unchanged.
func EncodeRounds(text string, n int) (string, error) {
	if err := validateRounds(n); err != nil {
		return "", err
	}
	for i := 0; i < n; i++ {
		text = Encode(text)
	}
	return text, nil
}

// EncodeRune returns the four digits of a single rune.
func EncodeRune(r rune) Digits {
	return subtle.EncodeRune(r)
}

// Classify returns the character class of r.
func Classify(r rune) Class {
	return subtle.Classify(r)
}

func validateRounds(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRounds, n)
	}
	if n > MaxRounds {
		return fmt.Errorf("%w: %d (maximum %d)", ErrTooManyRounds, n, MaxRounds)
	}
	return nil
}

// Verify that Encoder implements Sequencer
var _ Sequencer = (*Encoder)(nil)
