package subtle

import "unicode"

// Class is the character class that selects the fourth digit rule.
type Class uint8

const (
	// ClassOther covers punctuation, symbols, whitespace, control characters
	// and numerics that are not decimal digits (e.g. '½', 'Ⅻ').
	ClassOther Class = iota
	// ClassNumeral is a Unicode decimal digit (category Nd).
	ClassNumeral
	// ClassUppercase is an uppercase letter.
	ClassUppercase
	// ClassLowercase is any other letter: lowercase, titlecase, modifier and
	// uncased letters.
	ClassLowercase
)

func (c Class) String() string {
	switch c {
	case ClassNumeral:
		return "numeral"
	case ClassUppercase:
		return "uppercase"
	case ClassLowercase:
		return "lowercase"
	default:
		return "other"
	}
}

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case unicode.IsDigit(r):
		return ClassNumeral
	case unicode.IsLetter(r):
		if unicode.IsUpper(r) {
			return ClassUppercase
		}
		return ClassLowercase
	default:
		return ClassOther
	}
}

// NumeralValue returns the decimal value of a Unicode decimal digit, so both
// '3' and '٣' yield 3. ok is false when r is not in category Nd.
func NumeralValue(r rune) (value int, ok bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	// Every Nd range in the Unicode tables is a run of complete 0..9 blocks,
	// so the offset from the range start gives the value.
	for _, rng := range unicode.Nd.R16 {
		if r < rune(rng.Lo) || r > rune(rng.Hi) {
			continue
		}
		if rng.Stride != 1 {
			return 0, false
		}
		return int(r-rune(rng.Lo)) % 10, true
	}
	for _, rng := range unicode.Nd.R32 {
		if r < rune(rng.Lo) || r > rune(rng.Hi) {
			continue
		}
		if rng.Stride != 1 {
			return 0, false
		}
		return int(r-rune(rng.Lo)) % 10, true
	}
	return 0, false
}
