// Package subtle provides the low-level digit primitives behind numeric sequence encoding.
// It works on raw code points and single runes; string handling lives in the parent package.
package subtle

const (
	// ThirdDigitOffset is added to the operands of the third digit rule when the
	// first two digits are equal and their difference from the digit sum is not
	// a digit in 1..9.
	ThirdDigitOffset = 13

	// FourthDigitOffset is added to (numerals, uppercase letters) or multiplied
	// with (other letters) the operand of the fourth digit rule.
	FourthDigitOffset = 2
)

// Digits is one encoded character: four decimal digits in output order.
type Digits [4]uint8

// String renders the four digits as decimal characters.
func (d Digits) String() string {
	return string(d.AppendTo(make([]byte, 0, len(d))))
}

// AppendTo appends the decimal characters of d to dst.
func (d Digits) AppendTo(dst []byte) []byte {
	return append(dst, '0'+d[0], '0'+d[1], '0'+d[2], '0'+d[3])
}

// FirstDigit returns the digit sum of an even code point and the digit
// average of an odd one.
func FirstDigit(c int) int {
	if c%2 == 0 {
		return DigitSum(c)
	}
	return AverageDigits(c)
}

// SecondDigit thresholds on the digit sum of c: above 7 it reduces c with its
// last digit removed, otherwise it returns the last digit.
func SecondDigit(c int) int {
	last := LastDigit(c)
	if DigitSum(c) > 7 {
		return DigitSum(c - last)
	}
	return last
}

// ThirdDigit mixes the code point with the first two digits.
func ThirdDigit(c, d1, d2 int) int {
	switch {
	case d1 > d2:
		return DigitSum(DigitSum(d1) + DigitSum(d2))
	case d1 < d2:
		return DigitSum(DigitSum(c) + DigitSum(d1) + DigitSum(d2))
	}

	if r := DigitSum(c) - d1 - d2; r > 0 && r < 10 {
		return r
	}
	return DigitSum(DigitSum(c) + DigitSum(d1) + DigitSum(d2) + ThirdDigitOffset)
}

// FourthDigit depends on the class of r rather than on its code point alone.
func FourthDigit(r rune) int {
	c := int(r)
	switch Classify(r) {
	case ClassNumeral:
		v, _ := NumeralValue(r)
		return DigitSum(v + FourthDigitOffset)
	case ClassUppercase:
		return DigitSum(c + FourthDigitOffset)
	case ClassLowercase:
		return DigitSum(c * FourthDigitOffset)
	default:
		return DigitSum(c)
	}
}

// EncodeRune computes the four digits of r. Every rule result is reduced with
// DigitSum again, so each digit is in 0..9 even if a rule returns more.
func EncodeRune(r rune) Digits {
	c := int(r)
	if c < 0 {
		c = 0
	}

	d1 := DigitSum(FirstDigit(c))
	d2 := DigitSum(SecondDigit(c))
	d3 := DigitSum(ThirdDigit(c, d1, d2))
	d4 := DigitSum(FourthDigit(r))

	return Digits{uint8(d1), uint8(d2), uint8(d3), uint8(d4)}
}
