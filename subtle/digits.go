package subtle

// DigitSum returns the digital root of n: its decimal digits are summed, and the
// sum is summed again until a single digit remains. DigitSum(0) is 0 and
// negative values also yield 0.
func DigitSum(n int) int {
	if n < 0 {
		return 0
	}
	for n > 9 {
		sum := 0
		for ; n > 0; n /= 10 {
			sum += n % 10
		}
		n = sum
	}
	return n
}

// DecimalDigitCount returns the number of digits in the base-10 representation of n.
// Zero is written "0" and therefore has one digit.
func DecimalDigitCount(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// AverageDigits returns DigitSum(n) divided by the digit count of n, truncated.
// AverageDigits(0) is 0.
func AverageDigits(n int) int {
	return DigitSum(n) / DecimalDigitCount(n)
}

// LastDigit returns the least significant decimal digit of n.
func LastDigit(n int) int {
	if n < 0 {
		n = -n
	}
	return n % 10
}
