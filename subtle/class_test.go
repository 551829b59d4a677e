package subtle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		r    rune
		want Class
	}{
		{'0', ClassNumeral},
		{'9', ClassNumeral},
		{'٣', ClassNumeral},
		{'A', ClassUppercase},
		{'Ä', ClassUppercase},
		{'a', ClassLowercase},
		{'é', ClassLowercase},
		{'ǅ', ClassLowercase},
		{'中', ClassLowercase},
		{'½', ClassOther},
		{'Ⅻ', ClassOther},
		{'}', ClassOther},
		{' ', ClassOther},
		{'\n', ClassOther},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, Classify(tc.r), "Classify(%q)", tc.r)
	}
}

func TestClass_String(t *testing.T) {
	require.Equal(t, "numeral", ClassNumeral.String())
	require.Equal(t, "uppercase", ClassUppercase.String())
	require.Equal(t, "lowercase", ClassLowercase.String())
	require.Equal(t, "other", ClassOther.String())
}

func TestNumeralValue(t *testing.T) {
	testCases := []struct {
		name string
		r    rune
		want int
	}{
		{"ascii zero", '0', 0},
		{"ascii nine", '9', 9},
		{"arabic-indic three", '٣', 3},
		{"devanagari seven", '७', 7},
		{"fullwidth four", '４', 4},
		{"mathematical bold nine", '\U0001D7D7', 9},
		{"mathematical monospace zero", '\U0001D7F6', 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := NumeralValue(tc.r)
			require.True(t, ok)
			require.Equal(t, tc.want, v)
		})
	}

	for _, r := range []rune{'a', '½', 'Ⅻ', '²'} {
		_, ok := NumeralValue(r)
		require.False(t, ok, "NumeralValue(%q)", r)
	}
}

func TestNumeralValue_AllDecimalDigits(t *testing.T) {
	for r := rune(0); r <= 0x1FFFF; r++ {
		if Classify(r) != ClassNumeral {
			continue
		}
		v, ok := NumeralValue(r)
		require.True(t, ok, "%U", r)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 9)
	}
}
