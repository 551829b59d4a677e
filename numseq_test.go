package numseq

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/unicode/norm"
)

func TestEncode_ReferenceExamples(t *testing.T) {
	require.Equal(t, "589711161388", Encode("Dog"))
	require.Equal(t, "97720134911991191116", Encode("Hello"))
	require.Equal(t, "", Encode(""))
}

func TestEncode_Length(t *testing.T) {
	testCases := []string{
		"",
		"a",
		"123-45-6789",
		"user@domain.com",
		"héllo wörld",
		"日本語のテキスト",
		"emoji 😀 mixed",
		strings.Repeat("xyz", 100),
	}

	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			out := Encode(text)
			require.Len(t, out, 4*utf8.RuneCountInString(text))
			for _, ch := range out {
				require.True(t, ch >= '0' && ch <= '9', "non-digit %q in %q", ch, out)
			}
		})
	}
}

func TestEncode_PerCharacter(t *testing.T) {
	text := "Go 2 Fast?"
	out := Encode(text)

	i := 0
	for _, r := range text {
		require.Equal(t, EncodeRune(r).String(), out[i*4:i*4+4], "rune %q", r)
		i++
	}
}

func TestEncode_InvalidUTF8(t *testing.T) {
	invalid := "a\xffb"
	want := Encode("a") + EncodeRune(utf8.RuneError).String() + Encode("b")
	require.Equal(t, want, Encode(invalid))

	enc, err := New()
	require.NoError(t, err)
	got, err := enc.Encode(invalid)
	require.NoError(t, err)
	require.Equal(t, want, got)

	strict, err := New(WithStrictUTF8())
	require.NoError(t, err)
	_, err = strict.Encode(invalid)
	require.ErrorIs(t, err, ErrInvalidUTF8)

	got, err = strict.Encode("valid")
	require.NoError(t, err)
	require.Equal(t, Encode("valid"), got)
}

func TestEncodeRounds(t *testing.T) {
	out, err := EncodeRounds("Dog", 0)
	require.NoError(t, err)
	require.Equal(t, "Dog", out)

	out, err = EncodeRounds("Dog", 1)
	require.NoError(t, err)
	require.Equal(t, Encode("Dog"), out)

	out, err = EncodeRounds("Dog", 2)
	require.NoError(t, err)
	require.Equal(t, Encode(Encode("Dog")), out)
	require.Len(t, out, 4*4*3)

	_, err = EncodeRounds("Dog", -1)
	require.ErrorIs(t, err, ErrNegativeRounds)

	_, err = EncodeRounds("Dog", MaxRounds+1)
	require.ErrorIs(t, err, ErrTooManyRounds)
}

func TestNew_Defaults(t *testing.T) {
	enc, err := New()
	require.NoError(t, err)
	require.Equal(t, DefaultRounds, enc.Rounds())

	out, err := enc.Encode("Hello")
	require.NoError(t, err)
	require.Equal(t, "97720134911991191116", out)
}

func TestNew_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		opt  Option
		want error
	}{
		{"negative rounds", WithRounds(-2), ErrNegativeRounds},
		{"too many rounds", WithRounds(MaxRounds + 1), ErrTooManyRounds},
		{"zero workers", WithParallelism(0), ErrInvalidWorkers},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := New(tc.opt)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, enc)
		})
	}
}

func TestEncoder_ZeroRounds(t *testing.T) {
	enc, err := New(WithRounds(0))
	require.NoError(t, err)

	out, err := enc.Encode("unchanged")
	require.NoError(t, err)
	require.Equal(t, "unchanged", out)
}

func TestEncoder_Normalization(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	require.NotEqual(t, Encode(composed), Encode(decomposed))

	nfc, err := New(WithNormalization(norm.NFC))
	require.NoError(t, err)

	a, err := nfc.Encode(composed)
	require.NoError(t, err)
	b, err := nfc.Encode(decomposed)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, Encode(composed), a)

	nfd, err := New(WithNormalization(norm.NFD))
	require.NoError(t, err)
	c, err := nfd.Encode(composed)
	require.NoError(t, err)
	require.Equal(t, Encode(decomposed), c)
}

func TestEncoder_ParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		sb.WriteRune(rune('!' + i%2000))
	}
	text := sb.String()

	for _, workers := range []int{2, 3, 8, 64} {
		enc, err := New(WithParallelism(workers))
		require.NoError(t, err)
		enc.parallelThreshold = 16

		got, err := enc.Encode(text)
		require.NoError(t, err)
		require.Equal(t, Encode(text), got, "workers=%d", workers)
	}
}

func TestEncoder_ParallelBelowThreshold(t *testing.T) {
	enc, err := New(WithParallelism(4))
	require.NoError(t, err)

	got, err := enc.Encode("Dog")
	require.NoError(t, err)
	require.Equal(t, "589711161388", got)
}

func TestEncoder_CanceledContext(t *testing.T) {
	enc, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = enc.EncodeContext(ctx, "Dog")
	require.ErrorIs(t, err, context.Canceled)
}

func TestEncoder_Logger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	enc, err := New(WithLogger(zap.New(core)), WithRounds(2))
	require.NoError(t, err)

	_, err = enc.Encode("Dog")
	require.NoError(t, err)

	entries := logs.FilterMessage("encoded numeric sequence").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.EqualValues(t, 2, fields["rounds"])
	require.EqualValues(t, 48, fields["output_digits"])

	_, err = New(WithLogger(nil))
	require.NoError(t, err)
}

func TestEncoder_Deterministic(t *testing.T) {
	enc, err := New(WithRounds(2))
	require.NoError(t, err)

	first, err := enc.Encode("123-45-6789")
	require.NoError(t, err)
	second, err := enc.Encode("123-45-6789")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncoder_Concurrent(t *testing.T) {
	enc, err := New(WithParallelism(2))
	require.NoError(t, err)

	inputs := []string{"Dog", "Hello", "user@domain.com", "4532-1234-5678-9010"}
	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			got, err := enc.Encode(text)
			if err == nil && got != Encode(text) {
				err = fmt.Errorf("concurrent encode of %q = %q", text, got)
			}
			errs <- err
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, "uppercase", Classify('D').String())
	require.Equal(t, "lowercase", Classify('o').String())
	require.Equal(t, "numeral", Classify('2').String())
	require.Equal(t, "other", Classify('?').String())
}
