package numseq

import (
	"context"

	"github.com/vdparikh/numseq/subtle"
	"golang.org/x/sync/errgroup"
)

// appendSequence appends the four digits of every rune of s to dst, in input order.
// Invalid UTF-8 bytes are encoded as utf8.RuneError.
func appendSequence(dst []byte, s string) []byte {
	for _, r := range s {
		dst = subtle.EncodeRune(r).AppendTo(dst)
	}
	return dst
}

// fillSequence writes the digits of runes into dst, which must hold exactly
// four bytes per rune.
func fillSequence(dst []byte, runes []rune) {
	for i, r := range runes {
		subtle.EncodeRune(r).AppendTo(dst[i*4 : i*4])
	}
}

// encodeOnce runs one round. Large inputs are split into contiguous chunks that
// are encoded concurrently into disjoint parts of the output buffer, so the
// result is identical to the sequential path.
func (e *Encoder) encodeOnce(ctx context.Context, text string) (string, error) {
	if e.workers <= 1 || len(text) < e.parallelThreshold {
		return string(appendSequence(make([]byte, 0, 4*len(text)), text)), nil
	}

	runes := []rune(text)
	n := len(runes)
	if n < e.parallelThreshold {
		return string(appendSequence(make([]byte, 0, 4*n), text)), nil
	}

	out := make([]byte, 4*n)
	chunk := (n + e.workers - 1) / e.workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillSequence(out[start*4:end*4], runes[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return string(out), nil
}
