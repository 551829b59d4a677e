// This file defines the Sequencer primitive interface for Tink integration.
// For Tink integration, see the tinknumseq package.

package numseq

// Sequencer is a Tink-style primitive for numeric sequence encoding.
// It is deterministic: the same input and parameters always give the same output.
// There is no inverse operation.
type Sequencer interface {
	// Encode returns the numeric sequence of text. The result holds only the
	// characters '0' to '9'.
	Encode(text string) (string, error)
}
