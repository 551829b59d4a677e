// This file contains the factory function for creating numeric sequence primitives from Tink keyset handles.

package tinknumseq

import (
	"fmt"

	"github.com/google/tink/go/keyset"
	"github.com/vdparikh/numseq"
)

// New creates a numeric sequence primitive from a Tink keyset handle.
// The KeyManager must be registered (see Register).
//
// Example:
//
//	if err := tinknumseq.Register(); err != nil {
//	    return err
//	}
//	handle, err := keyset.NewHandle(tinknumseq.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	primitive, err := tinknumseq.New(handle)
//	if err != nil {
//	    return err
//	}
//	digits, err := primitive.Encode("Dog")
func New(handle *keyset.Handle) (numseq.Sequencer, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}

	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}

	seq, ok := primary.Primitive.(numseq.Sequencer)
	if !ok {
		return nil, fmt.Errorf("primary key %d is not a numeric sequence key", primary.KeyID)
	}
	return seq, nil
}
