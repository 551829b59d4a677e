package tinknumseq

import (
	"fmt"
	"io"

	"github.com/google/tink/go/keyset"
)

// WriteKeyset writes handle to w as a JSON keyset.
// Numeric sequence keys carry no secret material, so no AEAD is needed.
func WriteKeyset(handle *keyset.Handle, w io.Writer) error {
	if handle == nil {
		return fmt.Errorf("keyset handle cannot be nil")
	}
	if err := handle.WriteWithNoSecrets(keyset.NewJSONWriter(w)); err != nil {
		return fmt.Errorf("failed to write keyset: %w", err)
	}
	return nil
}

// ReadKeyset reads a JSON keyset written by WriteKeyset.
func ReadKeyset(r io.Reader) (*keyset.Handle, error) {
	handle, err := keyset.ReadWithNoSecrets(keyset.NewJSONReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read keyset: %w", err)
	}
	return handle, nil
}
