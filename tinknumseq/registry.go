package tinknumseq

import (
	"sync"

	"github.com/google/tink/go/core/registry"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register registers the KeyManager with Tink's global registry.
// It is safe to call multiple times and from multiple goroutines.
func Register() error {
	registerOnce.Do(func() {
		// Tink has no "is registered" query besides looking the manager up.
		if _, err := registry.GetKeyManager(TypeURL); err == nil {
			return
		}
		registerErr = registry.RegisterKeyManager(NewKeyManager())
	})
	return registerErr
}
