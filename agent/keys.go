package agent

import (
	"fmt"
	"os"
	"sync/atomic"
)

// KeyManager hands out the configured Gemini API keys in rotation. Each call
// to GetNextKey returns the next key; a caller constructing one client per
// process only ever consumes the first.
type KeyManager struct {
	keys    []string
	current uint32
}

// NewKeyManager loads GEMINI_API_KEY_1..4 from the environment, falling back
// to the plain GEMINI_API_KEY when no numbered keys are set.
func NewKeyManager() *KeyManager {
	keys := make([]string, 0, 4)
	for i := 1; i <= 4; i++ {
		if key := os.Getenv(fmt.Sprintf("GEMINI_API_KEY_%d", i)); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			keys = append(keys, key)
		}
	}
	return &KeyManager{keys: keys}
}

// GetNextKey returns the next API key in rotation, or "" when none are set.
func (km *KeyManager) GetNextKey() string {
	if len(km.keys) == 0 {
		return ""
	}
	current := atomic.AddUint32(&km.current, 1)
	return km.keys[(current-1)%uint32(len(km.keys))]
}
