package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyManagerRotation(t *testing.T) {
	t.Setenv("GEMINI_API_KEY_1", "key-one")
	t.Setenv("GEMINI_API_KEY_2", "key-two")
	t.Setenv("GEMINI_API_KEY_3", "")
	t.Setenv("GEMINI_API_KEY_4", "")

	km := NewKeyManager()
	assert.Equal(t, "key-one", km.GetNextKey())
	assert.Equal(t, "key-two", km.GetNextKey())
	assert.Equal(t, "key-one", km.GetNextKey())
}

func TestKeyManagerFallsBackToUnnumberedKey(t *testing.T) {
	for _, name := range []string{"GEMINI_API_KEY_1", "GEMINI_API_KEY_2", "GEMINI_API_KEY_3", "GEMINI_API_KEY_4"} {
		t.Setenv(name, "")
	}
	t.Setenv("GEMINI_API_KEY", "plain-key")

	km := NewKeyManager()
	assert.Equal(t, "plain-key", km.GetNextKey())
}

func TestKeyManagerNoKeys(t *testing.T) {
	for _, name := range []string{"GEMINI_API_KEY", "GEMINI_API_KEY_1", "GEMINI_API_KEY_2", "GEMINI_API_KEY_3", "GEMINI_API_KEY_4"} {
		t.Setenv(name, "")
	}

	assert.Empty(t, NewKeyManager().GetNextKey())
}
