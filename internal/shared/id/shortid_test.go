package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{1, 8, 12, 32} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)

	got, err = Generate(-5)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)

	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixPayment, 12)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "pay_"))
	assert.Len(t, got, len("pay_")+12)
}

func TestGenerateAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "hm_"))
	assert.Len(t, key, len("hm_")+APIKeyLength)
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("wh_abc123", PrefixWebhook))
	assert.False(t, HasPrefix("pay_abc123", PrefixWebhook))
	assert.False(t, HasPrefix("whabc123", PrefixWebhook))
}
