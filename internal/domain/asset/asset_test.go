package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset_Valid(t *testing.T) {
	a, err := NewAsset(1, "hero.png", "websites/1/hero.png", "image/png", 1.5)

	require.NoError(t, err)
	assert.Equal(t, "hero.png", a.Filename())
	assert.Equal(t, 1.5, a.SizeMB())
}

func TestNewAsset_Invalid(t *testing.T) {
	_, err := NewAsset(0, "f.png", "k", "image/png", 1)
	assert.Error(t, err)

	_, err = NewAsset(1, " ", "k", "image/png", 1)
	assert.Error(t, err)

	_, err = NewAsset(1, "f.png", "", "image/png", 1)
	assert.Error(t, err)

	_, err = NewAsset(1, "f.png", "k", "image/png", 0)
	assert.Error(t, err)
}

func TestSetID_OnlyOnce(t *testing.T) {
	a, err := NewAsset(1, "hero.png", "k", "image/png", 1)
	require.NoError(t, err)

	require.NoError(t, a.SetID(9))
	assert.Equal(t, uint(9), a.ID())
	assert.Error(t, a.SetID(10))
}
