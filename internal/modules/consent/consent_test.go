package consent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamRoundTrip(t *testing.T) {
	p := Preferences{
		Necessary: true,
		Analytics: true,
		Marketing: false,
		Timestamp: time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	param, err := EncodeParam(p)
	require.NoError(t, err)
	assert.NotContains(t, param, "=")

	got, err := DecodeParam(param)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecodeParamRejectsGarbage(t *testing.T) {
	for _, param := range []string{"not base64!!", "bm90IGpzb24", ""} {
		_, err := DecodeParam(param)
		assert.Error(t, err, "param %q", param)
	}
}

func TestStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.False(t, ok)

	p := Preferences{Necessary: true, Analytics: true, Timestamp: time.Now().UTC()}
	require.NoError(t, store.Save(ctx, "visitor-1", p))

	got, ok, err := store.Get(ctx, "visitor-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, p, got)

	// Preferences are per visitor.
	_, ok, err = store.Get(ctx, "visitor-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
