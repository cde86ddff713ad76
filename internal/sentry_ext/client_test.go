package sentry_ext

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledClientIsSafe(t *testing.T) {
	c := New(Params{Disabled: true})

	c.CaptureException(errors.New("boom"), map[string]string{"k": "v"})
	c.CaptureMessage("hello", nil)

	assert.True(t, c.Flush(time.Millisecond))
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client

	c.CaptureException(errors.New("boom"), nil)
	c.CaptureMessage("hello", nil)

	assert.True(t, c.Flush(time.Millisecond))
}

func TestCacheMutesRepeats(t *testing.T) {
	recent, err := newCache(0)
	require.NoError(t, err)

	first := errors.New("same message")
	second := errors.New("same message")
	other := errors.New("different message")

	assert.True(t, recent.shouldCapture(first))
	assert.False(t, recent.shouldCapture(second), "repeat within the window must be muted")
	assert.True(t, recent.shouldCapture(other))
}

func TestCacheExpiresOldEntries(t *testing.T) {
	recent, err := newCache(0)
	require.NoError(t, err)

	stale := errors.New("stale")
	require.True(t, recent.shouldCapture(stale))

	// Age the entry past the repeat window.
	keys := recent.Keys()
	require.Len(t, keys, 1)
	recent.Add(keys[0], time.Now().Add(-repeatWindow-time.Second))

	assert.True(t, recent.shouldCapture(stale))
}
