package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/clearpath-au/go-remit/internal/common/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedOutcome struct {
	Status string `json:"status"`
	Ref    string `json:"ref"`
}

func TestInMemoryClient_SetGet(t *testing.T) {
	t.Parallel()

	c := cache.NewInMemoryClient[cachedOutcome]()
	defer c.Close()

	ctx := context.Background()
	want := cachedOutcome{Status: "ACCEPTED", Ref: "SIM-001"}

	require.NoError(t, c.Set(ctx, "idm:abc", want, time.Minute))

	got, err := c.Get(ctx, "idm:abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInMemoryClient_MissAndExpiry(t *testing.T) {
	t.Parallel()

	c := cache.NewInMemoryClient[cachedOutcome]()
	defer c.Close()

	ctx := context.Background()

	_, err := c.Get(ctx, "unknown")
	assert.ErrorIs(t, err, cache.ErrNotExists)

	require.NoError(t, c.Set(ctx, "short", cachedOutcome{Status: "PENDING"}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err = c.Get(ctx, "short")
	assert.ErrorIs(t, err, cache.ErrNotExists)
}

func TestInMemoryClient_GetOrSet(t *testing.T) {
	t.Parallel()

	c := cache.NewInMemoryClient[string]()
	defer c.Close()

	ctx := context.Background()

	var calls int
	opts := cache.GetOrSetOpts[string]{
		Key: "k",
		TTL: time.Minute,
		Callback: func() (string, error) {
			calls++
			return "value", nil
		},
	}

	got, err := c.GetOrSet(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	got, err = c.GetOrSet(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrSet(ctx, cache.GetOrSetOpts[string]{Key: "nocb"})
	assert.ErrorIs(t, err, cache.ErrCallbackNotProvided)
}
