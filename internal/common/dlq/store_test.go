package dlq_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-au/go-remit/internal/common/dlq"
	"github.com/clearpath-au/go-remit/internal/common/log"
	"github.com/clearpath-au/go-remit/internal/models"
)

func init() {
	log.InitForTest()
}

func newStore(t *testing.T) dlq.Store {
	t.Helper()

	store, err := dlq.NewBadgerStore("go-remit-dlq-test-"+uuid.NewString(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func sampleEntry(key string) models.DeadLetterEntry {
	return models.DeadLetterEntry{
		Provider: "simulator",
		Request: models.PayoutRequest{
			ABN:            "12345678901",
			TaxType:        "GST",
			PeriodID:       "2025-09",
			AmountCents:    -12345,
			Rail:           models.RailBPAY,
			IdempotencyKey: key,
		},
		Error:     "connection reset",
		Timestamp: time.Now().UTC(),
	}
}

func TestBadgerStore_PushAndList(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	id, err := store.Push(ctx, sampleEntry("key-1"))
	require.NoError(t, err)
	assert.Contains(t, id, "simulator")

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "key-1", entries[0].Request.IdempotencyKey)
	assert.Equal(t, "connection reset", entries[0].Error)
}

func TestBadgerStore_ConcurrentPushesGetUniqueIDs(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := store.Push(ctx, sampleEntry(fmt.Sprintf("key-%d", i)))
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate dlq id %s", id)
		seen[id] = true
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}

func TestBadgerStore_Delete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	id, err := store.Push(ctx, sampleEntry("key-del"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBadgerStore_CauseErrBecomesErrorString(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	entry := sampleEntry("key-cause")
	entry.Error = ""
	entry.CauseErr = assert.AnError

	_, err := store.Push(ctx, entry)
	require.NoError(t, err)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, assert.AnError.Error(), entries[0].Error)
}
