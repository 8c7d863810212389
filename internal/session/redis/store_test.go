package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/asha-actions/internal/session"
)

// Needs a reachable Redis; point ASHA_TEST_REDIS_ADDR at one to run.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	addr := os.Getenv("ASHA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ASHA_TEST_REDIS_ADDR not set")
	}
	store, err := New(context.Background(), Options{
		Addr:   addr,
		TTL:    time.Minute,
		Prefix: "asha:test:" + uuid.NewString() + ":",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRoundTripKeepsPausedSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	state := session.New("abc")
	state.ActiveForm = "job_search_form"
	state.SetSlot("location", "Delhi")
	state.SetSlot(session.PausedSlot, state.Snapshot())
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "job_search_form", loaded.ActiveForm)
	assert.Equal(t, "Delhi", loaded.SlotString("location"))

	snap, ok, err := loaded.Paused()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "job_search_form", snap.ActiveForm)
	assert.Equal(t, "Delhi", snap.Slots["location"])
}

func TestLoadMissingAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	fresh, err := store.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, fresh.Slots)

	state := session.New("gone")
	state.SetSlot("x", "y")
	require.NoError(t, store.Save(ctx, state))
	require.NoError(t, store.Delete(ctx, "gone"))

	loaded, err := store.Load(ctx, "gone")
	require.NoError(t, err)
	assert.Empty(t, loaded.Slots)
}

func TestEmptyIDRejected(t *testing.T) {
	t.Parallel()

	store := NewWithClient(nil, time.Minute, "")
	_, err := store.Load(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrEmptyID)
	assert.ErrorIs(t, store.Save(context.Background(), nil), session.ErrEmptyID)
}
