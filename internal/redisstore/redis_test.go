package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/selflab/internal/kvstore"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	addr := os.Getenv("SELFLAB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SELFLAB_TEST_REDIS_ADDR not set")
	}

	backend, err := New(context.Background(), Options{
		Addr:   addr,
		Prefix: "selflab-test-" + uuid.NewString() + ":",
	})
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestNew_RequiresAddr(t *testing.T) {
	_, err := New(context.Background(), Options{})
	require.Error(t, err)
}

func TestBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	backend := newTestBackend(t)

	_, err := backend.Get(ctx, kvstore.KeyWikiEntries)
	require.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, backend.Put(ctx, kvstore.KeyWikiEntries, []byte(`[{"id":"w1"}]`)))
	value, err := backend.Get(ctx, kvstore.KeyWikiEntries)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"w1"}]`, string(value))
}
