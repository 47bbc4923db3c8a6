package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	_, err = backend.Get(ctx, KeyExperiments)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, backend.Put(ctx, KeyExperiments, []byte(`[]`)))
	require.NoError(t, backend.Put(ctx, KeyExperiments, []byte(`[{"id":"e1"}]`)))

	data, err := backend.Get(ctx, KeyExperiments)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"e1"}]`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	require.Equal(t, KeyExperiments+".json", entries[0].Name())
}

func TestFileBackend_RejectsPathKeys(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		require.Error(t, backend.Put(context.Background(), key, []byte(`[]`)), key)
	}
}

func TestFileBackend_StoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, New(backend, nil).Write(ctx, KeyDailyLogs, []item{{ID: "l1"}}))

	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)
	var got []item
	require.True(t, New(reopened, nil).Read(ctx, KeyDailyLogs, &got))
	require.Equal(t, []item{{ID: "l1"}}, got)
}
