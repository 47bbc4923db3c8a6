package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	gen, err := New("")
	require.NoError(t, err)
	require.IsType(t, UUID{}, gen)

	gen, err = New(SchemeULID)
	require.NoError(t, err)
	require.IsType(t, &ULID{}, gen)

	_, err = New("snowflake")
	require.Error(t, err)
}

func TestUUID_Format(t *testing.T) {
	id := UUID{}.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())
}

func TestULID_UniqueAndOrdered(t *testing.T) {
	gen := NewULID()
	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}
		require.Greater(t, id, prev)
		prev = id
	}
}

