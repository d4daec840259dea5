package storage_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
)

// entry is a minimal entity type for exercising the collection codec.
type entry struct {
	Name string `json:"name"`
}

func newEntries(store storage.Store) storage.Collection[entry] {
	return storage.NewCollection[entry](store, "entries", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCollection_Read_AbsentKey(t *testing.T) {
	c := newEntries(storage.NewMemoryStore())

	got, err := c.Read(context.Background())

	require.NoError(t, err)
	// An empty slice, not nil — callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestCollection_Read_CorruptValue verifies the parse-failure contract:
// undecodable data degrades to an empty collection and never surfaces as an
// error to the caller.
func TestCollection_Read_CorruptValue(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "entries", []byte(`{not json`)))

	got, err := newEntries(store).Read(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection_Read_WrongShape(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	// Valid JSON, but an object where an array is expected.
	require.NoError(t, store.Set(ctx, "entries", []byte(`{"name":"Ana"}`)))

	got, err := newEntries(store).Read(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollection_WriteRead_PreservesOrder(t *testing.T) {
	c := newEntries(storage.NewMemoryStore())
	ctx := context.Background()

	in := []entry{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	require.NoError(t, c.Write(ctx, in))

	got, err := c.Read(ctx)

	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCollection_Append(t *testing.T) {
	c := newEntries(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, c.Append(ctx, entry{Name: "a"}))
	require.NoError(t, c.Append(ctx, entry{Name: "b"}))

	got, err := c.Read(ctx)

	require.NoError(t, err)
	assert.Equal(t, []entry{{Name: "a"}, {Name: "b"}}, got)
}

// TestCollection_Append_AfterCorruption documents the data-loss trade-off:
// appending over a corrupt value starts from the recovered empty collection
// rather than failing.
func TestCollection_Append_AfterCorruption(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "entries", []byte(`garbage`)))

	c := newEntries(store)
	require.NoError(t, c.Append(ctx, entry{Name: "fresh"}))

	got, err := c.Read(ctx)

	require.NoError(t, err)
	assert.Equal(t, []entry{{Name: "fresh"}}, got)
}
