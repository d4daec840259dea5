package repo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/repo"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
	"github.com/santnier92/proyecto-gestion-viajes/testutil"
)

// newTripRepo returns a TripRepo backed by a fresh migrated SQLite database.
func newTripRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	store := storage.NewSQLiteStore(testutil.NewMigratedDB(t))
	return repo.NewTripRepo(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// tripFixture returns a trip owned by owner with a fresh id.
func tripFixture(t *testing.T, owner, title string) domain.Trip {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return domain.Trip{
		ID:          id,
		UserID:      owner,
		Title:       title,
		Destination: "Cusco",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTripRepo_List_Empty(t *testing.T) {
	r := newTripRepo(t)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripRepo_Add_RoundtripsAllFields(t *testing.T) {
	r := newTripRepo(t)
	ctx := context.Background()

	in := tripFixture(t, "ana@x.com", "Peru")
	require.NoError(t, r.Add(ctx, in))

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, in.ID, got[0].ID)
	assert.Equal(t, "ana@x.com", got[0].UserID)
	assert.Equal(t, "Peru", got[0].Title)
	assert.Equal(t, "Cusco", got[0].Destination)
	assert.True(t, got[0].StartDate.Equal(in.StartDate), "StartDate mismatch")
	assert.True(t, got[0].EndDate.Equal(in.EndDate), "EndDate mismatch")
}

func TestTripRepo_GetByID_Found(t *testing.T) {
	r := newTripRepo(t)
	ctx := context.Background()

	want := tripFixture(t, "ana@x.com", "Peru")
	require.NoError(t, r.Add(ctx, want))
	require.NoError(t, r.Add(ctx, tripFixture(t, "ana@x.com", "Chile")))

	got, err := r.GetByID(ctx, want.ID)

	require.NoError(t, err)
	assert.Equal(t, "Peru", got.Title)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTripRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestTripRepo_ListByUser verifies owner filtering: exactly the owner's
// trips come back, in insertion order, and nobody else's.
func TestTripRepo_ListByUser(t *testing.T) {
	r := newTripRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, tripFixture(t, "ana@x.com", "Peru")))
	require.NoError(t, r.Add(ctx, tripFixture(t, "bruno@x.com", "Italia")))
	require.NoError(t, r.Add(ctx, tripFixture(t, "ana@x.com", "Chile")))

	got, err := r.ListByUser(ctx, "ana@x.com")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Peru", got[0].Title)
	assert.Equal(t, "Chile", got[1].Title)
}

func TestTripRepo_ListByUser_NoTrips(t *testing.T) {
	r := newTripRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Add(ctx, tripFixture(t, "bruno@x.com", "Italia")))

	got, err := r.ListByUser(ctx, "ana@x.com")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
