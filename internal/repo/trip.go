package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
)

// TripRepo defines the persistence operations for Trips.
// Trips are append-only; there is no update or delete.
type TripRepo interface {
	// List returns all trips in insertion order, regardless of owner.
	List(ctx context.Context) ([]domain.Trip, error)

	// GetByID returns the trip with the given id, searching the whole
	// collection. Returns domain.ErrNotFound if no trip has that id.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListByUser returns the trips owned by the given user email, in
	// insertion order.
	ListByUser(ctx context.Context, email string) ([]domain.Trip, error)

	// Add appends a trip to the collection.
	Add(ctx context.Context, trip domain.Trip) error
}

// kvTripRepo stores trips as one JSON array under the "trips" key.
type kvTripRepo struct {
	trips storage.Collection[domain.Trip]
}

// NewTripRepo constructs a TripRepo backed by the given durable store.
func NewTripRepo(store storage.Store, log *slog.Logger) TripRepo {
	return &kvTripRepo{
		trips: storage.NewCollection[domain.Trip](store, storage.KeyTrips, log),
	}
}

func (r *kvTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := r.trips.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

func (r *kvTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trips, err := r.trips.Read(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
}

func (r *kvTripRepo) ListByUser(ctx context.Context, email string) ([]domain.Trip, error) {
	trips, err := r.trips.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}

	owned := []domain.Trip{}
	for _, t := range trips {
		if t.UserID == email {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (r *kvTripRepo) Add(ctx context.Context, trip domain.Trip) error {
	if err := r.trips.Append(ctx, trip); err != nil {
		return fmt.Errorf("repo.TripRepo.Add: %w", err)
	}
	return nil
}
