// Package repo contains the data access layer: typed repositories over the
// key-value storage collections. No business logic lives here — only reads,
// scans, and appends.
package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
)

// UserRepo defines the persistence operations for Users.
// The router depends on this interface, not the concrete implementation,
// which allows its tests to swap in a failing double.
type UserRepo interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)

	// FindByEmail returns the first user whose email matches exactly
	// (case-sensitive). Returns domain.ErrNotFound if no user matches.
	FindByEmail(ctx context.Context, email string) (domain.User, error)

	// Add appends a user to the collection. It does NOT enforce email
	// uniqueness — the registration handler must check FindByEmail first.
	Add(ctx context.Context, user domain.User) error
}

// kvUserRepo stores users as one JSON array under the "users" key.
type kvUserRepo struct {
	users storage.Collection[domain.User]
}

// NewUserRepo constructs a UserRepo backed by the given durable store.
func NewUserRepo(store storage.Store, log *slog.Logger) UserRepo {
	return &kvUserRepo{
		users: storage.NewCollection[domain.User](store, storage.KeyUsers, log),
	}
}

func (r *kvUserRepo) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.users.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	return users, nil
}

// FindByEmail does a linear scan and stops at the first match. The
// collection is small by construction; an index would be over-engineering.
func (r *kvUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	users, err := r.users.Read(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.FindByEmail: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("repo.UserRepo.FindByEmail: %w", domain.ErrNotFound)
}

func (r *kvUserRepo) Add(ctx context.Context, user domain.User) error {
	if err := r.users.Append(ctx, user); err != nil {
		return fmt.Errorf("repo.UserRepo.Add: %w", err)
	}
	return nil
}
