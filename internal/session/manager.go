// Package session manages the current authenticated user.
//
// The session is a single record in the volatile store, so it disappears
// when the process ends — logging in is for one run of the application only.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
	"github.com/santnier92/proyecto-gestion-viajes/internal/storage"
)

// Manager reads and writes the current-user record. It is the only writer of
// that record, and the sole input to the router's auth guard.
type Manager struct {
	store storage.Store
	log   *slog.Logger
}

// NewManager constructs a Manager over the given volatile store.
func NewManager(store storage.Store, log *slog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Current returns the active session.
// Returns domain.ErrNoSession when no user is logged in. An unreadable
// stored record is treated the same way — a corrupt session means logged
// out, never a crash.
func (m *Manager) Current(ctx context.Context) (domain.Session, error) {
	raw, err := m.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("session.Manager.Current: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		m.log.WarnContext(ctx, "discarding unreadable session record", "error", err)
		return domain.Session{}, domain.ErrNoSession
	}
	return s, nil
}

// Login establishes a session for the user. Only the name/email projection
// is stored; the password never reaches the session record.
func (m *Manager) Login(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(domain.NewSession(user))
	if err != nil {
		return fmt.Errorf("session.Manager.Login: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("session.Manager.Login: %w", err)
	}
	return nil
}

// Logout clears the session. Logging out with no session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("session.Manager.Logout: %w", err)
	}
	return nil
}
