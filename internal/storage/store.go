// Package storage implements the key-value persistence layer.
//
// Two stores exist: a durable one backed by SQLite (survives restarts) and a
// volatile in-memory one (lives as long as the process). Both expose the same
// Store interface, so the session manager and the repos do not care which
// they were handed. Values are whole JSON documents; a collection is always
// read in full and rewritten in full — there are no partial updates and no
// transactions across keys.
package storage

import (
	"context"
	"errors"
)

// Fixed keys used by the application. Collections live in the durable store,
// the session and the cross-view handoff in the volatile store.
const (
	KeyUsers          = "users"
	KeyTrips          = "trips"
	KeyCurrentUser    = "currentUser"
	KeySelectedTripID = "selectedTripId"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// (or has been deleted).
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal key-value store over raw bytes.
// Implementations must be safe for use from a single goroutine; the
// application processes one event at a time and never writes concurrently.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
