package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/santnier92/proyecto-gestion-viajes/internal/domain"
)

// Collection is a typed view of one store key holding a JSON array of T.
// It is the serialization boundary between the raw Store and the repos:
// shape is validated on read, and an undecodable value degrades to an empty
// collection instead of an error surfacing to callers.
type Collection[T any] struct {
	store Store
	key   string
	log   *slog.Logger
}

// NewCollection binds a collection of T to a store key.
func NewCollection[T any](store Store, key string, log *slog.Logger) Collection[T] {
	return Collection[T]{store: store, key: key, log: log}
}

// Read returns every item in the collection in insertion order.
// An absent key yields an empty slice. A value that cannot be decoded as a
// JSON array of T also yields an empty slice — the corruption is logged at
// warn, and domain.ErrStorageParse stays inside this method. The returned
// slice is never nil. Only store I/O failures produce an error.
func (c Collection[T]) Read(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("storage.Collection.Read %q: %w", c.key, err)
	}

	items, err := decodeItems[T](raw)
	if err != nil {
		c.log.WarnContext(ctx, "discarding unparsable collection",
			"key", c.key,
			"error", err,
		)
		return []T{}, nil
	}
	return items, nil
}

// Write replaces the whole collection with items.
func (c Collection[T]) Write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("storage.Collection.Write %q: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("storage.Collection.Write %q: %w", c.key, err)
	}
	return nil
}

// Append reads the collection, appends item, and writes it back.
// With a single in-process writer this is atomic from the caller's point of
// view; concurrent processes would be last-writer-wins.
func (c Collection[T]) Append(ctx context.Context, item T) error {
	items, err := c.Read(ctx)
	if err != nil {
		return err
	}
	return c.Write(ctx, append(items, item))
}

// decodeItems unmarshals a stored JSON array, tagging failures with
// domain.ErrStorageParse so Read can recognize and swallow them.
func decodeItems[T any](raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageParse, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
