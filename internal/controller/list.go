// Package controller holds the per-screen list state machine shared by every
// entity screen: an in-memory ordered copy of one backend collection plus the
// add/edit/remove policies that reconcile it.
package controller

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Ops binds a List to one entity's backend operations. T is the entity type,
// P the payload type its create/update calls accept (a JSON map or a
// multipart form, depending on the entity).
type Ops[T any, P any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, payload P) error
	Update func(ctx context.Context, id string, payload P) error
	Delete func(ctx context.Context, id string) error
	// ID extracts the backend-assigned identifier of an item.
	ID func(item T) string
}

// List owns the cached, possibly-stale copy of one entity collection.
//
// Creates and edits always refetch afterwards: the server assigns ids and may
// transform the payload, so a local append would drift. Deletes are
// optimistic: the item disappears immediately and only a rejected delete
// triggers a refetch to restore authoritative state. That asymmetry is
// intentional.
type List[T any, P any] struct {
	name string
	ops  Ops[T, P]

	mu      sync.Mutex
	items   []T
	loading bool
	err     error
	seq     uint64
}

// NewList constructs an empty controller. name labels log entries.
func NewList[T any, P any](name string, ops Ops[T, P]) *List[T, P] {
	return &List[T, P]{name: name, ops: ops}
}

// Refresh replaces the cached items wholesale with the backend's current
// list. Safe to call repeatedly and concurrently: each call takes a sequence
// stamp and a response that is no longer the newest in flight is discarded,
// so an older call can never overwrite a newer one's result.
func (l *List[T, P]) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.loading = true
	l.mu.Unlock()

	items, err := l.ops.List(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		// A newer refresh started after this one; its result wins.
		log.Debug().Str("list", l.name).Msg("discarding stale refresh response")
		return nil
	}
	l.loading = false
	if err != nil {
		l.err = err
		log.Error().Err(err).Str("list", l.name).Msg("list refresh failed")
		return err
	}
	l.items = items
	l.err = nil
	return nil
}

// Add creates a new item and refetches the list so the server-assigned id and
// any server-derived fields land in local state.
func (l *List[T, P]) Add(ctx context.Context, payload P) error {
	if err := l.ops.Create(ctx, payload); err != nil {
		log.Error().Err(err).Str("list", l.name).Msg("create failed")
		return err
	}
	return l.Refresh(ctx)
}

// Edit updates an existing item and refetches the list.
func (l *List[T, P]) Edit(ctx context.Context, id string, payload P) error {
	if err := l.ops.Update(ctx, id, payload); err != nil {
		log.Error().Err(err).Str("list", l.name).Str("id", id).Msg("update failed")
		return err
	}
	return l.Refresh(ctx)
}

// Remove deletes an item optimistically: it is filtered out of local state
// before the delete call is issued. On success the removal stands with no
// refetch. On failure the list is refetched so the item never stays hidden
// after the backend rejected the delete.
func (l *List[T, P]) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	l.items = slices.DeleteFunc(slices.Clone(l.items), func(item T) bool {
		return l.ops.ID(item) == id
	})
	l.mu.Unlock()

	if err := l.ops.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("list", l.name).Str("id", id).Msg("delete failed, restoring list")
		if rerr := l.Refresh(ctx); rerr != nil {
			log.Error().Err(rerr).Str("list", l.name).Msg("rollback refresh failed")
		}
		return err
	}
	return nil
}

// Items returns a copy of the cached list in fetch order.
func (l *List[T, P]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// State returns the items together with the loading flag and last error.
func (l *List[T, P]) State() ([]T, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items), l.loading, l.err
}
