package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

type fakeBackend struct {
	items     []item
	listCalls int
	deleteErr error
	createErr error
	deleted   []string
	created   []string
}

func (b *fakeBackend) ops() Ops[item, string] {
	return Ops[item, string]{
		List: func(ctx context.Context) ([]item, error) {
			b.listCalls++
			out := make([]item, len(b.items))
			copy(out, b.items)
			return out, nil
		},
		Create: func(ctx context.Context, payload string) error {
			if b.createErr != nil {
				return b.createErr
			}
			b.created = append(b.created, payload)
			b.items = append(b.items, item{ID: payload, Name: payload})
			return nil
		},
		Update: func(ctx context.Context, id, payload string) error { return nil },
		Delete: func(ctx context.Context, id string) error {
			if b.deleteErr != nil {
				return b.deleteErr
			}
			b.deleted = append(b.deleted, id)
			for i, it := range b.items {
				if it.ID == id {
					b.items = append(b.items[:i], b.items[i+1:]...)
					break
				}
			}
			return nil
		},
		ID: func(it item) string { return it.ID },
	}
}

func TestRefreshReplacesItems(t *testing.T) {
	backend := &fakeBackend{items: []item{{ID: "a"}, {ID: "b"}}}
	list := NewList("test", backend.ops())

	require.NoError(t, list.Refresh(context.Background()))
	items, loading, err := list.State()
	require.NoError(t, err)
	assert.False(t, loading)
	assert.Equal(t, []item{{ID: "a"}, {ID: "b"}}, items)
}

func TestAddRefetches(t *testing.T) {
	backend := &fakeBackend{items: []item{{ID: "a"}}}
	list := NewList("test", backend.ops())
	require.NoError(t, list.Refresh(context.Background()))

	require.NoError(t, list.Add(context.Background(), "b"))
	assert.Equal(t, 2, backend.listCalls, "add must refetch")
	assert.Len(t, list.Items(), 2)
}

func TestAddFailureDoesNotRefetch(t *testing.T) {
	backend := &fakeBackend{items: []item{{ID: "a"}}, createErr: errors.New("rejected")}
	list := NewList("test", backend.ops())
	require.NoError(t, list.Refresh(context.Background()))

	err := list.Add(context.Background(), "b")
	require.Error(t, err)
	assert.Equal(t, 1, backend.listCalls)
	assert.Len(t, list.Items(), 1)
}

func TestRemoveIsOptimistic(t *testing.T) {
	backend := &fakeBackend{items: []item{{ID: "a"}, {ID: "b"}}}
	list := NewList("test", backend.ops())
	require.NoError(t, list.Refresh(context.Background()))

	require.NoError(t, list.Remove(context.Background(), "a"))

	// Success leaves the optimistic removal standing with no refetch.
	assert.Equal(t, 1, backend.listCalls)
	assert.Equal(t, []item{{ID: "b"}}, list.Items())
}

func TestRemoveFailureRestoresList(t *testing.T) {
	backend := &fakeBackend{items: []item{{ID: "a"}, {ID: "b"}}, deleteErr: errors.New("rejected")}
	list := NewList("test", backend.ops())
	require.NoError(t, list.Refresh(context.Background()))

	err := list.Remove(context.Background(), "a")
	require.Error(t, err)

	// The rejected delete must not leave the item hidden.
	assert.Equal(t, 2, backend.listCalls)
	assert.Equal(t, []item{{ID: "a"}, {ID: "b"}}, list.Items())
}

func TestStaleRefreshDiscarded(t *testing.T) {
	type call struct {
		entered chan struct{}
		release chan struct{}
		items   []item
	}
	calls := make(chan *call, 2)

	list := NewList("test", Ops[item, string]{
		List: func(ctx context.Context) ([]item, error) {
			c := <-calls
			close(c.entered)
			<-c.release
			return c.items, nil
		},
		ID: func(it item) string { return it.ID },
	})

	older := &call{entered: make(chan struct{}), release: make(chan struct{}), items: []item{{ID: "stale"}}}
	newer := &call{entered: make(chan struct{}), release: make(chan struct{}), items: []item{{ID: "fresh"}}}

	// Start the older refresh and wait until it holds its sequence stamp.
	calls <- older
	olderDone := make(chan error, 1)
	go func() { olderDone <- list.Refresh(context.Background()) }()
	<-older.entered

	calls <- newer
	newerDone := make(chan error, 1)
	go func() { newerDone <- list.Refresh(context.Background()) }()
	<-newer.entered

	// The newer refresh completes first; the older one straggles in after.
	close(newer.release)
	require.NoError(t, <-newerDone)
	close(older.release)
	require.NoError(t, <-olderDone)

	items, _, err := list.State()
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "fresh"}}, items, "older response must not overwrite newer one")
}
