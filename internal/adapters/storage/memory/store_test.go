package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arimodu/shopper/internal/adapters/storage/storagetest"
	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/ports"
)

func TestStore_Contract(t *testing.T) {
	t.Parallel()
	storagetest.Run(t, func(*testing.T) ports.Store { return New() })
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New()

	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	l, err := s.CreateList(ctx, "Groceries", u.ID)
	require.NoError(t, err)
	l, err = s.AddItem(ctx, l.ID, 1, "milk")
	require.NoError(t, err)

	l.Items[0].Content = "mutated"
	l.Name = "mutated"

	got, err := s.GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "Groceries", got.Name)
	require.Equal(t, "milk", got.Items[0].Content)
}

func TestStore_ForeignKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New()

	_, err := s.CreateList(ctx, "Groceries", "missing-user")
	require.ErrorIs(t, err, domain.ErrNotFound)

	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	l, err := s.CreateList(ctx, "Groceries", u.ID)
	require.NoError(t, err)

	_, err = s.AddUserToList(ctx, l.ID, "missing-user")
	require.ErrorIs(t, err, domain.ErrNotFound)

	owner := "missing-user"
	_, err = s.UpdateList(ctx, l.ID, list.Patch{Owner: &owner})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ConcurrentAddItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New()

	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	l, err := s.CreateList(ctx, "Groceries", u.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddItem(ctx, l.ID, i, "item")
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 50)
}
