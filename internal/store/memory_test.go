package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	g := game.New(board.Board{{"a"}}, nil)

	_, err := st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Save(ctx, g))
	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	require.NoError(t, st.Delete(ctx, g.ID))
	require.NoError(t, st.Delete(ctx, g.ID))
	_, err = st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	var wg sync.WaitGroup
	ids := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := game.New(board.Board{{"a"}}, nil)
			_ = st.Save(ctx, g)
			ids <- g.ID
		}()
	}
	wg.Wait()
	close(ids)
	for id := range ids {
		_, err := st.Get(ctx, id)
		assert.NoError(t, err)
	}
}
