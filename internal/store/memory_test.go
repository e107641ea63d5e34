package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintle/quintle/internal/game"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g := game.New("crane")
	require.NoError(t, s.Save(ctx, g))

	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g := game.New("crane")
	require.NoError(t, s.Save(ctx, g))

	replacement := game.New("speed")
	replacement.ID = g.ID
	require.NoError(t, s.Save(ctx, replacement))

	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "speed", got.Answer)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := game.New("crane")
			_ = s.Save(ctx, g)
			_, _ = s.Get(ctx, g.ID)
		}()
	}
	wg.Wait()
}
