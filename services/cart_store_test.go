package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func TestMemoryCartStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	require.NoError(t, store.Put(ctx, "s1", map[int]int{1: 2}))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	cart[1] = 99

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, again[1])
}

func TestMemoryCartStore_PutCopiesInput(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	input := map[int]int{1: 2}
	require.NoError(t, store.Put(ctx, "s1", input))
	input[1] = 99

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart[1])
}

func TestMemoryCartStore_MissingSessionIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	cart, err := store.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestMemoryCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	require.NoError(t, store.Put(ctx, "s1", map[int]int{1: 2}))
	require.NoError(t, store.Clear(ctx, "s1"))

	cart, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}
