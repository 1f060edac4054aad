package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReadMissingCollection(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Read(context.Background(), CollectionProducts)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_WriteOverwritesWholeCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, CollectionProducts, []byte(`[1,2,3]`)))
	require.NoError(t, store.Write(ctx, CollectionProducts, []byte(`[]`)))

	payload, err := store.Read(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), payload)
}

func TestMemoryStore_CollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, CollectionProducts, []byte(`"p"`)))
	require.NoError(t, store.Write(ctx, CollectionOrders, []byte(`"o"`)))

	products, err := store.Read(ctx, CollectionProducts)
	require.NoError(t, err)
	orders, err := store.Read(ctx, CollectionOrders)
	require.NoError(t, err)

	assert.Equal(t, []byte(`"p"`), products)
	assert.Equal(t, []byte(`"o"`), orders)
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Write(ctx, CollectionProducts, []byte(`abc`)))

	first, err := store.Read(ctx, CollectionProducts)
	require.NoError(t, err)
	first[0] = 'x'

	second, err := store.Read(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), second)
}

func TestMemoryStore_WriteCopiesPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	payload := []byte(`abc`)
	require.NoError(t, store.Write(ctx, CollectionProducts, payload))
	payload[0] = 'x'

	stored, err := store.Read(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), stored)
}
