package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	m        sync.RWMutex
	products []domain.Product
	err      error

	gets, sets, invalidations int
}

func (m *mockCache) Get(context.Context) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.gets++
	if m.err != nil {
		return nil, m.err
	}
	if m.products == nil {
		return nil, ErrCacheMiss
	}
	return m.products, nil
}

func (m *mockCache) Set(_ context.Context, products []domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.sets++
	m.products = products
	return nil
}

func (m *mockCache) Invalidate(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.invalidations++
	m.products = nil
	return nil
}

func (m *mockCache) setCount() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.sets
}

func newTestService(t *testing.T) (*Service, *mockCache) {
	t.Helper()
	repo := NewStoreRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Initialize(context.Background()))
	cache := &mockCache{}
	return NewService(repo, cache), cache
}

func TestServiceList_FillsCacheOnMiss(t *testing.T) {
	svc, cache := newTestService(t)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)

	// The cache fill is asynchronous.
	require.Eventually(t, func() bool {
		return cache.setCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestServiceList_ServesFromCache(t *testing.T) {
	svc, cache := newTestService(t)
	cache.products = []domain.Product{{ID: 42, Name: "مخبأ", Price: 1, Images: []string{"i"}}}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(42), products[0].ID)
	assert.Equal(t, 0, cache.setCount())
}

func TestServiceList_CacheErrorFallsThroughToRepo(t *testing.T) {
	svc, cache := newTestService(t)
	cache.err = errors.New("redis down")

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestServiceSave_InvalidatesCache(t *testing.T) {
	svc, cache := newTestService(t)

	_, err := svc.Save(context.Background(), domain.Product{Name: "جديد", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidations)
}

func TestServiceSave_ValidationErrorSkipsInvalidation(t *testing.T) {
	svc, cache := newTestService(t)

	_, err := svc.Save(context.Background(), domain.Product{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, cache.invalidations)
}

func TestServiceDelete_InvalidatesCache(t *testing.T) {
	svc, cache := newTestService(t)

	_, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidations)
}
