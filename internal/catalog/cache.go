package catalog

import (
	"context"
	"errors"

	"github.com/idir2023/argan-project/internal/domain"
)

// Cache holds the full product listing so storefront reads do not hit
// the collection store on every page view.
type Cache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")

// NopCache always misses. Used when no cache backend is configured.
type NopCache struct{}

func (NopCache) Get(context.Context) ([]domain.Product, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, []domain.Product) error   { return nil }
func (NopCache) Invalidate(context.Context) error              { return nil }
