package catalog

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/idir2023/argan-project/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Service fronts the repository with a read-through listing cache.
// Writes go straight to the repository and invalidate the cache.
type Service struct {
	repo  Repository
	cache Cache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo Repository, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) Initialize(ctx context.Context) error {
	return s.repo.Initialize(ctx)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	// Use singleflight so concurrent cache misses load the catalog once
	v, err, _ := s.sfg.Do(cacheKey, func() (interface{}, error) {

		products, err := s.cache.Get(ctx)
		if err == nil {
			return products, nil // listing is in cache
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		products, errList := s.repo.List(ctx)
		if errList != nil {
			return nil, errList
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), products)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

// Search always reads through the repository: queries are too varied
// to cache usefully.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.repo.Search(ctx, query)
}

func (s *Service) Save(ctx context.Context, product domain.Product) ([]domain.Product, error) {
	products, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return products, nil
}

func (s *Service) Delete(ctx context.Context, id int64) ([]domain.Product, error) {
	products, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return products, nil
}

func (s *Service) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("cache invalidate error: %v \n", err)
	}
}
