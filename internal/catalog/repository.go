package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/storage"
)

// Repository defines catalog data operations. Consumers define this
// interface, not the storage implementation.
type Repository interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Save(ctx context.Context, product domain.Product) ([]domain.Product, error)
	Delete(ctx context.Context, id int64) ([]domain.Product, error)
}

// StoreRepository persists products through a collection store. A
// corrupt or missing collection degrades to the default seed instead
// of surfacing a storage error.
type StoreRepository struct {
	store storage.Store

	mu     sync.Mutex
	lastID int64
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// Initialize seeds the products collection on first run. A second call
// is a no-op once the collection exists.
func (r *StoreRepository) Initialize(ctx context.Context) error {
	_, err := r.store.Read(ctx, storage.CollectionProducts)
	if err == nil {
		return nil
	}

	return r.writeProducts(ctx, DefaultCatalog())
}

func (r *StoreRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.readProducts(ctx), nil
}

// Search matches the query case-insensitively against name,
// description and category. A blank query returns the full list.
func (r *StoreRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products := r.readProducts(ctx)

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return products, nil
	}

	var matched []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Save inserts the product when its id is unknown, otherwise replaces
// the stored record. Missing optional fields are defaulted; a missing
// name or nonpositive price is rejected with a ValidationError.
func (r *StoreRepository) Save(ctx context.Context, product domain.Product) ([]domain.Product, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(product.Name) == "" {
		verr.Add("name", "name is required")
	}
	if product.Price <= 0 {
		verr.Add("price", "price must be positive")
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	applyDefaults(&product)

	products := r.readProducts(ctx)

	updated := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			updated = true
			break
		}
	}
	if !updated {
		product.ID = r.nextID()
		products = append(products, product)
	}

	if err := r.writeProducts(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes the matching record. An absent id is a no-op.
func (r *StoreRepository) Delete(ctx context.Context, id int64) ([]domain.Product, error) {
	products := r.readProducts(ctx)

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := r.writeProducts(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (r *StoreRepository) readProducts(ctx context.Context) []domain.Product {
	payload, err := r.store.Read(ctx, storage.CollectionProducts)
	if err != nil {
		return DefaultCatalog()
	}

	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		log.Printf("corrupt products collection, serving seed: %v", err)
		return DefaultCatalog()
	}

	for i := range products {
		normalizeImages(&products[i])
	}
	return products
}

func (r *StoreRepository) writeProducts(ctx context.Context, products []domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := r.store.Write(ctx, storage.CollectionProducts, payload); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}
	return nil
}

// nextID issues time-based product ids that are strictly increasing
// within the process, so rapid successive saves cannot collide.
func (r *StoreRepository) nextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func applyDefaults(p *domain.Product) {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Rating == 0 {
		p.Rating = 5
	}
	if p.Image == "" {
		p.Image = PlaceholderImage
	}
	normalizeImages(p)
}

// normalizeImages upholds the invariant that Images is never empty for
// a product handed to a consumer.
func normalizeImages(p *domain.Product) {
	if len(p.Images) == 0 {
		p.Images = []string{p.Image}
	}
}
