package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/storage"
)

// Repository defines order data operations. The stored list is kept
// newest first.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	Create(ctx context.Context, items []domain.CartItem, customer domain.Customer, total int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) ([]domain.Order, error)
	Delete(ctx context.Context, id string) ([]domain.Order, error)
}

// StoreRepository persists orders through a collection store. A corrupt
// or missing collection degrades to an empty order book.
type StoreRepository struct {
	store storage.Store
	ids   *idGenerator
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store, ids: newIDGenerator()}
}

func (r *StoreRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.readOrders(ctx), nil
}

func (r *StoreRepository) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	orders := r.readOrders(ctx)

	var matched []domain.Order
	for _, o := range orders {
		if o.Email == email {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// Create stamps a new pending order with a deep snapshot of the cart
// items and prepends it to the stored list.
func (r *StoreRepository) Create(ctx context.Context, items []domain.CartItem, customer domain.Customer, total int64) (*domain.Order, error) {
	order := domain.Order{
		ID:       r.ids.Next(),
		Date:     time.Now().UTC().Format(time.RFC3339),
		Total:    total,
		Status:   domain.OrderStatusPending,
		Items:    domain.CloneItems(items),
		Customer: customer,
	}

	orders := append([]domain.Order{order}, r.readOrders(ctx)...)
	if err := r.writeOrders(ctx, orders); err != nil {
		return nil, err
	}

	if err := r.appendEvent(ctx, order); err != nil {
		// The order itself is persisted; a lost event only delays the
		// confirmation publisher, so log and continue.
		log.Printf("failed to record order event for %s: %v", order.ID, err)
	}

	return &order, nil
}

// UpdateStatus replaces the status of the matching order in place. An
// absent id leaves the collection untouched.
func (r *StoreRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) ([]domain.Order, error) {
	orders := r.readOrders(ctx)

	found := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return orders, nil
	}

	if err := r.writeOrders(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the matching order. An absent id is a no-op.
func (r *StoreRepository) Delete(ctx context.Context, id string) ([]domain.Order, error) {
	orders := r.readOrders(ctx)

	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}

	if err := r.writeOrders(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (r *StoreRepository) readOrders(ctx context.Context) []domain.Order {
	payload, err := r.store.Read(ctx, storage.CollectionOrders)
	if err != nil {
		return nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(payload, &orders); err != nil {
		log.Printf("corrupt orders collection, serving empty list: %v", err)
		return nil
	}
	return orders
}

func (r *StoreRepository) writeOrders(ctx context.Context, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	if err := r.store.Write(ctx, storage.CollectionOrders, payload); err != nil {
		return fmt.Errorf("failed to write orders: %w", err)
	}
	return nil
}
