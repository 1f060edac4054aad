package checkout

import (
	"context"
	"sync"

	"github.com/idir2023/argan-project/internal/cart"
	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/orders"
)

// Service runs one checkout per session against the shared cart
// manager and order repository.
type Service struct {
	carts *cart.Manager
	repo  orders.Repository

	mu    sync.Mutex
	flows map[string]*Checkout
}

func NewService(carts *cart.Manager, repo orders.Repository) *Service {
	return &Service{
		carts: carts,
		repo:  repo,
		flows: make(map[string]*Checkout),
	}
}

// Flow returns the session's checkout, creating one at the shipping
// step on first access.
func (s *Service) Flow(sessionID string) *Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.flows[sessionID]
	if !ok {
		c = New()
		s.flows[sessionID] = c
	}
	return c
}

// Reset discards the session's checkout so a new purchase starts from
// the shipping step.
func (s *Service) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, sessionID)
}

// Submit finalizes the checkout from the review step: it snapshots the
// cart, persists the order and only then clears the cart. A failed
// persist leaves both the cart and the step untouched so the shopper
// can retry. The flow's lock is held across the whole step check,
// persist and advance, so concurrent submits for one session place at
// most one order.
func (s *Service) Submit(ctx context.Context, sessionID string) (*domain.Order, error) {
	c := s.Flow(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepReview {
		return nil, ErrIllegalTransition
	}

	items := s.carts.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := cart.Total(items)

	order, err := s.repo.Create(ctx, items, c.customerLocked(), total)
	if err != nil {
		return nil, err
	}

	s.carts.Clear(sessionID)
	c.order = order
	c.step = StepSuccess
	return order, nil
}
