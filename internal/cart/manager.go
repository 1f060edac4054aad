package cart

import (
	"sync"

	"github.com/idir2023/argan-project/internal/domain"
)

// Manager holds the in-memory cart of each browsing session. Carts are
// never persisted; they live exactly as long as the session.
type Manager struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string][]domain.CartItem)}
}

// Items returns a deep copy of the session's cart.
func (m *Manager) Items(sessionID string) []domain.CartItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.CloneItems(m.carts[sessionID])
}

func (m *Manager) Add(sessionID string, product domain.Product) []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = Add(m.carts[sessionID], product)
	return domain.CloneItems(m.carts[sessionID])
}

func (m *Manager) UpdateQuantity(sessionID string, id int64, delta int) []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = UpdateQuantity(m.carts[sessionID], id, delta)
	return domain.CloneItems(m.carts[sessionID])
}

func (m *Manager) Remove(sessionID string, id int64) []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = Remove(m.carts[sessionID], id)
	return domain.CloneItems(m.carts[sessionID])
}

func (m *Manager) Total(sessionID string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Total(m.carts[sessionID])
}

// Clear empties the session's cart. Invoked once, after a successful
// order submission.
func (m *Manager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
