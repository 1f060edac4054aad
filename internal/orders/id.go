package orders

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator issues order ids in the public ORD-<6 digits> format.
// The digits come from a millisecond timestamp forced to be strictly
// increasing within the process, so rapid successive submissions get
// distinct ids.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func newIDGenerator() *idGenerator {
	return &idGenerator{}
}

func (g *idGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return fmt.Sprintf("ORD-%06d", ms%1_000_000)
}
