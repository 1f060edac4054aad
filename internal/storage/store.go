package storage

import (
	"context"
	"errors"
)

// Collection names owned by the store. Each collection is persisted as
// a single JSON document and overwritten whole on every write, which
// matches the write granularity of the original storage medium.
const (
	CollectionProducts    = "products"
	CollectionOrders      = "orders"
	CollectionOrderEvents = "order_events"
)

// ErrNotFound is returned for a collection that has never been written.
var ErrNotFound = errors.New("collection not found")

// Store persists whole collections as opaque payloads. Callers own
// shape correctness; engines never inspect the payload.
type Store interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, payload []byte) error
	Close() error
}
