package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/storage"
)

// Event is an outbox record written alongside every created order.
// The confirmation publisher drains pending events and marks them
// published; an order is never blocked on the broker being up.
type Event struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	Published bool            `json:"published"`
}

const EventTypeOrderCreated = "order-created"

func (r *StoreRepository) appendEvent(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order payload: %w", err)
	}

	events := r.readEvents(ctx)
	events = append(events, Event{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Type:      EventTypeOrderCreated,
		Payload:   payload,
		CreatedAt: time.Now(),
	})

	return r.writeEvents(ctx, events)
}

// PendingEvents returns up to limit unpublished events, oldest first.
func (r *StoreRepository) PendingEvents(ctx context.Context, limit int) ([]Event, error) {
	events := r.readEvents(ctx)

	var pending []Event
	for _, e := range events {
		if e.Published {
			continue
		}
		pending = append(pending, e)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

// MarkPublished flags the event so the publisher does not resend it.
func (r *StoreRepository) MarkPublished(ctx context.Context, eventID string) error {
	events := r.readEvents(ctx)

	for i := range events {
		if events[i].ID == eventID {
			events[i].Published = true
			return r.writeEvents(ctx, events)
		}
	}
	return nil
}

func (r *StoreRepository) readEvents(ctx context.Context) []Event {
	payload, err := r.store.Read(ctx, storage.CollectionOrderEvents)
	if err != nil {
		return nil
	}

	var events []Event
	if err := json.Unmarshal(payload, &events); err != nil {
		return nil
	}
	return events
}

func (r *StoreRepository) writeEvents(ctx context.Context, events []Event) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}
	if err := r.store.Write(ctx, storage.CollectionOrderEvents, payload); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}
	return nil
}
