package events

import (
	"context"
	"log"
	"time"
)

// OrderCreated is emitted once per successfully committed order. Notification
// handlers consume it independently, so a transport failure on their side can
// never reach back into the checkout path.
type OrderCreated struct {
	Type           string     `json:"type"`
	OrderID        int        `json:"order_id"`
	FirstName      string     `json:"first_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	PickupDatetime *time.Time `json:"pickup_datetime,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

const TypeOrderCreated = "order_created"

type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreated) error
}

type Handler func(event OrderCreated)

// ChannelBus is the in-process fallback when no Kafka broker is configured.
// Events are handed off through a buffered channel so publishing never blocks
// the request that created the order.
type ChannelBus struct {
	ch       chan OrderCreated
	handlers []Handler
}

func NewChannelBus(handlers ...Handler) *ChannelBus {
	return &ChannelBus{
		ch:       make(chan OrderCreated, 64),
		handlers: handlers,
	}
}

func (b *ChannelBus) PublishOrderCreated(ctx context.Context, event OrderCreated) error {
	event.Type = TypeOrderCreated
	select {
	case b.ch <- event:
		return nil
	default:
		log.Printf("Event bus full, dropping order_created for order %d", event.OrderID)
		return nil
	}
}

func (b *ChannelBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-b.ch:
			for _, h := range b.handlers {
				h(event)
			}
		}
	}
}
