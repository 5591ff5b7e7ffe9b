package models

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeOrderCreated is published after an order has been stored.
const EventTypeOrderCreated = "ORDER_CREATED"

// OrderCreatedEvent is the message published for a newly created order.
type OrderCreatedEvent struct {
	EventID     string      `json:"event_id"`
	EventType   string      `json:"event_type"`
	Timestamp   time.Time   `json:"timestamp"`
	OrderID     int64       `json:"order_id"`
	UserID      int64       `json:"user_id"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

// NewOrderCreatedEvent builds the event for order with a fresh event ID.
func NewOrderCreatedEvent(order Order, now time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventID:     uuid.New().String(),
		EventType:   EventTypeOrderCreated,
		Timestamp:   now,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount(),
		Items:       order.Items,
	}
}
