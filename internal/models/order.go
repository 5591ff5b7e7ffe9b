package models

import (
	"encoding/json"
	"time"

	"ordersys/pkg/apperr"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status given to orders created without an explicit one.
const OrderStatusPending = "pending"

// OrderItem represents a single item within an order.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"` // Price at the time of order
}

// Order represents a customer order.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// TotalAmount is the sum of quantity * unit price over all items, rounded to 2 decimal places.
func (o Order) TotalAmount() float64 {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(lineAmount(item.UnitPrice, item.Quantity))
	}
	return total.Round(2).InexactFloat64()
}

// MarshalJSON encodes the order together with its computed total.
func (o Order) MarshalJSON() ([]byte, error) {
	type order Order
	return json.Marshal(struct {
		order
		TotalAmount float64 `json:"total_amount"`
	}{
		order:       order(o),
		TotalAmount: o.TotalAmount(),
	})
}

// OrderItemInput is a requested order line before it is checked against stock.
type OrderItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// NewOrderItemInput builds an OrderItemInput, rejecting non-positive quantities.
func NewOrderItemInput(productID int64, quantity int) (OrderItemInput, error) {
	item := OrderItemInput{ProductID: productID, Quantity: quantity}
	if err := item.Validate(); err != nil {
		return OrderItemInput{}, err
	}
	return item, nil
}

// Validate rejects non-positive quantities.
func (i OrderItemInput) Validate() error {
	if i.Quantity <= 0 {
		return apperr.Validation("quantity must be greater than zero")
	}
	return nil
}
