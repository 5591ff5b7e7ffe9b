package repositories

import (
	"ordersys/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	ListOrders() ([]models.Order, error)
	GetOrder(id int64) (*models.Order, error)
	AddOrder(userID int64, status string, items []models.OrderItem) (*models.Order, error)
	// ReplaceOrder overwrites the order stored under order.ID.
	ReplaceOrder(order *models.Order) error
}

// Repository groups the storage of every entity the order service works with.
type Repository interface {
	UserRepository
	ProductRepository
	OrderRepository
}
