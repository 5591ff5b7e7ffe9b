package repositories

import (
	"ordersys/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id int64) (*models.Product, error)
	GetProductByName(name string) (*models.Product, error)
	AddProduct(name, description string, price float64, stock int) (*models.Product, error)
	// UpdateProduct overwrites the product stored under product.ID.
	UpdateProduct(product *models.Product) error
}
