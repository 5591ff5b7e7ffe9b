package services

import (
	"math"
	"strings"

	"ordersys/internal/metrics"
	"ordersys/internal/models"
	"ordersys/pkg/apperr"

	"go.uber.org/zap"
)

// RegisterProduct registers a new product with its price rounded to 2 decimal places.
func (s *OrderService) RegisterProduct(name, description string, price float64, stock int) (*models.Product, error) {
	const op = "OrderService.RegisterProduct"

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, apperr.Validation("product name is required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, apperr.Validation("price must be a finite number")
	}
	if price <= 0 {
		return nil, apperr.Validation("price must be greater than zero")
	}
	if stock < 0 {
		return nil, apperr.Validation("stock cannot be negative")
	}

	price = models.RoundPrice(price)
	if price <= 0 {
		return nil, apperr.Validation("price must be at least 0.01")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetProductByName(name)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}
	if existing != nil {
		return nil, apperr.BusinessRule("product name already exists")
	}

	product, err := s.repo.AddProduct(name, description, price, stock)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}

	metrics.ProductsRegisteredTotal.Inc()
	s.logger.Debug("Product registered", zap.Int64("product_id", product.ID), zap.Float64("price", product.Price))
	return product, nil
}

// ListProducts returns all products ordered by ID.
func (s *OrderService) ListProducts() ([]models.Product, error) {
	products, err := s.repo.ListProducts()
	if err != nil {
		return nil, apperr.Wrap("OrderService.ListProducts", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by its ID.
func (s *OrderService) GetProduct(productID int64) (*models.Product, error) {
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return nil, apperr.Wrap("OrderService.GetProduct", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %d not found", productID)
	}
	return product, nil
}
