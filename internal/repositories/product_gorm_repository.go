package repositories

import (
	"fmt"
	"time"

	"ordersys/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ListProducts retrieves all products ordered by ID.
func (r *GORMProductRepository) ListProducts() ([]models.Product, error) {
	var records []productRecord
	if err := r.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, toProduct(rec))
	}
	return products, nil
}

// GetProduct retrieves a single product by its ID.
func (r *GORMProductRepository) GetProduct(id int64) (*models.Product, error) {
	return r.findOne(fmt.Sprintf("ID %d", id), "id = ?", id)
}

// GetProductByName retrieves a single product by its name.
func (r *GORMProductRepository) GetProductByName(name string) (*models.Product, error) {
	return r.findOne("name "+name, "name = ?", name)
}

func (r *GORMProductRepository) findOne(desc string, query string, args ...interface{}) (*models.Product, error) {
	var records []productRecord
	if err := r.db.Where(query, args...).Order("id").Limit(1).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get product by %s: %w", desc, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	product := toProduct(records[0])
	return &product, nil
}

// AddProduct creates a new product in the database.
func (r *GORMProductRepository) AddProduct(name, description string, price float64, stock int) (*models.Product, error) {
	rec := productRecord{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   r.now(),
	}
	if err := r.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product := toProduct(rec)
	return &product, nil
}

// UpdateProduct writes the product's mutable fields back to the database.
func (r *GORMProductRepository) UpdateProduct(product *models.Product) error {
	res := r.db.Model(&productRecord{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, res.Error)
	}
	return nil
}
