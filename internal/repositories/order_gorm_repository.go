package repositories

import (
	"fmt"
	"time"

	"ordersys/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
// Items are stored in order_items and reloaded in insertion order.
type GORMOrderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *GORMOrderRepository) withItems() *gorm.DB {
	return r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// ListOrders retrieves all orders with their items, ordered by ID.
func (r *GORMOrderRepository) ListOrders() ([]models.Order, error) {
	var records []orderRecord
	if err := r.withItems().Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, toOrder(rec))
	}
	return orders, nil
}

// GetOrder retrieves a single order with its items.
func (r *GORMOrderRepository) GetOrder(id int64) (*models.Order, error) {
	var records []orderRecord
	if err := r.withItems().Where("id = ?", id).Limit(1).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	order := toOrder(records[0])
	return &order, nil
}

// AddOrder creates the order and its items in one statement batch.
func (r *GORMOrderRepository) AddOrder(userID int64, status string, items []models.OrderItem) (*models.Order, error) {
	rec := orderRecord{
		UserID:    userID,
		Status:    status,
		CreatedAt: r.now(),
		Items:     toItemRecords(0, items),
	}
	if err := r.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order := toOrder(rec)
	return &order, nil
}

// ReplaceOrder rewrites the order row and replaces its items.
func (r *GORMOrderRepository) ReplaceOrder(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&orderRecord{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"user_id": order.UserID,
			"status":  order.Status,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&orderItemRecord{}).Error; err != nil {
			return err
		}
		items := toItemRecords(order.ID, order.Items)
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace order %d: %w", order.ID, err)
	}
	return nil
}
