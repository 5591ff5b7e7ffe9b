package repositories

import (
	"time"

	"ordersys/internal/models"
)

// Persistence records are kept apart from the domain models so the models stay free of
// storage tags and Order.Items can live in its own table.

type userRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"uniqueIndex;type:varchar(255);not null"`
	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

type productRecord struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"uniqueIndex;type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null"`
	CreatedAt   time.Time
}

func (productRecord) TableName() string { return "products" }

type orderRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	Status    string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
	Items     []orderItemRecord `gorm:"foreignKey:OrderID"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	OrderID   int64   `gorm:"index;not null"`
	Position  int     `gorm:"not null"`
	ProductID int64   `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}

func (orderItemRecord) TableName() string { return "order_items" }

func toUser(rec userRecord) models.User {
	return models.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt,
	}
}

func toProduct(rec productRecord) models.Product {
	return models.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		Stock:       rec.Stock,
		CreatedAt:   rec.CreatedAt,
	}
}

func toOrder(rec orderRecord) models.Order {
	items := make([]models.OrderItem, 0, len(rec.Items))
	for _, item := range rec.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return models.Order{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
		Items:     items,
	}
}

func toItemRecords(orderID int64, items []models.OrderItem) []orderItemRecord {
	records := make([]orderItemRecord, 0, len(items))
	for i, item := range items {
		records = append(records, orderItemRecord{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return records
}
