package models

import "time"

// Product represents a product in the store.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"` // unique
	Description string    `json:"description"`
	Price       float64   `json:"price"` // rounded to 2 decimal places
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}
