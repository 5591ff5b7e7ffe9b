package models

import "time"

// User represents a registered customer.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // trimmed and lower-cased, unique
	CreatedAt time.Time `json:"created_at"`
}
