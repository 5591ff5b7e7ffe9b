package repositories

import "ordersys/internal/models"

// UserRepository defines the interface for user data access.
// Lookups return a nil user, not an error, when nothing matches.
type UserRepository interface {
	ListUsers() ([]models.User, error)
	GetUser(id int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	AddUser(name, email string) (*models.User, error)
}
