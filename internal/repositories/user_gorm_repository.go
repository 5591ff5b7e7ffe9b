package repositories

import (
	"fmt"
	"time"

	"ordersys/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ListUsers retrieves all users ordered by ID.
func (r *GORMUserRepository) ListUsers() ([]models.User, error) {
	var records []userRecord
	if err := r.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, toUser(rec))
	}
	return users, nil
}

// GetUser retrieves a single user by its ID.
func (r *GORMUserRepository) GetUser(id int64) (*models.User, error) {
	return r.findOne(fmt.Sprintf("id %d", id), "id = ?", id)
}

// GetUserByEmail retrieves a user by their email.
func (r *GORMUserRepository) GetUserByEmail(email string) (*models.User, error) {
	return r.findOne("email "+email, "email = ?", email)
}

func (r *GORMUserRepository) findOne(desc string, query string, args ...interface{}) (*models.User, error) {
	var records []userRecord
	if err := r.db.Where(query, args...).Order("id").Limit(1).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", desc, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	user := toUser(records[0])
	return &user, nil
}

// AddUser creates a new user in the database.
func (r *GORMUserRepository) AddUser(name, email string) (*models.User, error) {
	rec := userRecord{Name: name, Email: email, CreatedAt: r.now()}
	if err := r.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user := toUser(rec)
	return &user, nil
}
