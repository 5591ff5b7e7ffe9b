package services

import (
	"regexp"
	"strings"

	"ordersys/internal/metrics"
	"ordersys/internal/models"
	"ordersys/pkg/apperr"

	"go.uber.org/zap"
)

// emailPattern requires a local part, a domain and a dot-separated TLD, with no
// whitespace or '@' inside any of them.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterUser registers a new user. The email is trimmed and lower-cased before it
// is validated and checked for uniqueness.
func (s *OrderService) RegisterUser(name, email string) (*models.User, error) {
	const op = "OrderService.RegisterUser"

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("email is invalid")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}
	if existing != nil {
		return nil, apperr.BusinessRule("email already registered")
	}

	user, err := s.repo.AddUser(name, email)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Debug("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// ListUsers returns all users ordered by ID.
func (s *OrderService) ListUsers() ([]models.User, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, apperr.Wrap("OrderService.ListUsers", err)
	}
	return users, nil
}

// GetUser retrieves a single user by its ID.
func (s *OrderService) GetUser(userID int64) (*models.User, error) {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return nil, apperr.Wrap("OrderService.GetUser", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
