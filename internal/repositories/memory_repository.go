package repositories

import (
	"sort"
	"sync"
	"time"

	"ordersys/internal/models"
)

// MemoryRepository is an in-memory implementation of Repository.
// Entities are stored by value, so callers only ever see copies.
type MemoryRepository struct {
	mu sync.RWMutex

	users    map[int64]models.User
	products map[int64]models.Product
	orders   map[int64]models.Order

	userSeq    int64
	productSeq int64
	orderSeq   int64

	now func() time.Time
}

// NewMemoryRepository creates a new, empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:      make(map[int64]models.User),
		products:   make(map[int64]models.Product),
		orders:     make(map[int64]models.Order),
		userSeq:    1,
		productSeq: 1,
		orderSeq:   1,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ListUsers returns all users ordered by ID.
func (r *MemoryRepository) ListUsers() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, id := range sortedKeys(r.users) {
		userList = append(userList, r.users[id])
	}
	return userList, nil
}

// GetUser returns a user by its ID.
func (r *MemoryRepository) GetUser(id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetUserByEmail returns the user registered with email.
func (r *MemoryRepository) GetUserByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range sortedKeys(r.users) {
		if user := r.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

// AddUser stores a new user under the next user ID.
func (r *MemoryRepository) AddUser(name, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := models.User{
		ID:        r.userSeq,
		Name:      name,
		Email:     email,
		CreatedAt: r.now(),
	}
	r.users[user.ID] = user
	r.userSeq++
	return &user, nil
}

// ListProducts returns all products ordered by ID.
func (r *MemoryRepository) ListProducts() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, id := range sortedKeys(r.products) {
		productList = append(productList, r.products[id])
	}
	return productList, nil
}

// GetProduct returns a product by its ID.
func (r *MemoryRepository) GetProduct(id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// GetProductByName returns the product with the given name.
func (r *MemoryRepository) GetProductByName(name string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range sortedKeys(r.products) {
		if product := r.products[id]; product.Name == name {
			return &product, nil
		}
	}
	return nil, nil
}

// AddProduct stores a new product under the next product ID.
func (r *MemoryRepository) AddProduct(name, description string, price float64, stock int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := models.Product{
		ID:          r.productSeq,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   r.now(),
	}
	r.products[product.ID] = product
	r.productSeq++
	return &product, nil
}

// UpdateProduct overwrites the stored product. The ID is assumed to exist.
func (r *MemoryRepository) UpdateProduct(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// ListOrders returns all orders ordered by ID.
func (r *MemoryRepository) ListOrders() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, id := range sortedKeys(r.orders) {
		orderList = append(orderList, copyOrder(r.orders[id]))
	}
	return orderList, nil
}

// GetOrder returns an order by its ID.
func (r *MemoryRepository) GetOrder(id int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order = copyOrder(order)
	return &order, nil
}

// AddOrder stores a new order under the next order ID.
func (r *MemoryRepository) AddOrder(userID int64, status string, items []models.OrderItem) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := models.Order{
		ID:        r.orderSeq,
		UserID:    userID,
		Status:    status,
		CreatedAt: r.now(),
		Items:     append([]models.OrderItem(nil), items...),
	}
	r.orders[order.ID] = order
	r.orderSeq++

	order = copyOrder(order)
	return &order, nil
}

// ReplaceOrder overwrites the stored order. The ID is assumed to exist.
func (r *MemoryRepository) ReplaceOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = copyOrder(*order)
	return nil
}

func copyOrder(order models.Order) models.Order {
	order.Items = append([]models.OrderItem(nil), order.Items...)
	return order
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
