package services

import (
	"strings"
	"sync"
	"time"

	"ordersys/internal/metrics"
	"ordersys/internal/models"
	"ordersys/internal/repositories"
	"ordersys/pkg/apperr"

	"go.uber.org/zap"
)

// OrderEventPublisher publishes events about newly created orders.
type OrderEventPublisher interface {
	PublishOrderCreated(event models.OrderCreatedEvent) error
}

// OrderService handles business logic for users, products and orders.
// It is the only component callers should use directly.
type OrderService struct {
	repo      repositories.Repository
	publisher OrderEventPublisher
	logger    *zap.Logger
	now       func() time.Time

	// mu serializes operations that check and then write, so uniqueness and stock
	// checks cannot interleave between callers.
	mu sync.Mutex
}

// NewOrderService creates a new OrderService.
// A nil repo gives the service its own empty in-memory repository; a nil publisher
// disables order events; a nil logger discards log output.
func NewOrderService(repo repositories.Repository, publisher OrderEventPublisher, logger *zap.Logger) *OrderService {
	if repo == nil {
		repo = repositories.NewMemoryRepository()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder creates an order for userID, decrementing stock item by item.
// An empty status means models.OrderStatusPending.
//
// Stock is decremented and stored as each item is checked, so a later item sees the
// effect of earlier ones. If a later item fails, earlier decrements stay applied.
func (s *OrderService) CreateOrder(userID int64, items []models.OrderItemInput, status string) (*models.Order, error) {
	s.mu.Lock()
	order, err := s.createOrder(userID, items, status)
	s.mu.Unlock()

	if err != nil {
		kind := "internal"
		if k, ok := apperr.KindOf(err); ok {
			kind = k.String()
		}
		metrics.OrdersFailedTotal.WithLabelValues(kind).Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Debug("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total_amount", order.TotalAmount()))

	s.publishOrderCreated(*order)
	return order, nil
}

func (s *OrderService) createOrder(userID int64, items []models.OrderItemInput, status string) (*models.Order, error) {
	const op = "OrderService.CreateOrder"

	if status == "" {
		status = models.OrderStatusPending
	}

	user, err := s.repo.GetUser(userID)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if len(items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.repo.GetProduct(item.ProductID)
		if err != nil {
			return nil, apperr.Wrap(op, err)
		}
		if product == nil {
			return nil, apperr.NotFound("product %d not found", item.ProductID)
		}
		if item.Quantity > product.Stock {
			return nil, apperr.BusinessRule(
				"insufficient stock for product %d: requested %d, available %d",
				product.ID, item.Quantity, product.Stock,
			)
		}

		product.Stock -= item.Quantity
		if err := s.repo.UpdateProduct(product); err != nil {
			return nil, apperr.Wrap(op, err)
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	order, err := s.repo.AddOrder(user.ID, status, orderItems)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}
	return order, nil
}

func (s *OrderService) publishOrderCreated(order models.Order) {
	if s.publisher == nil {
		return
	}

	event := models.NewOrderCreatedEvent(order, s.now())
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		metrics.OrderEventsPublishFailedTotal.Inc()
		s.logger.Warn("Failed to publish order created event",
			zap.Int64("order_id", order.ID),
			zap.String("event_id", event.EventID),
			zap.Error(err))
	}
}

// ListOrders returns all orders ordered by ID.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	orders, err := s.repo.ListOrders()
	if err != nil {
		return nil, apperr.Wrap("OrderService.ListOrders", err)
	}
	return orders, nil
}

// GetOrder retrieves a single order by its ID.
func (s *OrderService) GetOrder(orderID int64) (*models.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, apperr.Wrap("OrderService.GetOrder", err)
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}
	return order, nil
}

// UpdateOrderStatus sets the status of an existing order and returns the updated order.
func (s *OrderService) UpdateOrderStatus(orderID int64, status string) (*models.Order, error) {
	const op = "OrderService.UpdateOrderStatus"

	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperr.Validation("status is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, apperr.Wrap(op, err)
	}
	if order == nil {
		return nil, apperr.NotFound("order not found")
	}

	order.Status = status
	if err := s.repo.ReplaceOrder(order); err != nil {
		return nil, apperr.Wrap(op, err)
	}

	s.logger.Debug("Order status updated", zap.Int64("order_id", order.ID), zap.String("status", status))
	return order, nil
}
