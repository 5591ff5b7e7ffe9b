package rabbitmq

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"ordersys/internal/models"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAcknowledger is a mock implementation of amqp.Acknowledger
type MockAcknowledger struct {
	mock.Mock
}

func (m *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	args := m.Called(tag, multiple)
	return args.Error(0)
}

func (m *MockAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	args := m.Called(tag, multiple, requeue)
	return args.Error(0)
}

func (m *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	args := m.Called(tag, requeue)
	return args.Error(0)
}

func sampleEvent() models.OrderCreatedEvent {
	order := models.Order{
		ID:     3,
		UserID: 1,
		Status: models.OrderStatusPending,
		Items:  []models.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 12.5}},
	}
	return models.NewOrderCreatedEvent(order, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
}

func TestNewOrderCreatedPublishing(t *testing.T) {
	event := sampleEvent()

	msg, err := newOrderCreatedPublishing(event)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, models.EventTypeOrderCreated, msg.Type)
	assert.Equal(t, event.EventID, msg.MessageId)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, event.Timestamp, msg.Timestamp)

	var decoded models.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, 25.0, decoded.TotalAmount)
}

func TestHandleDelivery(t *testing.T) {
	client := &Client{logger: zap.NewNop()}
	body, err := json.Marshal(sampleEvent())
	require.NoError(t, err)

	t.Run("acks processed events", func(t *testing.T) {
		ack := new(MockAcknowledger)
		ack.On("Ack", uint64(1), false).Return(nil).Once()

		var received models.OrderCreatedEvent
		client.handleDelivery(amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}, func(event models.OrderCreatedEvent) error {
			received = event
			return nil
		})

		assert.Equal(t, int64(3), received.OrderID)
		ack.AssertExpectations(t)
	})

	t.Run("requeues on handler error", func(t *testing.T) {
		ack := new(MockAcknowledger)
		ack.On("Nack", uint64(2), false, true).Return(nil).Once()

		client.handleDelivery(amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: body}, func(models.OrderCreatedEvent) error {
			return errors.New("downstream unavailable")
		})

		ack.AssertExpectations(t)
	})

	t.Run("drops undecodable messages", func(t *testing.T) {
		ack := new(MockAcknowledger)
		ack.On("Nack", uint64(3), false, false).Return(nil).Once()

		called := false
		client.handleDelivery(amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("not json")}, func(models.OrderCreatedEvent) error {
			called = true
			return nil
		})

		assert.False(t, called)
		ack.AssertExpectations(t)
	})
}

func TestPublishOrderCreated_NoChannel(t *testing.T) {
	client := &Client{logger: zap.NewNop()}
	err := client.PublishOrderCreated(sampleEvent())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "channel is not available")
}
