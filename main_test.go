package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordersys/internal/models"
	"ordersys/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	service := services.NewOrderService(nil, nil, zap.NewNop())
	return newApp(service, zap.NewNop(), false)
}

func send(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthCheck(t *testing.T) {
	app := testApp(t)

	resp := send(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "disabled", health["events"])
	_, err := time.Parse(time.RFC3339, health["time"])
	assert.NoError(t, err)
}

func TestCreateOrderThroughApp(t *testing.T) {
	app := testApp(t)

	resp := send(t, app, http.MethodPost, "/api/v1/users", map[string]string{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{"name": "Laptop", "price": 1200.0, "stock": 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"user_id": 1,
		"items":   []map[string]int{{"product_id": 1, "quantity": 2}},
		"status":  "paid",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	assert.Equal(t, 2400.0, order["total_amount"])
	assert.Equal(t, "paid", order["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := testApp(t)

	resp := send(t, app, http.MethodPost, "/api/v1/users", map[string]string{"name": "Carol", "email": "carol@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "users_registered_total")
	assert.Contains(t, string(body), "orders_created_total")
}

func TestUnknownRoute(t *testing.T) {
	app := testApp(t)

	resp := send(t, app, http.MethodGet, "/api/v1/carts", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogOrderEvent(t *testing.T) {
	handler := logOrderEvent(zap.NewNop())
	event := models.NewOrderCreatedEvent(models.Order{ID: 1, UserID: 1, Status: models.OrderStatusPending}, time.Now())
	assert.NoError(t, handler(event))
}
