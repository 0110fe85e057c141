package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/electromart/internal/config"
	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/routes"
	"github.com/example/electromart/internal/storage"
)

func newTestApp(t *testing.T) (*fiber.App, storage.Storage) {
	t.Helper()

	cfg := &config.Config{
		Port:           "8080",
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 5 << 20,
		OTPTTL:         5 * time.Minute,
	}

	store := storage.NewMemStorage()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})
	routes.Register(app, store, cfg, zap.NewNop())
	return app, store
}

func jsonRequest(method, path, session string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type cartResponse struct {
	Items []models.ProductWithQuantity `json:"items"`
	Total float64                      `json:"total"`
	Count int                          `json:"count"`
}

func checkoutBody(total float64) map[string]any {
	return map[string]any{
		"customerName": "Asha Rao",
		"email":        "asha@example.com",
		"phone":        "9876543210",
		"address":      "12 MG Road",
		"city":         "Bengaluru",
		"state":        "Karnataka",
		"pincode":      "560001",
		"total":        total,
		"items": []map[string]any{
			{"productId": 1, "name": "iPhone 13 Pro", "price": total, "quantity": 1},
		},
	}
}

func TestProductEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/products", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	products := decode[[]models.Product](t, resp)
	assert.Len(t, products, 12)

	resp, err = app.Test(jsonRequest("GET", "/api/products/1", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	product := decode[models.Product](t, resp)
	assert.Equal(t, "iPhone 13 Pro", product.Name)

	resp, err = app.Test(jsonRequest("GET", "/api/products/999", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/products/abc", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/products/sale/all", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	sale := decode[[]models.Product](t, resp)
	for _, p := range sale {
		assert.True(t, p.OnSale())
	}

	resp, err = app.Test(jsonRequest("GET", "/api/categories/laptops", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	laptops := decode[[]models.Product](t, resp)
	assert.Len(t, laptops, 2)
}

func TestSearchEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/search", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/search?q=p", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(jsonRequest("GET", "/api/search?q=pro", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	results := decode[[]models.Product](t, resp)
	names := make([]string, 0, len(results))
	for _, p := range results {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "iPhone 13 Pro")
	assert.Contains(t, names, "MacBook Pro")
}

func TestPriceComparisonEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/price-comparison/1", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	quotes := decode[[]map[string]any](t, resp)
	assert.Len(t, quotes, 4)

	resp, err = app.Test(jsonRequest("GET", "/api/price-comparison/999", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCartFlow(t *testing.T) {
	app, store := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/cart", "abc", map[string]any{"productId": 1, "quantity": 1}))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/cart", "abc", map[string]any{"productId": 1, "quantity": 2}))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	cart := decode[cartResponse](t, resp)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.Count)
	assert.Equal(t, cart.Items[0].Price*3, cart.Total)

	line, err := store.GetCartItem("abc", 1)
	require.NoError(t, err)
	require.NotNil(t, line)

	resp, err = app.Test(jsonRequest("PATCH", fmt.Sprintf("/api/cart/%d", line.ID), "abc", map[string]any{"quantity": 5}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	cart = decode[cartResponse](t, resp)
	assert.Equal(t, 5, cart.Count)

	resp, err = app.Test(jsonRequest("PATCH", fmt.Sprintf("/api/cart/%d", line.ID), "abc", map[string]any{"quantity": 0}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(jsonRequest("DELETE", fmt.Sprintf("/api/cart/%d", line.ID), "abc", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	cart = decode[cartResponse](t, resp)
	assert.Empty(t, cart.Items)

	resp, err = app.Test(jsonRequest("DELETE", "/api/cart", "abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAddUnknownProductToCart(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/cart", "abc", map[string]any{"productId": 999, "quantity": 1}))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestSessionCookieAssignedWhenAbsent(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/cart", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "sessionId" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a sessionId cookie to be set")
}

func TestCheckoutFlow(t *testing.T) {
	app, store := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/cart", "abc", map[string]any{"productId": 1, "quantity": 1}))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/checkout", "abc", checkoutBody(99999)))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	assert.Equal(t, float64(1), created["orderId"])

	// Checkout clears the cart.
	items, err := store.GetCartItems("abc")
	require.NoError(t, err)
	assert.Empty(t, items)

	resp, err = app.Test(jsonRequest("GET", "/api/orders", "abc", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	orders := decode[[]models.Order](t, resp)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)

	resp, err = app.Test(jsonRequest("GET", "/api/admin/stats", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	stats := decode[models.OrderStats](t, resp)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, float64(99999), stats.TotalRevenue)
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestCheckoutValidation(t *testing.T) {
	app, _ := newTestApp(t)

	body := checkoutBody(1000)
	delete(body, "email")

	resp, err := app.Test(jsonRequest("POST", "/api/checkout", "abc", body))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestComplaintFlow(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{}
	form.Set("customerName", "Asha Rao")
	form.Set("customerEmail", "asha@example.com")
	form.Set("customerPhone", "9876543210")
	form.Set("subject", "Damaged packaging")
	form.Set("description", "The box arrived crushed and the seal was already broken.")

	req, _ := http.NewRequest("POST", "/api/complaints", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-ID", "abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	assert.Equal(t, float64(1), created["id"])

	resp, err = app.Test(jsonRequest("GET", "/api/complaints", "abc", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	mine := decode[[]models.Complaint](t, resp)
	require.Len(t, mine, 1)
	assert.Equal(t, models.ComplaintOpen, mine[0].Status)

	// Another session sees nothing.
	resp, err = app.Test(jsonRequest("GET", "/api/complaints", "xyz", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	other := decode[[]models.Complaint](t, resp)
	assert.Empty(t, other)

	// Admin resolves without a response first, then with one.
	resp, err = app.Test(jsonRequest("PATCH", "/api/admin/complaints/1", "", map[string]any{"status": "in-progress"}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	updated := decode[models.Complaint](t, resp)
	assert.Equal(t, models.ComplaintInProgress, updated.Status)
	assert.Nil(t, updated.Response)

	resp, err = app.Test(jsonRequest("PATCH", "/api/admin/complaints/1", "", map[string]any{"status": "resolved", "response": "Replacement shipped."}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	updated = decode[models.Complaint](t, resp)
	require.NotNil(t, updated.Response)
	assert.Equal(t, "Replacement shipped.", *updated.Response)

	resp, err = app.Test(jsonRequest("PATCH", "/api/admin/complaints/999", "", map[string]any{"status": "resolved"}))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(jsonRequest("PATCH", "/api/admin/complaints/1", "", map[string]any{"status": "bogus"}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestComplaintValidation(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{}
	form.Set("customerName", "A")
	form.Set("customerEmail", "not-an-email")
	form.Set("customerPhone", "123")
	form.Set("subject", "Hi")
	form.Set("description", "too short")

	req, _ := http.NewRequest("POST", "/api/complaints", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-ID", "abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", "abc", map[string]any{"username": "alice", "password": "s3cret99"}))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	registered := decode[map[string]any](t, resp)
	require.NotEmpty(t, registered["token"])

	resp, err = app.Test(jsonRequest("POST", "/api/auth/register", "abc", map[string]any{"username": "alice", "password": "s3cret99"}))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/auth/login", "abc", map[string]any{"username": "alice", "password": "s3cret99"}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	logged := decode[map[string]any](t, resp)
	token, _ := logged["token"].(string)
	require.NotEmpty(t, token)

	resp, err = app.Test(jsonRequest("POST", "/api/auth/login", "abc", map[string]any{"username": "alice", "password": "wrong"}))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := jsonRequest("GET", "/api/auth/user", "abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	me := decode[models.User](t, resp)
	assert.Equal(t, "alice", me.Username)

	resp, err = app.Test(jsonRequest("GET", "/api/auth/user", "abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestGuestSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/guest", "", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	guest := decode[map[string]any](t, resp)
	assert.Equal(t, true, guest["isGuest"])
}

func TestGoogleLoginDisabled(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("GET", "/api/auth/google", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
