package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/electromart/internal/middleware"
	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/storage"
)

// OrderHandler serves checkout and order-history endpoints.
type OrderHandler struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(store storage.Storage, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{store: store, logger: logger}
}

// Checkout creates an order from the submitted form and clears the
// session's cart. Creating the order and clearing the cart are two
// separate storage calls with no transaction spanning them.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var input models.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order data")
	}
	if err := validate.Struct(input); err != nil {
		return validationError(c, "invalid order data", err)
	}

	input.SessionID = middleware.SessionID(c)
	if userID, ok := middleware.CurrentUserID(c); ok {
		input.UserID = &userID
	}

	order, err := h.store.CreateOrder(input)
	if err != nil {
		return err
	}

	if err := h.store.ClearCart(input.SessionID); err != nil {
		return err
	}

	h.logger.Info("order placed",
		zap.Int("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.String("payment_method", order.PaymentMethod))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId": order.ID,
		"message": "Order placed successfully",
	})
}

// ListOrders returns the session's order history.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.store.GetOrdersBySessionID(middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
