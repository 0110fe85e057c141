package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/electromart/internal/middleware"
	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/storage"
)

// CartHandler serves the session-scoped cart endpoints.
type CartHandler struct {
	store storage.Storage
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(store storage.Storage) *CartHandler {
	return &CartHandler{store: store}
}

// GetCart returns the session's cart summary.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	payload, err := buildCartPayload(h.store, middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

// AddItem adds a product to the cart, merging with an existing line
// for the same product.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var input models.CartItemInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cart item data")
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if err := validate.Struct(input); err != nil {
		return validationError(c, "invalid cart item data", err)
	}

	product, err := h.store.GetProductByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	input.SessionID = middleware.SessionID(c)
	if userID, ok := middleware.CurrentUserID(c); ok {
		input.UserID = &userID
	}

	if _, err := h.store.AddToCart(input); err != nil {
		return err
	}

	payload, err := buildCartPayload(h.store, input.SessionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payload)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem changes a cart line's quantity. Quantities below one are
// rejected here; the engine never sees them.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cart item ID")
	}

	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be a positive number")
	}

	item, err := h.store.UpdateCartItemQuantity(id, req.Quantity)
	if err != nil {
		return err
	}
	if item == nil {
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	}

	payload, err := buildCartPayload(h.store, middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

// RemoveItem deletes a single cart line.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid cart item ID")
	}

	removed, err := h.store.RemoveFromCart(id)
	if err != nil {
		return err
	}
	if !removed {
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	}

	payload, err := buildCartPayload(h.store, middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

// ClearCart empties the session's cart. Clearing an already empty cart
// still succeeds.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.store.ClearCart(middleware.SessionID(c)); err != nil {
		return err
	}
	return c.JSON(emptyCartPayload())
}
