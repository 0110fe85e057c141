package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/storage"
)

// AdminHandler serves the dashboard endpoints. These carry no
// authentication, matching the reference storefront.
type AdminHandler struct {
	store storage.Storage
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(store storage.Storage) *AdminHandler {
	return &AdminHandler{store: store}
}

// ListProducts returns the full catalog for the dashboard.
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.GetProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// ListOrders returns every order across all sessions.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.store.GetAllOrders()
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// OrderStats returns the order-book aggregate.
func (h *AdminHandler) OrderStats(c *fiber.Ctx) error {
	stats, err := h.store.GetOrderStats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ListComplaints returns every ticket across all sessions.
func (h *AdminHandler) ListComplaints(c *fiber.Ctx) error {
	complaints, err := h.store.GetAllComplaints()
	if err != nil {
		return err
	}
	return c.JSON(complaints)
}

// GetComplaint returns one ticket by id.
func (h *AdminHandler) GetComplaint(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid complaint ID")
	}

	complaint, err := h.store.GetComplaintByID(id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return fiber.NewError(fiber.StatusNotFound, "complaint not found")
	}
	return c.JSON(complaint)
}

type updateComplaintRequest struct {
	Status   string  `json:"status"`
	Response *string `json:"response"`
}

var validComplaintStatuses = map[string]bool{
	models.ComplaintOpen:       true,
	models.ComplaintInProgress: true,
	models.ComplaintResolved:   true,
	models.ComplaintClosed:     true,
}

// UpdateComplaint sets a ticket's status and optionally its response.
// An omitted response leaves the stored one untouched.
func (h *AdminHandler) UpdateComplaint(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid complaint ID")
	}

	var req updateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "status is required")
	}
	if !validComplaintStatuses[req.Status] {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	complaint, err := h.store.UpdateComplaintStatus(id, req.Status, req.Response)
	if err != nil {
		return err
	}
	if complaint == nil {
		return fiber.NewError(fiber.StatusNotFound, "complaint not found")
	}
	return c.JSON(complaint)
}
