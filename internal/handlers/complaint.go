package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/electromart/internal/config"
	"github.com/example/electromart/internal/middleware"
	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/storage"
)

// Attachment types accepted with a complaint.
var allowedAttachmentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ComplaintHandler serves the customer-facing complaint endpoints.
type ComplaintHandler struct {
	store  storage.Storage
	cfg    *config.Config
	logger *zap.Logger
}

// NewComplaintHandler constructs a ComplaintHandler.
func NewComplaintHandler(store storage.Storage, cfg *config.Config, logger *zap.Logger) *ComplaintHandler {
	return &ComplaintHandler{store: store, cfg: cfg, logger: logger}
}

// CreateComplaint files a ticket from a multipart form with an
// optional single attachment. The file is staged under UploadDir and
// only its path and original name reach storage.
func (h *ComplaintHandler) CreateComplaint(c *fiber.Ctx) error {
	var input models.ComplaintInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid complaint data")
	}
	if err := validate.Struct(input); err != nil {
		return validationError(c, "invalid complaint data", err)
	}

	file, err := c.FormFile("attachment")
	if err == nil && file != nil {
		if file.Size > h.cfg.MaxUploadBytes {
			return fiber.NewError(fiber.StatusBadRequest, "attachment exceeds the size limit")
		}
		if !allowedAttachmentTypes[file.Header.Get("Content-Type")] {
			return fiber.NewError(fiber.StatusBadRequest, "invalid file type; only images, PDFs, and documents are allowed")
		}

		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
			h.logger.Error("failed to stage attachment", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "failed to store attachment")
		}

		path := "/uploads/" + name
		originalName := file.Filename
		input.Attachment = &path
		input.AttachmentName = &originalName
	}

	input.SessionID = middleware.SessionID(c)

	complaint, err := h.store.CreateComplaint(input)
	if err != nil {
		return err
	}

	h.logger.Info("complaint filed",
		zap.Int("complaint_id", complaint.ID),
		zap.Bool("has_attachment", complaint.Attachment != nil))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      complaint.ID,
		"message": "Complaint submitted successfully",
	})
}

// ListComplaints returns the session's tickets.
func (h *ComplaintHandler) ListComplaints(c *fiber.Ctx) error {
	complaints, err := h.store.GetComplaintsBySessionID(middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(complaints)
}
