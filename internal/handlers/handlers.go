package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/storage"
)

var validate = validator.New()

// validationDetails flattens validator errors into client-facing field
// messages.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return details
}

func validationError(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"errors":  validationDetails(err),
	})
}

// cartPayload is the cart summary returned by every cart-touching
// endpoint: the joined lines plus derived total and item count.
type cartPayload struct {
	Items []models.ProductWithQuantity `json:"items"`
	Total float64                      `json:"total"`
	Count int                          `json:"count"`
}

func buildCartPayload(store storage.Storage, sessionID string) (cartPayload, error) {
	items, err := store.GetCartItems(sessionID)
	if err != nil {
		return cartPayload{}, err
	}

	payload := cartPayload{Items: items}
	for _, item := range items {
		payload.Total += item.Price * float64(item.Quantity)
		payload.Count += item.Quantity
	}
	return payload, nil
}

func emptyCartPayload() cartPayload {
	return cartPayload{Items: []models.ProductWithQuantity{}}
}
