package handlers

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/example/electromart/internal/services"
	"github.com/example/electromart/internal/storage"
)

// minSearchLength is the route-level floor on search queries. The
// storage engine itself matches any non-empty substring.
const minSearchLength = 2

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	store   storage.Storage
	pricing *services.PricingService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(store storage.Storage, pricing *services.PricingService) *ProductHandler {
	return &ProductHandler{store: store, pricing: pricing}
}

// ListProducts returns the full catalog.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.GetProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product ID")
	}

	product, err := h.store.GetProductByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(product)
}

// ProductsByCategory returns the products in a category,
// case-insensitively.
func (h *ProductHandler) ProductsByCategory(c *fiber.Ctx) error {
	products, err := h.store.GetProductsByCategory(c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// FeaturedProducts returns the featured subset of the catalog.
func (h *ProductHandler) FeaturedProducts(c *fiber.Ctx) error {
	products, err := h.store.GetFeaturedProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// NewArrivals returns products flagged as new.
func (h *ProductHandler) NewArrivals(c *fiber.Ctx) error {
	products, err := h.store.GetNewArrivals()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// SaleProducts returns products whose old price exceeds the current
// one.
func (h *ProductHandler) SaleProducts(c *fiber.Ctx) error {
	products, err := h.store.GetSaleProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// SearchProducts matches the query against name, description and
// category.
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "search query is required")
	}
	if utf8.RuneCountInString(query) < minSearchLength {
		return fiber.NewError(fiber.StatusBadRequest, "search query must be at least 2 characters")
	}

	products, err := h.store.SearchProducts(query)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// PriceComparison returns simulated competitor quotes for a product.
func (h *ProductHandler) PriceComparison(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product ID")
	}

	product, err := h.store.GetProductByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	return c.JSON(h.pricing.CompetitorPrices(product.Name, product.Price))
}
