package storage

import (
	"errors"

	"github.com/example/electromart/internal/models"
)

// ErrUsernameTaken is returned by CreateUser when the username is
// already registered. Uniqueness is enforced inside the store so the
// check and the insert cannot race.
var ErrUsernameTaken = errors.New("username already taken")

// Storage is the single source of truth for all entity state. Absent
// entities are reported as a nil result with a nil error; handlers
// translate that into a 404. The interface is the seam where a
// database-backed implementation would be substituted.
//
// CreateOrder trusts the caller-declared total and items rather than
// recomputing them from the live cart, and checkout's create-order /
// clear-cart sequence spans two calls with no transaction between
// them. Both are inherited behaviors of the reference storefront.
type Storage interface {
	// Users
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByPhone(phone string) (*models.User, error)
	CreateUser(input models.UserInput) (*models.User, error)

	// Products
	GetProducts() ([]models.Product, error)
	GetProductByID(id int) (*models.Product, error)
	GetProductsByCategory(category string) ([]models.Product, error)
	GetFeaturedProducts() ([]models.Product, error)
	GetNewArrivals() ([]models.Product, error)
	GetSaleProducts() ([]models.Product, error)
	SearchProducts(query string) ([]models.Product, error)
	CreateProduct(input models.ProductInput) (*models.Product, error)

	// Cart
	GetCartItems(sessionID string) ([]models.ProductWithQuantity, error)
	GetCartItem(sessionID string, productID int) (*models.CartItem, error)
	AddToCart(input models.CartItemInput) (*models.CartItem, error)
	UpdateCartItemQuantity(id, quantity int) (*models.CartItem, error)
	RemoveFromCart(id int) (bool, error)
	ClearCart(sessionID string) error

	// Orders
	CreateOrder(input models.OrderInput) (*models.Order, error)
	GetOrdersBySessionID(sessionID string) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrderStats() (models.OrderStats, error)

	// Complaints
	CreateComplaint(input models.ComplaintInput) (*models.Complaint, error)
	GetComplaintsBySessionID(sessionID string) ([]models.Complaint, error)
	GetAllComplaints() ([]models.Complaint, error)
	GetComplaintByID(id int) (*models.Complaint, error)
	UpdateComplaintStatus(id int, status string, response *string) (*models.Complaint, error)
}
