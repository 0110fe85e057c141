package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/example/electromart/internal/models"
)

// MemStorage keeps every entity in process memory behind a single
// mutex. IDs are assigned sequentially per entity family. All
// read-check-then-write sequences (username uniqueness, cart-line
// merge) run under one critical section, so the engine is safe under
// fiber's parallel request handling. Nothing survives a restart.
type MemStorage struct {
	mu sync.RWMutex

	users      map[int]models.User
	products   map[int]models.Product
	cartItems  map[int]models.CartItem
	orders     map[int]models.Order
	complaints map[int]models.Complaint

	nextUserID      int
	nextProductID   int
	nextCartItemID  int
	nextOrderID     int
	nextComplaintID int
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage returns a store seeded with the sample catalog and the
// admin account.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:           make(map[int]models.User),
		products:        make(map[int]models.Product),
		cartItems:       make(map[int]models.CartItem),
		orders:          make(map[int]models.Order),
		complaints:      make(map[int]models.Complaint),
		nextUserID:      1,
		nextProductID:   1,
		nextCartItemID:  1,
		nextOrderID:     1,
		nextComplaintID: 1,
	}
	s.seed()
	return s
}

// Users

func (s *MemStorage) GetUser(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u models.User) bool { return u.Username == username }), nil
}

func (s *MemStorage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u models.User) bool { return u.Email != nil && *u.Email == email }), nil
}

func (s *MemStorage) GetUserByPhone(phone string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(func(u models.User) bool { return u.Phone != nil && *u.Phone == phone }), nil
}

// findUser must be called with the lock held.
func (s *MemStorage) findUser(match func(models.User) bool) *models.User {
	for _, id := range sortedKeys(s.users) {
		if user := s.users[id]; match(user) {
			return &user
		}
	}
	return nil
}

// CreateUser inserts a new user, enforcing username uniqueness inside
// the critical section.
func (s *MemStorage) CreateUser(input models.UserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == input.Username {
			return nil, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:       s.nextUserID,
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Phone:    input.Phone,
		GoogleID: input.GoogleID,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

// Products

func (s *MemStorage) GetProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(models.Product) bool { return true }), nil
}

func (s *MemStorage) GetProductByID(id int) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if product, ok := s.products[id]; ok {
		return &product, nil
	}
	return nil, nil
}

func (s *MemStorage) GetProductsByCategory(category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p models.Product) bool {
		return strings.EqualFold(p.Category, category)
	}), nil
}

func (s *MemStorage) GetFeaturedProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p models.Product) bool { return p.IsFeatured }), nil
}

func (s *MemStorage) GetNewArrivals() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p models.Product) bool { return p.IsNew }), nil
}

func (s *MemStorage) GetSaleProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(models.Product.OnSale), nil
}

// SearchProducts matches the query case-insensitively as a substring
// of name, description or category. Minimum-length rules live in the
// route layer, not here.
func (s *MemStorage) SearchProducts(query string) ([]models.Product, error) {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterProducts(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	}), nil
}

func (s *MemStorage) CreateProduct(input models.ProductInput) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:          s.nextProductID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		OldPrice:    input.OldPrice,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		ImageURL:    input.ImageURL,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		Stock:       input.Stock,
		Features:    input.Features,
		Badges:      input.Badges,
		IsNew:       input.IsNew,
		IsFeatured:  input.IsFeatured,
	}
	s.nextProductID++
	s.products[product.ID] = product
	return &product, nil
}

// filterProducts must be called with the lock held. Results come back
// in insertion (id) order so listings are deterministic.
func (s *MemStorage) filterProducts(keep func(models.Product) bool) []models.Product {
	result := make([]models.Product, 0)
	for _, id := range sortedKeys(s.products) {
		if p := s.products[id]; keep(p) {
			result = append(result, p)
		}
	}
	return result
}

// Cart

// GetCartItems joins the session's cart lines against the live
// catalog. Lines whose product no longer exists are dropped.
func (s *MemStorage) GetCartItems(sessionID string) ([]models.ProductWithQuantity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.ProductWithQuantity, 0)
	for _, id := range sortedKeys(s.cartItems) {
		item := s.cartItems[id]
		if item.SessionID != sessionID {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		result = append(result, models.ProductWithQuantity{Product: product, Quantity: item.Quantity})
	}
	return result, nil
}

func (s *MemStorage) GetCartItem(sessionID string, productID int) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findCartItem(sessionID, productID), nil
}

// findCartItem must be called with the lock held.
func (s *MemStorage) findCartItem(sessionID string, productID int) *models.CartItem {
	for _, item := range s.cartItems {
		if item.SessionID == sessionID && item.ProductID == productID {
			return &item
		}
	}
	return nil
}

// AddToCart merges into an existing line for the same session and
// product by summing quantities; otherwise it inserts a fresh line.
// The lookup and the write share one critical section.
func (s *MemStorage) AddToCart(input models.CartItemInput) (*models.CartItem, error) {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findCartItem(input.SessionID, input.ProductID); existing != nil {
		existing.Quantity += quantity
		s.cartItems[existing.ID] = *existing
		return existing, nil
	}

	item := models.CartItem{
		ID:        s.nextCartItemID,
		UserID:    input.UserID,
		SessionID: input.SessionID,
		ProductID: input.ProductID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.nextCartItemID++
	s.cartItems[item.ID] = item
	return &item, nil
}

func (s *MemStorage) UpdateCartItemQuantity(id, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, nil
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return &item, nil
}

func (s *MemStorage) RemoveFromCart(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return false, nil
	}
	delete(s.cartItems, id)
	return true, nil
}

// ClearCart removes every line for the session. Clearing an empty
// cart is a no-op, not an error.
func (s *MemStorage) ClearCart(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
	return nil
}

// Orders

// CreateOrder stores the checkout record. Status is forced to pending
// regardless of anything the caller attempted to pass.
func (s *MemStorage) CreateOrder(input models.OrderInput) (*models.Order, error) {
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCOD
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:            s.nextOrderID,
		UserID:        input.UserID,
		SessionID:     input.SessionID,
		CustomerName:  input.CustomerName,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		Total:         input.Total,
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
		Items:         append([]models.OrderItem(nil), input.Items...),
	}
	s.nextOrderID++
	s.orders[order.ID] = order
	return &order, nil
}

func (s *MemStorage) GetOrdersBySessionID(sessionID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Order, 0)
	for _, id := range sortedKeys(s.orders) {
		if order := s.orders[id]; order.SessionID == sessionID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (s *MemStorage) GetAllOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Order, 0, len(s.orders))
	for _, id := range sortedKeys(s.orders) {
		result = append(result, s.orders[id])
	}
	return result, nil
}

// GetOrderStats recomputes the aggregate on every call; the order book
// is small enough that caching would only add staleness.
func (s *MemStorage) GetOrderStats() (models.OrderStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.OrderStats
	for _, order := range s.orders {
		stats.TotalOrders++
		stats.TotalRevenue += order.Total
		if order.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

// Complaints

func (s *MemStorage) CreateComplaint(input models.ComplaintInput) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	complaint := models.Complaint{
		ID:             s.nextComplaintID,
		SessionID:      input.SessionID,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		Subject:        input.Subject,
		Description:    input.Description,
		OrderNumber:    input.OrderNumber,
		Attachment:     input.Attachment,
		AttachmentName: input.AttachmentName,
		Status:         models.ComplaintOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.nextComplaintID++
	s.complaints[complaint.ID] = complaint
	return &complaint, nil
}

func (s *MemStorage) GetComplaintsBySessionID(sessionID string) ([]models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Complaint, 0)
	for _, id := range sortedKeys(s.complaints) {
		if complaint := s.complaints[id]; complaint.SessionID == sessionID {
			result = append(result, complaint)
		}
	}
	return result, nil
}

func (s *MemStorage) GetAllComplaints() ([]models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Complaint, 0, len(s.complaints))
	for _, id := range sortedKeys(s.complaints) {
		result = append(result, s.complaints[id])
	}
	return result, nil
}

func (s *MemStorage) GetComplaintByID(id int) (*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if complaint, ok := s.complaints[id]; ok {
		return &complaint, nil
	}
	return nil, nil
}

// UpdateComplaintStatus sets the status and, when response is non-nil,
// the response text. A nil response leaves the stored response
// untouched. UpdatedAt is always refreshed.
func (s *MemStorage) UpdateComplaintStatus(id int, status string, response *string) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaint, ok := s.complaints[id]
	if !ok {
		return nil, nil
	}

	complaint.Status = status
	if response != nil {
		complaint.Response = response
	}
	complaint.UpdatedAt = time.Now()
	s.complaints[id] = complaint
	return &complaint, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
